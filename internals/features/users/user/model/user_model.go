package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel maps the users table. Accounts are never hard-deleted while
// referenced; deactivation flips IsActive.
type UserModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FirstName   string     `gorm:"size:50;not null" json:"first_name"`
	LastName    string     `gorm:"size:50;not null" json:"last_name"`
	Email       string     `gorm:"size:255;unique;not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	Role        string     `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	Phone       *string    `gorm:"size:30" json:"phone,omitempty"`
	Avatar      *string    `json:"avatar,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`

	// parent → child link; weak reference, the child row survives the parent
	ParentID *uuid.UUID `gorm:"type:uuid" json:"parent_id,omitempty"`

	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// FullName for notification/display strings.
func (u *UserModel) FullName() string {
	return u.FirstName + " " + u.LastName
}

// ScopeActive keeps deactivated accounts out of default listings.
func ScopeActive(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
