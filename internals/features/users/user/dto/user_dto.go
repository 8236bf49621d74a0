// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	model "academyos_backend/internals/features/users/user/model"
)

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* =========================================================
   Responses
   ========================================================= */

// UserLite is the projection embedded in course/class/roster payloads.
type UserLite struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Avatar    *string   `json:"avatar,omitempty"`
}

func FromModelLite(u *model.UserModel) UserLite {
	return UserLite{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Avatar:    u.Avatar,
	}
}

/* =========================================================
   Requests
   ========================================================= */

type UpdateUserRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName    *string `json:"last_name" validate:"omitempty,min=1,max=50"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty"` // YYYY-MM-DD
	Avatar      *string `json:"avatar" validate:"omitempty,max=2048"`
}

func (r *UpdateUserRequest) Normalize() {
	r.FirstName = trimPtr(r.FirstName)
	r.LastName = trimPtr(r.LastName)
	r.Phone = trimPtr(r.Phone)
	r.Avatar = trimPtr(r.Avatar)
}

func (r *UpdateUserRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// Apply copies present fields onto the model.
func (r *UpdateUserRequest) Apply(u *model.UserModel) {
	if r.FirstName != nil {
		u.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		u.LastName = *r.LastName
	}
	if r.Phone != nil {
		u.Phone = r.Phone
	}
	if r.Avatar != nil {
		u.Avatar = r.Avatar
	}
	if r.DateOfBirth != nil {
		if t, err := time.Parse("2006-01-02", *r.DateOfBirth); err == nil {
			u.DateOfBirth = &t
		}
	}
}

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=student teacher admin parent"`
}

type LinkChildRequest struct {
	StudentEmail string `json:"student_email" validate:"required,email"`
}

func (r *LinkChildRequest) Normalize() {
	r.StudentEmail = strings.ToLower(strings.TrimSpace(r.StudentEmail))
}
