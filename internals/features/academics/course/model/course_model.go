// file: internals/features/academics/course/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	userModel "academyos_backend/internals/features/users/user/model"
)

// Course lifecycle: draft → published → archived. Archival is soft delete
// (CourseIsActive=false); archived rows stay out of default queries via
// ScopeActive.
type CourseModel struct {
	CourseID               uuid.UUID      `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`
	CourseTitle            string         `gorm:"column:course_title;size:200;not null" json:"course_title"`
	CourseDescription      string         `gorm:"column:course_description;not null" json:"course_description"`
	CourseShortDescription *string        `gorm:"column:course_short_description;size:300" json:"course_short_description,omitempty"`
	CourseCode             string         `gorm:"column:course_code;size:20;uniqueIndex;not null" json:"course_code"`
	CourseCredits          int            `gorm:"column:course_credits;not null;default:3" json:"course_credits"`
	CourseLevel            string         `gorm:"column:course_level;size:20;not null;default:'beginner'" json:"course_level"`
	CourseObjectives       pq.StringArray `gorm:"column:course_objectives;type:text[]" json:"course_objectives"`
	CourseDurationWeeks    int            `gorm:"column:course_duration_weeks;not null;default:12" json:"course_duration_weeks"`
	CourseIsFree           bool           `gorm:"column:course_is_free;not null;default:false" json:"course_is_free"`
	CoursePrice            float64        `gorm:"column:course_price;type:numeric(10,2);not null;default:0" json:"course_price"`
	CourseCurrency         string         `gorm:"column:course_currency;size:8;not null;default:'GHS'" json:"course_currency"`
	CourseMaxStudents      int            `gorm:"column:course_max_students;not null;default:30" json:"course_max_students"`
	CourseStatus           string         `gorm:"column:course_status;size:20;not null;default:'draft'" json:"course_status"`
	CourseThumbnail        *string        `gorm:"column:course_thumbnail" json:"course_thumbnail,omitempty"`

	// denormalized; moves only inside the enrollment transaction
	CourseTotalEnrollments int `gorm:"column:course_total_enrollments;not null;default:0" json:"course_total_enrollments"`

	CourseCreatorID uuid.UUID `gorm:"column:course_creator_id;type:uuid;not null" json:"course_creator_id"`
	CourseIsActive  bool      `gorm:"column:course_is_active;not null;default:true" json:"course_is_active"`
	CourseCreatedAt time.Time `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`

	Creator     *userModel.UserModel  `gorm:"foreignKey:CourseCreatorID" json:"creator,omitempty"`
	Instructors []userModel.UserModel `gorm:"many2many:course_instructors;foreignKey:CourseID;joinForeignKey:course_id;References:ID;joinReferences:user_id" json:"instructors,omitempty"`
}

func (CourseModel) TableName() string {
	return "courses"
}

// Course status values
const (
	CourseStatusDraft     = "draft"
	CourseStatusPublished = "published"
	CourseStatusArchived  = "archived"
)

func ScopeActive(db *gorm.DB) *gorm.DB {
	return db.Where("course_is_active = ?", true)
}

// HasInstructor reports whether userID is one of the assigned instructors.
func (m *CourseModel) HasInstructor(userID uuid.UUID) bool {
	for _, inst := range m.Instructors {
		if inst.ID == userID {
			return true
		}
	}
	return false
}
