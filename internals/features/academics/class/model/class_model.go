// file: internals/features/academics/class/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "academyos_backend/internals/features/academics/course/model"
	userModel "academyos_backend/internals/features/users/user/model"
)

// ClassModel maps a scheduled session of a course with one instructor and a
// half-open time window [start, end). Cancellation is soft delete:
// ClassIsActive=false + status cancelled.
type ClassModel struct {
	ClassID                uuid.UUID  `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`
	ClassTitle             string     `gorm:"column:class_title;size:200;not null" json:"class_title"`
	ClassDescription       *string    `gorm:"column:class_description" json:"class_description,omitempty"`
	ClassCourseID          uuid.UUID  `gorm:"column:class_course_id;type:uuid;not null" json:"class_course_id"`
	ClassInstructorID      uuid.UUID  `gorm:"column:class_instructor_id;type:uuid;not null" json:"class_instructor_id"`
	ClassStartTime         time.Time  `gorm:"column:class_start_time;not null" json:"class_start_time"`
	ClassEndTime           time.Time  `gorm:"column:class_end_time;not null" json:"class_end_time"`
	ClassIsRecurring       bool       `gorm:"column:class_is_recurring;not null;default:false" json:"class_is_recurring"`
	ClassRecurrencePattern *string    `gorm:"column:class_recurrence_pattern;size:20" json:"class_recurrence_pattern,omitempty"`
	ClassRecurrenceEndDate *time.Time `gorm:"column:class_recurrence_end_date" json:"class_recurrence_end_date,omitempty"`
	ClassLocation          *string    `gorm:"column:class_location;size:200" json:"class_location,omitempty"`
	ClassIsOnline          bool       `gorm:"column:class_is_online;not null;default:false" json:"class_is_online"`
	ClassMeetingLink       *string    `gorm:"column:class_meeting_link" json:"class_meeting_link,omitempty"`
	ClassMaxCapacity       int        `gorm:"column:class_max_capacity;not null;default:25" json:"class_max_capacity"`
	ClassAgenda            *string    `gorm:"column:class_agenda" json:"class_agenda,omitempty"`
	ClassStatus            string     `gorm:"column:class_status;size:20;not null;default:'scheduled'" json:"class_status"`
	ClassIsActive          bool       `gorm:"column:class_is_active;not null;default:true" json:"class_is_active"`
	ClassCreatedAt         time.Time  `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt         time.Time  `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at"`

	Course     *courseModel.CourseModel `gorm:"foreignKey:ClassCourseID" json:"course,omitempty"`
	Instructor *userModel.UserModel     `gorm:"foreignKey:ClassInstructorID" json:"instructor,omitempty"`
}

func (ClassModel) TableName() string {
	return "classes"
}

// Class status values
const (
	ClassStatusScheduled = "scheduled"
	ClassStatusLive      = "live"
	ClassStatusCompleted = "completed"
	ClassStatusCancelled = "cancelled"
)

func ScopeActive(db *gorm.DB) *gorm.DB {
	return db.Where("class_is_active = ?", true)
}

// Overlaps reports whether two [start, end) windows intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
