// file: internals/features/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "academyos_backend/internals/features/academics/course/model"
	userModel "academyos_backend/internals/features/users/user/model"
)

// EnrollmentModel links one student to one course. The composite unique
// index over (student, course) is the authoritative duplicate guard; the
// controller's pre-check only exists for a friendlier error message.
type EnrollmentModel struct {
	EnrollmentID           uuid.UUID  `gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_id"`
	EnrollmentStudentID    uuid.UUID  `gorm:"column:enrollment_student_id;type:uuid;not null;uniqueIndex:uq_enrollment_student_course" json:"enrollment_student_id"`
	EnrollmentCourseID     uuid.UUID  `gorm:"column:enrollment_course_id;type:uuid;not null;uniqueIndex:uq_enrollment_student_course" json:"enrollment_course_id"`
	EnrollmentInstructorID *uuid.UUID `gorm:"column:enrollment_instructor_id;type:uuid" json:"enrollment_instructor_id,omitempty"`
	EnrollmentStatus       string     `gorm:"column:enrollment_status;size:20;not null;default:'active'" json:"enrollment_status"`
	EnrollmentProgress     int        `gorm:"column:enrollment_progress;not null;default:0" json:"enrollment_progress"`
	EnrollmentGrade        *float64   `gorm:"column:enrollment_grade" json:"enrollment_grade,omitempty"`
	EnrollmentEnrolledAt   time.Time  `gorm:"column:enrollment_enrolled_at;autoCreateTime" json:"enrollment_enrolled_at"`
	EnrollmentCreatedAt    time.Time  `gorm:"column:enrollment_created_at;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt    time.Time  `gorm:"column:enrollment_updated_at;autoUpdateTime" json:"enrollment_updated_at"`

	Student    *userModel.UserModel     `gorm:"foreignKey:EnrollmentStudentID" json:"student,omitempty"`
	Course     *courseModel.CourseModel `gorm:"foreignKey:EnrollmentCourseID" json:"course,omitempty"`
	Instructor *userModel.UserModel     `gorm:"foreignKey:EnrollmentInstructorID" json:"instructor,omitempty"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}

// Enrollment status values
const (
	EnrollmentStatusActive    = "active"
	EnrollmentStatusCompleted = "completed"
	EnrollmentStatusWithdrawn = "withdrawn"
)

func ScopeActive(db *gorm.DB) *gorm.DB {
	return db.Where("enrollment_status = ?", EnrollmentStatusActive)
}
