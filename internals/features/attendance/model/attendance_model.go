// file: internals/features/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	classModel "academyos_backend/internals/features/academics/class/model"
	userModel "academyos_backend/internals/features/users/user/model"
)

// AttendanceModel records one student's presence at one class on one UTC
// calendar day. AttendanceDay is always derived from AttendanceDate via
// helper.DayOf; the composite unique index over (student, class, day) is the
// authoritative duplicate guard. Rows are never deleted (audit trail).
type AttendanceModel struct {
	AttendanceID        uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`
	AttendanceClassID   uuid.UUID `gorm:"column:attendance_class_id;type:uuid;not null;uniqueIndex:uq_attendance_student_class_day" json:"attendance_class_id"`
	AttendanceStudentID uuid.UUID `gorm:"column:attendance_student_id;type:uuid;not null;uniqueIndex:uq_attendance_student_class_day" json:"attendance_student_id"`
	AttendanceDate      time.Time `gorm:"column:attendance_date;not null" json:"attendance_date"`
	AttendanceDay       time.Time `gorm:"column:attendance_day;type:date;not null;uniqueIndex:uq_attendance_student_class_day" json:"attendance_day"`
	AttendanceStatus    string    `gorm:"column:attendance_status;size:20;not null" json:"attendance_status"`

	AttendanceTimeIn         *time.Time `gorm:"column:attendance_time_in" json:"attendance_time_in,omitempty"`
	AttendanceTimeOut        *time.Time `gorm:"column:attendance_time_out" json:"attendance_time_out,omitempty"`
	AttendanceNotes          *string    `gorm:"column:attendance_notes" json:"attendance_notes,omitempty"`
	AttendanceExcuseReason   *string    `gorm:"column:attendance_excuse_reason" json:"attendance_excuse_reason,omitempty"`
	AttendanceExcuseApproved *bool      `gorm:"column:attendance_excuse_approved" json:"attendance_excuse_approved,omitempty"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`

	Class   *classModel.ClassModel `gorm:"foreignKey:AttendanceClassID" json:"class,omitempty"`
	Student *userModel.UserModel   `gorm:"foreignKey:AttendanceStudentID" json:"student,omitempty"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}

// Attendance status values
const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusLate    = "late"
	AttendanceStatusExcused = "excused"
)

func IsValidStatus(s string) bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate, AttendanceStatusExcused:
		return true
	}
	return false
}
