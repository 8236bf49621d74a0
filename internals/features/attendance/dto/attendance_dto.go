// file: internals/features/attendance/dto/attendance_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"academyos_backend/internals/features/attendance/model"
	userDto "academyos_backend/internals/features/users/user/dto"
	userModel "academyos_backend/internals/features/users/user/model"
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
   Requests
   ========================================================= */

type MarkAttendanceRequest struct {
	ClassID      string     `json:"class_id" validate:"required,uuid4"`
	StudentID    string     `json:"student_id" validate:"required,uuid4"`
	Status       string     `json:"status" validate:"required,oneof=present absent late excused"`
	Date         *time.Time `json:"date"` // defaults to now
	TimeIn       *time.Time `json:"time_in"`
	TimeOut      *time.Time `json:"time_out"`
	Notes        *string    `json:"notes"`
	ExcuseReason *string    `json:"excuse_reason"`
}

func (r *MarkAttendanceRequest) Normalize() {
	r.Notes = trimPtr(r.Notes)
	r.ExcuseReason = trimPtr(r.ExcuseReason)
}

type BulkMarkRecord struct {
	StudentID string  `json:"student_id" validate:"required,uuid4"`
	Status    string  `json:"status" validate:"required,oneof=present absent late excused"`
	Notes     *string `json:"notes"`
}

type BulkMarkRequest struct {
	ClassID string           `json:"class_id" validate:"required,uuid4"`
	Date    *time.Time       `json:"date"`
	Records []BulkMarkRecord `json:"records" validate:"required,min=1,dive"`
}

type BulkMarkFailure struct {
	StudentID string `json:"student_id"`
	Reason    string `json:"reason"`
}

type UpdateAttendanceRequest struct {
	Status       *string    `json:"status" validate:"omitempty,oneof=present absent late excused"`
	TimeIn       *time.Time `json:"time_in"`
	TimeOut      *time.Time `json:"time_out"`
	Notes        *string    `json:"notes"`
	ExcuseReason *string    `json:"excuse_reason"`
}

func (r *UpdateAttendanceRequest) Normalize() {
	r.Notes = trimPtr(r.Notes)
	r.ExcuseReason = trimPtr(r.ExcuseReason)
}

// Apply copies present fields onto the record. Class, student and day are
// immutable once written.
func (r *UpdateAttendanceRequest) Apply(m *model.AttendanceModel) {
	if r.Status != nil {
		m.AttendanceStatus = *r.Status
	}
	if r.TimeIn != nil {
		m.AttendanceTimeIn = r.TimeIn
	}
	if r.TimeOut != nil {
		m.AttendanceTimeOut = r.TimeOut
	}
	if r.Notes != nil {
		m.AttendanceNotes = r.Notes
	}
	if r.ExcuseReason != nil {
		m.AttendanceExcuseReason = r.ExcuseReason
	}
}

type ApproveExcuseRequest struct {
	Approved bool `json:"approved"`
}

// ApplyExcuseDecision: approval flips the record to excused; rejection only
// records the decision and leaves the status as marked.
func ApplyExcuseDecision(m *model.AttendanceModel, approved bool) {
	m.AttendanceExcuseApproved = &approved
	if approved {
		m.AttendanceStatus = model.AttendanceStatusExcused
	}
}

/* =========================================================
   Roster
   ========================================================= */

type RosterEntry struct {
	Student    userDto.UserLite       `json:"student"`
	Attendance *model.AttendanceModel `json:"attendance"` // null when unmarked
}

// RosterStudent is the per-enrollee input to BuildRoster, already in
// enrollment order.
type RosterStudent struct {
	Student userModel.UserModel
}

// BuildRoster left-joins the day's attendance onto the active enrollees.
// Output preserves the enrollment order; students without a record get
// attendance null.
func BuildRoster(students []RosterStudent, marked []model.AttendanceModel) []RosterEntry {
	byStudent := make(map[uuid.UUID]*model.AttendanceModel, len(marked))
	for i := range marked {
		byStudent[marked[i].AttendanceStudentID] = &marked[i]
	}

	roster := make([]RosterEntry, 0, len(students))
	for _, s := range students {
		st := s.Student
		roster = append(roster, RosterEntry{
			Student:    userDto.FromModelLite(&st),
			Attendance: byStudent[st.ID],
		})
	}
	return roster
}
