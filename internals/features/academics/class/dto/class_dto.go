// file: internals/features/academics/class/dto/class_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"academyos_backend/internals/features/academics/class/model"
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

type CreateClassRequest struct {
	ClassTitle             string     `json:"class_title" validate:"required,min=3,max=200"`
	ClassDescription       *string    `json:"class_description"`
	ClassCourseID          string     `json:"class_course_id" validate:"required,uuid4"`
	ClassInstructorID      *string    `json:"class_instructor_id" validate:"omitempty,uuid4"`
	ClassStartTime         time.Time  `json:"class_start_time" validate:"required"`
	ClassEndTime           time.Time  `json:"class_end_time" validate:"required"`
	ClassIsRecurring       *bool      `json:"class_is_recurring"`
	ClassRecurrencePattern *string    `json:"class_recurrence_pattern" validate:"omitempty,oneof=daily weekly biweekly monthly"`
	ClassRecurrenceEndDate *time.Time `json:"class_recurrence_end_date"`
	ClassLocation          *string    `json:"class_location" validate:"omitempty,max=200"`
	ClassIsOnline          *bool      `json:"class_is_online"`
	ClassMeetingLink       *string    `json:"class_meeting_link" validate:"omitempty,max=2048"`
	ClassMaxCapacity       *int       `json:"class_max_capacity" validate:"omitempty,min=1,max=1000"`
	ClassAgenda            *string    `json:"class_agenda"`
}

func (r *CreateClassRequest) Normalize() {
	r.ClassTitle = strings.TrimSpace(r.ClassTitle)
	r.ClassDescription = trimPtr(r.ClassDescription)
	r.ClassLocation = trimPtr(r.ClassLocation)
	r.ClassMeetingLink = trimPtr(r.ClassMeetingLink)
	r.ClassAgenda = trimPtr(r.ClassAgenda)
}

func (r *CreateClassRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	if !r.ClassEndTime.After(r.ClassStartTime) {
		return errEndBeforeStart
	}
	return nil
}

var errEndBeforeStart = validationError("class_end_time must be after class_start_time")

type validationError string

func (e validationError) Error() string { return string(e) }

func (r *CreateClassRequest) ToModel(courseID uuid.UUID, instructorID uuid.UUID) *model.ClassModel {
	m := &model.ClassModel{
		ClassTitle:             r.ClassTitle,
		ClassDescription:       r.ClassDescription,
		ClassCourseID:          courseID,
		ClassInstructorID:      instructorID,
		ClassStartTime:         r.ClassStartTime,
		ClassEndTime:           r.ClassEndTime,
		ClassRecurrencePattern: r.ClassRecurrencePattern,
		ClassRecurrenceEndDate: r.ClassRecurrenceEndDate,
		ClassLocation:          r.ClassLocation,
		ClassMeetingLink:       r.ClassMeetingLink,
		ClassAgenda:            r.ClassAgenda,
		ClassMaxCapacity:       25,
		ClassStatus:            model.ClassStatusScheduled,
		ClassIsActive:          true,
	}
	if r.ClassIsRecurring != nil {
		m.ClassIsRecurring = *r.ClassIsRecurring
	}
	if r.ClassIsOnline != nil {
		m.ClassIsOnline = *r.ClassIsOnline
	}
	if r.ClassMaxCapacity != nil {
		m.ClassMaxCapacity = *r.ClassMaxCapacity
	}
	return m
}

type UpdateClassRequest struct {
	ClassTitle       *string    `json:"class_title" validate:"omitempty,min=3,max=200"`
	ClassDescription *string    `json:"class_description"`
	ClassStartTime   *time.Time `json:"class_start_time"`
	ClassEndTime     *time.Time `json:"class_end_time"`
	ClassLocation    *string    `json:"class_location" validate:"omitempty,max=200"`
	ClassIsOnline    *bool      `json:"class_is_online"`
	ClassMeetingLink *string    `json:"class_meeting_link" validate:"omitempty,max=2048"`
	ClassMaxCapacity *int       `json:"class_max_capacity" validate:"omitempty,min=1,max=1000"`
	ClassAgenda      *string    `json:"class_agenda"`
}

func (r *UpdateClassRequest) Normalize() {
	r.ClassTitle = trimPtr(r.ClassTitle)
	r.ClassDescription = trimPtr(r.ClassDescription)
	r.ClassLocation = trimPtr(r.ClassLocation)
	r.ClassMeetingLink = trimPtr(r.ClassMeetingLink)
	r.ClassAgenda = trimPtr(r.ClassAgenda)
}

func (r *UpdateClassRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// Apply copies present fields onto the model.
func (r *UpdateClassRequest) Apply(m *model.ClassModel) {
	if r.ClassTitle != nil {
		m.ClassTitle = *r.ClassTitle
	}
	if r.ClassDescription != nil {
		m.ClassDescription = r.ClassDescription
	}
	if r.ClassStartTime != nil {
		m.ClassStartTime = *r.ClassStartTime
	}
	if r.ClassEndTime != nil {
		m.ClassEndTime = *r.ClassEndTime
	}
	if r.ClassLocation != nil {
		m.ClassLocation = r.ClassLocation
	}
	if r.ClassIsOnline != nil {
		m.ClassIsOnline = *r.ClassIsOnline
	}
	if r.ClassMeetingLink != nil {
		m.ClassMeetingLink = r.ClassMeetingLink
	}
	if r.ClassMaxCapacity != nil {
		m.ClassMaxCapacity = *r.ClassMaxCapacity
	}
	if r.ClassAgenda != nil {
		m.ClassAgenda = r.ClassAgenda
	}
}

type UpdateClassStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled live completed cancelled"`
}
