// file: internals/features/academics/course/dto/course_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"

	"academyos_backend/internals/features/academics/course/model"
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

type CreateCourseRequest struct {
	CourseTitle            string   `json:"course_title" validate:"required,min=3,max=200"`
	CourseDescription      string   `json:"course_description" validate:"required,min=10"`
	CourseShortDescription *string  `json:"course_short_description" validate:"omitempty,max=300"`
	CourseCode             string   `json:"course_code" validate:"required,min=2,max=20"`
	CourseCredits          *int     `json:"course_credits" validate:"omitempty,min=0,max=30"`
	CourseLevel            *string  `json:"course_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	CourseObjectives       []string `json:"course_objectives" validate:"omitempty,dive,min=1,max=300"`
	CourseDurationWeeks    *int     `json:"course_duration_weeks" validate:"omitempty,min=1,max=104"`
	CourseIsFree           *bool    `json:"course_is_free"`
	CoursePrice            *float64 `json:"course_price" validate:"omitempty,min=0"`
	CourseCurrency         *string  `json:"course_currency" validate:"omitempty,len=3"`
	CourseMaxStudents      *int     `json:"course_max_students" validate:"omitempty,min=1,max=1000"`
	CourseThumbnail        *string  `json:"course_thumbnail" validate:"omitempty,max=2048"`
	InstructorIDs          []string `json:"instructor_ids" validate:"omitempty,dive,uuid4"`
}

func (r *CreateCourseRequest) Normalize() {
	r.CourseTitle = strings.TrimSpace(r.CourseTitle)
	r.CourseDescription = strings.TrimSpace(r.CourseDescription)
	r.CourseCode = strings.ToUpper(strings.TrimSpace(r.CourseCode))
	r.CourseShortDescription = trimPtr(r.CourseShortDescription)
	r.CourseThumbnail = trimPtr(r.CourseThumbnail)
	if r.CourseCurrency != nil {
		up := strings.ToUpper(strings.TrimSpace(*r.CourseCurrency))
		r.CourseCurrency = &up
	}
	cleaned := r.CourseObjectives[:0]
	for _, o := range r.CourseObjectives {
		if o = strings.TrimSpace(o); o != "" {
			cleaned = append(cleaned, o)
		}
	}
	r.CourseObjectives = cleaned
}

func (r *CreateCourseRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateCourseRequest) ToModel() *model.CourseModel {
	m := &model.CourseModel{
		CourseTitle:            r.CourseTitle,
		CourseDescription:      r.CourseDescription,
		CourseShortDescription: r.CourseShortDescription,
		CourseCode:             r.CourseCode,
		CourseObjectives:       pq.StringArray(r.CourseObjectives),
		CourseThumbnail:        r.CourseThumbnail,
		CourseCredits:          3,
		CourseLevel:            "beginner",
		CourseDurationWeeks:    12,
		CoursePrice:            0,
		CourseCurrency:         "GHS",
		CourseMaxStudents:      30,
		CourseStatus:           model.CourseStatusDraft,
		CourseIsActive:         true,
	}
	if r.CourseCredits != nil {
		m.CourseCredits = *r.CourseCredits
	}
	if r.CourseLevel != nil {
		m.CourseLevel = *r.CourseLevel
	}
	if r.CourseDurationWeeks != nil {
		m.CourseDurationWeeks = *r.CourseDurationWeeks
	}
	if r.CourseIsFree != nil {
		m.CourseIsFree = *r.CourseIsFree
	}
	if r.CoursePrice != nil {
		m.CoursePrice = *r.CoursePrice
	}
	if r.CourseCurrency != nil {
		m.CourseCurrency = *r.CourseCurrency
	}
	if r.CourseMaxStudents != nil {
		m.CourseMaxStudents = *r.CourseMaxStudents
	}
	return m
}

type UpdateCourseRequest struct {
	CourseTitle            *string  `json:"course_title" validate:"omitempty,min=3,max=200"`
	CourseDescription      *string  `json:"course_description" validate:"omitempty,min=10"`
	CourseShortDescription *string  `json:"course_short_description" validate:"omitempty,max=300"`
	CourseCredits          *int     `json:"course_credits" validate:"omitempty,min=0,max=30"`
	CourseLevel            *string  `json:"course_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	CourseObjectives       []string `json:"course_objectives" validate:"omitempty,dive,min=1,max=300"`
	CourseDurationWeeks    *int     `json:"course_duration_weeks" validate:"omitempty,min=1,max=104"`
	CourseIsFree           *bool    `json:"course_is_free"`
	CoursePrice            *float64 `json:"course_price" validate:"omitempty,min=0"`
	CourseCurrency         *string  `json:"course_currency" validate:"omitempty,len=3"`
	CourseMaxStudents      *int     `json:"course_max_students" validate:"omitempty,min=1,max=1000"`
	CourseStatus           *string  `json:"course_status" validate:"omitempty,oneof=draft published archived"`
	CourseThumbnail        *string  `json:"course_thumbnail" validate:"omitempty,max=2048"`
}

func (r *UpdateCourseRequest) Normalize() {
	r.CourseTitle = trimPtr(r.CourseTitle)
	r.CourseDescription = trimPtr(r.CourseDescription)
	r.CourseShortDescription = trimPtr(r.CourseShortDescription)
	r.CourseThumbnail = trimPtr(r.CourseThumbnail)
	if r.CourseCurrency != nil {
		up := strings.ToUpper(strings.TrimSpace(*r.CourseCurrency))
		r.CourseCurrency = &up
	}
}

func (r *UpdateCourseRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// Apply copies present fields onto the model.
func (r *UpdateCourseRequest) Apply(m *model.CourseModel) {
	if r.CourseTitle != nil {
		m.CourseTitle = *r.CourseTitle
	}
	if r.CourseDescription != nil {
		m.CourseDescription = *r.CourseDescription
	}
	if r.CourseShortDescription != nil {
		m.CourseShortDescription = r.CourseShortDescription
	}
	if r.CourseCredits != nil {
		m.CourseCredits = *r.CourseCredits
	}
	if r.CourseLevel != nil {
		m.CourseLevel = *r.CourseLevel
	}
	if r.CourseObjectives != nil {
		m.CourseObjectives = pq.StringArray(r.CourseObjectives)
	}
	if r.CourseDurationWeeks != nil {
		m.CourseDurationWeeks = *r.CourseDurationWeeks
	}
	if r.CourseIsFree != nil {
		m.CourseIsFree = *r.CourseIsFree
	}
	if r.CoursePrice != nil {
		m.CoursePrice = *r.CoursePrice
	}
	if r.CourseCurrency != nil {
		m.CourseCurrency = *r.CourseCurrency
	}
	if r.CourseMaxStudents != nil {
		m.CourseMaxStudents = *r.CourseMaxStudents
	}
	if r.CourseStatus != nil {
		m.CourseStatus = *r.CourseStatus
	}
	if r.CourseThumbnail != nil {
		m.CourseThumbnail = r.CourseThumbnail
	}
}

type AddInstructorRequest struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
}
