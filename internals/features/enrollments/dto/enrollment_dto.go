// file: internals/features/enrollments/dto/enrollment_dto.go
package dto

type EnrollRequest struct {
	CourseID     string  `json:"course_id" validate:"required,uuid4"`
	InstructorID *string `json:"instructor_id" validate:"omitempty,uuid4"`
}

type UpdateEnrollmentStatusRequest struct {
	Status   string   `json:"status" validate:"required,oneof=active completed withdrawn"`
	Progress *int     `json:"progress" validate:"omitempty,min=0,max=100"`
	Grade    *float64 `json:"grade" validate:"omitempty,min=0,max=100"`
}
