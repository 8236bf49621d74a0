// file: internals/features/academics/assignment/dto/assignment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"academyos_backend/internals/features/academics/assignment/model"
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
   Resource / rubric item shapes (stored as jsonb lists)
   ========================================================= */

type ResourceItem struct {
	Title        string  `json:"title" validate:"required,min=1,max=200"`
	Description  *string `json:"description" validate:"omitempty,max=1000"`
	FileURL      *string `json:"file_url" validate:"omitempty,max=2048"`
	ExternalLink *string `json:"external_link" validate:"omitempty,max=2048"`
	UploadedBy   *string `json:"uploaded_by" validate:"omitempty,uuid4"`
}

type RubricItem struct {
	Criterion string `json:"criterion" validate:"required,min=1,max=200"`
	Points    int    `json:"points" validate:"required,min=0"`
}

// AppendResource decodes the stored jsonb list, appends item, and re-encodes.
// Order is preserved; the list only ever grows.
func AppendResource(stored datatypes.JSON, item ResourceItem) (datatypes.JSON, error) {
	var items []ResourceItem
	if len(stored) > 0 {
		if err := sonic.Unmarshal(stored, &items); err != nil {
			return nil, err
		}
	}
	items = append(items, item)
	out, err := sonic.Marshal(items)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(out), nil
}

/* =========================================================
   Requests
   ========================================================= */

type CreateAssignmentRequest struct {
	AssignmentTitle        string     `json:"assignment_title" validate:"required,min=3,max=200"`
	AssignmentDescription  string     `json:"assignment_description" validate:"required,min=10"`
	AssignmentInstructions *string    `json:"assignment_instructions"`
	AssignmentCourseID     string     `json:"assignment_course_id" validate:"required,uuid4"`
	AssignmentClassID      *string    `json:"assignment_class_id" validate:"omitempty,uuid4"`
	AssignmentType         *string    `json:"assignment_type" validate:"omitempty,oneof=homework quiz exam project"`
	AssignmentTotalPoints  *int       `json:"assignment_total_points" validate:"omitempty,min=1,max=1000"`
	AssignmentPassingScore *int       `json:"assignment_passing_score" validate:"omitempty,min=0,max=1000"`
	AssignmentWeight       *int       `json:"assignment_weight" validate:"omitempty,min=0,max=100"`
	AssignmentPublishDate  *time.Time `json:"assignment_publish_date"`
	AssignmentDueDate      time.Time  `json:"assignment_due_date" validate:"required"`

	AssignmentAllowLateSubmissions  *bool    `json:"assignment_allow_late_submissions"`
	AssignmentLateSubmissionPenalty *int     `json:"assignment_late_submission_penalty" validate:"omitempty,min=0,max=100"`
	AssignmentAllowedFileTypes      []string `json:"assignment_allowed_file_types" validate:"omitempty,dive,min=1,max=10"`
	AssignmentMaxFileSize           *int     `json:"assignment_max_file_size" validate:"omitempty,min=1,max=500"`
	AssignmentMaxFiles              *int     `json:"assignment_max_files" validate:"omitempty,min=1,max=20"`

	AssignmentResources []ResourceItem `json:"assignment_resources" validate:"omitempty,dive"`
	AssignmentRubric    []RubricItem   `json:"assignment_rubric" validate:"omitempty,dive"`
}

func (r *CreateAssignmentRequest) Normalize() {
	r.AssignmentTitle = strings.TrimSpace(r.AssignmentTitle)
	r.AssignmentDescription = strings.TrimSpace(r.AssignmentDescription)
	r.AssignmentInstructions = trimPtr(r.AssignmentInstructions)
	for i := range r.AssignmentAllowedFileTypes {
		r.AssignmentAllowedFileTypes[i] = strings.ToLower(strings.TrimSpace(r.AssignmentAllowedFileTypes[i]))
	}
}

func (r *CreateAssignmentRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateAssignmentRequest) ToModel(courseID uuid.UUID, classID *uuid.UUID, creatorID uuid.UUID) (*model.AssignmentModel, error) {
	resources, err := sonic.Marshal(orEmptyResources(r.AssignmentResources))
	if err != nil {
		return nil, err
	}
	rubric, err := sonic.Marshal(orEmptyRubric(r.AssignmentRubric))
	if err != nil {
		return nil, err
	}

	m := &model.AssignmentModel{
		AssignmentTitle:            r.AssignmentTitle,
		AssignmentDescription:      r.AssignmentDescription,
		AssignmentInstructions:     r.AssignmentInstructions,
		AssignmentCourseID:         courseID,
		AssignmentClassID:          classID,
		AssignmentType:             model.AssignmentTypeHomework,
		AssignmentStatus:           model.AssignmentStatusDraft,
		AssignmentTotalPoints:      100,
		AssignmentPassingScore:     60,
		AssignmentPublishDate:      r.AssignmentPublishDate,
		AssignmentDueDate:          r.AssignmentDueDate,
		AssignmentAllowedFileTypes: pq.StringArray(r.AssignmentAllowedFileTypes),
		AssignmentMaxFileSize:      10,
		AssignmentMaxFiles:         1,
		AssignmentResources:        datatypes.JSON(resources),
		AssignmentRubric:           datatypes.JSON(rubric),
		AssignmentCreatorID:        creatorID,
		AssignmentIsActive:         true,
	}
	if r.AssignmentType != nil {
		m.AssignmentType = *r.AssignmentType
	}
	if r.AssignmentTotalPoints != nil {
		m.AssignmentTotalPoints = *r.AssignmentTotalPoints
	}
	if r.AssignmentPassingScore != nil {
		m.AssignmentPassingScore = *r.AssignmentPassingScore
	}
	if r.AssignmentWeight != nil {
		m.AssignmentWeight = *r.AssignmentWeight
	}
	if r.AssignmentAllowLateSubmissions != nil {
		m.AssignmentAllowLateSubmissions = *r.AssignmentAllowLateSubmissions
	}
	if r.AssignmentLateSubmissionPenalty != nil {
		m.AssignmentLateSubmissionPenalty = *r.AssignmentLateSubmissionPenalty
	}
	if r.AssignmentMaxFileSize != nil {
		m.AssignmentMaxFileSize = *r.AssignmentMaxFileSize
	}
	if r.AssignmentMaxFiles != nil {
		m.AssignmentMaxFiles = *r.AssignmentMaxFiles
	}
	return m, nil
}

func orEmptyResources(in []ResourceItem) []ResourceItem {
	if in == nil {
		return []ResourceItem{}
	}
	return in
}

func orEmptyRubric(in []RubricItem) []RubricItem {
	if in == nil {
		return []RubricItem{}
	}
	return in
}

type UpdateAssignmentRequest struct {
	AssignmentTitle        *string    `json:"assignment_title" validate:"omitempty,min=3,max=200"`
	AssignmentDescription  *string    `json:"assignment_description" validate:"omitempty,min=10"`
	AssignmentInstructions *string    `json:"assignment_instructions"`
	AssignmentStatus       *string    `json:"assignment_status" validate:"omitempty,oneof=draft published closed graded"`
	AssignmentTotalPoints  *int       `json:"assignment_total_points" validate:"omitempty,min=1,max=1000"`
	AssignmentPassingScore *int       `json:"assignment_passing_score" validate:"omitempty,min=0,max=1000"`
	AssignmentWeight       *int       `json:"assignment_weight" validate:"omitempty,min=0,max=100"`
	AssignmentPublishDate  *time.Time `json:"assignment_publish_date"`
	AssignmentDueDate      *time.Time `json:"assignment_due_date"`
}

func (r *UpdateAssignmentRequest) Normalize() {
	r.AssignmentTitle = trimPtr(r.AssignmentTitle)
	r.AssignmentDescription = trimPtr(r.AssignmentDescription)
	r.AssignmentInstructions = trimPtr(r.AssignmentInstructions)
}

func (r *UpdateAssignmentRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// Apply copies present fields onto the model.
func (r *UpdateAssignmentRequest) Apply(m *model.AssignmentModel) {
	if r.AssignmentTitle != nil {
		m.AssignmentTitle = *r.AssignmentTitle
	}
	if r.AssignmentDescription != nil {
		m.AssignmentDescription = *r.AssignmentDescription
	}
	if r.AssignmentInstructions != nil {
		m.AssignmentInstructions = r.AssignmentInstructions
	}
	if r.AssignmentStatus != nil {
		m.AssignmentStatus = *r.AssignmentStatus
	}
	if r.AssignmentTotalPoints != nil {
		m.AssignmentTotalPoints = *r.AssignmentTotalPoints
	}
	if r.AssignmentPassingScore != nil {
		m.AssignmentPassingScore = *r.AssignmentPassingScore
	}
	if r.AssignmentWeight != nil {
		m.AssignmentWeight = *r.AssignmentWeight
	}
	if r.AssignmentPublishDate != nil {
		m.AssignmentPublishDate = r.AssignmentPublishDate
	}
	if r.AssignmentDueDate != nil {
		m.AssignmentDueDate = *r.AssignmentDueDate
	}
}
