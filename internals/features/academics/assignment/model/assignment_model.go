// file: internals/features/academics/assignment/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	classModel "academyos_backend/internals/features/academics/class/model"
	courseModel "academyos_backend/internals/features/academics/course/model"
	userModel "academyos_backend/internals/features/users/user/model"
)

// AssignmentModel: course-scoped task, optionally pinned to a class.
// Resources and rubric are ordered JSON lists; resources only grow through
// the add-resource endpoint. Soft delete sets is_active=false + status
// closed.
type AssignmentModel struct {
	AssignmentID           uuid.UUID  `gorm:"column:assignment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"assignment_id"`
	AssignmentTitle        string     `gorm:"column:assignment_title;size:200;not null" json:"assignment_title"`
	AssignmentDescription  string     `gorm:"column:assignment_description;not null" json:"assignment_description"`
	AssignmentInstructions *string    `gorm:"column:assignment_instructions" json:"assignment_instructions,omitempty"`
	AssignmentCourseID     uuid.UUID  `gorm:"column:assignment_course_id;type:uuid;not null" json:"assignment_course_id"`
	AssignmentClassID      *uuid.UUID `gorm:"column:assignment_class_id;type:uuid" json:"assignment_class_id,omitempty"`
	AssignmentType         string     `gorm:"column:assignment_type;size:20;not null;default:'homework'" json:"assignment_type"`
	AssignmentStatus       string     `gorm:"column:assignment_status;size:20;not null;default:'draft'" json:"assignment_status"`
	AssignmentTotalPoints  int        `gorm:"column:assignment_total_points;not null;default:100" json:"assignment_total_points"`
	AssignmentPassingScore int        `gorm:"column:assignment_passing_score;not null;default:60" json:"assignment_passing_score"`
	AssignmentWeight       int        `gorm:"column:assignment_weight;not null;default:0" json:"assignment_weight"`
	AssignmentPublishDate  *time.Time `gorm:"column:assignment_publish_date" json:"assignment_publish_date,omitempty"`
	AssignmentDueDate      time.Time  `gorm:"column:assignment_due_date;not null" json:"assignment_due_date"`

	AssignmentAllowLateSubmissions  bool           `gorm:"column:assignment_allow_late_submissions;not null;default:false" json:"assignment_allow_late_submissions"`
	AssignmentLateSubmissionPenalty int            `gorm:"column:assignment_late_submission_penalty;not null;default:0" json:"assignment_late_submission_penalty"`
	AssignmentAllowedFileTypes      pq.StringArray `gorm:"column:assignment_allowed_file_types;type:text[]" json:"assignment_allowed_file_types"`
	AssignmentMaxFileSize           int            `gorm:"column:assignment_max_file_size;not null;default:10" json:"assignment_max_file_size"`
	AssignmentMaxFiles              int            `gorm:"column:assignment_max_files;not null;default:1" json:"assignment_max_files"`

	AssignmentResources datatypes.JSON `gorm:"column:assignment_resources;type:jsonb;not null;default:'[]'" json:"assignment_resources"`
	AssignmentRubric    datatypes.JSON `gorm:"column:assignment_rubric;type:jsonb;not null;default:'[]'" json:"assignment_rubric"`

	AssignmentCreatorID uuid.UUID `gorm:"column:assignment_creator_id;type:uuid;not null" json:"assignment_creator_id"`
	AssignmentIsActive  bool      `gorm:"column:assignment_is_active;not null;default:true" json:"assignment_is_active"`
	AssignmentCreatedAt time.Time `gorm:"column:assignment_created_at;autoCreateTime" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time `gorm:"column:assignment_updated_at;autoUpdateTime" json:"assignment_updated_at"`

	Course  *courseModel.CourseModel `gorm:"foreignKey:AssignmentCourseID" json:"course,omitempty"`
	Class   *classModel.ClassModel   `gorm:"foreignKey:AssignmentClassID" json:"class,omitempty"`
	Creator *userModel.UserModel     `gorm:"foreignKey:AssignmentCreatorID" json:"creator,omitempty"`
}

func (AssignmentModel) TableName() string {
	return "assignments"
}

// Assignment lifecycle
const (
	AssignmentStatusDraft     = "draft"
	AssignmentStatusPublished = "published"
	AssignmentStatusClosed    = "closed"
	AssignmentStatusGraded    = "graded"
)

// Assignment types
const (
	AssignmentTypeHomework = "homework"
	AssignmentTypeQuiz     = "quiz"
	AssignmentTypeExam     = "exam"
	AssignmentTypeProject  = "project"
)

func ScopeActive(db *gorm.DB) *gorm.DB {
	return db.Where("assignment_is_active = ?", true)
}
