// file: internals/features/academics/assignment/controller/assignment_controller.go
package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"academyos_backend/internals/constants"
	d "academyos_backend/internals/features/academics/assignment/dto"
	"academyos_backend/internals/features/academics/assignment/model"
	classModel "academyos_backend/internals/features/academics/class/model"
	courseModel "academyos_backend/internals/features/academics/course/model"
	enrollModel "academyos_backend/internals/features/enrollments/model"
	helper "academyos_backend/internals/helpers"
)

type AssignmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAssignmentController(db *gorm.DB, v *validator.Validate) *AssignmentController {
	return &AssignmentController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" is required")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid UUID format")
	}
	return id, nil
}

func (ctl *AssignmentController) loadCourseForManage(c *fiber.Ctx, courseID, userID uuid.UUID) (*courseModel.CourseModel, error) {
	var course courseModel.CourseModel
	if err := ctl.DB.WithContext(c.Context()).
		Scopes(courseModel.ScopeActive).
		Preload("Instructors").
		First(&course, "course_id = ?", courseID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Course not found")
	}
	if helper.GetUserRole(c) != constants.RoleAdmin &&
		course.CourseCreatorID != userID && !course.HasInstructor(userID) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Not authorized to manage assignments for this course")
	}
	return &course, nil
}

/* =========================
   POST /api/assignments
   ========================= */

func (ctl *AssignmentController) CreateAssignment(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	courseID, err := uuid.Parse(req.AssignmentCourseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}
	if _, err := ctl.loadCourseForManage(c, courseID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var classID *uuid.UUID
	if req.AssignmentClassID != nil {
		cid, perr := uuid.Parse(*req.AssignmentClassID)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
		}
		var class classModel.ClassModel
		if err := ctl.DB.WithContext(c.Context()).
			Scopes(classModel.ScopeActive).
			First(&class, "class_id = ? AND class_course_id = ?", cid, courseID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found in this course")
		}
		classID = &cid
	}

	assignment, err := req.ToModel(courseID, classID, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid resources or rubric payload")
	}

	if err := ctl.DB.WithContext(c.Context()).Create(assignment).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	log.Printf("[SUCCESS] Assignment %s created for course %s", assignment.AssignmentID, courseID)
	return helper.JsonCreated(c, "Assignment created successfully", fiber.Map{"assignment": assignment})
}

/* =========================
   GET /api/assignments
   ========================= */

func (ctl *AssignmentController) GetAssignments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.DB.WithContext(c.Context()).
		Model(&model.AssignmentModel{}).
		Scopes(model.ScopeActive)

	// students only see published work in courses they are actively enrolled in
	role := helper.GetUserRole(c)
	if role != constants.RoleAdmin && role != constants.RoleTeacher {
		userID, err := helper.GetUserID(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		q = q.Where("assignment_status = ?", model.AssignmentStatusPublished).
			Joins("JOIN enrollments e ON e.enrollment_course_id = assignments.assignment_course_id").
			Where("e.enrollment_student_id = ? AND e.enrollment_status = ?",
				userID, enrollModel.EnrollmentStatusActive)
	} else if st := c.Query("status"); st != "" {
		q = q.Where("assignment_status = ?", st)
	}

	if cid := c.Query("course_id"); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
		}
		q = q.Where("assignment_course_id = ?", id)
	}
	if typ := c.Query("type"); typ != "" {
		q = q.Where("assignment_type = ?", typ)
	}
	switch c.Query("due") {
	case "upcoming":
		q = q.Where("assignment_due_date > ?", time.Now())
	case "overdue":
		q = q.Where("assignment_due_date <= ?", time.Now())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] count assignments:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve assignments")
	}

	var assignments []model.AssignmentModel
	if err := q.Order("assignment_due_date ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Preload("Course").
		Find(&assignments).Error; err != nil {
		log.Println("[ERROR] fetch assignments:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve assignments")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	p.Count = len(assignments)
	return helper.JsonList(c, "Assignments fetched successfully", assignments, &p)
}

/* =========================
   GET /api/assignments/:id
   ========================= */

func (ctl *AssignmentController) GetAssignment(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var assignment model.AssignmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Scopes(model.ScopeActive).
		Preload("Course").
		Preload("Class").
		Preload("Creator").
		First(&assignment, "assignment_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}

	role := helper.GetUserRole(c)
	if role != constants.RoleAdmin && role != constants.RoleTeacher {
		if assignment.AssignmentStatus != model.AssignmentStatusPublished {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		userID, err := helper.GetUserID(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		var n int64
		ctl.DB.WithContext(c.Context()).
			Model(&enrollModel.EnrollmentModel{}).
			Scopes(enrollModel.ScopeActive).
			Where("enrollment_student_id = ? AND enrollment_course_id = ?", userID, assignment.AssignmentCourseID).
			Count(&n)
		if n == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
	}

	return helper.JsonOK(c, "Assignment fetched successfully", fiber.Map{"assignment": assignment})
}

/* =========================
   PUT /api/assignments/:id
   ========================= */

func (ctl *AssignmentController) UpdateAssignment(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var assignment model.AssignmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Scopes(model.ScopeActive).
		First(&assignment, "assignment_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}

	if _, err := ctl.loadCourseForManage(c, assignment.AssignmentCourseID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	req.Apply(&assignment)
	if err := ctl.DB.WithContext(c.Context()).Save(&assignment).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Assignment updated successfully", fiber.Map{"assignment": assignment})
}

/* =========================
   POST /api/assignments/:id/resources — append-only
   ========================= */

func (ctl *AssignmentController) AddResource(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var item d.ResourceItem
	if err := c.BodyParser(&item); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	item.Title = strings.TrimSpace(item.Title)
	if err := ctl.Validate.Struct(&item); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if item.FileURL == nil && item.ExternalLink == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Resource needs a file_url or external_link")
	}
	uploader := userID.String()
	item.UploadedBy = &uploader

	var assignment model.AssignmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Scopes(model.ScopeActive).
		First(&assignment, "assignment_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}

	if _, err := ctl.loadCourseForManage(c, assignment.AssignmentCourseID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	updated, err := d.AppendResource(assignment.AssignmentResources, item)
	if err != nil {
		log.Println("[ERROR] append resource:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add resource")
	}

	if err := ctl.DB.WithContext(c.Context()).
		Model(&model.AssignmentModel{}).
		Where("assignment_id = ?", id).
		Update("assignment_resources", updated).Error; err != nil {
		log.Println("[ERROR] save resources:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add resource")
	}
	assignment.AssignmentResources = updated

	return helper.JsonOK(c, "Resource added successfully", fiber.Map{"assignment": assignment})
}

/* =========================
   DELETE /api/assignments/:id — close (soft delete)
   ========================= */

func (ctl *AssignmentController) DeleteAssignment(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var assignment model.AssignmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Scopes(model.ScopeActive).
		First(&assignment, "assignment_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}

	if _, err := ctl.loadCourseForManage(c, assignment.AssignmentCourseID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.WithContext(c.Context()).
		Model(&model.AssignmentModel{}).
		Where("assignment_id = ?", id).
		Updates(map[string]any{
			"assignment_is_active": false,
			"assignment_status":    model.AssignmentStatusClosed,
		}).Error; err != nil {
		log.Println("[ERROR] close assignment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete assignment")
	}

	return helper.JsonDeleted(c, "Assignment deleted successfully", fiber.Map{"assignment_id": id})
}
