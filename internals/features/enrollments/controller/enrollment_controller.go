// file: internals/features/enrollments/controller/enrollment_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"academyos_backend/internals/constants"
	courseModel "academyos_backend/internals/features/academics/course/model"
	d "academyos_backend/internals/features/enrollments/dto"
	"academyos_backend/internals/features/enrollments/model"
	notifModel "academyos_backend/internals/features/notifications/model"
	helper "academyos_backend/internals/helpers"
)

type EnrollmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEnrollmentController(db *gorm.DB, v *validator.Validate) *EnrollmentController {
	return &EnrollmentController{DB: db, Validate: v}
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

// resolveInstructor picks the instructor pinned on a new enrollment. An
// explicit choice must be one of the course's assigned instructors; with no
// choice a single assigned instructor is pinned, otherwise it stays unset.
func resolveInstructor(requested *string, assigned []uuid.UUID) (*uuid.UUID, error) {
	if requested != nil {
		chosen, err := uuid.Parse(*requested)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid UUID format")
		}
		for _, id := range assigned {
			if id == chosen {
				return &chosen, nil
			}
		}
		return nil, fiber.NewError(fiber.StatusBadRequest, "Instructor is not assigned to this course")
	}
	if len(assigned) == 1 {
		id := assigned[0]
		return &id, nil
	}
	return nil, nil
}

// enrollmentCounterDelta is how the course's enrollment counter moves when an
// enrollment goes prev -> next: only crossing the withdrawn boundary moves it.
func enrollmentCounterDelta(prev, next string) int {
	switch {
	case prev != model.EnrollmentStatusWithdrawn && next == model.EnrollmentStatusWithdrawn:
		return -1
	case prev == model.EnrollmentStatusWithdrawn && next != model.EnrollmentStatusWithdrawn:
		return 1
	}
	return 0
}

/* =========================
   POST /api/enrollments — student self-enrolls
   ========================= */

// The insert and the denormalized counter bump commit atomically; a
// concurrent duplicate loses on uq_enrollment_student_course and rolls the
// whole transaction back, so the counter never drifts.
func (ctl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	enrollment := model.EnrollmentModel{
		EnrollmentStudentID: studentID,
		EnrollmentCourseID:  courseID,
		EnrollmentStatus:    model.EnrollmentStatusActive,
	}

	var course courseModel.CourseModel
	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// the row lock serializes concurrent enrolls on this course, so the
		// capacity check reads a counter nobody else is moving
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Scopes(courseModel.ScopeActive).
			First(&course, "course_id = ?", courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Course not found")
			}
			return err
		}
		if course.CourseStatus != courseModel.CourseStatusPublished {
			return fiber.NewError(fiber.StatusBadRequest, "Course is not open for enrollment")
		}
		if course.CourseTotalEnrollments >= course.CourseMaxStudents {
			return fiber.NewError(fiber.StatusBadRequest, "Course is full")
		}

		// friendly pre-check; the unique constraint is the real guard
		var existing model.EnrollmentModel
		err := tx.First(&existing,
			"enrollment_student_id = ? AND enrollment_course_id = ?", studentID, courseID).Error
		if err == nil {
			return fiber.NewError(fiber.StatusConflict, "Already enrolled in this course")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var instructorIDs []uuid.UUID
		if err := tx.Raw(
			"SELECT user_id FROM course_instructors WHERE course_id = ?", courseID,
		).Scan(&instructorIDs).Error; err != nil {
			return err
		}
		instructorID, err := resolveInstructor(req.InstructorID, instructorIDs)
		if err != nil {
			return err
		}
		enrollment.EnrollmentInstructorID = instructorID

		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}
		return tx.Model(&courseModel.CourseModel{}).
			Where("course_id = ?", courseID).
			Update("course_total_enrollments", gorm.Expr("course_total_enrollments + 1")).
			Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, txErr)
	}

	// fire-and-forget confirmation
	notif := notifModel.NotificationModel{
		NotificationUserID:  studentID,
		NotificationTitle:   "Enrollment confirmed",
		NotificationMessage: "You are now enrolled in " + course.CourseTitle + ".",
		NotificationType:    notifModel.NotificationTypeEnrollment,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&notif).Error; err != nil {
		log.Println("[WARN] enrollment notification:", err)
	}

	log.Printf("[SUCCESS] Student %s enrolled in course %s", studentID, courseID)
	return helper.JsonCreated(c, "Enrolled successfully", fiber.Map{"enrollment": enrollment})
}

/* =========================
   GET /api/enrollments/my
   ========================= */

func (ctl *EnrollmentController) GetMyEnrollments(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctl.DB.WithContext(c.Context()).
		Where("enrollment_student_id = ?", studentID)
	if st := c.Query("status"); st != "" {
		q = q.Where("enrollment_status = ?", st)
	}

	var enrollments []model.EnrollmentModel
	if err := q.Order("enrollment_enrolled_at DESC").
		Preload("Course").
		Preload("Instructor").
		Find(&enrollments).Error; err != nil {
		log.Println("[ERROR] my enrollments:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve enrollments")
	}

	return helper.JsonOK(c, "Enrollments fetched successfully", fiber.Map{
		"enrollments": enrollments,
		"count":       len(enrollments),
	})
}

/* =========================
   GET /api/enrollments/status/:courseId
   ========================= */

// Always 200; a missing enrollment is data, not an error.
func (ctl *EnrollmentController) GetEnrollmentStatus(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	courseID, err := parseUUIDParam(c, "courseId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var enrollment model.EnrollmentModel
	err = ctl.DB.WithContext(c.Context()).
		First(&enrollment, "enrollment_student_id = ? AND enrollment_course_id = ?", studentID, courseID).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "Enrollment status fetched", fiber.Map{
				"is_enrolled": false,
				"enrollment":  nil,
			})
		}
		log.Println("[ERROR] enrollment status lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve enrollment status")
	}

	return helper.JsonOK(c, "Enrollment status fetched", fiber.Map{
		"is_enrolled": enrollment.EnrollmentStatus == model.EnrollmentStatusActive,
		"enrollment": fiber.Map{
			"id":          enrollment.EnrollmentID,
			"enrolled_at": enrollment.EnrollmentEnrolledAt,
			"progress":    enrollment.EnrollmentProgress,
			"status":      enrollment.EnrollmentStatus,
		},
	})
}

/* =========================
   GET /api/enrollments — staff, filterable
   ========================= */

func (ctl *EnrollmentController) GetEnrollments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.EnrollmentModel{})
	if cid := c.Query("course_id"); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
		}
		q = q.Where("enrollment_course_id = ?", id)
	}
	if sid := c.Query("student_id"); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
		}
		q = q.Where("enrollment_student_id = ?", id)
	}
	if st := c.Query("status"); st != "" {
		q = q.Where("enrollment_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] count enrollments:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve enrollments")
	}

	var enrollments []model.EnrollmentModel
	if err := q.Order("enrollment_enrolled_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Preload("Student").
		Preload("Course").
		Find(&enrollments).Error; err != nil {
		log.Println("[ERROR] fetch enrollments:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve enrollments")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	p.Count = len(enrollments)
	return helper.JsonList(c, "Enrollments fetched successfully", enrollments, &p)
}

/* =========================
   PATCH /api/enrollments/:id/status
   ========================= */

// Status moves are not re-validated as a state machine; completed → active is
// allowed (re-opening). Withdrawing decrements the course counter inside the
// same transaction; re-activating bumps it back.
func (ctl *EnrollmentController) UpdateEnrollmentStatus(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.UpdateEnrollmentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var enrollment model.EnrollmentModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&enrollment, "enrollment_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
	}

	role := helper.GetUserRole(c)
	isOwner := enrollment.EnrollmentStudentID == userID
	if role != constants.RoleAdmin && role != constants.RoleTeacher && !isOwner {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized")
	}
	// students may only withdraw themselves
	if isOwner && role == constants.RoleStudent && req.Status != model.EnrollmentStatusWithdrawn {
		return helper.JsonError(c, fiber.StatusForbidden, "Students can only withdraw from a course")
	}

	prev := enrollment.EnrollmentStatus
	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		enrollment.EnrollmentStatus = req.Status
		if req.Progress != nil {
			enrollment.EnrollmentProgress = *req.Progress
		}
		if req.Grade != nil {
			enrollment.EnrollmentGrade = req.Grade
		}
		if err := tx.Save(&enrollment).Error; err != nil {
			return err
		}

		switch enrollmentCounterDelta(prev, req.Status) {
		case -1:
			return tx.Model(&courseModel.CourseModel{}).
				Where("course_id = ? AND course_total_enrollments > 0", enrollment.EnrollmentCourseID).
				Update("course_total_enrollments", gorm.Expr("course_total_enrollments - 1")).
				Error
		case 1:
			return tx.Model(&courseModel.CourseModel{}).
				Where("course_id = ?", enrollment.EnrollmentCourseID).
				Update("course_total_enrollments", gorm.Expr("course_total_enrollments + 1")).
				Error
		}
		return nil
	})
	if txErr != nil {
		log.Println("[ERROR] enrollment status:", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update enrollment")
	}

	return helper.JsonUpdated(c, "Enrollment updated successfully", fiber.Map{"enrollment": enrollment})
}
