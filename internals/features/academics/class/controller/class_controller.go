// file: internals/features/academics/class/controller/class_controller.go
package controller

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"academyos_backend/internals/constants"
	d "academyos_backend/internals/features/academics/class/dto"
	"academyos_backend/internals/features/academics/class/model"
	courseModel "academyos_backend/internals/features/academics/course/model"
	enrollModel "academyos_backend/internals/features/enrollments/model"
	notifModel "academyos_backend/internals/features/notifications/model"
	helper "academyos_backend/internals/helpers"
)

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassController(db *gorm.DB, v *validator.Validate) *ClassController {
	return &ClassController{DB: db, Validate: v}
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

// hasScheduleConflict checks the course+instructor's other active classes
// for a window overlap with [start, end).
func (ctl *ClassController) hasScheduleConflict(c *fiber.Ctx, courseID, instructorID uuid.UUID, start, end time.Time, excludeClassID *uuid.UUID) (bool, error) {
	q := ctl.DB.WithContext(c.Context()).
		Model(&model.ClassModel{}).
		Scopes(model.ScopeActive).
		Where("class_course_id = ? AND class_instructor_id = ?", courseID, instructorID).
		Where("class_status IN ?", []string{model.ClassStatusScheduled, model.ClassStatusLive}).
		Where("class_start_time < ? AND ? < class_end_time", end, start)
	if excludeClassID != nil {
		q = q.Where("class_id <> ?", *excludeClassID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// notifyEnrolledStudents fans one notification out to every active enrollee
// of the class's course. Failures are logged, never surfaced.
func (ctl *ClassController) notifyEnrolledStudents(c *fiber.Ctx, courseID uuid.UUID, title, message string) {
	var enrollments []enrollModel.EnrollmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Scopes(enrollModel.ScopeActive).
		Select("enrollment_student_id").
		Where("enrollment_course_id = ?", courseID).
		Find(&enrollments).Error; err != nil {
		log.Println("[WARN] schedule notification fetch:", err)
		return
	}
	if len(enrollments) == 0 {
		return
	}

	notifs := make([]notifModel.NotificationModel, 0, len(enrollments))
	for _, e := range enrollments {
		notifs = append(notifs, notifModel.NotificationModel{
			NotificationUserID:  e.EnrollmentStudentID,
			NotificationTitle:   title,
			NotificationMessage: message,
			NotificationType:    notifModel.NotificationTypeSchedule,
		})
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&notifs).Error; err != nil {
		log.Println("[WARN] schedule notification insert:", err)
	}
}

/* =========================
   POST /api/classes
   ========================= */

func (ctl *ClassController) CreateClass(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	courseID, err := uuid.Parse(req.ClassCourseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var course courseModel.CourseModel
	if err := ctl.DB.WithContext(c.Context()).
		Scopes(courseModel.ScopeActive).
		Preload("Instructors").
		First(&course, "course_id = ?", courseID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	role := helper.GetUserRole(c)
	if role != constants.RoleAdmin && course.CourseCreatorID != userID && !course.HasInstructor(userID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to schedule classes for this course")
	}

	instructorID := userID
	if req.ClassInstructorID != nil {
		iid, perr := uuid.Parse(*req.ClassInstructorID)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
		}
		// teachers only schedule themselves
		if role != constants.RoleAdmin && iid != userID {
			return helper.JsonError(c, fiber.StatusForbidden, "Teachers can only schedule their own classes")
		}
		instructorID = iid
	}
	if !course.HasInstructor(instructorID) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Instructor is not assigned to this course")
	}

	conflict, err := ctl.hasScheduleConflict(c, courseID, instructorID, req.ClassStartTime, req.ClassEndTime, nil)
	if err != nil {
		log.Println("[ERROR] conflict check:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create class")
	}
	if conflict {
		return helper.JsonError(c, fiber.StatusConflict, "Instructor has a conflicting class at this time")
	}

	class := req.ToModel(courseID, instructorID)
	if err := ctl.DB.WithContext(c.Context()).Create(class).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	// fire-and-forget
	notif := notifModel.NotificationModel{
		NotificationUserID:  instructorID,
		NotificationTitle:   "New class scheduled",
		NotificationMessage: fmt.Sprintf("You have been scheduled for %q (%s).", class.ClassTitle, course.CourseTitle),
		NotificationType:    notifModel.NotificationTypeSchedule,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&notif).Error; err != nil {
		log.Println("[WARN] schedule notification:", err)
	}
	ctl.notifyEnrolledStudents(c, courseID, "New class scheduled",
		fmt.Sprintf("A new class %q has been scheduled for %s.", class.ClassTitle, course.CourseTitle))

	log.Printf("[SUCCESS] Class %s created for course %s", class.ClassID, courseID)
	return helper.JsonCreated(c, "Class created successfully", fiber.Map{"class": class})
}

/* =========================
   GET /api/classes
   ========================= */

func (ctl *ClassController) GetClasses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.DB.WithContext(c.Context()).
		Model(&model.ClassModel{}).
		Scopes(model.ScopeActive)

	if cid := c.Query("course_id"); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
		}
		q = q.Where("class_course_id = ?", id)
	}
	if iid := c.Query("instructor_id"); iid != "" {
		id, err := uuid.Parse(iid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
		}
		q = q.Where("class_instructor_id = ?", id)
	}
	if st := c.Query("status"); st != "" {
		q = q.Where("class_status = ?", st)
	}
	if c.Query("upcoming") == "true" {
		q = q.Where("class_start_time > ? AND class_status = ?", time.Now(), model.ClassStatusScheduled)
	}
	if from := c.Query("from"); from != "" {
		if t, ok := helper.ParseDateYYYYMMDD(from); ok {
			q = q.Where("class_start_time >= ?", t)
		}
	}
	if to := c.Query("to"); to != "" {
		if t, ok := helper.ParseDateYYYYMMDD(to); ok {
			q = q.Where("class_start_time < ?", t.AddDate(0, 0, 1))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] count classes:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve classes")
	}

	var classes []model.ClassModel
	if err := q.Order("class_start_time ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Preload("Course").
		Preload("Instructor").
		Find(&classes).Error; err != nil {
		log.Println("[ERROR] fetch classes:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve classes")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	p.Count = len(classes)
	return helper.JsonList(c, "Classes fetched successfully", classes, &p)
}

/* =========================
   GET /api/classes/:id
   ========================= */

func (ctl *ClassController) GetClass(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var class model.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		Scopes(model.ScopeActive).
		Preload("Course").
		Preload("Instructor").
		First(&class, "class_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	return helper.JsonOK(c, "Class fetched successfully", fiber.Map{"class": class})
}

/* =========================
   PUT /api/classes/:id
   ========================= */

func (ctl *ClassController) UpdateClass(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var class model.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		Scopes(model.ScopeActive).
		First(&class, "class_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	if helper.GetUserRole(c) != constants.RoleAdmin && class.ClassInstructorID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to update this class")
	}

	var req d.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rescheduled := req.ClassStartTime != nil || req.ClassEndTime != nil
	req.Apply(&class)

	if !class.ClassEndTime.After(class.ClassStartTime) {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_end_time must be after class_start_time")
	}

	if rescheduled {
		conflict, cerr := ctl.hasScheduleConflict(c, class.ClassCourseID, class.ClassInstructorID, class.ClassStartTime, class.ClassEndTime, &class.ClassID)
		if cerr != nil {
			log.Println("[ERROR] conflict check:", cerr)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update class")
		}
		if conflict {
			return helper.JsonError(c, fiber.StatusConflict, "Instructor has a conflicting class at this time")
		}
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&class).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	if rescheduled {
		ctl.notifyEnrolledStudents(c, class.ClassCourseID, "Class rescheduled",
			fmt.Sprintf("The class %q has been rescheduled. Check the new time.", class.ClassTitle))
	}

	return helper.JsonUpdated(c, "Class updated successfully", fiber.Map{"class": class})
}

/* =========================
   PATCH /api/classes/:id/status
   ========================= */

func (ctl *ClassController) UpdateClassStatus(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.UpdateClassStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status")
	}

	var class model.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		Scopes(model.ScopeActive).
		First(&class, "class_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	if helper.GetUserRole(c) != constants.RoleAdmin && class.ClassInstructorID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to update this class")
	}

	class.ClassStatus = req.Status
	if err := ctl.DB.WithContext(c.Context()).Save(&class).Error; err != nil {
		log.Println("[ERROR] class status:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update class status")
	}

	if req.Status == model.ClassStatusCancelled {
		ctl.notifyEnrolledStudents(c, class.ClassCourseID, "Class cancelled",
			fmt.Sprintf("The class %q has been cancelled.", class.ClassTitle))
	}

	return helper.JsonUpdated(c, "Class status updated successfully", fiber.Map{"class": class})
}

/* =========================
   DELETE /api/classes/:id — cancel (soft delete)
   ========================= */

func (ctl *ClassController) DeleteClass(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var class model.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		Scopes(model.ScopeActive).
		First(&class, "class_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	if helper.GetUserRole(c) != constants.RoleAdmin && class.ClassInstructorID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to delete this class")
	}

	if err := ctl.DB.WithContext(c.Context()).
		Model(&model.ClassModel{}).
		Where("class_id = ?", id).
		Updates(map[string]any{
			"class_is_active": false,
			"class_status":    model.ClassStatusCancelled,
		}).Error; err != nil {
		log.Println("[ERROR] cancel class:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete class")
	}

	ctl.notifyEnrolledStudents(c, class.ClassCourseID, "Class cancelled",
		fmt.Sprintf("The class %q has been cancelled.", class.ClassTitle))

	return helper.JsonDeleted(c, "Class cancelled successfully", fiber.Map{"class_id": id})
}
