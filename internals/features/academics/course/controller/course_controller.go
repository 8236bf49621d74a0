// file: internals/features/academics/course/controller/course_controller.go
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
	classModel "academyos_backend/internals/features/academics/class/model"
	d "academyos_backend/internals/features/academics/course/dto"
	"academyos_backend/internals/features/academics/course/model"
	enrollModel "academyos_backend/internals/features/enrollments/model"
	userModel "academyos_backend/internals/features/users/user/model"
	helper "academyos_backend/internals/helpers"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB, v *validator.Validate) *CourseController {
	return &CourseController{DB: db, Validate: v}
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

// canManageCourse: admins always; teachers when creator or assigned instructor.
func canManageCourse(course *model.CourseModel, userID uuid.UUID, role string) bool {
	if role == constants.RoleAdmin {
		return true
	}
	return course.CourseCreatorID == userID || course.HasInstructor(userID)
}

/* =========================
   POST /api/courses
   ========================= */

func (ctl *CourseController) CreateCourse(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	course := req.ToModel()
	course.CourseCreatorID = userID

	// explicit instructor ids win; otherwise the creating teacher is assigned
	instructorIDs := []uuid.UUID{userID}
	if len(req.InstructorIDs) > 0 {
		instructorIDs = instructorIDs[:0]
		for _, raw := range req.InstructorIDs {
			iid, perr := uuid.Parse(raw)
			if perr != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
			}
			instructorIDs = append(instructorIDs, iid)
		}
		var n int64
		if err := ctl.DB.WithContext(c.Context()).
			Model(&userModel.UserModel{}).
			Scopes(userModel.ScopeActive).
			Where("id IN ? AND role IN ?", instructorIDs,
				[]string{constants.RoleTeacher, constants.RoleAdmin}).
			Count(&n).Error; err != nil {
			log.Println("[ERROR] instructor lookup:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
		}
		if n != int64(len(instructorIDs)) {
			return helper.JsonError(c, fiber.StatusBadRequest, "One or more instructors are not active teachers")
		}
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(course).Error; err != nil {
			return err
		}
		for _, iid := range instructorIDs {
			if err := tx.Exec(
				"INSERT INTO course_instructors (course_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
				course.CourseID, iid,
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	log.Printf("[SUCCESS] Course %s created by %s", course.CourseID, userID)
	return helper.JsonCreated(c, "Course created successfully", fiber.Map{"course": course})
}

/* =========================
   GET /api/courses
   ========================= */

func (ctl *CourseController) GetCourses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.DB.WithContext(c.Context()).
		Model(&model.CourseModel{}).
		Scopes(model.ScopeActive)

	// non-staff only see published courses
	role := helper.GetUserRole(c)
	if role != constants.RoleAdmin && role != constants.RoleTeacher {
		q = q.Where("course_status = ?", model.CourseStatusPublished)
	} else if st := c.Query("status"); st != "" {
		q = q.Where("course_status = ?", st)
	}

	if lvl := c.Query("level"); lvl != "" {
		q = q.Where("course_level = ?", lvl)
	}
	if iid := c.Query("instructor_id"); iid != "" {
		id, err := uuid.Parse(iid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
		}
		q = q.Joins("JOIN course_instructors ci ON ci.course_id = courses.course_id AND ci.user_id = ?", id)
	}
	if v := c.Query("is_free"); v != "" {
		q = q.Where("course_is_free = ?", v == "true")
	}
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + s + "%"
		q = q.Where("course_title ILIKE ? OR course_code ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] count courses:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve courses")
	}

	var courses []model.CourseModel
	if err := q.Order("course_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Preload("Instructors").
		Find(&courses).Error; err != nil {
		log.Println("[ERROR] fetch courses:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve courses")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	p.Count = len(courses)
	return helper.JsonList(c, "Courses fetched successfully", courses, &p)
}

/* =========================
   GET /api/courses/my-courses
   ========================= */

// Teacher: courses they instruct. Student: courses they are actively
// enrolled in.
func (ctl *CourseController) GetMyCourses(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var courses []model.CourseModel
	q := ctl.DB.WithContext(c.Context()).Scopes(model.ScopeActive)

	switch helper.GetUserRole(c) {
	case constants.RoleTeacher, constants.RoleAdmin:
		q = q.Joins("JOIN course_instructors ci ON ci.course_id = courses.course_id AND ci.user_id = ?", userID)
	default:
		q = q.Joins("JOIN enrollments e ON e.enrollment_course_id = courses.course_id").
			Where("e.enrollment_student_id = ? AND e.enrollment_status = ?", userID, enrollModel.EnrollmentStatusActive)
	}

	if err := q.Order("course_created_at DESC").Preload("Instructors").Find(&courses).Error; err != nil {
		log.Println("[ERROR] my-courses:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve courses")
	}

	return helper.JsonOK(c, "Courses fetched successfully", fiber.Map{
		"courses": courses,
		"count":   len(courses),
	})
}

/* =========================
   GET /api/courses/:id
   ========================= */

func (ctl *CourseController) GetCourse(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var course model.CourseModel
	if err := ctl.DB.WithContext(c.Context()).
		Scopes(model.ScopeActive).
		Preload("Instructors").
		Preload("Creator").
		First(&course, "course_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	var classes []classModel.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		Scopes(classModel.ScopeActive).
		Where("class_course_id = ?", id).
		Order("class_start_time ASC").
		Find(&classes).Error; err != nil {
		log.Println("[ERROR] course classes:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve course")
	}

	now := time.Now()
	var upcoming int
	for _, cl := range classes {
		if cl.ClassStartTime.After(now) && cl.ClassStatus == classModel.ClassStatusScheduled {
			upcoming++
		}
	}

	return helper.JsonOK(c, "Course fetched successfully", fiber.Map{
		"course":  course,
		"classes": classes,
		"class_stats": fiber.Map{
			"total":    len(classes),
			"upcoming": upcoming,
		},
	})
}

/* =========================
   PUT /api/courses/:id
   ========================= */

func (ctl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var course model.CourseModel
	if err := ctl.DB.WithContext(c.Context()).
		Scopes(model.ScopeActive).
		Preload("Instructors").
		First(&course, "course_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	if !canManageCourse(&course, userID, helper.GetUserRole(c)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to update this course")
	}

	var req d.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	req.Apply(&course)
	if err := ctl.DB.WithContext(c.Context()).Save(&course).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Course updated successfully", fiber.Map{"course": course})
}

/* =========================
   DELETE /api/courses/:id — archive (soft delete)
   ========================= */

func (ctl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var course model.CourseModel
	if err := ctl.DB.WithContext(c.Context()).
		Scopes(model.ScopeActive).
		Preload("Instructors").
		First(&course, "course_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	if !canManageCourse(&course, userID, helper.GetUserRole(c)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to delete this course")
	}

	if err := ctl.DB.WithContext(c.Context()).
		Model(&model.CourseModel{}).
		Where("course_id = ?", id).
		Updates(map[string]any{
			"course_is_active": false,
			"course_status":    model.CourseStatusArchived,
		}).Error; err != nil {
		log.Println("[ERROR] archive course:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}

	return helper.JsonDeleted(c, "Course archived successfully", fiber.Map{"course_id": id})
}

/* =========================
   POST /api/courses/:id/instructors
   ========================= */

func (ctl *CourseController) AddInstructor(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.AddInstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	instructorID, err := uuid.Parse(req.UserID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var course model.CourseModel
	if err := ctl.DB.WithContext(c.Context()).
		Scopes(model.ScopeActive).
		First(&course, "course_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	// only the creator or an admin can change the instructor set
	if helper.GetUserRole(c) != constants.RoleAdmin && course.CourseCreatorID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to add instructors to this course")
	}

	var instructor userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Scopes(userModel.ScopeActive).
		First(&instructor, "id = ?", instructorID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Instructor not found")
	}
	if instructor.Role != constants.RoleTeacher && instructor.Role != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusBadRequest, "User is not a teacher")
	}

	if err := ctl.DB.WithContext(c.Context()).Exec(
		"INSERT INTO course_instructors (course_id, user_id) VALUES (?, ?)",
		course.CourseID, instructorID,
	).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, "Instructor added successfully", fiber.Map{
		"course_id":     course.CourseID,
		"instructor_id": instructorID,
	})
}

/* =========================
   GET /api/courses/:id/stats
   ========================= */

func (ctl *CourseController) GetCourseStats(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var course model.CourseModel
	if err := ctl.DB.WithContext(c.Context()).
		Scopes(model.ScopeActive).
		First(&course, "course_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	type statusCount struct {
		Status string `json:"status"`
		Total  int64  `json:"total"`
	}
	var byStatus []statusCount
	if err := ctl.DB.WithContext(c.Context()).
		Model(&enrollModel.EnrollmentModel{}).
		Select("enrollment_status AS status, COUNT(*) AS total").
		Where("enrollment_course_id = ?", id).
		Group("enrollment_status").
		Scan(&byStatus).Error; err != nil {
		log.Println("[ERROR] course stats:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}

	var avgProgress float64
	ctl.DB.WithContext(c.Context()).
		Model(&enrollModel.EnrollmentModel{}).
		Where("enrollment_course_id = ?", id).
		Select("COALESCE(AVG(enrollment_progress), 0)").
		Scan(&avgProgress)

	return helper.JsonOK(c, "Course stats fetched successfully", fiber.Map{
		"course_id":          course.CourseID,
		"total_enrollments":  course.CourseTotalEnrollments,
		"enrollments_status": byStatus,
		"average_progress":   avgProgress,
		"max_students":       course.CourseMaxStudents,
	})
}
