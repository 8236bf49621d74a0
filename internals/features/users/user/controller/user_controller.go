// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"academyos_backend/internals/constants"
	courseModel "academyos_backend/internals/features/academics/course/model"
	enrollModel "academyos_backend/internals/features/enrollments/model"
	d "academyos_backend/internals/features/users/user/dto"
	"academyos_backend/internals/features/users/user/model"
	helper "academyos_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB, v *validator.Validate) *UserController {
	return &UserController{DB: db, Validate: v}
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

// GET /api/users — admin, filters role/is_active/search, paginated
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := uc.DB.WithContext(c.Context()).Model(&model.UserModel{})

	if role := c.Query("role"); role != "" {
		if !constants.IsValidRole(role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role filter")
		}
		q = q.Where("role = ?", role)
	}
	if v := c.Query("is_active"); v != "" {
		q = q.Where("is_active = ?", v == "true")
	}
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + s + "%"
		q = q.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] count users:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	var users []model.UserModel
	if err := q.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&users).Error; err != nil {
		log.Println("[ERROR] fetch users:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	p.Count = len(users)
	return helper.JsonList(c, "Users fetched successfully", users, &p)
}

// GET /api/users/:id
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user model.UserModel
	if err := uc.DB.WithContext(c.Context()).First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "User fetched successfully", fiber.Map{"user": user})
}

// PUT /api/users/:id — self or admin
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	actorID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if id != actorID && helper.GetUserRole(c) != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized")
	}

	var user model.UserModel
	if err := uc.DB.WithContext(c.Context()).First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	var req d.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(uc.Validate); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	req.Apply(&user)
	if err := uc.DB.WithContext(c.Context()).Save(&user).Error; err != nil {
		log.Println("[ERROR] update user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	return helper.JsonUpdated(c, "User updated successfully", fiber.Map{"user": user})
}

// DELETE /api/users/:id — admin, soft delete, never self
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	actorID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if id == actorID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cannot delete your own account")
	}

	tx := uc.DB.WithContext(c.Context()).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if tx.Error != nil {
		log.Println("[ERROR] delete user:", tx.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonDeleted(c, "User deleted successfully", fiber.Map{"id": id})
}

// PATCH /api/users/:id/role — admin
func (uc *UserController) ChangeUserRole(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.ChangeRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := uc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role")
	}

	var user model.UserModel
	if err := uc.DB.WithContext(c.Context()).First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	user.Role = req.Role
	if err := uc.DB.WithContext(c.Context()).Save(&user).Error; err != nil {
		log.Println("[ERROR] change role:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update role")
	}

	return helper.JsonUpdated(c, "User role updated successfully", fiber.Map{"user": user})
}

// GET /api/users/stats — admin; totals per role
func (uc *UserController) GetUserStats(c *fiber.Ctx) error {
	type roleCount struct {
		Role  string `json:"role"`
		Total int64  `json:"total"`
	}
	var stats []roleCount
	if err := uc.DB.WithContext(c.Context()).
		Model(&model.UserModel{}).
		Select("role, COUNT(*) AS total").
		Group("role").
		Scan(&stats).Error; err != nil {
		log.Println("[ERROR] user stats:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}

	return helper.JsonOK(c, "User stats fetched successfully", fiber.Map{"stats": stats})
}

// GET /api/users/my-students — teacher; students actively enrolled in the
// teacher's courses, grouped per student with their courses.
func (uc *UserController) GetMyStudents(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var courses []courseModel.CourseModel
	if err := uc.DB.WithContext(c.Context()).
		Select("course_id, course_title").
		Joins("JOIN course_instructors ci ON ci.course_id = courses.course_id AND ci.user_id = ?", teacherID).
		Find(&courses).Error; err != nil {
		log.Println("[ERROR] my-students courses:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	if len(courses) == 0 {
		return helper.JsonOK(c, "Students fetched", fiber.Map{"students": []any{}, "count": 0})
	}

	courseIDs := make([]uuid.UUID, 0, len(courses))
	for _, co := range courses {
		courseIDs = append(courseIDs, co.CourseID)
	}

	var enrollments []enrollModel.EnrollmentModel
	if err := uc.DB.WithContext(c.Context()).
		Scopes(enrollModel.ScopeActive).
		Where("enrollment_course_id IN ?", courseIDs).
		Preload("Student").
		Preload("Course").
		Find(&enrollments).Error; err != nil {
		log.Println("[ERROR] my-students enrollments:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	type studentCourse struct {
		ID       uuid.UUID `json:"id"`
		Title    string    `json:"title"`
		Progress int       `json:"progress"`
		Grade    *float64  `json:"grade,omitempty"`
	}
	type studentEntry struct {
		d.UserLite
		Courses        []studentCourse `json:"courses"`
		EnrollmentDate any             `json:"enrollment_date"`
	}

	// group courses per student, keeping first-seen order
	index := map[uuid.UUID]int{}
	students := []studentEntry{}
	for _, e := range enrollments {
		if e.Student == nil || e.Course == nil {
			continue
		}
		i, ok := index[e.EnrollmentStudentID]
		if !ok {
			i = len(students)
			index[e.EnrollmentStudentID] = i
			students = append(students, studentEntry{
				UserLite:       d.FromModelLite(e.Student),
				Courses:        []studentCourse{},
				EnrollmentDate: e.EnrollmentEnrolledAt,
			})
		}
		students[i].Courses = append(students[i].Courses, studentCourse{
			ID:       e.Course.CourseID,
			Title:    e.Course.CourseTitle,
			Progress: e.EnrollmentProgress,
			Grade:    e.EnrollmentGrade,
		})
	}

	return helper.JsonOK(c, "Students fetched", fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

// POST /api/users/link-child — parent links a student account by email
func (uc *UserController) LinkChild(c *fiber.Ctx) error {
	parentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.LinkChildRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := uc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var student model.UserModel
	if err := uc.DB.WithContext(c.Context()).First(&student, "email = ?", req.StudentEmail).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student with this email not found")
		}
		log.Println("[ERROR] link-child lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error linking child")
	}

	if student.Role != constants.RoleStudent {
		return helper.JsonError(c, fiber.StatusBadRequest, "The email provided belongs to a user who is not a student")
	}

	if student.ParentID != nil {
		if *student.ParentID == parentID {
			return helper.JsonError(c, fiber.StatusConflict, "Child is already linked to your account")
		}
		return helper.JsonError(c, fiber.StatusConflict, "Child is already linked to another parent")
	}

	if err := uc.DB.WithContext(c.Context()).
		Model(&model.UserModel{}).
		Where("id = ?", student.ID).
		Update("parent_id", parentID).Error; err != nil {
		log.Println("[ERROR] link-child update:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error linking child")
	}

	return helper.JsonOK(c, "Child linked successfully", fiber.Map{
		"child": fiber.Map{
			"id":         student.ID,
			"first_name": student.FirstName,
			"last_name":  student.LastName,
		},
	})
}
