// file: internals/features/academics/course/route/course_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academyos_backend/internals/constants"
	controller "academyos_backend/internals/features/academics/course/controller"
	authmw "academyos_backend/internals/middlewares/auth"
)

func CourseRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	courseController := controller.NewCourseController(db, v)

	// Base: /api/courses
	courses := app.Group("/api/courses", authmw.AuthMiddleware(db))

	courses.Get("/my-courses", courseController.GetMyCourses)

	courses.Get("/", courseController.GetCourses)
	courses.Post("/", authmw.RequireRoles(constants.RoleTeacher, constants.RoleAdmin), courseController.CreateCourse)
	courses.Get("/:id", courseController.GetCourse)
	courses.Put("/:id", authmw.RequireRoles(constants.RoleTeacher, constants.RoleAdmin), courseController.UpdateCourse)
	courses.Delete("/:id", authmw.RequireRoles(constants.RoleTeacher, constants.RoleAdmin), courseController.DeleteCourse)
	courses.Post("/:id/instructors", authmw.RequireRoles(constants.RoleTeacher, constants.RoleAdmin), courseController.AddInstructor)
	courses.Get("/:id/stats", authmw.RequireRoles(constants.RoleTeacher, constants.RoleAdmin), courseController.GetCourseStats)
}
