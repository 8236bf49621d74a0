// file: internals/features/enrollments/route/enrollment_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academyos_backend/internals/constants"
	controller "academyos_backend/internals/features/enrollments/controller"
	authmw "academyos_backend/internals/middlewares/auth"
)

func EnrollmentRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	enrollmentController := controller.NewEnrollmentController(db, v)

	// Base: /api/enrollments
	enrollments := app.Group("/api/enrollments", authmw.AuthMiddleware(db))

	enrollments.Get("/my", enrollmentController.GetMyEnrollments)
	enrollments.Get("/status/:courseId", enrollmentController.GetEnrollmentStatus)

	enrollments.Post("/", authmw.RequireRoles(constants.RoleStudent), enrollmentController.Enroll)
	enrollments.Get("/", authmw.RequireRoles(constants.RoleTeacher, constants.RoleAdmin), enrollmentController.GetEnrollments)
	enrollments.Patch("/:id/status", enrollmentController.UpdateEnrollmentStatus)
}
