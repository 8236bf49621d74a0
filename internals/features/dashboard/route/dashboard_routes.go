// file: internals/features/dashboard/route/dashboard_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academyos_backend/internals/constants"
	controller "academyos_backend/internals/features/dashboard/controller"
	authmw "academyos_backend/internals/middlewares/auth"
)

func DashboardRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	dashboardController := controller.NewDashboardController(db, v)

	// Base: /api/dashboard
	dashboard := app.Group("/api/dashboard", authmw.AuthMiddleware(db))
	dashboard.Get("/student", authmw.RequireRoles(constants.RoleStudent), dashboardController.StudentDashboard)
	dashboard.Get("/teacher", authmw.RequireRoles(constants.RoleTeacher, constants.RoleAdmin), dashboardController.TeacherDashboard)
	dashboard.Get("/admin", authmw.RequireRoles(constants.RoleAdmin), dashboardController.AdminDashboard)

	// Base: /api/reports
	reports := app.Group("/api/reports", authmw.AuthMiddleware(db),
		authmw.RequireRoles(constants.RoleTeacher, constants.RoleAdmin))
	reports.Get("/enrollments", dashboardController.EnrollmentReport)
	reports.Get("/attendance", dashboardController.AttendanceReport)
}
