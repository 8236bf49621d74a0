// file: internals/features/attendance/route/attendance_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academyos_backend/internals/constants"
	controller "academyos_backend/internals/features/attendance/controller"
	authmw "academyos_backend/internals/middlewares/auth"
)

func AttendanceRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	attendanceController := controller.NewAttendanceController(db, v)

	// Base: /api/attendance
	attendance := app.Group("/api/attendance", authmw.AuthMiddleware(db))

	attendance.Get("/my", attendanceController.GetMyAttendance)

	staff := []string{constants.RoleTeacher, constants.RoleAdmin}
	attendance.Post("/", authmw.RequireRoles(staff...), attendanceController.MarkAttendance)
	attendance.Post("/bulk", authmw.RequireRoles(staff...), attendanceController.BulkMarkAttendance)
	attendance.Get("/", authmw.RequireRoles(staff...), attendanceController.GetAttendanceRecords)
	attendance.Get("/class/:classId/roster", authmw.RequireRoles(staff...), attendanceController.GetClassRoster)
	attendance.Get("/class/:classId/:date", authmw.RequireRoles(staff...), attendanceController.GetClassAttendanceByDate)
	attendance.Patch("/:id", authmw.RequireRoles(staff...), attendanceController.UpdateAttendance)
	attendance.Patch("/:id/excuse", authmw.RequireRoles(staff...), attendanceController.ApproveExcuse)
}
