// file: internals/route/details/ledger_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "academyos_backend/internals/features/attendance/route"
	enrollmentRoute "academyos_backend/internals/features/enrollments/route"
)

func LedgerRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	enrollmentRoute.EnrollmentRoutes(app, db, v)
	attendanceRoute.AttendanceRoutes(app, db, v)
}
