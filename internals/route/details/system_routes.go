// file: internals/route/details/system_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardRoute "academyos_backend/internals/features/dashboard/route"
	notificationRoute "academyos_backend/internals/features/notifications/route"
	settingsRoute "academyos_backend/internals/features/system/settings/route"
)

func SystemRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	notificationRoute.NotificationRoutes(app, db, v)
	dashboardRoute.DashboardRoutes(app, db, v)
	settingsRoute.SettingsRoutes(app, db)
}
