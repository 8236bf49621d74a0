// file: internals/features/system/settings/route/settings_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academyos_backend/internals/constants"
	controller "academyos_backend/internals/features/system/settings/controller"
	authmw "academyos_backend/internals/middlewares/auth"
)

func SettingsRoutes(app *fiber.App, db *gorm.DB) {
	settingsController := controller.NewSettingsController()

	// Base: /api/settings — admin only
	settings := app.Group("/api/settings", authmw.AuthMiddleware(db),
		authmw.RequireRoles(constants.RoleAdmin))
	settings.Get("/", settingsController.GetSettings)
	settings.Put("/", settingsController.UpdateSettings)
}
