// file: internals/features/notifications/route/notification_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "academyos_backend/internals/features/notifications/controller"
	authmw "academyos_backend/internals/middlewares/auth"
)

func NotificationRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	notificationController := controller.NewNotificationController(db, v)

	// Base: /api/notifications
	notifications := app.Group("/api/notifications", authmw.AuthMiddleware(db))

	notifications.Get("/", notificationController.GetMyNotifications)
	notifications.Patch("/read-all", notificationController.MarkAllRead)
	notifications.Patch("/:id/read", notificationController.MarkRead)
}
