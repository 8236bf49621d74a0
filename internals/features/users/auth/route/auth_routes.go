// file: internals/features/users/auth/route/auth_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "academyos_backend/internals/features/users/auth/controller"
	rateLimiter "academyos_backend/internals/middlewares"
	authmw "academyos_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	authController := controller.NewAuthController(db, v)

	// Base: /api/auth
	baseAuth := app.Group("/api/auth")

	// public, throttled
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)

	// protected
	protected := baseAuth.Group("", authmw.AuthMiddleware(db))
	protected.Get("/me", authController.GetMe)
	protected.Get("/verify", authController.VerifyToken)
	protected.Post("/logout", authController.Logout)
}
