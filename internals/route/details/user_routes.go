// file: internals/route/details/user_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "academyos_backend/internals/features/users/auth/route"
	userRoute "academyos_backend/internals/features/users/user/route"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	authRoute.AuthRoutes(app, db, v)
}

func UserRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	userRoute.UserRoutes(app, db, v)
}
