// file: internals/features/users/user/route/user_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academyos_backend/internals/constants"
	controller "academyos_backend/internals/features/users/user/controller"
	authmw "academyos_backend/internals/middlewares/auth"
)

func UserRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	userController := controller.NewUserController(db, v)

	// Base: /api/users — everything requires auth
	users := app.Group("/api/users", authmw.AuthMiddleware(db))

	// fixed paths first so they don't shadow /:id
	users.Get("/stats", authmw.RequireRoles(constants.RoleAdmin), userController.GetUserStats)
	users.Get("/my-students", authmw.RequireRoles(constants.RoleTeacher, constants.RoleAdmin), userController.GetMyStudents)
	users.Post("/link-child", authmw.RequireRoles(constants.RoleParent), userController.LinkChild)

	users.Get("/", authmw.RequireRoles(constants.RoleAdmin), userController.GetUsers)
	users.Get("/:id", userController.GetUser)
	users.Put("/:id", userController.UpdateUser)
	users.Delete("/:id", authmw.RequireRoles(constants.RoleAdmin), userController.DeleteUser)
	users.Patch("/:id/role", authmw.RequireRoles(constants.RoleAdmin), userController.ChangeUserRole)
}
