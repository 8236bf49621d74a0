// file: internals/features/academics/class/route/class_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academyos_backend/internals/constants"
	controller "academyos_backend/internals/features/academics/class/controller"
	authmw "academyos_backend/internals/middlewares/auth"
)

func ClassRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	classController := controller.NewClassController(db, v)

	// Base: /api/classes
	classes := app.Group("/api/classes", authmw.AuthMiddleware(db))

	classes.Get("/", classController.GetClasses)
	classes.Post("/", authmw.RequireRoles(constants.RoleTeacher, constants.RoleAdmin), classController.CreateClass)
	classes.Get("/:id", classController.GetClass)
	classes.Put("/:id", authmw.RequireRoles(constants.RoleTeacher, constants.RoleAdmin), classController.UpdateClass)
	classes.Patch("/:id/status", authmw.RequireRoles(constants.RoleTeacher, constants.RoleAdmin), classController.UpdateClassStatus)
	classes.Delete("/:id", authmw.RequireRoles(constants.RoleTeacher, constants.RoleAdmin), classController.DeleteClass)
}
