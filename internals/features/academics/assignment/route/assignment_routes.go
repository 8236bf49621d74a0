// file: internals/features/academics/assignment/route/assignment_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academyos_backend/internals/constants"
	controller "academyos_backend/internals/features/academics/assignment/controller"
	authmw "academyos_backend/internals/middlewares/auth"
)

func AssignmentRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	assignmentController := controller.NewAssignmentController(db, v)

	// Base: /api/assignments
	assignments := app.Group("/api/assignments", authmw.AuthMiddleware(db))

	assignments.Get("/", assignmentController.GetAssignments)
	assignments.Post("/", authmw.RequireRoles(constants.RoleTeacher, constants.RoleAdmin), assignmentController.CreateAssignment)
	assignments.Get("/:id", assignmentController.GetAssignment)
	assignments.Put("/:id", authmw.RequireRoles(constants.RoleTeacher, constants.RoleAdmin), assignmentController.UpdateAssignment)
	assignments.Post("/:id/resources", authmw.RequireRoles(constants.RoleTeacher, constants.RoleAdmin), assignmentController.AddResource)
	assignments.Delete("/:id", authmw.RequireRoles(constants.RoleTeacher, constants.RoleAdmin), assignmentController.DeleteAssignment)
}
