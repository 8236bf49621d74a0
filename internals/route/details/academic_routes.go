// file: internals/route/details/academic_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentRoute "academyos_backend/internals/features/academics/assignment/route"
	classRoute "academyos_backend/internals/features/academics/class/route"
	courseRoute "academyos_backend/internals/features/academics/course/route"
)

func AcademicRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	courseRoute.CourseRoutes(app, db, v)
	classRoute.ClassRoutes(app, db, v)
	assignmentRoute.AssignmentRoutes(app, db, v)
}
