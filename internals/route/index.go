// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "academyos_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// one validator instance for every controller
	v := validator.New()

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db, v)

	log.Println("[INFO] Setting up UserRoutes...")
	routeDetails.UserRoutes(app, db, v)

	log.Println("[INFO] Setting up AcademicRoutes...")
	routeDetails.AcademicRoutes(app, db, v)

	log.Println("[INFO] Setting up LedgerRoutes...")
	routeDetails.LedgerRoutes(app, db, v)

	log.Println("[INFO] Setting up SystemRoutes...")
	routeDetails.SystemRoutes(app, db, v)
}
