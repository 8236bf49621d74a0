package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupMiddlewares wires the shared middleware stack. Order matters:
// recovery first so panics in later handlers still yield a 500 JSON.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(MetricsMiddleware())
	app.Use(GlobalRateLimiter())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
