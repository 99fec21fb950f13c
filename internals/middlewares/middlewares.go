package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"nutriwell_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar dengan urutan yang benar:
// recovery paling luar, lalu logger, cors, dan limiter global.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
