package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"nutriwell_backend/internals/configs"
)

// CorsMiddleware membuat middleware CORS; origin diambil dari env
// (CORS_ORIGINS, dipisah koma).
func CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     configs.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
