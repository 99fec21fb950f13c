// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "nutriwell_backend/internals/features/users/auth/service"
	rateLimiter "nutriwell_backend/internals/middlewares"
)

// AuthRoutes: login/register/logout di root path, meniru alur form situs.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	app.Post("/login/", rateLimiter.LoginRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Login(db, c)
	})
	app.Post("/register/", rateLimiter.RegisterRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Register(db, c)
	})
	app.Get("/logout/", func(c *fiber.Ctx) error {
		return authService.Logout(c)
	})
}
