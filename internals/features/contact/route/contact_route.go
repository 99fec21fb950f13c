// file: internals/features/contact/route/contact_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactController "nutriwell_backend/internals/features/contact/controller"
	rateLimiter "nutriwell_backend/internals/middlewares"
)

// ContactPublicRoutes: form kontak & newsletter, dibatasi rate limiter.
func ContactPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := contactController.NewContactPublicController(db)

	public.Get("/contact/", ctrl.Info)
	public.Post("/contact/", rateLimiter.ContactRateLimiter(), ctrl.Submit)
	public.Post("/subscribe/", rateLimiter.ContactRateLimiter(), ctrl.Subscribe)
}

// ContactAdminRoutes: inbox pesan masuk + daftar subscriber (staff only).
func ContactAdminRoutes(dashboard fiber.Router, db *gorm.DB) {
	ctrl := contactController.NewContactAdminController(db)

	contacts := dashboard.Group("/contacts")
	contacts.Get("/", ctrl.List)
	contacts.Get("/:id/", ctrl.Detail)
	contacts.Post("/:id/mark-responded/", ctrl.MarkResponded)
	contacts.Post("/:id/delete/", ctrl.Delete)

	subscribers := dashboard.Group("/subscribers")
	subscribers.Get("/", ctrl.SubscriberList)
	subscribers.Post("/:id/delete/", ctrl.SubscriberDelete)
}
