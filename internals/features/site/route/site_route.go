// file: internals/features/site/route/site_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	siteController "nutriwell_backend/internals/features/site/controller"
)

// SitePublicRoutes: payload halaman statis + kalkulator BMI.
func SitePublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := siteController.NewPageController(db)

	public.Get("/", ctrl.Home)
	public.Get("/about-us/", ctrl.AboutUs)
	public.Get("/impact/", ctrl.Impact)
	public.Get("/innovations/", ctrl.Innovations)
	public.Post("/bmi-calculator/", ctrl.BMICalculator)
}

// SiteAdminRoutes: ringkasan dashboard + CRUD teams & cities (staff only).
func SiteAdminRoutes(dashboard fiber.Router, db *gorm.DB) {
	ctrl := siteController.NewSiteAdminController(db)

	dashboard.Get("/", ctrl.Summary)

	teams := dashboard.Group("/teams")
	teams.Get("/", ctrl.TeamList)
	teams.Post("/create/", ctrl.TeamCreate)
	teams.Post("/:id/edit/", ctrl.TeamEdit)
	teams.Post("/:id/delete/", ctrl.TeamDelete)

	cities := dashboard.Group("/cities")
	cities.Get("/", ctrl.CityList)
	cities.Post("/create/", ctrl.CityCreate)
	cities.Post("/:id/edit/", ctrl.CityEdit)
	cities.Post("/:id/delete/", ctrl.CityDelete)
}
