// file: internals/features/news/route/news_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	newsController "nutriwell_backend/internals/features/news/controller"
)

// NewsPublicRoutes: listing & detail artikel published.
func NewsPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := newsController.NewNewsPublicController(db)

	public.Get("/news/", ctrl.List)
	public.Get("/news-detail/:id/", ctrl.Detail)
}

// NewsAdminRoutes: CRUD berita & kategorinya (staff only).
func NewsAdminRoutes(dashboard fiber.Router, db *gorm.DB) {
	ctrl := newsController.NewNewsAdminController(db)

	news := dashboard.Group("/news")
	news.Get("/", ctrl.List)
	news.Post("/create/", ctrl.Create)
	news.Post("/:id/edit/", ctrl.Edit)
	news.Post("/:id/delete/", ctrl.Delete)

	categories := dashboard.Group("/news-categories")
	categories.Get("/", ctrl.CategoryList)
	categories.Post("/create/", ctrl.CategoryCreate)
	categories.Post("/:id/edit/", ctrl.CategoryEdit)
	categories.Post("/:id/delete/", ctrl.CategoryDelete)
}
