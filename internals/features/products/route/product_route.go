// file: internals/features/products/route/product_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	productController "nutriwell_backend/internals/features/products/controller"
)

// ProductPublicRoutes: katalog publik (produk aktif saja).
func ProductPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := productController.NewProductPublicController(db)

	public.Get("/products/", ctrl.List)
	public.Get("/product/:id/", ctrl.Detail)
	public.Get("/product-categories/", ctrl.Categories)
}

// ProductAdminRoutes: CRUD produk, galeri, dan kategorinya (staff only).
func ProductAdminRoutes(dashboard fiber.Router, db *gorm.DB) {
	ctrl := productController.NewProductAdminController(db)

	products := dashboard.Group("/products")
	products.Get("/", ctrl.List)
	products.Post("/create/", ctrl.Create)
	products.Post("/:id/edit/", ctrl.Edit)
	products.Post("/:id/delete/", ctrl.Delete)
	products.Post("/:id/images/:imageId/delete/", ctrl.ImageDelete)

	categories := dashboard.Group("/product-categories")
	categories.Get("/", ctrl.CategoryList)
	categories.Post("/create/", ctrl.CategoryCreate)
	categories.Post("/:id/edit/", ctrl.CategoryEdit)
	categories.Post("/:id/delete/", ctrl.CategoryDelete)
}
