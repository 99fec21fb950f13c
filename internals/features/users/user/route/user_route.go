// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "nutriwell_backend/internals/features/users/user/controller"
)

// UserAdminRoutes: manajemen akun & group (staff only).
func UserAdminRoutes(dashboard fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)
	groupCtrl := userController.NewGroupController(db)

	users := dashboard.Group("/users")
	users.Get("/", userCtrl.List)
	users.Post("/create/", userCtrl.Create)
	users.Post("/:id/edit/", userCtrl.Edit)
	users.Post("/:id/delete/", userCtrl.Delete)

	groups := dashboard.Group("/groups")
	groups.Get("/", groupCtrl.List)
	groups.Post("/create/", groupCtrl.Create)
	groups.Post("/:id/edit/", groupCtrl.Edit)
	groups.Post("/:id/delete/", groupCtrl.Delete)
}
