// file: internals/features/hr/route/hr_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	hrController "nutriwell_backend/internals/features/hr/controller"
)

// HRAdminRoutes: department, position, employee. Tidak ada sisi publik.
func HRAdminRoutes(dashboard fiber.Router, db *gorm.DB) {
	deptCtrl := hrController.NewDepartmentController(db)
	empCtrl := hrController.NewEmployeeController(db)

	departments := dashboard.Group("/departments")
	departments.Get("/", deptCtrl.List)
	departments.Post("/create/", deptCtrl.Create)
	departments.Post("/:id/edit/", deptCtrl.Edit)
	departments.Post("/:id/delete/", deptCtrl.Delete)

	positions := dashboard.Group("/positions")
	positions.Get("/", deptCtrl.PositionList)
	positions.Post("/create/", deptCtrl.PositionCreate)
	positions.Post("/:id/edit/", deptCtrl.PositionEdit)
	positions.Post("/:id/delete/", deptCtrl.PositionDelete)

	employees := dashboard.Group("/employees")
	employees.Get("/", empCtrl.List)
	employees.Get("/available-users/", empCtrl.AvailableUsers)
	employees.Post("/create/", empCtrl.Create)
	employees.Post("/:id/edit/", empCtrl.Edit)
	employees.Post("/:id/delete/", empCtrl.Delete)
}
