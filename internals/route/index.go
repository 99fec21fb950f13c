// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nutriwell_backend/internals/configs"
	contactRoute "nutriwell_backend/internals/features/contact/route"
	hrRoute "nutriwell_backend/internals/features/hr/route"
	newsRoute "nutriwell_backend/internals/features/news/route"
	productRoute "nutriwell_backend/internals/features/products/route"
	siteRoute "nutriwell_backend/internals/features/site/route"
	authRoute "nutriwell_backend/internals/features/users/auth/route"
	userRoute "nutriwell_backend/internals/features/users/user/route"
	authMw "nutriwell_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== STATIC MEDIA =====================
	log.Println("[INFO] Mounting media static dir...")
	app.Static("/media", configs.UploadDir)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC routes...")
	public := app.Group("/")
	siteRoute.SitePublicRoutes(public, db)
	newsRoute.NewsPublicRoutes(public, db)
	productRoute.ProductPublicRoutes(public, db)
	contactRoute.ContactPublicRoutes(public, db)

	// ===================== DASHBOARD (staff only) =====================
	log.Println("[INFO] Setting up DASHBOARD group (Auth + StaffOnly)...")
	dashboard := app.Group("/dashboard",
		authMw.AuthMiddleware(db),
		authMw.StaffOnly(),
	)

	log.Println("[INFO] Mounting dashboard routes...")
	siteRoute.SiteAdminRoutes(dashboard, db)
	userRoute.UserAdminRoutes(dashboard, db)
	newsRoute.NewsAdminRoutes(dashboard, db)
	productRoute.ProductAdminRoutes(dashboard, db)
	hrRoute.HRAdminRoutes(dashboard, db)
	contactRoute.ContactAdminRoutes(dashboard, db)
}
