package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	uModel "nutriwell_backend/internals/features/users/user/model"
)

func newUserTestApp(t *testing.T, currentUserID string) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&uModel.UserModel{}, &uModel.GroupModel{}))

	app := fiber.New()
	// Menggantikan AuthMiddleware: set identitas request seperti setelah login
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", currentUserID)
		c.Locals("is_staff", true)
		return c.Next()
	})
	ctrl := NewUserController(db)
	app.Post("/dashboard/users/:id/delete/", ctrl.Delete)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, name string) *uModel.UserModel {
	t.Helper()
	u := &uModel.UserModel{
		UserName:     name,
		UserEmail:    name + "@example.com",
		UserPassword: "hash",
		UserIsStaff:  true,
		UserIsActive: true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestDeleteOwnAccountIsRejected(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&uModel.UserModel{}, &uModel.GroupModel{}))
	admin := createUser(t, db, "admin")

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", admin.UserID.String())
		c.Locals("is_staff", true)
		return c.Next()
	})
	ctrl := NewUserController(db)
	app.Post("/dashboard/users/:id/delete/", ctrl.Delete)

	resp, err := app.Test(httptest.NewRequest("POST", "/dashboard/users/"+admin.UserID.String()+"/delete/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Akun tidak terhapus
	var count int64
	require.NoError(t, db.Model(&uModel.UserModel{}).
		Where("user_id = ?", admin.UserID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDeleteOtherAccountSucceeds(t *testing.T) {
	app, db := newUserTestApp(t, "")
	victim := createUser(t, db, "victim")

	resp, err := app.Test(httptest.NewRequest("POST", "/dashboard/users/"+victim.UserID.String()+"/delete/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&uModel.UserModel{}).
		Where("user_id = ?", victim.UserID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDeleteUnknownUserIsNotFound(t *testing.T) {
	app, _ := newUserTestApp(t, "")

	resp, err := app.Test(httptest.NewRequest("POST", "/dashboard/users/0b51cf4e-54a8-4c39-9f0c-9a0305b4e3f1/delete/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
