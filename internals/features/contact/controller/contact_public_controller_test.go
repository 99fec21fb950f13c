package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	cModel "nutriwell_backend/internals/features/contact/model"
)

func newContactTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&cModel.ContactModel{}, &cModel.SubscriberModel{}))

	app := fiber.New()
	ctrl := NewContactPublicController(db)
	app.Post("/contact/", ctrl.Submit)
	app.Post("/subscribe/", ctrl.Subscribe)
	return app, db
}

func postJSON(app *fiber.App, path, body string) (*fiber.App, int, error) {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		return app, 0, err
	}
	return app, resp.StatusCode, nil
}

func TestContactSubmitCreatesOneUnreadRecord(t *testing.T) {
	app, db := newContactTestApp(t)

	_, status, err := postJSON(app, "/contact/", `{
		"contact_name": "Jane Doe",
		"contact_email": "jane@example.com",
		"contact_subject": "Product question",
		"contact_message": "Where can I buy your vitamin C?"
	}`)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, status)

	var rows []cModel.ContactModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "jane@example.com", rows[0].ContactEmail)
	assert.False(t, rows[0].ContactIsRead)
	assert.False(t, rows[0].ContactIsReplied)
}

func TestContactSubmitMissingFieldsWritesNothing(t *testing.T) {
	app, db := newContactTestApp(t)

	_, status, err := postJSON(app, "/contact/", `{"contact_name": "Jane Doe"}`)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, status)

	var count int64
	require.NoError(t, db.Model(&cModel.ContactModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSubscribeIsIdempotent(t *testing.T) {
	app, db := newContactTestApp(t)

	_, status, err := postJSON(app, "/subscribe/", `{"subscriber_email": "jane@example.com"}`)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, status)

	// Email sama (beda kapitalisasi) tidak membuat baris kedua
	_, status, err = postJSON(app, "/subscribe/", `{"subscriber_email": "JANE@example.com"}`)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, status)

	var count int64
	require.NoError(t, db.Model(&cModel.SubscriberModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
