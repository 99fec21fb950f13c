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

	nModel "nutriwell_backend/internals/features/news/model"
	userModel "nutriwell_backend/internals/features/users/user/model"
)

func newNewsTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&userModel.GroupModel{},
		&nModel.NewsCategoryModel{},
		&nModel.NewsModel{},
	))

	app := fiber.New()
	ctrl := NewNewsPublicController(db)
	app.Get("/news/", ctrl.List)
	app.Get("/news-detail/:id/", ctrl.Detail)
	return app, db
}

func TestNewsDetailIncrementsViewsOncePerRequest(t *testing.T) {
	app, db := newNewsTestApp(t)

	n := nModel.NewsModel{
		NewsTitle:       "Launch",
		NewsSlug:        "launch",
		NewsExcerpt:     "x",
		NewsContent:     "x",
		NewsIsPublished: true,
	}
	require.NoError(t, db.Create(&n).Error)

	for i := 1; i <= 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/news-detail/"+n.NewsID.String()+"/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var loaded nModel.NewsModel
		require.NoError(t, db.First(&loaded, "news_id = ?", n.NewsID).Error)
		assert.Equal(t, int64(i), loaded.NewsViewsCount)
	}
}

func TestNewsDetailUnpublishedIsNotFound(t *testing.T) {
	app, db := newNewsTestApp(t)

	n := nModel.NewsModel{
		NewsTitle:   "Draft",
		NewsSlug:    "draft",
		NewsExcerpt: "x",
		NewsContent: "x",
	}
	require.NoError(t, db.Create(&n).Error)

	resp, err := app.Test(httptest.NewRequest("GET", "/news-detail/"+n.NewsID.String()+"/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// View count tidak berubah untuk artikel non-published
	var loaded nModel.NewsModel
	require.NoError(t, db.First(&loaded, "news_id = ?", n.NewsID).Error)
	assert.Equal(t, int64(0), loaded.NewsViewsCount)
}

func TestNewsListOnlyPublished(t *testing.T) {
	app, db := newNewsTestApp(t)

	require.NoError(t, db.Create(&nModel.NewsModel{
		NewsTitle: "Published", NewsSlug: "published",
		NewsExcerpt: "x", NewsContent: "x", NewsIsPublished: true,
	}).Error)
	require.NoError(t, db.Create(&nModel.NewsModel{
		NewsTitle: "Draft", NewsSlug: "draft-only",
		NewsExcerpt: "x", NewsContent: "x",
	}).Error)

	resp, err := app.Test(httptest.NewRequest("GET", "/news/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var published int64
	require.NoError(t, db.Model(&nModel.NewsModel{}).
		Where("news_is_published = ?", true).Count(&published).Error)
	assert.Equal(t, int64(1), published)
}
