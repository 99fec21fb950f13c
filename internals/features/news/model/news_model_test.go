package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	userModel "nutriwell_backend/internals/features/users/user/model"
)

func newNewsTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&userModel.GroupModel{},
		&NewsCategoryModel{},
		&NewsModel{},
	))
	return db
}

func TestPublishStampSetOnce(t *testing.T) {
	db := newNewsTestDB(t)

	n := NewsModel{
		NewsTitle:   "Launch",
		NewsSlug:    "launch",
		NewsExcerpt: "x",
		NewsContent: "x",
	}
	require.NoError(t, db.Create(&n).Error)
	assert.Nil(t, n.NewsPublishedAt)

	// Publish pertama kali: stempel terisi
	n.NewsIsPublished = true
	require.NoError(t, db.Save(&n).Error)
	require.NotNil(t, n.NewsPublishedAt)
	first := *n.NewsPublishedAt

	// Save berikutnya: stempel tidak berubah
	n.NewsTitle = "Launch v2"
	require.NoError(t, db.Save(&n).Error)
	require.NotNil(t, n.NewsPublishedAt)
	assert.Equal(t, first, *n.NewsPublishedAt)
}

func TestAtomicViewIncrement(t *testing.T) {
	db := newNewsTestDB(t)

	n := NewsModel{
		NewsTitle:       "Popular",
		NewsSlug:        "popular",
		NewsExcerpt:     "x",
		NewsContent:     "x",
		NewsIsPublished: true,
	}
	require.NoError(t, db.Create(&n).Error)

	for i := 0; i < 3; i++ {
		res := db.Model(&NewsModel{}).
			Where("news_id = ? AND news_is_published = ?", n.NewsID, true).
			UpdateColumn("news_views_count", gorm.Expr("news_views_count + 1"))
		require.NoError(t, res.Error)
		assert.Equal(t, int64(1), res.RowsAffected)
	}

	var loaded NewsModel
	require.NoError(t, db.First(&loaded, "news_id = ?", n.NewsID).Error)
	assert.Equal(t, int64(3), loaded.NewsViewsCount)
}

func TestViewIncrementSkipsUnpublished(t *testing.T) {
	db := newNewsTestDB(t)

	n := NewsModel{
		NewsTitle:   "Draft",
		NewsSlug:    "draft",
		NewsExcerpt: "x",
		NewsContent: "x",
	}
	require.NoError(t, db.Create(&n).Error)

	res := db.Model(&NewsModel{}).
		Where("news_id = ? AND news_is_published = ?", n.NewsID, true).
		UpdateColumn("news_views_count", gorm.Expr("news_views_count + 1"))
	require.NoError(t, res.Error)
	assert.Equal(t, int64(0), res.RowsAffected)
}
