package helper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type slugRow struct {
	ID   uint   `gorm:"primaryKey"`
	Slug string `gorm:"size:100;uniqueIndex;column:slug"`
}

func (slugRow) TableName() string { return "slug_rows" }

func newSlugTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&slugRow{}))
	return db
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "vitamins", Slugify("Vitamins", 100))
	assert.Equal(t, "vitamin-c", Slugify("Vitamin C", 100))
	assert.Equal(t, "hello-world", Slugify("  Hello,   World!  ", 100))
	assert.Equal(t, "cafe-creme", Slugify("Café Crème", 100))
	assert.Equal(t, "item", Slugify("!!!", 100))
	assert.Equal(t, "item", Slugify("", 100))

	// Deterministik: input sama selalu menghasilkan slug sama
	assert.Equal(t, Slugify("Vitamin C 1000mg", 100), Slugify("Vitamin C 1000mg", 100))
}

func TestSlugifyMaxLen(t *testing.T) {
	long := "this-is-a-very-long-title-that-keeps-going-and-going"
	got := Slugify(long, 20)
	assert.LessOrEqual(t, len(got), 20)
	assert.NotEqual(t, "-", got[len(got)-1:])
}

func TestEnsureUniqueSlugCI(t *testing.T) {
	db := newSlugTestDB(t)
	ctx := context.Background()

	got, err := EnsureUniqueSlugCI(ctx, db, "slug_rows", "slug", "vitamins", "", nil, 100)
	require.NoError(t, err)
	assert.Equal(t, "vitamins", got)

	require.NoError(t, db.Create(&slugRow{Slug: "vitamins"}).Error)

	got, err = EnsureUniqueSlugCI(ctx, db, "slug_rows", "slug", "vitamins", "", nil, 100)
	require.NoError(t, err)
	assert.Equal(t, "vitamins-2", got)

	require.NoError(t, db.Create(&slugRow{Slug: "vitamins-2"}).Error)

	got, err = EnsureUniqueSlugCI(ctx, db, "slug_rows", "slug", "vitamins", "", nil, 100)
	require.NoError(t, err)
	assert.Equal(t, "vitamins-3", got)
}

func TestEnsureUniqueSlugCICaseInsensitive(t *testing.T) {
	db := newSlugTestDB(t)
	require.NoError(t, db.Create(&slugRow{Slug: "Vitamins"}).Error)

	got, err := EnsureUniqueSlugCI(context.Background(), db, "slug_rows", "slug", "vitamins", "", nil, 100)
	require.NoError(t, err)
	assert.Equal(t, "vitamins-2", got)
}

func TestEnsureUniqueSlugCIExcludesSelf(t *testing.T) {
	db := newSlugTestDB(t)
	row := slugRow{Slug: "vitamins"}
	require.NoError(t, db.Create(&row).Error)

	// Edit record yang sama: slug miliknya sendiri tidak dianggap bentrok
	got, err := EnsureUniqueSlugCI(context.Background(), db, "slug_rows", "slug", "vitamins", "id", row.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, "vitamins", got)
}
