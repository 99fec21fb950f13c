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

	pModel "nutriwell_backend/internals/features/products/model"
)

func newProductTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&pModel.ProductCategoryModel{},
		&pModel.ProductModel{},
		&pModel.ProductImageModel{},
	))

	app := fiber.New()
	ctrl := NewProductAdminController(db)
	app.Post("/dashboard/products/create/", ctrl.Create)
	app.Post("/dashboard/product-categories/create/", ctrl.CategoryCreate)
	return app, db
}

func postProductJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestCategorySlugDerivedFromName(t *testing.T) {
	app, db := newProductTestApp(t)

	status := postProductJSON(t, app, "/dashboard/product-categories/create/",
		`{"product_category_name": "Vitamins"}`)
	assert.Equal(t, fiber.StatusCreated, status)

	var cat pModel.ProductCategoryModel
	require.NoError(t, db.First(&cat, "product_category_name = ?", "Vitamins").Error)
	assert.Equal(t, "vitamins", cat.ProductCategorySlug)
}

func TestProductSlugDerivedAndSuffixedOnCollision(t *testing.T) {
	app, db := newProductTestApp(t)

	status := postProductJSON(t, app, "/dashboard/products/create/", `{
		"product_name": "Vitamin C",
		"product_sku": "VTC-001",
		"product_short_description": "Daily vitamin C",
		"product_description": "1000mg tablets",
		"product_price": 9.99
	}`)
	assert.Equal(t, fiber.StatusCreated, status)

	var first pModel.ProductModel
	require.NoError(t, db.First(&first, "product_sku = ?", "VTC-001").Error)
	assert.Equal(t, "vitamin-c", first.ProductSlug)

	// Nama sama, SKU beda: slug dapat suffix
	status = postProductJSON(t, app, "/dashboard/products/create/", `{
		"product_name": "Vitamin C",
		"product_sku": "VTC-002",
		"product_short_description": "Chewable",
		"product_description": "500mg chewables",
		"product_price": 5.99
	}`)
	assert.Equal(t, fiber.StatusCreated, status)

	var second pModel.ProductModel
	require.NoError(t, db.First(&second, "product_sku = ?", "VTC-002").Error)
	assert.Equal(t, "vitamin-c-2", second.ProductSlug)
}

func TestProductDuplicateSKURejected(t *testing.T) {
	app, db := newProductTestApp(t)

	status := postProductJSON(t, app, "/dashboard/products/create/", `{
		"product_name": "Vitamin C",
		"product_sku": "VTC-001",
		"product_short_description": "x",
		"product_description": "x",
		"product_price": 9.99
	}`)
	assert.Equal(t, fiber.StatusCreated, status)

	status = postProductJSON(t, app, "/dashboard/products/create/", `{
		"product_name": "Vitamin C Forte",
		"product_sku": "vtc-001",
		"product_short_description": "x",
		"product_description": "x",
		"product_price": 12.99
	}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	var count int64
	require.NoError(t, db.Model(&pModel.ProductModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
