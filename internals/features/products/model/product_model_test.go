package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newProductTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&ProductCategoryModel{}, &ProductModel{}, &ProductImageModel{}))
	return db
}

func TestCurrentPriceWithoutDiscount(t *testing.T) {
	p := ProductModel{ProductPrice: 9.99}
	assert.Equal(t, 9.99, p.CurrentPrice())
	assert.False(t, p.HasDiscount())
}

func TestCurrentPriceWithDiscount(t *testing.T) {
	discount := 7.99
	p := ProductModel{ProductPrice: 9.99, ProductDiscountPrice: &discount}
	assert.Equal(t, 7.99, p.CurrentPrice())
	assert.True(t, p.HasDiscount())
}

func TestCurrentPriceDiscountNotLower(t *testing.T) {
	// Diskon >= harga normal diabaikan
	same := 9.99
	p := ProductModel{ProductPrice: 9.99, ProductDiscountPrice: &same}
	assert.Equal(t, 9.99, p.CurrentPrice())
	assert.False(t, p.HasDiscount())

	higher := 12.50
	p.ProductDiscountPrice = &higher
	assert.Equal(t, 9.99, p.CurrentPrice())
	assert.False(t, p.HasDiscount())
}

func TestProductRoundTrip(t *testing.T) {
	db := newProductTestDB(t)

	cat := ProductCategoryModel{
		ProductCategoryName:     "Vitamins",
		ProductCategorySlug:     "vitamins",
		ProductCategoryIsActive: true,
	}
	require.NoError(t, db.Create(&cat).Error)

	p := ProductModel{
		ProductName:             "Vitamin C",
		ProductSlug:             "vitamin-c",
		ProductSKU:              "VTC-001",
		ProductCategoryID:       &cat.ProductCategoryID,
		ProductShortDescription: "Daily vitamin C",
		ProductDescription:      "1000mg vitamin C tablets",
		ProductPrice:            9.99,
		ProductIsActive:         true,
	}
	require.NoError(t, db.Create(&p).Error)
	assert.NotEqual(t, "", p.ProductID.String())

	var loaded ProductModel
	require.NoError(t, db.Preload("ProductCategory").First(&loaded, "product_sku = ?", "VTC-001").Error)
	assert.Equal(t, 9.99, loaded.CurrentPrice())
	assert.False(t, loaded.HasDiscount())
	require.NotNil(t, loaded.ProductCategory)
	assert.Equal(t, "vitamins", loaded.ProductCategory.ProductCategorySlug)

	// Pasang diskon
	discount := 7.99
	require.NoError(t, db.Model(&loaded).Update("product_discount_price", discount).Error)
	require.NoError(t, db.First(&loaded, "product_sku = ?", "VTC-001").Error)
	assert.Equal(t, 7.99, loaded.CurrentPrice())
	assert.True(t, loaded.HasDiscount())
}

func TestProductSlugUnique(t *testing.T) {
	db := newProductTestDB(t)

	a := ProductModel{
		ProductName: "A", ProductSlug: "same", ProductSKU: "SKU-A",
		ProductShortDescription: "x", ProductDescription: "x", ProductPrice: 1,
	}
	require.NoError(t, db.Create(&a).Error)

	b := ProductModel{
		ProductName: "B", ProductSlug: "same", ProductSKU: "SKU-B",
		ProductShortDescription: "x", ProductDescription: "x", ProductPrice: 1,
	}
	assert.Error(t, db.Create(&b).Error)
}
