// internals/features/products/model/product_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductModel struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey;column:product_id" json:"product_id"`

	ProductName string `gorm:"size:200;not null;column:product_name" json:"product_name"`
	ProductSlug string `gorm:"size:200;uniqueIndex;not null;column:product_slug" json:"product_slug"`
	ProductSKU  string `gorm:"size:50;uniqueIndex;not null;column:product_sku" json:"product_sku"`

	// Kategori nullable: hapus kategori tidak menghapus produk
	ProductCategoryID *uuid.UUID            `gorm:"type:uuid;column:product_category_id" json:"product_category_id,omitempty"`
	ProductCategory   *ProductCategoryModel `gorm:"foreignKey:ProductCategoryID;references:ProductCategoryID;constraint:OnDelete:SET NULL" json:"product_category,omitempty"`

	ProductShortDescription string `gorm:"size:300;not null;column:product_short_description" json:"product_short_description"`
	ProductDescription      string `gorm:"type:text;not null;column:product_description" json:"product_description"`

	ProductPrice         float64  `gorm:"type:numeric(12,2);not null;column:product_price" json:"product_price"`
	ProductDiscountPrice *float64 `gorm:"type:numeric(12,2);column:product_discount_price" json:"product_discount_price,omitempty"`

	ProductFeaturedImageURL string `gorm:"column:product_featured_image_url" json:"product_featured_image_url"`

	ProductInStock    bool `gorm:"not null;default:true;column:product_in_stock" json:"product_in_stock"`
	ProductIsActive   bool `gorm:"not null;default:true;column:product_is_active" json:"product_is_active"`
	ProductIsFeatured bool `gorm:"not null;default:false;column:product_is_featured" json:"product_is_featured"`

	// SEO
	ProductMetaTitle       *string `gorm:"size:60;column:product_meta_title" json:"product_meta_title,omitempty"`
	ProductMetaDescription *string `gorm:"size:160;column:product_meta_description" json:"product_meta_description,omitempty"`

	ProductImages []ProductImageModel `gorm:"foreignKey:ProductImageProductID;references:ProductID;constraint:OnDelete:CASCADE" json:"product_images,omitempty"`

	ProductCreatedAt time.Time `gorm:"column:product_created_at;autoCreateTime" json:"product_created_at"`
	ProductUpdatedAt time.Time `gorm:"column:product_updated_at;autoUpdateTime" json:"product_updated_at"`
}

func (ProductModel) TableName() string { return "products" }

func (m *ProductModel) BeforeCreate(tx *gorm.DB) error {
	if m.ProductID == uuid.Nil {
		m.ProductID = uuid.New()
	}
	return nil
}

// CurrentPrice: harga diskon dipakai hanya kalau lebih murah dari harga normal.
func (m *ProductModel) CurrentPrice() float64 {
	if m.ProductDiscountPrice != nil && *m.ProductDiscountPrice < m.ProductPrice {
		return *m.ProductDiscountPrice
	}
	return m.ProductPrice
}

func (m *ProductModel) HasDiscount() bool {
	return m.ProductDiscountPrice != nil && *m.ProductDiscountPrice < m.ProductPrice
}
