// internals/features/products/model/product_image_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Galeri produk. Urutan tampil: order ASC, lalu created_at ASC.
type ProductImageModel struct {
	ProductImageID uuid.UUID `gorm:"type:uuid;primaryKey;column:product_image_id" json:"product_image_id"`

	ProductImageProductID uuid.UUID `gorm:"type:uuid;not null;index;column:product_image_product_id" json:"product_image_product_id"`

	ProductImageURL       string  `gorm:"not null;column:product_image_url" json:"product_image_url"`
	ProductImageAltText   *string `gorm:"size:200;column:product_image_alt_text" json:"product_image_alt_text,omitempty"`
	ProductImageIsPrimary bool    `gorm:"not null;default:false;column:product_image_is_primary" json:"product_image_is_primary"`
	ProductImageOrder     int     `gorm:"not null;default:0;column:product_image_order" json:"product_image_order"`

	ProductImageCreatedAt time.Time `gorm:"column:product_image_created_at;autoCreateTime" json:"product_image_created_at"`
}

func (ProductImageModel) TableName() string { return "product_images" }

func (m *ProductImageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ProductImageID == uuid.Nil {
		m.ProductImageID = uuid.New()
	}
	return nil
}
