// internals/features/products/model/product_category_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductCategoryModel struct {
	ProductCategoryID uuid.UUID `gorm:"type:uuid;primaryKey;column:product_category_id" json:"product_category_id"`

	ProductCategoryName        string  `gorm:"size:100;not null;column:product_category_name" json:"product_category_name"`
	ProductCategorySlug        string  `gorm:"size:100;uniqueIndex;not null;column:product_category_slug" json:"product_category_slug"`
	ProductCategoryDescription *string `gorm:"type:text;column:product_category_description" json:"product_category_description,omitempty"`
	ProductCategoryImageURL    *string `gorm:"column:product_category_image_url" json:"product_category_image_url,omitempty"`
	ProductCategoryIsActive    bool    `gorm:"not null;default:true;column:product_category_is_active" json:"product_category_is_active"`

	ProductCategoryCreatedAt time.Time `gorm:"column:product_category_created_at;autoCreateTime" json:"product_category_created_at"`
	ProductCategoryUpdatedAt time.Time `gorm:"column:product_category_updated_at;autoUpdateTime" json:"product_category_updated_at"`
}

func (ProductCategoryModel) TableName() string { return "product_categories" }

func (m *ProductCategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.ProductCategoryID == uuid.Nil {
		m.ProductCategoryID = uuid.New()
	}
	return nil
}
