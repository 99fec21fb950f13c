// internals/features/news/model/news_category_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsCategoryModel struct {
	NewsCategoryID uuid.UUID `gorm:"type:uuid;primaryKey;column:news_category_id" json:"news_category_id"`

	NewsCategoryName     string `gorm:"size:100;not null;column:news_category_name" json:"news_category_name"`
	NewsCategorySlug     string `gorm:"size:100;uniqueIndex;not null;column:news_category_slug" json:"news_category_slug"`
	NewsCategoryIsActive bool   `gorm:"not null;default:true;column:news_category_is_active" json:"news_category_is_active"`

	NewsCategoryCreatedAt time.Time `gorm:"column:news_category_created_at;autoCreateTime" json:"news_category_created_at"`
}

func (NewsCategoryModel) TableName() string { return "news_categories" }

func (m *NewsCategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.NewsCategoryID == uuid.Nil {
		m.NewsCategoryID = uuid.New()
	}
	return nil
}
