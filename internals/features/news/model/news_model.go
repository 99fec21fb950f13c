// internals/features/news/model/news_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "nutriwell_backend/internals/features/users/user/model"
)

type NewsModel struct {
	NewsID uuid.UUID `gorm:"type:uuid;primaryKey;column:news_id" json:"news_id"`

	NewsTitle string `gorm:"size:200;not null;column:news_title" json:"news_title"`
	NewsSlug  string `gorm:"size:200;uniqueIndex;not null;column:news_slug" json:"news_slug"`

	// Kategori nullable: kategori dihapus → berita tetap ada
	NewsCategoryID *uuid.UUID         `gorm:"type:uuid;column:news_category_id" json:"news_category_id,omitempty"`
	NewsCategory   *NewsCategoryModel `gorm:"foreignKey:NewsCategoryID;references:NewsCategoryID;constraint:OnDelete:SET NULL" json:"news_category,omitempty"`

	NewsFeaturedImageURL string  `gorm:"column:news_featured_image_url" json:"news_featured_image_url"`
	NewsThumbnailURL     *string `gorm:"column:news_thumbnail_url" json:"news_thumbnail_url,omitempty"`

	NewsExcerpt string `gorm:"size:300;not null;column:news_excerpt" json:"news_excerpt"`
	NewsContent string `gorm:"type:text;not null;column:news_content" json:"news_content"`

	NewsAuthorID *uuid.UUID            `gorm:"type:uuid;column:news_author_id" json:"news_author_id,omitempty"`
	NewsAuthor   *userModel.UserModel  `gorm:"foreignKey:NewsAuthorID;references:UserID;constraint:OnDelete:SET NULL" json:"news_author,omitempty"`

	NewsIsFeatured  bool       `gorm:"not null;default:false;column:news_is_featured" json:"news_is_featured"`
	NewsIsPublished bool       `gorm:"not null;default:false;column:news_is_published" json:"news_is_published"`
	NewsPublishedAt *time.Time `gorm:"column:news_published_at" json:"news_published_at,omitempty"`

	NewsViewsCount int64 `gorm:"not null;default:0;column:news_views_count" json:"news_views_count"`

	// SEO
	NewsMetaTitle       *string `gorm:"size:60;column:news_meta_title" json:"news_meta_title,omitempty"`
	NewsMetaDescription *string `gorm:"size:160;column:news_meta_description" json:"news_meta_description,omitempty"`

	NewsCreatedAt time.Time `gorm:"column:news_created_at;autoCreateTime" json:"news_created_at"`
	NewsUpdatedAt time.Time `gorm:"column:news_updated_at;autoUpdateTime" json:"news_updated_at"`
}

func (NewsModel) TableName() string { return "news" }

func (m *NewsModel) BeforeCreate(tx *gorm.DB) error {
	if m.NewsID == uuid.Nil {
		m.NewsID = uuid.New()
	}
	return nil
}

// BeforeSave: stempel publish di-set sekali, saat pertama kali dipublish.
func (m *NewsModel) BeforeSave(tx *gorm.DB) error {
	if m.NewsIsPublished && m.NewsPublishedAt == nil {
		now := time.Now()
		m.NewsPublishedAt = &now
	}
	return nil
}
