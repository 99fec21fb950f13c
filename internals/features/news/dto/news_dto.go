// internals/features/news/dto/news_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	nModel "nutriwell_backend/internals/features/news/model"
)

/* ===================== REQUESTS ===================== */

type CreateNewsRequest struct {
	NewsTitle      string     `json:"news_title" form:"news_title" validate:"required,min=3,max=200"`
	NewsSlug       *string    `json:"news_slug" form:"news_slug" validate:"omitempty,min=3,max=200"`
	NewsCategoryID *uuid.UUID `json:"news_category_id" form:"news_category_id" validate:"omitempty"`

	NewsExcerpt string `json:"news_excerpt" form:"news_excerpt" validate:"required,max=300"`
	NewsContent string `json:"news_content" form:"news_content" validate:"required"`

	NewsIsFeatured  *bool `json:"news_is_featured" form:"news_is_featured" validate:"omitempty"`
	NewsIsPublished *bool `json:"news_is_published" form:"news_is_published" validate:"omitempty"`

	NewsMetaTitle       *string `json:"news_meta_title" form:"news_meta_title" validate:"omitempty,max=60"`
	NewsMetaDescription *string `json:"news_meta_description" form:"news_meta_description" validate:"omitempty,max=160"`
}

func (r *CreateNewsRequest) ToModel() *nModel.NewsModel {
	m := &nModel.NewsModel{
		NewsTitle:           r.NewsTitle,
		NewsCategoryID:      r.NewsCategoryID,
		NewsExcerpt:         r.NewsExcerpt,
		NewsContent:         r.NewsContent,
		NewsMetaTitle:       r.NewsMetaTitle,
		NewsMetaDescription: r.NewsMetaDescription,
	}
	if r.NewsSlug != nil {
		m.NewsSlug = *r.NewsSlug
	}
	if r.NewsIsFeatured != nil {
		m.NewsIsFeatured = *r.NewsIsFeatured
	}
	if r.NewsIsPublished != nil {
		m.NewsIsPublished = *r.NewsIsPublished
	}
	return m
}

type UpdateNewsRequest struct {
	NewsTitle      *string    `json:"news_title" form:"news_title" validate:"omitempty,min=3,max=200"`
	NewsSlug       *string    `json:"news_slug" form:"news_slug" validate:"omitempty,min=3,max=200"`
	NewsCategoryID *uuid.UUID `json:"news_category_id" form:"news_category_id" validate:"omitempty"`

	NewsExcerpt *string `json:"news_excerpt" form:"news_excerpt" validate:"omitempty,max=300"`
	NewsContent *string `json:"news_content" form:"news_content" validate:"omitempty"`

	NewsIsFeatured  *bool `json:"news_is_featured" form:"news_is_featured" validate:"omitempty"`
	NewsIsPublished *bool `json:"news_is_published" form:"news_is_published" validate:"omitempty"`

	NewsMetaTitle       *string `json:"news_meta_title" form:"news_meta_title" validate:"omitempty,max=60"`
	NewsMetaDescription *string `json:"news_meta_description" form:"news_meta_description" validate:"omitempty,max=160"`
}

func (r *UpdateNewsRequest) ApplyToModel(m *nModel.NewsModel) {
	if r.NewsTitle != nil {
		m.NewsTitle = *r.NewsTitle
	}
	if r.NewsSlug != nil && *r.NewsSlug != "" {
		m.NewsSlug = *r.NewsSlug
	}
	if r.NewsCategoryID != nil {
		m.NewsCategoryID = r.NewsCategoryID
	}
	if r.NewsExcerpt != nil {
		m.NewsExcerpt = *r.NewsExcerpt
	}
	if r.NewsContent != nil {
		m.NewsContent = *r.NewsContent
	}
	if r.NewsIsFeatured != nil {
		m.NewsIsFeatured = *r.NewsIsFeatured
	}
	if r.NewsIsPublished != nil {
		m.NewsIsPublished = *r.NewsIsPublished
	}
	if r.NewsMetaTitle != nil {
		m.NewsMetaTitle = r.NewsMetaTitle
	}
	if r.NewsMetaDescription != nil {
		m.NewsMetaDescription = r.NewsMetaDescription
	}
}

/* ===================== RESPONSES ===================== */

type NewsResponse struct {
	NewsID uuid.UUID `json:"news_id"`

	NewsTitle string `json:"news_title"`
	NewsSlug  string `json:"news_slug"`

	NewsCategoryID   *uuid.UUID            `json:"news_category_id,omitempty"`
	NewsCategory     *NewsCategoryResponse `json:"news_category,omitempty"`
	NewsAuthorID     *uuid.UUID            `json:"news_author_id,omitempty"`
	NewsAuthorName   *string               `json:"news_author_name,omitempty"`

	NewsFeaturedImageURL string  `json:"news_featured_image_url"`
	NewsThumbnailURL     *string `json:"news_thumbnail_url,omitempty"`

	NewsExcerpt string `json:"news_excerpt"`
	NewsContent string `json:"news_content"`

	NewsIsFeatured  bool       `json:"news_is_featured"`
	NewsIsPublished bool       `json:"news_is_published"`
	NewsPublishedAt *time.Time `json:"news_published_at,omitempty"`
	NewsViewsCount  int64      `json:"news_views_count"`

	NewsMetaTitle       *string `json:"news_meta_title,omitempty"`
	NewsMetaDescription *string `json:"news_meta_description,omitempty"`

	NewsCreatedAt time.Time `json:"news_created_at"`
	NewsUpdatedAt time.Time `json:"news_updated_at"`
}

func NewNewsResponse(m *nModel.NewsModel) *NewsResponse {
	if m == nil {
		return nil
	}
	resp := &NewsResponse{
		NewsID:               m.NewsID,
		NewsTitle:            m.NewsTitle,
		NewsSlug:             m.NewsSlug,
		NewsCategoryID:       m.NewsCategoryID,
		NewsAuthorID:         m.NewsAuthorID,
		NewsFeaturedImageURL: m.NewsFeaturedImageURL,
		NewsThumbnailURL:     m.NewsThumbnailURL,
		NewsExcerpt:          m.NewsExcerpt,
		NewsContent:          m.NewsContent,
		NewsIsFeatured:       m.NewsIsFeatured,
		NewsIsPublished:      m.NewsIsPublished,
		NewsPublishedAt:      m.NewsPublishedAt,
		NewsViewsCount:       m.NewsViewsCount,
		NewsMetaTitle:        m.NewsMetaTitle,
		NewsMetaDescription:  m.NewsMetaDescription,
		NewsCreatedAt:        m.NewsCreatedAt,
		NewsUpdatedAt:        m.NewsUpdatedAt,
	}
	if m.NewsCategory != nil {
		resp.NewsCategory = NewNewsCategoryResponse(m.NewsCategory)
	}
	if m.NewsAuthor != nil {
		name := m.NewsAuthor.FullName()
		resp.NewsAuthorName = &name
	}
	return resp
}

/* ===================== CATEGORY ===================== */

type CreateNewsCategoryRequest struct {
	NewsCategoryName     string  `json:"news_category_name" form:"news_category_name" validate:"required,min=2,max=100"`
	NewsCategorySlug     *string `json:"news_category_slug" form:"news_category_slug" validate:"omitempty,min=2,max=100"`
	NewsCategoryIsActive *bool   `json:"news_category_is_active" form:"news_category_is_active" validate:"omitempty"`
}

func (r *CreateNewsCategoryRequest) ToModel() *nModel.NewsCategoryModel {
	m := &nModel.NewsCategoryModel{
		NewsCategoryName:     r.NewsCategoryName,
		NewsCategoryIsActive: true,
	}
	if r.NewsCategorySlug != nil {
		m.NewsCategorySlug = *r.NewsCategorySlug
	}
	if r.NewsCategoryIsActive != nil {
		m.NewsCategoryIsActive = *r.NewsCategoryIsActive
	}
	return m
}

type UpdateNewsCategoryRequest struct {
	NewsCategoryName     *string `json:"news_category_name" form:"news_category_name" validate:"omitempty,min=2,max=100"`
	NewsCategorySlug     *string `json:"news_category_slug" form:"news_category_slug" validate:"omitempty,min=2,max=100"`
	NewsCategoryIsActive *bool   `json:"news_category_is_active" form:"news_category_is_active" validate:"omitempty"`
}

func (r *UpdateNewsCategoryRequest) ApplyToModel(m *nModel.NewsCategoryModel) {
	if r.NewsCategoryName != nil {
		m.NewsCategoryName = *r.NewsCategoryName
	}
	if r.NewsCategorySlug != nil && *r.NewsCategorySlug != "" {
		m.NewsCategorySlug = *r.NewsCategorySlug
	}
	if r.NewsCategoryIsActive != nil {
		m.NewsCategoryIsActive = *r.NewsCategoryIsActive
	}
}

type NewsCategoryResponse struct {
	NewsCategoryID       uuid.UUID `json:"news_category_id"`
	NewsCategoryName     string    `json:"news_category_name"`
	NewsCategorySlug     string    `json:"news_category_slug"`
	NewsCategoryIsActive bool      `json:"news_category_is_active"`
	NewsCount            int64     `json:"news_count,omitempty"`
	NewsCategoryCreatedAt time.Time `json:"news_category_created_at"`
}

func NewNewsCategoryResponse(m *nModel.NewsCategoryModel) *NewsCategoryResponse {
	if m == nil {
		return nil
	}
	return &NewsCategoryResponse{
		NewsCategoryID:        m.NewsCategoryID,
		NewsCategoryName:      m.NewsCategoryName,
		NewsCategorySlug:      m.NewsCategorySlug,
		NewsCategoryIsActive:  m.NewsCategoryIsActive,
		NewsCategoryCreatedAt: m.NewsCategoryCreatedAt,
	}
}
