// internals/features/products/dto/product_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	pModel "nutriwell_backend/internals/features/products/model"
)

/* ===================== REQUESTS ===================== */

type CreateProductRequest struct {
	ProductName string  `json:"product_name" form:"product_name" validate:"required,min=2,max=200"`
	ProductSlug *string `json:"product_slug" form:"product_slug" validate:"omitempty,min=2,max=200"`
	ProductSKU  string  `json:"product_sku" form:"product_sku" validate:"required,min=2,max=50"`

	ProductCategoryID *uuid.UUID `json:"product_category_id" form:"product_category_id" validate:"omitempty"`

	ProductShortDescription string `json:"product_short_description" form:"product_short_description" validate:"required,max=300"`
	ProductDescription      string `json:"product_description" form:"product_description" validate:"required"`

	ProductPrice         float64  `json:"product_price" form:"product_price" validate:"required,gt=0"`
	ProductDiscountPrice *float64 `json:"product_discount_price" form:"product_discount_price" validate:"omitempty,gt=0"`

	ProductInStock    *bool `json:"product_in_stock" form:"product_in_stock" validate:"omitempty"`
	ProductIsActive   *bool `json:"product_is_active" form:"product_is_active" validate:"omitempty"`
	ProductIsFeatured *bool `json:"product_is_featured" form:"product_is_featured" validate:"omitempty"`

	ProductMetaTitle       *string `json:"product_meta_title" form:"product_meta_title" validate:"omitempty,max=60"`
	ProductMetaDescription *string `json:"product_meta_description" form:"product_meta_description" validate:"omitempty,max=160"`
}

func (r *CreateProductRequest) ToModel() *pModel.ProductModel {
	m := &pModel.ProductModel{
		ProductName:             strings.TrimSpace(r.ProductName),
		ProductSKU:              strings.TrimSpace(r.ProductSKU),
		ProductCategoryID:       r.ProductCategoryID,
		ProductShortDescription: r.ProductShortDescription,
		ProductDescription:      r.ProductDescription,
		ProductPrice:            r.ProductPrice,
		ProductDiscountPrice:    r.ProductDiscountPrice,
		ProductInStock:          true,
		ProductIsActive:         true,
		ProductMetaTitle:        r.ProductMetaTitle,
		ProductMetaDescription:  r.ProductMetaDescription,
	}
	if r.ProductSlug != nil {
		m.ProductSlug = *r.ProductSlug
	}
	if r.ProductInStock != nil {
		m.ProductInStock = *r.ProductInStock
	}
	if r.ProductIsActive != nil {
		m.ProductIsActive = *r.ProductIsActive
	}
	if r.ProductIsFeatured != nil {
		m.ProductIsFeatured = *r.ProductIsFeatured
	}
	return m
}

type UpdateProductRequest struct {
	ProductName *string `json:"product_name" form:"product_name" validate:"omitempty,min=2,max=200"`
	ProductSlug *string `json:"product_slug" form:"product_slug" validate:"omitempty,min=2,max=200"`
	ProductSKU  *string `json:"product_sku" form:"product_sku" validate:"omitempty,min=2,max=50"`

	ProductCategoryID *uuid.UUID `json:"product_category_id" form:"product_category_id" validate:"omitempty"`

	ProductShortDescription *string `json:"product_short_description" form:"product_short_description" validate:"omitempty,max=300"`
	ProductDescription      *string `json:"product_description" form:"product_description" validate:"omitempty"`

	ProductPrice         *float64 `json:"product_price" form:"product_price" validate:"omitempty,gt=0"`
	ProductDiscountPrice *float64 `json:"product_discount_price" form:"product_discount_price" validate:"omitempty,gte=0"`
	ClearDiscount        *bool    `json:"clear_discount" form:"clear_discount" validate:"omitempty"`

	ProductInStock    *bool `json:"product_in_stock" form:"product_in_stock" validate:"omitempty"`
	ProductIsActive   *bool `json:"product_is_active" form:"product_is_active" validate:"omitempty"`
	ProductIsFeatured *bool `json:"product_is_featured" form:"product_is_featured" validate:"omitempty"`

	ProductMetaTitle       *string `json:"product_meta_title" form:"product_meta_title" validate:"omitempty,max=60"`
	ProductMetaDescription *string `json:"product_meta_description" form:"product_meta_description" validate:"omitempty,max=160"`
}

func (r *UpdateProductRequest) ApplyToModel(m *pModel.ProductModel) {
	if r.ProductName != nil {
		m.ProductName = strings.TrimSpace(*r.ProductName)
	}
	if r.ProductSlug != nil && *r.ProductSlug != "" {
		m.ProductSlug = *r.ProductSlug
	}
	if r.ProductSKU != nil && *r.ProductSKU != "" {
		m.ProductSKU = strings.TrimSpace(*r.ProductSKU)
	}
	if r.ProductCategoryID != nil {
		m.ProductCategoryID = r.ProductCategoryID
	}
	if r.ProductShortDescription != nil {
		m.ProductShortDescription = *r.ProductShortDescription
	}
	if r.ProductDescription != nil {
		m.ProductDescription = *r.ProductDescription
	}
	if r.ProductPrice != nil {
		m.ProductPrice = *r.ProductPrice
	}
	if r.ClearDiscount != nil && *r.ClearDiscount {
		m.ProductDiscountPrice = nil
	} else if r.ProductDiscountPrice != nil {
		m.ProductDiscountPrice = r.ProductDiscountPrice
	}
	if r.ProductInStock != nil {
		m.ProductInStock = *r.ProductInStock
	}
	if r.ProductIsActive != nil {
		m.ProductIsActive = *r.ProductIsActive
	}
	if r.ProductIsFeatured != nil {
		m.ProductIsFeatured = *r.ProductIsFeatured
	}
	if r.ProductMetaTitle != nil {
		m.ProductMetaTitle = r.ProductMetaTitle
	}
	if r.ProductMetaDescription != nil {
		m.ProductMetaDescription = r.ProductMetaDescription
	}
}

/* ===================== RESPONSES ===================== */

type ProductImageResponse struct {
	ProductImageID        uuid.UUID `json:"product_image_id"`
	ProductImageURL       string    `json:"product_image_url"`
	ProductImageAltText   *string   `json:"product_image_alt_text,omitempty"`
	ProductImageIsPrimary bool      `json:"product_image_is_primary"`
	ProductImageOrder     int       `json:"product_image_order"`
}

func NewProductImageResponse(m *pModel.ProductImageModel) *ProductImageResponse {
	if m == nil {
		return nil
	}
	return &ProductImageResponse{
		ProductImageID:        m.ProductImageID,
		ProductImageURL:       m.ProductImageURL,
		ProductImageAltText:   m.ProductImageAltText,
		ProductImageIsPrimary: m.ProductImageIsPrimary,
		ProductImageOrder:     m.ProductImageOrder,
	}
}

type ProductResponse struct {
	ProductID uuid.UUID `json:"product_id"`

	ProductName string `json:"product_name"`
	ProductSlug string `json:"product_slug"`
	ProductSKU  string `json:"product_sku"`

	ProductCategoryID *uuid.UUID               `json:"product_category_id,omitempty"`
	ProductCategory   *ProductCategoryResponse `json:"product_category,omitempty"`

	ProductShortDescription string `json:"product_short_description"`
	ProductDescription      string `json:"product_description"`

	ProductPrice         float64  `json:"product_price"`
	ProductDiscountPrice *float64 `json:"product_discount_price,omitempty"`
	ProductCurrentPrice  float64  `json:"product_current_price"`
	ProductHasDiscount   bool     `json:"product_has_discount"`

	ProductFeaturedImageURL string `json:"product_featured_image_url"`

	ProductInStock    bool `json:"product_in_stock"`
	ProductIsActive   bool `json:"product_is_active"`
	ProductIsFeatured bool `json:"product_is_featured"`

	ProductMetaTitle       *string `json:"product_meta_title,omitempty"`
	ProductMetaDescription *string `json:"product_meta_description,omitempty"`

	ProductImages []*ProductImageResponse `json:"product_images,omitempty"`

	ProductCreatedAt time.Time `json:"product_created_at"`
	ProductUpdatedAt time.Time `json:"product_updated_at"`
}

func NewProductResponse(m *pModel.ProductModel) *ProductResponse {
	if m == nil {
		return nil
	}
	resp := &ProductResponse{
		ProductID:               m.ProductID,
		ProductName:             m.ProductName,
		ProductSlug:             m.ProductSlug,
		ProductSKU:              m.ProductSKU,
		ProductCategoryID:       m.ProductCategoryID,
		ProductShortDescription: m.ProductShortDescription,
		ProductDescription:      m.ProductDescription,
		ProductPrice:            m.ProductPrice,
		ProductDiscountPrice:    m.ProductDiscountPrice,
		ProductCurrentPrice:     m.CurrentPrice(),
		ProductHasDiscount:      m.HasDiscount(),
		ProductFeaturedImageURL: m.ProductFeaturedImageURL,
		ProductInStock:          m.ProductInStock,
		ProductIsActive:         m.ProductIsActive,
		ProductIsFeatured:       m.ProductIsFeatured,
		ProductMetaTitle:        m.ProductMetaTitle,
		ProductMetaDescription:  m.ProductMetaDescription,
		ProductCreatedAt:        m.ProductCreatedAt,
		ProductUpdatedAt:        m.ProductUpdatedAt,
	}
	if m.ProductCategory != nil {
		resp.ProductCategory = NewProductCategoryResponse(m.ProductCategory)
	}
	for i := range m.ProductImages {
		resp.ProductImages = append(resp.ProductImages, NewProductImageResponse(&m.ProductImages[i]))
	}
	return resp
}

/* ===================== CATEGORY ===================== */

type CreateProductCategoryRequest struct {
	ProductCategoryName        string  `json:"product_category_name" form:"product_category_name" validate:"required,min=2,max=100"`
	ProductCategorySlug        *string `json:"product_category_slug" form:"product_category_slug" validate:"omitempty,min=2,max=100"`
	ProductCategoryDescription *string `json:"product_category_description" form:"product_category_description" validate:"omitempty"`
	ProductCategoryIsActive    *bool   `json:"product_category_is_active" form:"product_category_is_active" validate:"omitempty"`
}

func (r *CreateProductCategoryRequest) ToModel() *pModel.ProductCategoryModel {
	m := &pModel.ProductCategoryModel{
		ProductCategoryName:        strings.TrimSpace(r.ProductCategoryName),
		ProductCategoryDescription: r.ProductCategoryDescription,
		ProductCategoryIsActive:    true,
	}
	if r.ProductCategorySlug != nil {
		m.ProductCategorySlug = *r.ProductCategorySlug
	}
	if r.ProductCategoryIsActive != nil {
		m.ProductCategoryIsActive = *r.ProductCategoryIsActive
	}
	return m
}

type UpdateProductCategoryRequest struct {
	ProductCategoryName        *string `json:"product_category_name" form:"product_category_name" validate:"omitempty,min=2,max=100"`
	ProductCategorySlug        *string `json:"product_category_slug" form:"product_category_slug" validate:"omitempty,min=2,max=100"`
	ProductCategoryDescription *string `json:"product_category_description" form:"product_category_description" validate:"omitempty"`
	ProductCategoryIsActive    *bool   `json:"product_category_is_active" form:"product_category_is_active" validate:"omitempty"`
}

func (r *UpdateProductCategoryRequest) ApplyToModel(m *pModel.ProductCategoryModel) {
	if r.ProductCategoryName != nil {
		m.ProductCategoryName = strings.TrimSpace(*r.ProductCategoryName)
	}
	if r.ProductCategorySlug != nil && *r.ProductCategorySlug != "" {
		m.ProductCategorySlug = *r.ProductCategorySlug
	}
	if r.ProductCategoryDescription != nil {
		m.ProductCategoryDescription = r.ProductCategoryDescription
	}
	if r.ProductCategoryIsActive != nil {
		m.ProductCategoryIsActive = *r.ProductCategoryIsActive
	}
}

type ProductCategoryResponse struct {
	ProductCategoryID          uuid.UUID `json:"product_category_id"`
	ProductCategoryName        string    `json:"product_category_name"`
	ProductCategorySlug        string    `json:"product_category_slug"`
	ProductCategoryDescription *string   `json:"product_category_description,omitempty"`
	ProductCategoryImageURL    *string   `json:"product_category_image_url,omitempty"`
	ProductCategoryIsActive    bool      `json:"product_category_is_active"`
	ProductCount               int64     `json:"product_count,omitempty"`
	ProductCategoryCreatedAt   time.Time `json:"product_category_created_at"`
}

func NewProductCategoryResponse(m *pModel.ProductCategoryModel) *ProductCategoryResponse {
	if m == nil {
		return nil
	}
	return &ProductCategoryResponse{
		ProductCategoryID:          m.ProductCategoryID,
		ProductCategoryName:        m.ProductCategoryName,
		ProductCategorySlug:        m.ProductCategorySlug,
		ProductCategoryDescription: m.ProductCategoryDescription,
		ProductCategoryImageURL:    m.ProductCategoryImageURL,
		ProductCategoryIsActive:    m.ProductCategoryIsActive,
		ProductCategoryCreatedAt:   m.ProductCategoryCreatedAt,
	}
}
