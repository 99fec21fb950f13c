// internals/features/products/controller/product_public_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	pDTO "nutriwell_backend/internals/features/products/dto"
	pModel "nutriwell_backend/internals/features/products/model"
	helper "nutriwell_backend/internals/helpers"
)

var validate = validator.New()

type ProductPublicController struct {
	DB *gorm.DB
}

func NewProductPublicController(db *gorm.DB) *ProductPublicController {
	return &ProductPublicController{DB: db}
}

// GET /products/?category=<slug>&q=&page= — hanya produk aktif
func (h *ProductPublicController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.PublicOpts)

	orderExpr, err := p.OrderExpr(map[string]string{
		"created_at": "product_created_at",
		"name":       "lower(product_name)",
		"price":      "product_price",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown sort key")
	}

	dbq := h.DB.Model(&pModel.ProductModel{}).Where("product_is_active = ?", true)

	if slug := strings.TrimSpace(c.Query("category")); slug != "" {
		dbq = dbq.Where("product_category_id IN (?)",
			h.DB.Model(&pModel.ProductCategoryModel{}).
				Select("product_category_id").
				Where("LOWER(product_category_slug) = ?", strings.ToLower(slug)))
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		dbq = dbq.Where(
			"LOWER(product_name) LIKE ? OR LOWER(product_short_description) LIKE ? OR LOWER(product_sku) LIKE ?",
			like, like, like,
		)
	}
	if c.Query("featured") == "true" {
		dbq = dbq.Where("product_is_featured = ?", true)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count products")
	}

	var rows []pModel.ProductModel
	if err := dbq.
		Preload("ProductCategory").
		Order(orderExpr).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch products")
	}

	items := make([]*pDTO.ProductResponse, 0, len(rows))
	for i := range rows {
		items = append(items, pDTO.NewProductResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": helper.BuildMeta(total, p)})
}

// GET /product-detail/:id/ — detail + galeri terurut
func (h *ProductPublicController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var m pModel.ProductModel
	if err := h.DB.
		Preload("ProductCategory").
		Preload("ProductImages", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_image_order ASC, product_image_created_at ASC")
		}).
		First(&m, "product_id = ? AND product_is_active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch product")
	}

	// Produk terkait: kategori sama, exclude diri sendiri
	var related []pModel.ProductModel
	if m.ProductCategoryID != nil {
		_ = h.DB.
			Where("product_category_id = ? AND product_is_active = ? AND product_id <> ?",
				*m.ProductCategoryID, true, m.ProductID).
			Order("product_created_at DESC").
			Limit(4).
			Find(&related).Error
	}
	relatedItems := make([]*pDTO.ProductResponse, 0, len(related))
	for i := range related {
		relatedItems = append(relatedItems, pDTO.NewProductResponse(&related[i]))
	}

	return c.JSON(fiber.Map{
		"data":    pDTO.NewProductResponse(&m),
		"related": relatedItems,
	})
}

// GET /product-categories/ — kategori aktif untuk filter di halaman publik
func (h *ProductPublicController) Categories(c *fiber.Ctx) error {
	var rows []pModel.ProductCategoryModel
	if err := h.DB.
		Where("product_category_is_active = ?", true).
		Order("product_category_name ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch categories")
	}

	items := make([]*pDTO.ProductCategoryResponse, 0, len(rows))
	for i := range rows {
		items = append(items, pDTO.NewProductCategoryResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}
