// internals/features/news/controller/news_public_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	nDTO "nutriwell_backend/internals/features/news/dto"
	nModel "nutriwell_backend/internals/features/news/model"
	helper "nutriwell_backend/internals/helpers"
)

type NewsPublicController struct {
	DB *gorm.DB
}

func NewNewsPublicController(db *gorm.DB) *NewsPublicController {
	return &NewsPublicController{DB: db}
}

/* ===================== HANDLERS ===================== */

// GET /news/?category=<slug>&page=N — hanya artikel published
func (h *NewsPublicController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "published_at", "desc", helper.PublicOpts)

	orderExpr, err := p.OrderExpr(map[string]string{
		"published_at": "news_published_at",
		"created_at":   "news_created_at",
		"views":        "news_views_count",
	}, "published_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown sort key")
	}

	dbq := h.DB.Model(&nModel.NewsModel{}).Where("news_is_published = ?", true)

	if slug := strings.TrimSpace(c.Query("category")); slug != "" {
		dbq = dbq.Where("news_category_id IN (?)",
			h.DB.Model(&nModel.NewsCategoryModel{}).
				Select("news_category_id").
				Where("LOWER(news_category_slug) = ?", strings.ToLower(slug)))
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count news")
	}

	var rows []nModel.NewsModel
	if err := dbq.
		Preload("NewsCategory").
		Order(orderExpr).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch news")
	}

	items := make([]*nDTO.NewsResponse, 0, len(rows))
	for i := range rows {
		items = append(items, nDTO.NewNewsResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": helper.BuildMeta(total, p)})
}

// GET /news-detail/:id/ — view counter naik tepat 1 per request.
// Increment dilakukan atomic di storage (UPDATE ... + 1), bukan read-modify-write.
func (h *NewsPublicController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	res := h.DB.Model(&nModel.NewsModel{}).
		Where("news_id = ? AND news_is_published = ?", id, true).
		UpdateColumn("news_views_count", gorm.Expr("news_views_count + 1"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update views")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "News not found")
	}

	var m nModel.NewsModel
	if err := h.DB.
		Preload("NewsCategory").
		Preload("NewsAuthor").
		First(&m, "news_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "News not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch news")
	}

	return c.JSON(fiber.Map{"data": nDTO.NewNewsResponse(&m)})
}
