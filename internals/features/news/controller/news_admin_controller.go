// internals/features/news/controller/news_admin_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	nDTO "nutriwell_backend/internals/features/news/dto"
	nModel "nutriwell_backend/internals/features/news/model"
	helper "nutriwell_backend/internals/helpers"
	authMw "nutriwell_backend/internals/middlewares/auth"
)

var validate = validator.New()

type NewsAdminController struct {
	DB *gorm.DB
}

func NewNewsAdminController(db *gorm.DB) *NewsAdminController {
	return &NewsAdminController{DB: db}
}

/* ===================== NEWS ===================== */

// GET /dashboard/news/
func (h *NewsAdminController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	orderExpr, err := p.OrderExpr(map[string]string{
		"created_at":   "news_created_at",
		"published_at": "news_published_at",
		"title":        "lower(news_title)",
		"views":        "news_views_count",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown sort key")
	}

	dbq := h.DB.Model(&nModel.NewsModel{})
	if v := c.Query("published"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			dbq = dbq.Where("news_is_published = ?", b)
		}
	}
	if v := c.Query("featured"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			dbq = dbq.Where("news_is_featured = ?", b)
		}
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count news")
	}

	var rows []nModel.NewsModel
	if err := dbq.
		Preload("NewsCategory").
		Preload("NewsAuthor").
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

// POST /dashboard/news/create/ (multipart: featured_image, thumbnail)
func (h *NewsAdminController) Create(c *fiber.Ctx) error {
	var req nDTO.CreateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()

	// Slug: derive dari judul kalau kosong, lalu pastikan unik
	base := m.NewsSlug
	if strings.TrimSpace(base) == "" {
		base = helper.Slugify(m.NewsTitle, 200)
	} else {
		base = helper.Slugify(base, 200)
	}
	slug, err := helper.EnsureUniqueSlugCI(c.Context(), h.DB, "news", "news_slug", base, "", nil, 200)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate slug")
	}
	m.NewsSlug = slug

	if authorID, err := authMw.CurrentUserID(c); err == nil {
		m.NewsAuthorID = &authorID
	}

	// Upload: file ditulis dulu, baris menyusul; bersihkan kalau insert gagal
	var savedFiles []string
	if fh, err := c.FormFile("featured_image"); err == nil && fh != nil {
		if err := helper.ValidateUploadSize(fh); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		url, err := helper.SaveImage("news/featured", fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		m.NewsFeaturedImageURL = url
		savedFiles = append(savedFiles, url)
	}
	if fh, err := c.FormFile("thumbnail"); err == nil && fh != nil {
		if err := helper.ValidateUploadSize(fh); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		url, err := helper.SaveImage("news/thumbnails", fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		m.NewsThumbnailURL = &url
		savedFiles = append(savedFiles, url)
	}

	if err := h.DB.Create(m).Error; err != nil {
		for _, f := range savedFiles {
			_ = helper.RemoveByURL(f)
		}
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Slug already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create news")
	}

	return helper.JsonCreated(c, "News created successfully", nDTO.NewNewsResponse(m))
}

// POST /dashboard/news/:id/edit/
func (h *NewsAdminController) Edit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req nDTO.UpdateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.findNewsByID(id)
	if err != nil {
		return err
	}

	oldSlug := m.NewsSlug
	req.ApplyToModel(m)

	if m.NewsSlug != oldSlug {
		base := helper.Slugify(m.NewsSlug, 200)
		slug, err := helper.EnsureUniqueSlugCI(c.Context(), h.DB, "news", "news_slug", base, "news_id", id, 200)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate slug")
		}
		m.NewsSlug = slug
	}

	// Gambar baru menggantikan yang lama
	oldFeatured, oldThumb := m.NewsFeaturedImageURL, m.NewsThumbnailURL
	var savedFiles []string
	if fh, err := c.FormFile("featured_image"); err == nil && fh != nil {
		url, err := helper.SaveImage("news/featured", fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		m.NewsFeaturedImageURL = url
		savedFiles = append(savedFiles, url)
	}
	if fh, err := c.FormFile("thumbnail"); err == nil && fh != nil {
		url, err := helper.SaveImage("news/thumbnails", fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		m.NewsThumbnailURL = &url
		savedFiles = append(savedFiles, url)
	}

	if err := h.DB.Save(m).Error; err != nil {
		for _, f := range savedFiles {
			_ = helper.RemoveByURL(f)
		}
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Slug already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update news")
	}

	if len(savedFiles) > 0 {
		if oldFeatured != "" && m.NewsFeaturedImageURL != oldFeatured {
			_ = helper.RemoveByURL(oldFeatured)
		}
		if oldThumb != nil && (m.NewsThumbnailURL == nil || *m.NewsThumbnailURL != *oldThumb) {
			_ = helper.RemoveByURL(*oldThumb)
		}
	}

	return helper.JsonOK(c, "News updated successfully", nDTO.NewNewsResponse(m))
}

// POST /dashboard/news/:id/delete/
func (h *NewsAdminController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}
	m, err := h.findNewsByID(id)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete news")
	}
	if m.NewsFeaturedImageURL != "" {
		_ = helper.RemoveByURL(m.NewsFeaturedImageURL)
	}
	if m.NewsThumbnailURL != nil {
		_ = helper.RemoveByURL(*m.NewsThumbnailURL)
	}
	return helper.JsonOK(c, "News deleted successfully", fiber.Map{"id": m.NewsID})
}

/* ===================== CATEGORIES ===================== */

// GET /dashboard/news/categories/ — dengan jumlah artikel per kategori
func (h *NewsAdminController) CategoryList(c *fiber.Ctx) error {
	var rows []nModel.NewsCategoryModel
	if err := h.DB.Order("news_category_name ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch categories")
	}

	items := make([]*nDTO.NewsCategoryResponse, 0, len(rows))
	for i := range rows {
		resp := nDTO.NewNewsCategoryResponse(&rows[i])
		var count int64
		if err := h.DB.Model(&nModel.NewsModel{}).
			Where("news_category_id = ?", rows[i].NewsCategoryID).
			Count(&count).Error; err == nil {
			resp.NewsCount = count
		}
		items = append(items, resp)
	}
	return c.JSON(fiber.Map{"data": items})
}

// POST /dashboard/news/categories/create/
func (h *NewsAdminController) CategoryCreate(c *fiber.Ctx) error {
	var req nDTO.CreateNewsCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	base := m.NewsCategorySlug
	if strings.TrimSpace(base) == "" {
		base = helper.Slugify(m.NewsCategoryName, 100)
	} else {
		base = helper.Slugify(base, 100)
	}
	slug, err := helper.EnsureUniqueSlugCI(c.Context(), h.DB, "news_categories", "news_category_slug", base, "", nil, 100)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate slug")
	}
	m.NewsCategorySlug = slug

	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Slug already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create category")
	}
	return helper.JsonCreated(c, "Category created successfully", nDTO.NewNewsCategoryResponse(m))
}

// POST /dashboard/news/categories/:id/edit/
func (h *NewsAdminController) CategoryEdit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req nDTO.UpdateNewsCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.findCategoryByID(id)
	if err != nil {
		return err
	}

	oldSlug := m.NewsCategorySlug
	req.ApplyToModel(m)
	if m.NewsCategorySlug != oldSlug {
		base := helper.Slugify(m.NewsCategorySlug, 100)
		slug, err := helper.EnsureUniqueSlugCI(c.Context(), h.DB, "news_categories", "news_category_slug", base, "news_category_id", id, 100)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate slug")
		}
		m.NewsCategorySlug = slug
	}

	if err := h.DB.Save(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Slug already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update category")
	}
	return helper.JsonOK(c, "Category updated successfully", nDTO.NewNewsCategoryResponse(m))
}

// POST /dashboard/news/categories/:id/delete/
// Artikel kategori ini tetap ada (category di-NULL-kan).
func (h *NewsAdminController) CategoryDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}
	m, err := h.findCategoryByID(id)
	if err != nil {
		return err
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&nModel.NewsModel{}).
			Where("news_category_id = ?", id).
			Update("news_category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete category")
	}
	return helper.JsonOK(c, "Category deleted successfully", fiber.Map{"id": m.NewsCategoryID})
}

/* ===================== HELPERS ===================== */

func (h *NewsAdminController) findNewsByID(id uuid.UUID) (*nModel.NewsModel, error) {
	var m nModel.NewsModel
	if err := h.DB.First(&m, "news_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "News not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch news")
	}
	return &m, nil
}

func (h *NewsAdminController) findCategoryByID(id uuid.UUID) (*nModel.NewsCategoryModel, error) {
	var m nModel.NewsCategoryModel
	if err := h.DB.First(&m, "news_category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Category not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch category")
	}
	return &m, nil
}
