// internals/features/products/controller/product_admin_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	pDTO "nutriwell_backend/internals/features/products/dto"
	pModel "nutriwell_backend/internals/features/products/model"
	helper "nutriwell_backend/internals/helpers"
)

type ProductAdminController struct {
	DB *gorm.DB
}

func NewProductAdminController(db *gorm.DB) *ProductAdminController {
	return &ProductAdminController{DB: db}
}

/* ===================== PRODUCTS ===================== */

// GET /dashboard/products/
func (h *ProductAdminController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	orderExpr, err := p.OrderExpr(map[string]string{
		"created_at": "product_created_at",
		"name":       "lower(product_name)",
		"price":      "product_price",
		"sku":        "product_sku",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown sort key")
	}

	dbq := h.DB.Model(&pModel.ProductModel{})
	if v := c.Query("is_active"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			dbq = dbq.Where("product_is_active = ?", b)
		}
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		dbq = dbq.Where("LOWER(product_name) LIKE ? OR LOWER(product_sku) LIKE ?", like, like)
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

// POST /dashboard/products/create/ (multipart: featured_image, gallery_images[])
func (h *ProductAdminController) Create(c *fiber.Ctx) error {
	var req pDTO.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()

	base := m.ProductSlug
	if strings.TrimSpace(base) == "" {
		base = helper.Slugify(m.ProductName, 200)
	} else {
		base = helper.Slugify(base, 200)
	}
	slug, err := helper.EnsureUniqueSlugCI(c.Context(), h.DB, "products", "product_slug", base, "", nil, 200)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate slug")
	}
	m.ProductSlug = slug

	var skuCount int64
	if err := h.DB.Model(&pModel.ProductModel{}).
		Where("LOWER(product_sku) = ?", strings.ToLower(m.ProductSKU)).
		Count(&skuCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check SKU")
	}
	if skuCount > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "SKU already in use")
	}

	var savedFiles []string
	if fh, err := c.FormFile("featured_image"); err == nil && fh != nil {
		if err := helper.ValidateUploadSize(fh); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		url, err := helper.SaveImage("products/featured", fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		m.ProductFeaturedImageURL = url
		savedFiles = append(savedFiles, url)
	}

	if err := h.DB.Create(m).Error; err != nil {
		for _, f := range savedFiles {
			_ = helper.RemoveByURL(f)
		}
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Slug or SKU already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create product")
	}

	if err := h.appendGallery(c, m); err != nil {
		return err
	}

	return helper.JsonCreated(c, "Product created successfully", pDTO.NewProductResponse(m))
}

// POST /dashboard/products/:id/edit/
func (h *ProductAdminController) Edit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req pDTO.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.findProductByID(id)
	if err != nil {
		return err
	}

	oldSlug, oldSKU := m.ProductSlug, m.ProductSKU
	req.ApplyToModel(m)

	if m.ProductSlug != oldSlug {
		base := helper.Slugify(m.ProductSlug, 200)
		slug, err := helper.EnsureUniqueSlugCI(c.Context(), h.DB, "products", "product_slug", base, "product_id", id, 200)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate slug")
		}
		m.ProductSlug = slug
	}
	if !strings.EqualFold(m.ProductSKU, oldSKU) {
		var skuCount int64
		if err := h.DB.Model(&pModel.ProductModel{}).
			Where("LOWER(product_sku) = ? AND product_id <> ?", strings.ToLower(m.ProductSKU), id).
			Count(&skuCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check SKU")
		}
		if skuCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "SKU already in use")
		}
	}

	oldFeatured := m.ProductFeaturedImageURL
	var savedFiles []string
	if fh, err := c.FormFile("featured_image"); err == nil && fh != nil {
		url, err := helper.SaveImage("products/featured", fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		m.ProductFeaturedImageURL = url
		savedFiles = append(savedFiles, url)
	}

	if err := h.DB.Save(m).Error; err != nil {
		for _, f := range savedFiles {
			_ = helper.RemoveByURL(f)
		}
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Slug or SKU already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update product")
	}

	if len(savedFiles) > 0 && oldFeatured != "" && m.ProductFeaturedImageURL != oldFeatured {
		_ = helper.RemoveByURL(oldFeatured)
	}

	if err := h.appendGallery(c, m); err != nil {
		return err
	}

	return helper.JsonOK(c, "Product updated successfully", pDTO.NewProductResponse(m))
}

// POST /dashboard/products/:id/delete/ — galeri ikut terhapus
func (h *ProductAdminController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}
	m, err := h.findProductByID(id)
	if err != nil {
		return err
	}

	var images []pModel.ProductImageModel
	_ = h.DB.Where("product_image_product_id = ?", id).Find(&images).Error

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_image_product_id = ?", id).
			Delete(&pModel.ProductImageModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete product")
	}

	if m.ProductFeaturedImageURL != "" {
		_ = helper.RemoveByURL(m.ProductFeaturedImageURL)
	}
	for i := range images {
		_ = helper.RemoveByURL(images[i].ProductImageURL)
	}
	return helper.JsonOK(c, "Product deleted successfully", fiber.Map{"id": m.ProductID})
}

// POST /dashboard/products/:id/images/:imageId/delete/
func (h *ProductAdminController) ImageDelete(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid product ID")
	}
	imageID, err := uuid.Parse(c.Params("imageId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid image ID")
	}

	var img pModel.ProductImageModel
	if err := h.DB.First(&img,
		"product_image_id = ? AND product_image_product_id = ?", imageID, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Image not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch image")
	}

	if err := h.DB.Delete(&img).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete image")
	}
	_ = helper.RemoveByURL(img.ProductImageURL)

	return helper.JsonOK(c, "Image deleted successfully", fiber.Map{"id": img.ProductImageID})
}

/* ===================== CATEGORIES ===================== */

// GET /dashboard/products/categories/ — dengan jumlah produk per kategori
func (h *ProductAdminController) CategoryList(c *fiber.Ctx) error {
	var rows []pModel.ProductCategoryModel
	if err := h.DB.Order("product_category_name ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch categories")
	}

	items := make([]*pDTO.ProductCategoryResponse, 0, len(rows))
	for i := range rows {
		resp := pDTO.NewProductCategoryResponse(&rows[i])
		var count int64
		if err := h.DB.Model(&pModel.ProductModel{}).
			Where("product_category_id = ?", rows[i].ProductCategoryID).
			Count(&count).Error; err == nil {
			resp.ProductCount = count
		}
		items = append(items, resp)
	}
	return c.JSON(fiber.Map{"data": items})
}

// POST /dashboard/products/categories/create/
func (h *ProductAdminController) CategoryCreate(c *fiber.Ctx) error {
	var req pDTO.CreateProductCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	base := m.ProductCategorySlug
	if strings.TrimSpace(base) == "" {
		base = helper.Slugify(m.ProductCategoryName, 100)
	} else {
		base = helper.Slugify(base, 100)
	}
	slug, err := helper.EnsureUniqueSlugCI(c.Context(), h.DB, "product_categories", "product_category_slug", base, "", nil, 100)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate slug")
	}
	m.ProductCategorySlug = slug

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, err := helper.SaveImage("products/categories", fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		m.ProductCategoryImageURL = &url
	}

	if err := h.DB.Create(m).Error; err != nil {
		if m.ProductCategoryImageURL != nil {
			_ = helper.RemoveByURL(*m.ProductCategoryImageURL)
		}
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Slug already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create category")
	}
	return helper.JsonCreated(c, "Category created successfully", pDTO.NewProductCategoryResponse(m))
}

// POST /dashboard/products/categories/:id/edit/
func (h *ProductAdminController) CategoryEdit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req pDTO.UpdateProductCategoryRequest
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

	oldSlug := m.ProductCategorySlug
	req.ApplyToModel(m)
	if m.ProductCategorySlug != oldSlug {
		base := helper.Slugify(m.ProductCategorySlug, 100)
		slug, err := helper.EnsureUniqueSlugCI(c.Context(), h.DB, "product_categories", "product_category_slug", base, "product_category_id", id, 100)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate slug")
		}
		m.ProductCategorySlug = slug
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, err := helper.SaveImage("products/categories", fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if m.ProductCategoryImageURL != nil {
			_ = helper.RemoveByURL(*m.ProductCategoryImageURL)
		}
		m.ProductCategoryImageURL = &url
	}

	if err := h.DB.Save(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Slug already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update category")
	}
	return helper.JsonOK(c, "Category updated successfully", pDTO.NewProductCategoryResponse(m))
}

// POST /dashboard/products/categories/:id/delete/
// Produk kategori ini tetap ada (category di-NULL-kan).
func (h *ProductAdminController) CategoryDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}
	m, err := h.findCategoryByID(id)
	if err != nil {
		return err
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&pModel.ProductModel{}).
			Where("product_category_id = ?", id).
			Update("product_category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete category")
	}
	return helper.JsonOK(c, "Category deleted successfully", fiber.Map{"id": m.ProductCategoryID})
}

/* ===================== HELPERS ===================== */

// appendGallery: gambar baru selalu masuk di belakang galeri yang sudah ada.
func (h *ProductAdminController) appendGallery(c *fiber.Ctx, m *pModel.ProductModel) error {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	files := form.File["gallery_images"]
	if len(files) == 0 {
		files = form.File["gallery_images[]"]
	}
	if len(files) == 0 {
		return nil
	}

	var existing int64
	if err := h.DB.Model(&pModel.ProductImageModel{}).
		Where("product_image_product_id = ?", m.ProductID).
		Count(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count gallery")
	}

	for i, fh := range files {
		if err := helper.ValidateUploadSize(fh); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		url, err := helper.SaveImage("products/gallery", fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		img := &pModel.ProductImageModel{
			ProductImageProductID: m.ProductID,
			ProductImageURL:       url,
			ProductImageIsPrimary: existing == 0 && i == 0,
			ProductImageOrder:     int(existing) + i,
		}
		if err := h.DB.Create(img).Error; err != nil {
			_ = helper.RemoveByURL(url)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to save gallery image")
		}
		m.ProductImages = append(m.ProductImages, *img)
	}
	return nil
}

func (h *ProductAdminController) findProductByID(id uuid.UUID) (*pModel.ProductModel, error) {
	var m pModel.ProductModel
	if err := h.DB.First(&m, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch product")
	}
	return &m, nil
}

func (h *ProductAdminController) findCategoryByID(id uuid.UUID) (*pModel.ProductCategoryModel, error) {
	var m pModel.ProductCategoryModel
	if err := h.DB.First(&m, "product_category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Category not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch category")
	}
	return &m, nil
}
