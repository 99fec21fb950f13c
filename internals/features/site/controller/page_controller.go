// internals/features/site/controller/page_controller.go
package controller

import (
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	nDTO "nutriwell_backend/internals/features/news/dto"
	nModel "nutriwell_backend/internals/features/news/model"
	pDTO "nutriwell_backend/internals/features/products/dto"
	pModel "nutriwell_backend/internals/features/products/model"
	sDTO "nutriwell_backend/internals/features/site/dto"
	sModel "nutriwell_backend/internals/features/site/model"
	helper "nutriwell_backend/internals/helpers"
)

var validate = validator.New()

// PageController menyajikan payload halaman publik (home, about, dst).
type PageController struct {
	DB *gorm.DB
}

func NewPageController(db *gorm.DB) *PageController {
	return &PageController{DB: db}
}

// GET / — produk & berita unggulan untuk landing page
func (h *PageController) Home(c *fiber.Ctx) error {
	var featuredProducts []pModel.ProductModel
	if err := h.DB.
		Where("product_is_active = ? AND product_is_featured = ?", true, true).
		Order("product_created_at DESC").
		Limit(8).
		Find(&featuredProducts).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch products")
	}

	var latestNews []nModel.NewsModel
	if err := h.DB.
		Preload("NewsCategory").
		Where("news_is_published = ?", true).
		Order("news_published_at DESC").
		Limit(3).
		Find(&latestNews).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch news")
	}

	var teams []sModel.TeamModel
	_ = h.DB.Where("team_is_active = ?", true).Order("team_created_at ASC").Find(&teams).Error

	var cities []sModel.CityModel
	_ = h.DB.Where("city_is_active = ?", true).Order("city_name ASC").Find(&cities).Error

	products := make([]*pDTO.ProductResponse, 0, len(featuredProducts))
	for i := range featuredProducts {
		products = append(products, pDTO.NewProductResponse(&featuredProducts[i]))
	}
	news := make([]*nDTO.NewsResponse, 0, len(latestNews))
	for i := range latestNews {
		news = append(news, nDTO.NewNewsResponse(&latestNews[i]))
	}
	teamItems := make([]*sDTO.TeamResponse, 0, len(teams))
	for i := range teams {
		teamItems = append(teamItems, sDTO.NewTeamResponse(&teams[i]))
	}
	cityItems := make([]*sDTO.CityResponse, 0, len(cities))
	for i := range cities {
		cityItems = append(cityItems, sDTO.NewCityResponse(&cities[i]))
	}

	return c.JSON(fiber.Map{
		"featured_products": products,
		"latest_news":       news,
		"teams":             teamItems,
		"cities":            cityItems,
	})
}

// GET /about-us/ — tim aktif + kota jangkauan
func (h *PageController) AboutUs(c *fiber.Ctx) error {
	var teams []sModel.TeamModel
	if err := h.DB.
		Where("team_is_active = ?", true).
		Order("team_created_at ASC").
		Find(&teams).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch teams")
	}

	var cities []sModel.CityModel
	if err := h.DB.
		Where("city_is_active = ?", true).
		Order("city_name ASC").
		Find(&cities).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch cities")
	}

	teamItems := make([]*sDTO.TeamResponse, 0, len(teams))
	for i := range teams {
		teamItems = append(teamItems, sDTO.NewTeamResponse(&teams[i]))
	}
	cityItems := make([]*sDTO.CityResponse, 0, len(cities))
	for i := range cities {
		cityItems = append(cityItems, sDTO.NewCityResponse(&cities[i]))
	}

	return c.JSON(fiber.Map{"teams": teamItems, "cities": cityItems})
}

// GET /impact/ — angka ringkas untuk halaman impact
func (h *PageController) Impact(c *fiber.Ctx) error {
	var cityCount, productCount int64
	_ = h.DB.Model(&sModel.CityModel{}).Where("city_is_active = ?", true).Count(&cityCount).Error
	_ = h.DB.Model(&pModel.ProductModel{}).Where("product_is_active = ?", true).Count(&productCount).Error

	return c.JSON(fiber.Map{
		"cities_reached":  cityCount,
		"active_products": productCount,
	})
}

// GET /innovations/ — produk unggulan + berita terbaru per inovasi
func (h *PageController) Innovations(c *fiber.Ctx) error {
	var featured []pModel.ProductModel
	if err := h.DB.
		Preload("ProductCategory").
		Where("product_is_active = ? AND product_is_featured = ?", true, true).
		Order("product_created_at DESC").
		Find(&featured).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch products")
	}

	items := make([]*pDTO.ProductResponse, 0, len(featured))
	for i := range featured {
		items = append(items, pDTO.NewProductResponse(&featured[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// POST /bmi-calculator/
func (h *PageController) BMICalculator(c *fiber.Ctx) error {
	var req sDTO.BMIRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	heightM := req.HeightCm / 100
	bmi := req.WeightKg / (heightM * heightM)
	bmi = math.Round(bmi*10) / 10

	category := "Normal"
	switch {
	case bmi < 18.5:
		category = "Underweight"
	case bmi < 25:
		category = "Normal"
	case bmi < 30:
		category = "Overweight"
	default:
		category = "Obese"
	}

	return c.JSON(fiber.Map{"data": sDTO.BMIResponse{BMI: bmi, Category: category}})
}
