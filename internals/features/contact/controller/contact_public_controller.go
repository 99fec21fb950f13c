// internals/features/contact/controller/contact_public_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cDTO "nutriwell_backend/internals/features/contact/dto"
	cModel "nutriwell_backend/internals/features/contact/model"
	sDTO "nutriwell_backend/internals/features/site/dto"
	sModel "nutriwell_backend/internals/features/site/model"
	helper "nutriwell_backend/internals/helpers"
)

var validate = validator.New()

type ContactPublicController struct {
	DB *gorm.DB
}

func NewContactPublicController(db *gorm.DB) *ContactPublicController {
	return &ContactPublicController{DB: db}
}

// GET /contact/ — lokasi kantor (kota aktif) untuk halaman kontak
func (h *ContactPublicController) Info(c *fiber.Ctx) error {
	var cities []sModel.CityModel
	if err := h.DB.
		Where("city_is_active = ?", true).
		Order("city_name ASC").
		Find(&cities).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch offices")
	}

	items := make([]*sDTO.CityResponse, 0, len(cities))
	for i := range cities {
		items = append(items, sDTO.NewCityResponse(&cities[i]))
	}
	return c.JSON(fiber.Map{"offices": items})
}

// POST /contact/ — satu submit = satu record, flags read/replied mulai dari false
func (h *ContactPublicController) Submit(c *fiber.Ctx) error {
	var req cDTO.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to submit message")
	}

	return helper.JsonCreated(c, "Your message has been sent. We will get back to you soon.", cDTO.NewContactResponse(m))
}

// POST /subscribe/ — idempoten: email yang sudah terdaftar tidak dobel
func (h *ContactPublicController) Subscribe(c *fiber.Ctx) error {
	var req cDTO.SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.SubscriberEmail))

	var existing cModel.SubscriberModel
	err := h.DB.First(&existing, "subscriber_email = ?", email).Error
	if err == nil {
		if !existing.SubscriberIsActive {
			if err := h.DB.Model(&existing).
				Update("subscriber_is_active", true).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to subscribe")
			}
			existing.SubscriberIsActive = true
		}
		return helper.JsonOK(c, "You are already subscribed.", cDTO.NewSubscriberResponse(&existing))
	}

	m := &cModel.SubscriberModel{
		SubscriberEmail:    email,
		SubscriberIsActive: true,
	}
	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonOK(c, "You are already subscribed.", nil)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to subscribe")
	}

	return helper.JsonCreated(c, "Thanks for subscribing!", cDTO.NewSubscriberResponse(m))
}
