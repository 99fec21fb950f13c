// internals/features/contact/controller/contact_admin_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cDTO "nutriwell_backend/internals/features/contact/dto"
	cModel "nutriwell_backend/internals/features/contact/model"
	helper "nutriwell_backend/internals/helpers"
)

type ContactAdminController struct {
	DB *gorm.DB
}

func NewContactAdminController(db *gorm.DB) *ContactAdminController {
	return &ContactAdminController{DB: db}
}

/* ===================== INBOX ===================== */

// GET /dashboard/contacts/?is_read=&is_replied=&q=
func (h *ContactAdminController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	orderExpr, err := p.OrderExpr(map[string]string{
		"created_at": "contact_created_at",
		"name":       "lower(contact_name)",
		"subject":    "lower(contact_subject)",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown sort key")
	}

	dbq := h.DB.Model(&cModel.ContactModel{})
	if v := c.Query("is_read"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			dbq = dbq.Where("contact_is_read = ?", b)
		}
	}
	if v := c.Query("is_replied"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			dbq = dbq.Where("contact_is_replied = ?", b)
		}
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		dbq = dbq.Where(
			"LOWER(contact_name) LIKE ? OR LOWER(contact_email) LIKE ? OR LOWER(contact_subject) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count messages")
	}

	var rows []cModel.ContactModel
	if err := dbq.
		Order(orderExpr).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch messages")
	}

	var unread int64
	_ = h.DB.Model(&cModel.ContactModel{}).Where("contact_is_read = ?", false).Count(&unread).Error

	items := make([]*cDTO.ContactResponse, 0, len(rows))
	for i := range rows {
		items = append(items, cDTO.NewContactResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{
		"data":         items,
		"unread_count": unread,
		"pagination":   helper.BuildMeta(total, p),
	})
}

// GET /dashboard/contacts/:id/ — membuka pesan menandainya sudah dibaca
func (h *ContactAdminController) Detail(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return err
	}

	if !m.ContactIsRead {
		if err := h.DB.Model(m).Update("contact_is_read", true).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update message")
		}
		m.ContactIsRead = true
	}

	return c.JSON(fiber.Map{"data": cDTO.NewContactResponse(m)})
}

// POST /dashboard/contacts/:id/mark-responded/
func (h *ContactAdminController) MarkResponded(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return err
	}

	var req cDTO.MarkRespondedRequest
	_ = c.BodyParser(&req) // body opsional

	updates := map[string]interface{}{
		"contact_is_read":    true,
		"contact_is_replied": true,
	}
	if req.ContactReplyNote != nil {
		updates["contact_reply_note"] = *req.ContactReplyNote
	}
	if err := h.DB.Model(m).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update message")
	}
	m.ContactIsRead = true
	m.ContactIsReplied = true
	if req.ContactReplyNote != nil {
		m.ContactReplyNote = req.ContactReplyNote
	}

	return helper.JsonOK(c, "Message marked as responded", cDTO.NewContactResponse(m))
}

// POST /dashboard/contacts/:id/delete/
func (h *ContactAdminController) Delete(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete message")
	}
	return helper.JsonOK(c, "Message deleted successfully", fiber.Map{"id": m.ContactID})
}

/* ===================== SUBSCRIBERS ===================== */

// GET /dashboard/subscribers/
func (h *ContactAdminController) SubscriberList(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	dbq := h.DB.Model(&cModel.SubscriberModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		dbq = dbq.Where("LOWER(subscriber_email) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count subscribers")
	}

	var rows []cModel.SubscriberModel
	if err := dbq.
		Order("subscriber_created_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch subscribers")
	}

	items := make([]*cDTO.SubscriberResponse, 0, len(rows))
	for i := range rows {
		items = append(items, cDTO.NewSubscriberResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": helper.BuildMeta(total, p)})
}

// POST /dashboard/subscribers/:id/delete/
func (h *ContactAdminController) SubscriberDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}
	var m cModel.SubscriberModel
	if err := h.DB.First(&m, "subscriber_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Subscriber not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch subscriber")
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete subscriber")
	}
	return helper.JsonOK(c, "Subscriber deleted successfully", fiber.Map{"id": m.SubscriberID})
}

/* ===================== HELPERS ===================== */

func (h *ContactAdminController) findByID(c *fiber.Ctx) (*cModel.ContactModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}
	var m cModel.ContactModel
	if err := h.DB.First(&m, "contact_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Message not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch message")
	}
	return &m, nil
}
