// internals/features/users/user/controller/group_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	uDTO "nutriwell_backend/internals/features/users/user/dto"
	uModel "nutriwell_backend/internals/features/users/user/model"
	helper "nutriwell_backend/internals/helpers"
)

type GroupController struct {
	DB *gorm.DB
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db}
}

/* ===================== HANDLERS ===================== */

// GET /dashboard/users/groups/ — list dengan jumlah anggota
func (h *GroupController) List(c *fiber.Ctx) error {
	var rows []uModel.GroupModel
	if err := h.DB.Order("group_name ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch groups")
	}

	items := make([]*uDTO.GroupResponse, 0, len(rows))
	for i := range rows {
		resp := uDTO.NewGroupResponse(&rows[i])
		var count int64
		if err := h.DB.Table("user_groups").
			Where("group_id = ?", rows[i].GroupID).
			Count(&count).Error; err == nil {
			resp.UserCount = count
		}
		items = append(items, resp)
	}
	return c.JSON(fiber.Map{"data": items})
}

// POST /dashboard/users/groups/create/
func (h *GroupController) Create(c *fiber.Ctx) error {
	var req uDTO.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.GroupName = strings.TrimSpace(req.GroupName)

	var count int64
	if err := h.DB.Model(&uModel.GroupModel{}).
		Where("LOWER(group_name) = ?", strings.ToLower(req.GroupName)).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check group name")
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Group name already exists")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Group name already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create group")
	}
	return helper.JsonCreated(c, "Group created successfully", uDTO.NewGroupResponse(m))
}

// POST /dashboard/users/groups/:id/edit/
func (h *GroupController) Edit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req uDTO.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.findByID(id)
	if err != nil {
		return err
	}

	if req.GroupName != nil {
		name := strings.TrimSpace(*req.GroupName)
		var count int64
		if err := h.DB.Model(&uModel.GroupModel{}).
			Where("LOWER(group_name) = ? AND group_id <> ?", strings.ToLower(name), id).
			Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check group name")
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Group name already exists")
		}
		req.GroupName = &name
	}

	req.ApplyToModel(m)
	if err := h.DB.Save(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Group name already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update group")
	}
	return helper.JsonOK(c, "Group updated successfully", uDTO.NewGroupResponse(m))
}

// POST /dashboard/users/groups/:id/delete/
func (h *GroupController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete group")
	}
	return helper.JsonOK(c, "Group deleted successfully", fiber.Map{"id": m.GroupID})
}

/* ===================== HELPERS ===================== */

func (h *GroupController) findByID(id uuid.UUID) (*uModel.GroupModel, error) {
	var m uModel.GroupModel
	if err := h.DB.First(&m, "group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Group not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch group")
	}
	return &m, nil
}
