// internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authHelper "nutriwell_backend/internals/features/users/auth/helper"
	uDTO "nutriwell_backend/internals/features/users/user/dto"
	uModel "nutriwell_backend/internals/features/users/user/model"
	helper "nutriwell_backend/internals/helpers"
	authMw "nutriwell_backend/internals/middlewares/auth"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

/* ===================== HANDLERS ===================== */

// GET /dashboard/users/
func (h *UserController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	orderExpr, err := p.OrderExpr(map[string]string{
		"created_at": "user_created_at",
		"username":   "lower(user_name)",
		"email":      "lower(user_email)",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown sort key")
	}

	dbq := h.DB.Model(&uModel.UserModel{})
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		needle := "%" + strings.ToLower(v) + "%"
		dbq = dbq.Where("LOWER(user_name) LIKE ? OR LOWER(user_email) LIKE ?", needle, needle)
	}
	if v := c.Query("is_staff"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			dbq = dbq.Where("user_is_staff = ?", b)
		}
	}
	if v := c.Query("is_active"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			dbq = dbq.Where("user_is_active = ?", b)
		}
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count users")
	}

	var rows []uModel.UserModel
	if err := dbq.
		Preload("UserGroups").
		Order(orderExpr).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch users")
	}

	items := make([]*uDTO.UserResponse, 0, len(rows))
	for i := range rows {
		items = append(items, uDTO.NewUserResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": helper.BuildMeta(total, p)})
}

// POST /dashboard/users/create/
func (h *UserController) Create(c *fiber.Ctx) error {
	var req uDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.UserName = strings.TrimSpace(req.UserName)
	req.UserEmail = strings.TrimSpace(strings.ToLower(req.UserEmail))

	if taken, err := h.identifierTaken("user_name", req.UserName, nil); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check username")
	} else if taken {
		return fiber.NewError(fiber.StatusBadRequest, "Username already taken")
	}
	if taken, err := h.identifierTaken("user_email", req.UserEmail, nil); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check email")
	} else if taken {
		return fiber.NewError(fiber.StatusBadRequest, "Email already registered")
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Password hashing failed")
	}

	m := req.ToModel()
	m.UserPassword = hash
	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Username or email already registered")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}

	if len(req.GroupIDs) > 0 {
		if err := h.replaceGroups(m, req.GroupIDs); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign groups")
		}
	}

	return helper.JsonCreated(c, "User created successfully", uDTO.NewUserResponse(m))
}

// POST /dashboard/users/:id/edit/
func (h *UserController) Edit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req uDTO.UpdateUserRequest
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

	if req.UserName != nil {
		name := strings.TrimSpace(*req.UserName)
		if taken, err := h.identifierTaken("user_name", name, &id); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check username")
		} else if taken {
			return fiber.NewError(fiber.StatusBadRequest, "Username already taken")
		}
		req.UserName = &name
	}
	if req.UserEmail != nil {
		email := strings.TrimSpace(strings.ToLower(*req.UserEmail))
		if taken, err := h.identifierTaken("user_email", email, &id); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check email")
		} else if taken {
			return fiber.NewError(fiber.StatusBadRequest, "Email already registered")
		}
		req.UserEmail = &email
	}

	req.ApplyToModel(m)

	// Password hanya diganti kalau dikirim non-empty
	if req.Password != nil && *req.Password != "" {
		hash, err := authHelper.HashPassword(*req.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Password hashing failed")
		}
		m.UserPassword = hash
	}

	if err := h.DB.Save(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Username or email already registered")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update user")
	}

	if req.GroupIDs != nil {
		if err := h.replaceGroups(m, *req.GroupIDs); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update groups")
		}
	}

	return helper.JsonOK(c, "User updated successfully", uDTO.NewUserResponse(m))
}

// POST /dashboard/users/:id/delete/
// Staff tidak boleh menghapus akunnya sendiri.
func (h *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	if currentID, err := authMw.CurrentUserID(c); err == nil && currentID == id {
		return fiber.NewError(fiber.StatusBadRequest, "You cannot delete your own account")
	}

	m, err := h.findByID(id)
	if err != nil {
		return err
	}

	if err := h.DB.Select("UserGroups").Delete(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete user")
	}
	return helper.JsonOK(c, "User deleted successfully", fiber.Map{"id": m.UserID})
}

/* ===================== HELPERS ===================== */

func (h *UserController) findByID(id uuid.UUID) (*uModel.UserModel, error) {
	var m uModel.UserModel
	if err := h.DB.Preload("UserGroups").First(&m, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return &m, nil
}

func (h *UserController) identifierTaken(column, value string, excludeID *uuid.UUID) (bool, error) {
	q := h.DB.Model(&uModel.UserModel{}).
		Where("LOWER("+column+") = ?", strings.ToLower(value))
	if excludeID != nil {
		q = q.Where("user_id <> ?", *excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (h *UserController) replaceGroups(m *uModel.UserModel, groupIDs []uuid.UUID) error {
	var groups []uModel.GroupModel
	if len(groupIDs) > 0 {
		if err := h.DB.Find(&groups, "group_id IN ?", groupIDs).Error; err != nil {
			return err
		}
	}
	return h.DB.Model(m).Association("UserGroups").Replace(groups)
}
