// internals/features/hr/controller/employee_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	hrDTO "nutriwell_backend/internals/features/hr/dto"
	hrModel "nutriwell_backend/internals/features/hr/model"
	userDTO "nutriwell_backend/internals/features/users/user/dto"
	userModel "nutriwell_backend/internals/features/users/user/model"
	helper "nutriwell_backend/internals/helpers"
)

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

// GET /dashboard/hr/employees/?department=&is_active=&q=
func (h *EmployeeController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	orderExpr, err := p.OrderExpr(map[string]string{
		"created_at": "employee_created_at",
		"code":       "employee_code",
		"hire_date":  "employee_hire_date",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown sort key")
	}

	dbq := h.DB.Model(&hrModel.EmployeeModel{})
	if v := c.Query("department"); v != "" {
		if depID, err := uuid.Parse(v); err == nil {
			dbq = dbq.Where("employee_department_id = ?", depID)
		}
	}
	if v := c.Query("is_active"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			dbq = dbq.Where("employee_is_active = ?", b)
		}
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		dbq = dbq.Where(
			"LOWER(employee_code) LIKE ? OR employee_user_id IN (?)",
			like,
			h.DB.Model(&userModel.UserModel{}).
				Select("user_id").
				Where("LOWER(user_name) LIKE ? OR LOWER(user_email) LIKE ?", like, like),
		)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count employees")
	}

	var rows []hrModel.EmployeeModel
	if err := dbq.
		Preload("EmployeeUser").
		Preload("EmployeeDepartment").
		Preload("EmployeePosition").
		Order(orderExpr).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch employees")
	}

	items := make([]*hrDTO.EmployeeResponse, 0, len(rows))
	for i := range rows {
		items = append(items, hrDTO.NewEmployeeResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": helper.BuildMeta(total, p)})
}

// GET /dashboard/hr/employees/available-users/
// User yang belum punya record employee, untuk form create.
func (h *EmployeeController) AvailableUsers(c *fiber.Ctx) error {
	var rows []userModel.UserModel
	if err := h.DB.
		Where("user_id NOT IN (?)",
			h.DB.Model(&hrModel.EmployeeModel{}).Select("employee_user_id")).
		Order("user_name ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch users")
	}

	items := make([]*userDTO.UserResponse, 0, len(rows))
	for i := range rows {
		items = append(items, userDTO.NewUserResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// POST /dashboard/hr/employees/create/ (multipart: profile_image)
func (h *EmployeeController) Create(c *fiber.Ctx) error {
	var req hrDTO.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, "user_id = ?", req.EmployeeUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}

	// Satu user satu employee
	var existing int64
	if err := h.DB.Model(&hrModel.EmployeeModel{}).
		Where("employee_user_id = ?", req.EmployeeUserID).
		Count(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check employee")
	}
	if existing > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "This user already has an employee record")
	}

	m := req.ToModel()

	var codeCount int64
	if err := h.DB.Model(&hrModel.EmployeeModel{}).
		Where("employee_code = ?", m.EmployeeCode).
		Count(&codeCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check employee code")
	}
	if codeCount > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Employee code already in use")
	}

	var savedURL string
	if fh, err := c.FormFile("profile_image"); err == nil && fh != nil {
		if err := helper.ValidateUploadSize(fh); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		url, err := helper.SaveImage("employees", fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		m.EmployeeProfileImageURL = &url
		savedURL = url
	}

	if err := h.DB.Create(m).Error; err != nil {
		if savedURL != "" {
			_ = helper.RemoveByURL(savedURL)
		}
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Employee code or user already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create employee")
	}

	m.EmployeeUser = &user
	return helper.JsonCreated(c, "Employee created successfully", hrDTO.NewEmployeeResponse(m))
}

// POST /dashboard/hr/employees/:id/edit/
func (h *EmployeeController) Edit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req hrDTO.UpdateEmployeeRequest
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

	oldCode := m.EmployeeCode
	req.ApplyToModel(m)

	if m.EmployeeCode != oldCode {
		var codeCount int64
		if err := h.DB.Model(&hrModel.EmployeeModel{}).
			Where("employee_code = ? AND employee_id <> ?", m.EmployeeCode, id).
			Count(&codeCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check employee code")
		}
		if codeCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Employee code already in use")
		}
	}

	oldImage := m.EmployeeProfileImageURL
	var savedURL string
	if fh, err := c.FormFile("profile_image"); err == nil && fh != nil {
		url, err := helper.SaveImage("employees", fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		m.EmployeeProfileImageURL = &url
		savedURL = url
	}

	if err := h.DB.Save(m).Error; err != nil {
		if savedURL != "" {
			_ = helper.RemoveByURL(savedURL)
		}
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Employee code already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update employee")
	}

	if savedURL != "" && oldImage != nil && *oldImage != savedURL {
		_ = helper.RemoveByURL(*oldImage)
	}

	return helper.JsonOK(c, "Employee updated successfully", hrDTO.NewEmployeeResponse(m))
}

// POST /dashboard/hr/employees/:id/delete/
// Hanya record employee yang dihapus; akun user tetap ada.
func (h *EmployeeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete employee")
	}
	if m.EmployeeProfileImageURL != nil {
		_ = helper.RemoveByURL(*m.EmployeeProfileImageURL)
	}
	return helper.JsonOK(c, "Employee deleted successfully", fiber.Map{"id": m.EmployeeID})
}

func (h *EmployeeController) findByID(id uuid.UUID) (*hrModel.EmployeeModel, error) {
	var m hrModel.EmployeeModel
	if err := h.DB.
		Preload("EmployeeUser").
		Preload("EmployeeDepartment").
		Preload("EmployeePosition").
		First(&m, "employee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Employee not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch employee")
	}
	return &m, nil
}
