// internals/features/hr/controller/department_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	hrDTO "nutriwell_backend/internals/features/hr/dto"
	hrModel "nutriwell_backend/internals/features/hr/model"
	helper "nutriwell_backend/internals/helpers"
)

var validate = validator.New()

type DepartmentController struct {
	DB *gorm.DB
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db}
}

/* ===================== DEPARTMENTS ===================== */

// GET /dashboard/hr/departments/ — dengan jumlah posisi & karyawan
func (h *DepartmentController) List(c *fiber.Ctx) error {
	var rows []hrModel.DepartmentModel
	if err := h.DB.Order("department_name ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch departments")
	}

	items := make([]*hrDTO.DepartmentResponse, 0, len(rows))
	for i := range rows {
		resp := hrDTO.NewDepartmentResponse(&rows[i])
		var posCount, empCount int64
		_ = h.DB.Model(&hrModel.PositionModel{}).
			Where("position_department_id = ?", rows[i].DepartmentID).
			Count(&posCount).Error
		_ = h.DB.Model(&hrModel.EmployeeModel{}).
			Where("employee_department_id = ?", rows[i].DepartmentID).
			Count(&empCount).Error
		resp.PositionCount = posCount
		resp.EmployeeCount = empCount
		items = append(items, resp)
	}
	return c.JSON(fiber.Map{"data": items})
}

// POST /dashboard/hr/departments/create/
func (h *DepartmentController) Create(c *fiber.Ctx) error {
	var req hrDTO.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create department")
	}
	return helper.JsonCreated(c, "Department created successfully", hrDTO.NewDepartmentResponse(m))
}

// POST /dashboard/hr/departments/:id/edit/
func (h *DepartmentController) Edit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req hrDTO.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.findDepartmentByID(id)
	if err != nil {
		return err
	}
	req.ApplyToModel(m)

	if err := h.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update department")
	}
	return helper.JsonOK(c, "Department updated successfully", hrDTO.NewDepartmentResponse(m))
}

// POST /dashboard/hr/departments/:id/delete/
// Posisi di bawahnya ikut terhapus; karyawan hanya dilepas department-nya.
func (h *DepartmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}
	m, err := h.findDepartmentByID(id)
	if err != nil {
		return err
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		// Karyawan dengan posisi di department ini dilepas posisinya
		if err := tx.Model(&hrModel.EmployeeModel{}).
			Where("employee_position_id IN (?)",
				tx.Model(&hrModel.PositionModel{}).
					Select("position_id").
					Where("position_department_id = ?", id)).
			Update("employee_position_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&hrModel.EmployeeModel{}).
			Where("employee_department_id = ?", id).
			Update("employee_department_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("position_department_id = ?", id).
			Delete(&hrModel.PositionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete department")
	}
	return helper.JsonOK(c, "Department deleted successfully", fiber.Map{"id": m.DepartmentID})
}

/* ===================== POSITIONS ===================== */

// GET /dashboard/hr/positions/?department=<id>
func (h *DepartmentController) PositionList(c *fiber.Ctx) error {
	dbq := h.DB.Model(&hrModel.PositionModel{})
	if v := c.Query("department"); v != "" {
		if depID, err := uuid.Parse(v); err == nil {
			dbq = dbq.Where("position_department_id = ?", depID)
		}
	}

	var rows []hrModel.PositionModel
	if err := dbq.
		Preload("PositionDepartment").
		Order("position_title ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch positions")
	}

	items := make([]*hrDTO.PositionResponse, 0, len(rows))
	for i := range rows {
		items = append(items, hrDTO.NewPositionResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// POST /dashboard/hr/positions/create/
func (h *DepartmentController) PositionCreate(c *fiber.Ctx) error {
	var req hrDTO.CreatePositionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if _, err := h.findDepartmentByID(req.PositionDepartmentID); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Department not found")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create position")
	}
	return helper.JsonCreated(c, "Position created successfully", hrDTO.NewPositionResponse(m))
}

// POST /dashboard/hr/positions/:id/edit/
func (h *DepartmentController) PositionEdit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req hrDTO.UpdatePositionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m hrModel.PositionModel
	if err := h.DB.First(&m, "position_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Position not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch position")
	}

	if req.PositionDepartmentID != nil {
		if _, err := h.findDepartmentByID(*req.PositionDepartmentID); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Department not found")
		}
	}
	req.ApplyToModel(&m)

	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update position")
	}
	return helper.JsonOK(c, "Position updated successfully", hrDTO.NewPositionResponse(&m))
}

// POST /dashboard/hr/positions/:id/delete/
func (h *DepartmentController) PositionDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}
	var m hrModel.PositionModel
	if err := h.DB.First(&m, "position_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Position not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch position")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&hrModel.EmployeeModel{}).
			Where("employee_position_id = ?", id).
			Update("employee_position_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete position")
	}
	return helper.JsonOK(c, "Position deleted successfully", fiber.Map{"id": m.PositionID})
}

/* ===================== HELPERS ===================== */

func (h *DepartmentController) findDepartmentByID(id uuid.UUID) (*hrModel.DepartmentModel, error) {
	var m hrModel.DepartmentModel
	if err := h.DB.First(&m, "department_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Department not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch department")
	}
	return &m, nil
}
