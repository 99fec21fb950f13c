// internals/features/hr/dto/hr_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	hrModel "nutriwell_backend/internals/features/hr/model"
)

/* ===================== DEPARTMENT ===================== */

type CreateDepartmentRequest struct {
	DepartmentName        string  `json:"department_name" form:"department_name" validate:"required,min=2,max=100"`
	DepartmentDescription *string `json:"department_description" form:"department_description" validate:"omitempty"`
	DepartmentIsActive    *bool   `json:"department_is_active" form:"department_is_active" validate:"omitempty"`
}

func (r *CreateDepartmentRequest) ToModel() *hrModel.DepartmentModel {
	m := &hrModel.DepartmentModel{
		DepartmentName:        strings.TrimSpace(r.DepartmentName),
		DepartmentDescription: r.DepartmentDescription,
		DepartmentIsActive:    true,
	}
	if r.DepartmentIsActive != nil {
		m.DepartmentIsActive = *r.DepartmentIsActive
	}
	return m
}

type UpdateDepartmentRequest struct {
	DepartmentName        *string `json:"department_name" form:"department_name" validate:"omitempty,min=2,max=100"`
	DepartmentDescription *string `json:"department_description" form:"department_description" validate:"omitempty"`
	DepartmentIsActive    *bool   `json:"department_is_active" form:"department_is_active" validate:"omitempty"`
}

func (r *UpdateDepartmentRequest) ApplyToModel(m *hrModel.DepartmentModel) {
	if r.DepartmentName != nil {
		m.DepartmentName = strings.TrimSpace(*r.DepartmentName)
	}
	if r.DepartmentDescription != nil {
		m.DepartmentDescription = r.DepartmentDescription
	}
	if r.DepartmentIsActive != nil {
		m.DepartmentIsActive = *r.DepartmentIsActive
	}
}

type DepartmentResponse struct {
	DepartmentID          uuid.UUID `json:"department_id"`
	DepartmentName        string    `json:"department_name"`
	DepartmentDescription *string   `json:"department_description,omitempty"`
	DepartmentIsActive    bool      `json:"department_is_active"`
	PositionCount         int64     `json:"position_count,omitempty"`
	EmployeeCount         int64     `json:"employee_count,omitempty"`
	DepartmentCreatedAt   time.Time `json:"department_created_at"`
}

func NewDepartmentResponse(m *hrModel.DepartmentModel) *DepartmentResponse {
	if m == nil {
		return nil
	}
	return &DepartmentResponse{
		DepartmentID:          m.DepartmentID,
		DepartmentName:        m.DepartmentName,
		DepartmentDescription: m.DepartmentDescription,
		DepartmentIsActive:    m.DepartmentIsActive,
		DepartmentCreatedAt:   m.DepartmentCreatedAt,
	}
}

/* ===================== POSITION ===================== */

type CreatePositionRequest struct {
	PositionDepartmentID uuid.UUID `json:"position_department_id" form:"position_department_id" validate:"required"`
	PositionTitle        string    `json:"position_title" form:"position_title" validate:"required,min=2,max=100"`
	PositionDescription  *string   `json:"position_description" form:"position_description" validate:"omitempty"`
	PositionIsActive     *bool     `json:"position_is_active" form:"position_is_active" validate:"omitempty"`
}

func (r *CreatePositionRequest) ToModel() *hrModel.PositionModel {
	m := &hrModel.PositionModel{
		PositionDepartmentID: r.PositionDepartmentID,
		PositionTitle:        strings.TrimSpace(r.PositionTitle),
		PositionDescription:  r.PositionDescription,
		PositionIsActive:     true,
	}
	if r.PositionIsActive != nil {
		m.PositionIsActive = *r.PositionIsActive
	}
	return m
}

type UpdatePositionRequest struct {
	PositionDepartmentID *uuid.UUID `json:"position_department_id" form:"position_department_id" validate:"omitempty"`
	PositionTitle        *string    `json:"position_title" form:"position_title" validate:"omitempty,min=2,max=100"`
	PositionDescription  *string    `json:"position_description" form:"position_description" validate:"omitempty"`
	PositionIsActive     *bool      `json:"position_is_active" form:"position_is_active" validate:"omitempty"`
}

func (r *UpdatePositionRequest) ApplyToModel(m *hrModel.PositionModel) {
	if r.PositionDepartmentID != nil {
		m.PositionDepartmentID = *r.PositionDepartmentID
	}
	if r.PositionTitle != nil {
		m.PositionTitle = strings.TrimSpace(*r.PositionTitle)
	}
	if r.PositionDescription != nil {
		m.PositionDescription = r.PositionDescription
	}
	if r.PositionIsActive != nil {
		m.PositionIsActive = *r.PositionIsActive
	}
}

type PositionResponse struct {
	PositionID           uuid.UUID           `json:"position_id"`
	PositionDepartmentID uuid.UUID           `json:"position_department_id"`
	PositionDepartment   *DepartmentResponse `json:"position_department,omitempty"`
	PositionTitle        string              `json:"position_title"`
	PositionDescription  *string             `json:"position_description,omitempty"`
	PositionIsActive     bool                `json:"position_is_active"`
	PositionCreatedAt    time.Time           `json:"position_created_at"`
}

func NewPositionResponse(m *hrModel.PositionModel) *PositionResponse {
	if m == nil {
		return nil
	}
	resp := &PositionResponse{
		PositionID:           m.PositionID,
		PositionDepartmentID: m.PositionDepartmentID,
		PositionTitle:        m.PositionTitle,
		PositionDescription:  m.PositionDescription,
		PositionIsActive:     m.PositionIsActive,
		PositionCreatedAt:    m.PositionCreatedAt,
	}
	if m.PositionDepartment != nil {
		resp.PositionDepartment = NewDepartmentResponse(m.PositionDepartment)
	}
	return resp
}

/* ===================== EMPLOYEE ===================== */

type CreateEmployeeRequest struct {
	EmployeeUserID uuid.UUID `json:"employee_user_id" form:"employee_user_id" validate:"required"`
	EmployeeCode   string    `json:"employee_code" form:"employee_code" validate:"required,min=2,max=20"`

	EmployeeDepartmentID *uuid.UUID `json:"employee_department_id" form:"employee_department_id" validate:"omitempty"`
	EmployeePositionID   *uuid.UUID `json:"employee_position_id" form:"employee_position_id" validate:"omitempty"`

	EmployeePhone   *string `json:"employee_phone" form:"employee_phone" validate:"omitempty,max=30"`
	EmployeeAddress *string `json:"employee_address" form:"employee_address" validate:"omitempty"`

	EmployeeDateOfBirth *string `json:"employee_date_of_birth" form:"employee_date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	EmployeeHireDate    *string `json:"employee_hire_date" form:"employee_hire_date" validate:"omitempty,datetime=2006-01-02"`

	EmployeeIsActive *bool `json:"employee_is_active" form:"employee_is_active" validate:"omitempty"`
}

func (r *CreateEmployeeRequest) ToModel() *hrModel.EmployeeModel {
	m := &hrModel.EmployeeModel{
		EmployeeUserID:       r.EmployeeUserID,
		EmployeeCode:         strings.ToUpper(strings.TrimSpace(r.EmployeeCode)),
		EmployeeDepartmentID: r.EmployeeDepartmentID,
		EmployeePositionID:   r.EmployeePositionID,
		EmployeePhone:        r.EmployeePhone,
		EmployeeAddress:      r.EmployeeAddress,
		EmployeeIsActive:     true,
	}
	if r.EmployeeDateOfBirth != nil {
		if t, err := time.Parse("2006-01-02", *r.EmployeeDateOfBirth); err == nil {
			m.EmployeeDateOfBirth = &t
		}
	}
	if r.EmployeeHireDate != nil {
		if t, err := time.Parse("2006-01-02", *r.EmployeeHireDate); err == nil {
			m.EmployeeHireDate = &t
		}
	}
	if r.EmployeeIsActive != nil {
		m.EmployeeIsActive = *r.EmployeeIsActive
	}
	return m
}

type UpdateEmployeeRequest struct {
	EmployeeCode *string `json:"employee_code" form:"employee_code" validate:"omitempty,min=2,max=20"`

	EmployeeDepartmentID *uuid.UUID `json:"employee_department_id" form:"employee_department_id" validate:"omitempty"`
	EmployeePositionID   *uuid.UUID `json:"employee_position_id" form:"employee_position_id" validate:"omitempty"`

	EmployeePhone   *string `json:"employee_phone" form:"employee_phone" validate:"omitempty,max=30"`
	EmployeeAddress *string `json:"employee_address" form:"employee_address" validate:"omitempty"`

	EmployeeDateOfBirth *string `json:"employee_date_of_birth" form:"employee_date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	EmployeeHireDate    *string `json:"employee_hire_date" form:"employee_hire_date" validate:"omitempty,datetime=2006-01-02"`

	EmployeeIsActive *bool `json:"employee_is_active" form:"employee_is_active" validate:"omitempty"`
}

func (r *UpdateEmployeeRequest) ApplyToModel(m *hrModel.EmployeeModel) {
	if r.EmployeeCode != nil && *r.EmployeeCode != "" {
		m.EmployeeCode = strings.ToUpper(strings.TrimSpace(*r.EmployeeCode))
	}
	if r.EmployeeDepartmentID != nil {
		m.EmployeeDepartmentID = r.EmployeeDepartmentID
	}
	if r.EmployeePositionID != nil {
		m.EmployeePositionID = r.EmployeePositionID
	}
	if r.EmployeePhone != nil {
		m.EmployeePhone = r.EmployeePhone
	}
	if r.EmployeeAddress != nil {
		m.EmployeeAddress = r.EmployeeAddress
	}
	if r.EmployeeDateOfBirth != nil {
		if t, err := time.Parse("2006-01-02", *r.EmployeeDateOfBirth); err == nil {
			m.EmployeeDateOfBirth = &t
		}
	}
	if r.EmployeeHireDate != nil {
		if t, err := time.Parse("2006-01-02", *r.EmployeeHireDate); err == nil {
			m.EmployeeHireDate = &t
		}
	}
	if r.EmployeeIsActive != nil {
		m.EmployeeIsActive = *r.EmployeeIsActive
	}
}

type EmployeeResponse struct {
	EmployeeID     uuid.UUID `json:"employee_id"`
	EmployeeUserID uuid.UUID `json:"employee_user_id"`
	EmployeeName   *string   `json:"employee_name,omitempty"`
	EmployeeEmail  *string   `json:"employee_email,omitempty"`
	EmployeeCode   string    `json:"employee_code"`

	EmployeeDepartmentID *uuid.UUID          `json:"employee_department_id,omitempty"`
	EmployeeDepartment   *DepartmentResponse `json:"employee_department,omitempty"`
	EmployeePositionID   *uuid.UUID          `json:"employee_position_id,omitempty"`
	EmployeePosition     *PositionResponse   `json:"employee_position,omitempty"`

	EmployeePhone   *string `json:"employee_phone,omitempty"`
	EmployeeAddress *string `json:"employee_address,omitempty"`

	EmployeeDateOfBirth *time.Time `json:"employee_date_of_birth,omitempty"`
	EmployeeHireDate    *time.Time `json:"employee_hire_date,omitempty"`

	EmployeeProfileImageURL *string `json:"employee_profile_image_url,omitempty"`

	EmployeeIsActive  bool      `json:"employee_is_active"`
	EmployeeCreatedAt time.Time `json:"employee_created_at"`
}

func NewEmployeeResponse(m *hrModel.EmployeeModel) *EmployeeResponse {
	if m == nil {
		return nil
	}
	resp := &EmployeeResponse{
		EmployeeID:              m.EmployeeID,
		EmployeeUserID:          m.EmployeeUserID,
		EmployeeCode:            m.EmployeeCode,
		EmployeeDepartmentID:    m.EmployeeDepartmentID,
		EmployeePositionID:      m.EmployeePositionID,
		EmployeePhone:           m.EmployeePhone,
		EmployeeAddress:         m.EmployeeAddress,
		EmployeeDateOfBirth:     m.EmployeeDateOfBirth,
		EmployeeHireDate:        m.EmployeeHireDate,
		EmployeeProfileImageURL: m.EmployeeProfileImageURL,
		EmployeeIsActive:        m.EmployeeIsActive,
		EmployeeCreatedAt:       m.EmployeeCreatedAt,
	}
	if m.EmployeeUser != nil {
		name := m.EmployeeUser.FullName()
		resp.EmployeeName = &name
		resp.EmployeeEmail = &m.EmployeeUser.UserEmail
	}
	if m.EmployeeDepartment != nil {
		resp.EmployeeDepartment = NewDepartmentResponse(m.EmployeeDepartment)
	}
	if m.EmployeePosition != nil {
		resp.EmployeePosition = NewPositionResponse(m.EmployeePosition)
	}
	return resp
}
