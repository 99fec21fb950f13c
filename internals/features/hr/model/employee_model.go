// internals/features/hr/model/employee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "nutriwell_backend/internals/features/users/user/model"
)

// Satu user maksimal punya satu record employee (uniqueIndex di FK).
// Employee ikut terhapus saat user-nya dihapus.
type EmployeeModel struct {
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey;column:employee_id" json:"employee_id"`

	EmployeeUserID uuid.UUID            `gorm:"type:uuid;uniqueIndex;not null;column:employee_user_id" json:"employee_user_id"`
	EmployeeUser   *userModel.UserModel `gorm:"foreignKey:EmployeeUserID;references:UserID;constraint:OnDelete:CASCADE" json:"employee_user,omitempty"`

	EmployeeCode string `gorm:"size:20;uniqueIndex;not null;column:employee_code" json:"employee_code"`

	EmployeeDepartmentID *uuid.UUID       `gorm:"type:uuid;column:employee_department_id" json:"employee_department_id,omitempty"`
	EmployeeDepartment   *DepartmentModel `gorm:"foreignKey:EmployeeDepartmentID;references:DepartmentID;constraint:OnDelete:SET NULL" json:"employee_department,omitempty"`

	EmployeePositionID *uuid.UUID     `gorm:"type:uuid;column:employee_position_id" json:"employee_position_id,omitempty"`
	EmployeePosition   *PositionModel `gorm:"foreignKey:EmployeePositionID;references:PositionID;constraint:OnDelete:SET NULL" json:"employee_position,omitempty"`

	EmployeePhone   *string `gorm:"size:30;column:employee_phone" json:"employee_phone,omitempty"`
	EmployeeAddress *string `gorm:"type:text;column:employee_address" json:"employee_address,omitempty"`

	EmployeeDateOfBirth *time.Time `gorm:"column:employee_date_of_birth" json:"employee_date_of_birth,omitempty"`
	EmployeeHireDate    *time.Time `gorm:"column:employee_hire_date" json:"employee_hire_date,omitempty"`

	EmployeeProfileImageURL *string `gorm:"column:employee_profile_image_url" json:"employee_profile_image_url,omitempty"`

	EmployeeIsActive bool `gorm:"not null;default:true;column:employee_is_active" json:"employee_is_active"`

	EmployeeCreatedAt time.Time `gorm:"column:employee_created_at;autoCreateTime" json:"employee_created_at"`
	EmployeeUpdatedAt time.Time `gorm:"column:employee_updated_at;autoUpdateTime" json:"employee_updated_at"`
}

func (EmployeeModel) TableName() string { return "employees" }

func (m *EmployeeModel) BeforeCreate(tx *gorm.DB) error {
	if m.EmployeeID == uuid.Nil {
		m.EmployeeID = uuid.New()
	}
	return nil
}
