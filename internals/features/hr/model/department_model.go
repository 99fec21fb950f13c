// internals/features/hr/model/department_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartmentModel struct {
	DepartmentID uuid.UUID `gorm:"type:uuid;primaryKey;column:department_id" json:"department_id"`

	DepartmentName        string  `gorm:"size:100;not null;column:department_name" json:"department_name"`
	DepartmentDescription *string `gorm:"type:text;column:department_description" json:"department_description,omitempty"`
	DepartmentIsActive    bool    `gorm:"not null;default:true;column:department_is_active" json:"department_is_active"`

	DepartmentCreatedAt time.Time `gorm:"column:department_created_at;autoCreateTime" json:"department_created_at"`
	DepartmentUpdatedAt time.Time `gorm:"column:department_updated_at;autoUpdateTime" json:"department_updated_at"`
}

func (DepartmentModel) TableName() string { return "departments" }

func (m *DepartmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.DepartmentID == uuid.Nil {
		m.DepartmentID = uuid.New()
	}
	return nil
}
