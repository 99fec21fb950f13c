// internals/features/hr/model/position_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Posisi ikut terhapus saat department-nya dihapus.
type PositionModel struct {
	PositionID uuid.UUID `gorm:"type:uuid;primaryKey;column:position_id" json:"position_id"`

	PositionDepartmentID uuid.UUID        `gorm:"type:uuid;not null;index;column:position_department_id" json:"position_department_id"`
	PositionDepartment   *DepartmentModel `gorm:"foreignKey:PositionDepartmentID;references:DepartmentID;constraint:OnDelete:CASCADE" json:"position_department,omitempty"`

	PositionTitle       string  `gorm:"size:100;not null;column:position_title" json:"position_title"`
	PositionDescription *string `gorm:"type:text;column:position_description" json:"position_description,omitempty"`
	PositionIsActive    bool    `gorm:"not null;default:true;column:position_is_active" json:"position_is_active"`

	PositionCreatedAt time.Time `gorm:"column:position_created_at;autoCreateTime" json:"position_created_at"`
	PositionUpdatedAt time.Time `gorm:"column:position_updated_at;autoUpdateTime" json:"position_updated_at"`
}

func (PositionModel) TableName() string { return "positions" }

func (m *PositionModel) BeforeCreate(tx *gorm.DB) error {
	if m.PositionID == uuid.Nil {
		m.PositionID = uuid.New()
	}
	return nil
}
