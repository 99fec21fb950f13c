// internals/features/site/model/city_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kota jangkauan distribusi; nama unik.
type CityModel struct {
	CityID uuid.UUID `gorm:"type:uuid;primaryKey;column:city_id" json:"city_id"`

	CityName     string `gorm:"size:100;uniqueIndex;not null;column:city_name" json:"city_name"`
	CityIsActive bool   `gorm:"not null;default:true;column:city_is_active" json:"city_is_active"`

	CityCreatedAt time.Time `gorm:"column:city_created_at;autoCreateTime" json:"city_created_at"`
	CityUpdatedAt time.Time `gorm:"column:city_updated_at;autoUpdateTime" json:"city_updated_at"`
}

func (CityModel) TableName() string { return "cities" }

func (m *CityModel) BeforeCreate(tx *gorm.DB) error {
	if m.CityID == uuid.Nil {
		m.CityID = uuid.New()
	}
	return nil
}
