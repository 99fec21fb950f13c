// internals/features/site/model/team_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profil tim untuk halaman About.
type TeamModel struct {
	TeamID uuid.UUID `gorm:"type:uuid;primaryKey;column:team_id" json:"team_id"`

	TeamName        string  `gorm:"size:100;not null;column:team_name" json:"team_name"`
	TeamDesignation string  `gorm:"size:100;not null;column:team_designation" json:"team_designation"`
	TeamPictureURL  *string `gorm:"column:team_picture_url" json:"team_picture_url,omitempty"`
	TeamIsActive    bool    `gorm:"not null;default:true;column:team_is_active" json:"team_is_active"`

	TeamCreatedAt time.Time `gorm:"column:team_created_at;autoCreateTime" json:"team_created_at"`
	TeamUpdatedAt time.Time `gorm:"column:team_updated_at;autoUpdateTime" json:"team_updated_at"`
}

func (TeamModel) TableName() string { return "teams" }

func (m *TeamModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeamID == uuid.Nil {
		m.TeamID = uuid.New()
	}
	return nil
}
