// internals/features/users/user/model/group_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GroupModel: grup akses sederhana. Permissions disimpan sebagai array
// codename JSON (mis. ["news.add", "products.change"]).
type GroupModel struct {
	GroupID uuid.UUID `gorm:"type:uuid;primaryKey;column:group_id" json:"group_id"`

	GroupName        string         `gorm:"size:150;uniqueIndex;not null;column:group_name" json:"group_name"`
	GroupPermissions datatypes.JSON `gorm:"column:group_permissions" json:"group_permissions,omitempty"`

	GroupCreatedAt time.Time `gorm:"column:group_created_at;autoCreateTime" json:"group_created_at"`
	GroupUpdatedAt time.Time `gorm:"column:group_updated_at;autoUpdateTime" json:"group_updated_at"`
}

func (GroupModel) TableName() string { return "groups" }

func (g *GroupModel) BeforeCreate(tx *gorm.DB) error {
	if g.GroupID == uuid.Nil {
		g.GroupID = uuid.New()
	}
	return nil
}
