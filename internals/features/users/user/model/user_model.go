// internals/features/users/user/model/user_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users.
// is_staff membuka akses dashboard; is_active menonaktifkan login.
type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`

	UserName      string  `gorm:"size:50;uniqueIndex;not null;column:user_name" json:"user_name"`
	UserEmail     string  `gorm:"size:255;uniqueIndex;not null;column:user_email" json:"user_email"`
	UserFirstName *string `gorm:"size:100;column:user_first_name" json:"user_first_name,omitempty"`
	UserLastName  *string `gorm:"size:100;column:user_last_name" json:"user_last_name,omitempty"`

	// Hash bcrypt; tidak pernah ikut response
	UserPassword string `gorm:"not null;column:user_password" json:"-"`

	UserIsStaff  bool `gorm:"not null;default:false;column:user_is_staff" json:"user_is_staff"`
	UserIsActive bool `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserGroups []GroupModel `gorm:"many2many:user_groups;foreignKey:UserID;joinForeignKey:UserID;references:GroupID;joinReferences:GroupID" json:"user_groups,omitempty"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}

// FullName: "first last", fallback username.
func (u *UserModel) FullName() string {
	parts := make([]string, 0, 2)
	if u.UserFirstName != nil && strings.TrimSpace(*u.UserFirstName) != "" {
		parts = append(parts, strings.TrimSpace(*u.UserFirstName))
	}
	if u.UserLastName != nil && strings.TrimSpace(*u.UserLastName) != "" {
		parts = append(parts, strings.TrimSpace(*u.UserLastName))
	}
	if len(parts) == 0 {
		return u.UserName
	}
	return strings.Join(parts, " ")
}
