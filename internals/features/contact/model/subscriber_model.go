// internals/features/contact/model/subscriber_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriberModel struct {
	SubscriberID uuid.UUID `gorm:"type:uuid;primaryKey;column:subscriber_id" json:"subscriber_id"`

	SubscriberEmail    string `gorm:"size:255;uniqueIndex;not null;column:subscriber_email" json:"subscriber_email"`
	SubscriberIsActive bool   `gorm:"not null;default:true;column:subscriber_is_active" json:"subscriber_is_active"`

	SubscriberCreatedAt time.Time `gorm:"column:subscriber_created_at;autoCreateTime" json:"subscriber_created_at"`
}

func (SubscriberModel) TableName() string { return "subscribers" }

func (m *SubscriberModel) BeforeCreate(tx *gorm.DB) error {
	if m.SubscriberID == uuid.Nil {
		m.SubscriberID = uuid.New()
	}
	return nil
}
