// internals/features/contact/model/contact_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactModel struct {
	ContactID uuid.UUID `gorm:"type:uuid;primaryKey;column:contact_id" json:"contact_id"`

	ContactName    string  `gorm:"size:100;not null;column:contact_name" json:"contact_name"`
	ContactEmail   string  `gorm:"size:255;not null;column:contact_email" json:"contact_email"`
	ContactPhone   *string `gorm:"size:30;column:contact_phone" json:"contact_phone,omitempty"`
	ContactSubject string  `gorm:"size:200;not null;column:contact_subject" json:"contact_subject"`
	ContactMessage string  `gorm:"type:text;not null;column:contact_message" json:"contact_message"`

	// Pesan baru selalu masuk sebagai belum dibaca & belum dibalas
	ContactIsRead    bool    `gorm:"not null;default:false;column:contact_is_read" json:"contact_is_read"`
	ContactIsReplied bool    `gorm:"not null;default:false;column:contact_is_replied" json:"contact_is_replied"`
	ContactReplyNote *string `gorm:"type:text;column:contact_reply_note" json:"contact_reply_note,omitempty"`

	ContactCreatedAt time.Time `gorm:"column:contact_created_at;autoCreateTime" json:"contact_created_at"`
	ContactUpdatedAt time.Time `gorm:"column:contact_updated_at;autoUpdateTime" json:"contact_updated_at"`
}

func (ContactModel) TableName() string { return "contacts" }

func (m *ContactModel) BeforeCreate(tx *gorm.DB) error {
	if m.ContactID == uuid.Nil {
		m.ContactID = uuid.New()
	}
	return nil
}
