// internals/features/contact/dto/contact_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	cModel "nutriwell_backend/internals/features/contact/model"
)

/* ===================== REQUESTS ===================== */

type CreateContactRequest struct {
	ContactName    string  `json:"contact_name" form:"contact_name" validate:"required,min=2,max=100"`
	ContactEmail   string  `json:"contact_email" form:"contact_email" validate:"required,email,max=255"`
	ContactPhone   *string `json:"contact_phone" form:"contact_phone" validate:"omitempty,max=30"`
	ContactSubject string  `json:"contact_subject" form:"contact_subject" validate:"required,min=3,max=200"`
	ContactMessage string  `json:"contact_message" form:"contact_message" validate:"required,min=10"`
}

func (r *CreateContactRequest) ToModel() *cModel.ContactModel {
	return &cModel.ContactModel{
		ContactName:    strings.TrimSpace(r.ContactName),
		ContactEmail:   strings.ToLower(strings.TrimSpace(r.ContactEmail)),
		ContactPhone:   r.ContactPhone,
		ContactSubject: strings.TrimSpace(r.ContactSubject),
		ContactMessage: strings.TrimSpace(r.ContactMessage),
	}
}

type MarkRespondedRequest struct {
	ContactReplyNote *string `json:"contact_reply_note" form:"contact_reply_note" validate:"omitempty"`
}

type SubscribeRequest struct {
	SubscriberEmail string `json:"subscriber_email" form:"subscriber_email" validate:"required,email,max=255"`
}

/* ===================== RESPONSES ===================== */

type ContactResponse struct {
	ContactID uuid.UUID `json:"contact_id"`

	ContactName    string  `json:"contact_name"`
	ContactEmail   string  `json:"contact_email"`
	ContactPhone   *string `json:"contact_phone,omitempty"`
	ContactSubject string  `json:"contact_subject"`
	ContactMessage string  `json:"contact_message"`

	ContactIsRead    bool    `json:"contact_is_read"`
	ContactIsReplied bool    `json:"contact_is_replied"`
	ContactReplyNote *string `json:"contact_reply_note,omitempty"`

	ContactCreatedAt time.Time `json:"contact_created_at"`
	ContactUpdatedAt time.Time `json:"contact_updated_at"`
}

func NewContactResponse(m *cModel.ContactModel) *ContactResponse {
	if m == nil {
		return nil
	}
	return &ContactResponse{
		ContactID:        m.ContactID,
		ContactName:      m.ContactName,
		ContactEmail:     m.ContactEmail,
		ContactPhone:     m.ContactPhone,
		ContactSubject:   m.ContactSubject,
		ContactMessage:   m.ContactMessage,
		ContactIsRead:    m.ContactIsRead,
		ContactIsReplied: m.ContactIsReplied,
		ContactReplyNote: m.ContactReplyNote,
		ContactCreatedAt: m.ContactCreatedAt,
		ContactUpdatedAt: m.ContactUpdatedAt,
	}
}

type SubscriberResponse struct {
	SubscriberID        uuid.UUID `json:"subscriber_id"`
	SubscriberEmail     string    `json:"subscriber_email"`
	SubscriberIsActive  bool      `json:"subscriber_is_active"`
	SubscriberCreatedAt time.Time `json:"subscriber_created_at"`
}

func NewSubscriberResponse(m *cModel.SubscriberModel) *SubscriberResponse {
	if m == nil {
		return nil
	}
	return &SubscriberResponse{
		SubscriberID:        m.SubscriberID,
		SubscriberEmail:     m.SubscriberEmail,
		SubscriberIsActive:  m.SubscriberIsActive,
		SubscriberCreatedAt: m.SubscriberCreatedAt,
	}
}
