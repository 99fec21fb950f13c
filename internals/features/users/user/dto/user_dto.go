// internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	uModel "nutriwell_backend/internals/features/users/user/model"
)

/* ===================== REQUESTS ===================== */

type CreateUserRequest struct {
	UserName      string  `json:"user_name" form:"user_name" validate:"required,min=3,max=50"`
	UserEmail     string  `json:"user_email" form:"user_email" validate:"required,email"`
	UserFirstName *string `json:"user_first_name" form:"user_first_name" validate:"omitempty,max=100"`
	UserLastName  *string `json:"user_last_name" form:"user_last_name" validate:"omitempty,max=100"`
	Password      string  `json:"password" form:"password" validate:"required,min=8"`
	UserIsStaff   *bool   `json:"user_is_staff" form:"user_is_staff" validate:"omitempty"`
	UserIsActive  *bool   `json:"user_is_active" form:"user_is_active" validate:"omitempty"`

	GroupIDs []uuid.UUID `json:"group_ids" form:"group_ids" validate:"omitempty"`
}

func (r *CreateUserRequest) ToModel() *uModel.UserModel {
	m := &uModel.UserModel{
		UserName:      r.UserName,
		UserEmail:     r.UserEmail,
		UserFirstName: r.UserFirstName,
		UserLastName:  r.UserLastName,
		UserIsActive:  true,
	}
	if r.UserIsStaff != nil {
		m.UserIsStaff = *r.UserIsStaff
	}
	if r.UserIsActive != nil {
		m.UserIsActive = *r.UserIsActive
	}
	return m
}

// UpdateUserRequest: partial update. Password hanya diganti bila non-empty.
type UpdateUserRequest struct {
	UserName      *string `json:"user_name" form:"user_name" validate:"omitempty,min=3,max=50"`
	UserEmail     *string `json:"user_email" form:"user_email" validate:"omitempty,email"`
	UserFirstName *string `json:"user_first_name" form:"user_first_name" validate:"omitempty,max=100"`
	UserLastName  *string `json:"user_last_name" form:"user_last_name" validate:"omitempty,max=100"`
	Password      *string `json:"password" form:"password" validate:"omitempty,min=8"`
	UserIsStaff   *bool   `json:"user_is_staff" form:"user_is_staff" validate:"omitempty"`
	UserIsActive  *bool   `json:"user_is_active" form:"user_is_active" validate:"omitempty"`

	GroupIDs *[]uuid.UUID `json:"group_ids" form:"group_ids" validate:"omitempty"`
}

func (r *UpdateUserRequest) ApplyToModel(m *uModel.UserModel) {
	if r.UserName != nil {
		m.UserName = *r.UserName
	}
	if r.UserEmail != nil {
		m.UserEmail = *r.UserEmail
	}
	if r.UserFirstName != nil {
		m.UserFirstName = r.UserFirstName
	}
	if r.UserLastName != nil {
		m.UserLastName = r.UserLastName
	}
	if r.UserIsStaff != nil {
		m.UserIsStaff = *r.UserIsStaff
	}
	if r.UserIsActive != nil {
		m.UserIsActive = *r.UserIsActive
	}
}

/* ===================== RESPONSES ===================== */

type UserResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	UserFirstName *string   `json:"user_first_name,omitempty"`
	UserLastName  *string   `json:"user_last_name,omitempty"`
	UserFullName  string    `json:"user_full_name"`
	UserIsStaff   bool      `json:"user_is_staff"`
	UserIsActive  bool      `json:"user_is_active"`

	UserGroups []GroupResponse `json:"user_groups,omitempty"`

	UserCreatedAt time.Time `json:"user_created_at"`
	UserUpdatedAt time.Time `json:"user_updated_at"`
}

func NewUserResponse(m *uModel.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	resp := &UserResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserFirstName: m.UserFirstName,
		UserLastName:  m.UserLastName,
		UserFullName:  m.FullName(),
		UserIsStaff:   m.UserIsStaff,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
		UserUpdatedAt: m.UserUpdatedAt,
	}
	for i := range m.UserGroups {
		resp.UserGroups = append(resp.UserGroups, *NewGroupResponse(&m.UserGroups[i]))
	}
	return resp
}
