// internals/features/users/user/dto/group_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	uModel "nutriwell_backend/internals/features/users/user/model"
)

/* ===================== REQUESTS ===================== */

type CreateGroupRequest struct {
	GroupName        string   `json:"group_name" form:"group_name" validate:"required,min=2,max=150"`
	GroupPermissions []string `json:"group_permissions" form:"group_permissions" validate:"omitempty"`
}

func (r *CreateGroupRequest) ToModel() *uModel.GroupModel {
	m := &uModel.GroupModel{GroupName: r.GroupName}
	if len(r.GroupPermissions) > 0 {
		if b, err := json.Marshal(r.GroupPermissions); err == nil {
			m.GroupPermissions = datatypes.JSON(b)
		}
	}
	return m
}

type UpdateGroupRequest struct {
	GroupName        *string   `json:"group_name" form:"group_name" validate:"omitempty,min=2,max=150"`
	GroupPermissions *[]string `json:"group_permissions" form:"group_permissions" validate:"omitempty"`
}

func (r *UpdateGroupRequest) ApplyToModel(m *uModel.GroupModel) {
	if r.GroupName != nil {
		m.GroupName = *r.GroupName
	}
	if r.GroupPermissions != nil {
		if b, err := json.Marshal(*r.GroupPermissions); err == nil {
			m.GroupPermissions = datatypes.JSON(b)
		}
	}
}

/* ===================== RESPONSES ===================== */

type GroupResponse struct {
	GroupID          uuid.UUID `json:"group_id"`
	GroupName        string    `json:"group_name"`
	GroupPermissions []string  `json:"group_permissions"`
	UserCount        int64     `json:"user_count,omitempty"`
	GroupCreatedAt   time.Time `json:"group_created_at"`
}

func NewGroupResponse(m *uModel.GroupModel) *GroupResponse {
	if m == nil {
		return nil
	}
	resp := &GroupResponse{
		GroupID:          m.GroupID,
		GroupName:        m.GroupName,
		GroupPermissions: []string{},
		GroupCreatedAt:   m.GroupCreatedAt,
	}
	if len(m.GroupPermissions) > 0 {
		_ = json.Unmarshal(m.GroupPermissions, &resp.GroupPermissions)
	}
	return resp
}
