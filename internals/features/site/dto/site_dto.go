// internals/features/site/dto/site_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	sModel "nutriwell_backend/internals/features/site/model"
)

/* ===================== TEAM ===================== */

type CreateTeamRequest struct {
	TeamName        string `json:"team_name" form:"team_name" validate:"required,min=2,max=100"`
	TeamDesignation string `json:"team_designation" form:"team_designation" validate:"required,min=2,max=100"`
	TeamIsActive    *bool  `json:"team_is_active" form:"team_is_active" validate:"omitempty"`
}

func (r *CreateTeamRequest) ToModel() *sModel.TeamModel {
	m := &sModel.TeamModel{
		TeamName:        strings.TrimSpace(r.TeamName),
		TeamDesignation: strings.TrimSpace(r.TeamDesignation),
		TeamIsActive:    true,
	}
	if r.TeamIsActive != nil {
		m.TeamIsActive = *r.TeamIsActive
	}
	return m
}

type UpdateTeamRequest struct {
	TeamName        *string `json:"team_name" form:"team_name" validate:"omitempty,min=2,max=100"`
	TeamDesignation *string `json:"team_designation" form:"team_designation" validate:"omitempty,min=2,max=100"`
	TeamIsActive    *bool   `json:"team_is_active" form:"team_is_active" validate:"omitempty"`
}

func (r *UpdateTeamRequest) ApplyToModel(m *sModel.TeamModel) {
	if r.TeamName != nil {
		m.TeamName = strings.TrimSpace(*r.TeamName)
	}
	if r.TeamDesignation != nil {
		m.TeamDesignation = strings.TrimSpace(*r.TeamDesignation)
	}
	if r.TeamIsActive != nil {
		m.TeamIsActive = *r.TeamIsActive
	}
}

type TeamResponse struct {
	TeamID          uuid.UUID `json:"team_id"`
	TeamName        string    `json:"team_name"`
	TeamDesignation string    `json:"team_designation"`
	TeamPictureURL  *string   `json:"team_picture_url,omitempty"`
	TeamIsActive    bool      `json:"team_is_active"`
	TeamCreatedAt   time.Time `json:"team_created_at"`
}

func NewTeamResponse(m *sModel.TeamModel) *TeamResponse {
	if m == nil {
		return nil
	}
	return &TeamResponse{
		TeamID:          m.TeamID,
		TeamName:        m.TeamName,
		TeamDesignation: m.TeamDesignation,
		TeamPictureURL:  m.TeamPictureURL,
		TeamIsActive:    m.TeamIsActive,
		TeamCreatedAt:   m.TeamCreatedAt,
	}
}

/* ===================== CITY ===================== */

type CreateCityRequest struct {
	CityName     string `json:"city_name" form:"city_name" validate:"required,min=2,max=100"`
	CityIsActive *bool  `json:"city_is_active" form:"city_is_active" validate:"omitempty"`
}

func (r *CreateCityRequest) ToModel() *sModel.CityModel {
	m := &sModel.CityModel{
		CityName:     strings.TrimSpace(r.CityName),
		CityIsActive: true,
	}
	if r.CityIsActive != nil {
		m.CityIsActive = *r.CityIsActive
	}
	return m
}

type UpdateCityRequest struct {
	CityName     *string `json:"city_name" form:"city_name" validate:"omitempty,min=2,max=100"`
	CityIsActive *bool   `json:"city_is_active" form:"city_is_active" validate:"omitempty"`
}

func (r *UpdateCityRequest) ApplyToModel(m *sModel.CityModel) {
	if r.CityName != nil {
		m.CityName = strings.TrimSpace(*r.CityName)
	}
	if r.CityIsActive != nil {
		m.CityIsActive = *r.CityIsActive
	}
}

type CityResponse struct {
	CityID        uuid.UUID `json:"city_id"`
	CityName      string    `json:"city_name"`
	CityIsActive  bool      `json:"city_is_active"`
	CityCreatedAt time.Time `json:"city_created_at"`
}

func NewCityResponse(m *sModel.CityModel) *CityResponse {
	if m == nil {
		return nil
	}
	return &CityResponse{
		CityID:        m.CityID,
		CityName:      m.CityName,
		CityIsActive:  m.CityIsActive,
		CityCreatedAt: m.CityCreatedAt,
	}
}

/* ===================== BMI ===================== */

type BMIRequest struct {
	WeightKg float64 `json:"weight_kg" form:"weight_kg" validate:"required,gt=0"`
	HeightCm float64 `json:"height_cm" form:"height_cm" validate:"required,gt=0"`
}

type BMIResponse struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}
