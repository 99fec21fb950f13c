// internals/features/site/controller/site_admin_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cModel "nutriwell_backend/internals/features/contact/model"
	hrModel "nutriwell_backend/internals/features/hr/model"
	nModel "nutriwell_backend/internals/features/news/model"
	pModel "nutriwell_backend/internals/features/products/model"
	sDTO "nutriwell_backend/internals/features/site/dto"
	sModel "nutriwell_backend/internals/features/site/model"
	userModel "nutriwell_backend/internals/features/users/user/model"
	helper "nutriwell_backend/internals/helpers"
)

type SiteAdminController struct {
	DB *gorm.DB
}

func NewSiteAdminController(db *gorm.DB) *SiteAdminController {
	return &SiteAdminController{DB: db}
}

/* ===================== SUMMARY ===================== */

// GET /dashboard/ — angka ringkas untuk beranda dashboard
func (h *SiteAdminController) Summary(c *fiber.Ctx) error {
	counts := fiber.Map{}
	type entry struct {
		key   string
		model interface{}
		where []interface{}
	}
	for _, e := range []entry{
		{"news", &nModel.NewsModel{}, nil},
		{"products", &pModel.ProductModel{}, nil},
		{"employees", &hrModel.EmployeeModel{}, nil},
		{"users", &userModel.UserModel{}, nil},
		{"teams", &sModel.TeamModel{}, nil},
		{"cities", &sModel.CityModel{}, nil},
		{"contacts", &cModel.ContactModel{}, nil},
		{"unread_contacts", &cModel.ContactModel{}, []interface{}{"contact_is_read = ?", false}},
		{"subscribers", &cModel.SubscriberModel{}, nil},
	} {
		var n int64
		q := h.DB.Model(e.model)
		if len(e.where) == 2 {
			q = q.Where(e.where[0], e.where[1])
		}
		if err := q.Count(&n).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to build summary")
		}
		counts[e.key] = n
	}
	return c.JSON(fiber.Map{"data": counts})
}

/* ===================== TEAMS ===================== */

// GET /dashboard/teams/
func (h *SiteAdminController) TeamList(c *fiber.Ctx) error {
	var rows []sModel.TeamModel
	if err := h.DB.Order("team_created_at ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch teams")
	}
	items := make([]*sDTO.TeamResponse, 0, len(rows))
	for i := range rows {
		items = append(items, sDTO.NewTeamResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// POST /dashboard/teams/create/ (multipart: picture)
func (h *SiteAdminController) TeamCreate(c *fiber.Ctx) error {
	var req sDTO.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()

	var savedURL string
	if fh, err := c.FormFile("picture"); err == nil && fh != nil {
		if err := helper.ValidateUploadSize(fh); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		url, err := helper.SaveImage("teams", fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		m.TeamPictureURL = &url
		savedURL = url
	}

	if err := h.DB.Create(m).Error; err != nil {
		if savedURL != "" {
			_ = helper.RemoveByURL(savedURL)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create team member")
	}
	return helper.JsonCreated(c, "Team member created successfully", sDTO.NewTeamResponse(m))
}

// POST /dashboard/teams/:id/edit/
func (h *SiteAdminController) TeamEdit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req sDTO.UpdateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m sModel.TeamModel
	if err := h.DB.First(&m, "team_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Team member not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch team member")
	}

	req.ApplyToModel(&m)

	oldPicture := m.TeamPictureURL
	var savedURL string
	if fh, err := c.FormFile("picture"); err == nil && fh != nil {
		url, err := helper.SaveImage("teams", fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		m.TeamPictureURL = &url
		savedURL = url
	}

	if err := h.DB.Save(&m).Error; err != nil {
		if savedURL != "" {
			_ = helper.RemoveByURL(savedURL)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update team member")
	}
	if savedURL != "" && oldPicture != nil && *oldPicture != savedURL {
		_ = helper.RemoveByURL(*oldPicture)
	}
	return helper.JsonOK(c, "Team member updated successfully", sDTO.NewTeamResponse(&m))
}

// POST /dashboard/teams/:id/delete/
func (h *SiteAdminController) TeamDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}
	var m sModel.TeamModel
	if err := h.DB.First(&m, "team_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Team member not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch team member")
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete team member")
	}
	if m.TeamPictureURL != nil {
		_ = helper.RemoveByURL(*m.TeamPictureURL)
	}
	return helper.JsonOK(c, "Team member deleted successfully", fiber.Map{"id": m.TeamID})
}

/* ===================== CITIES ===================== */

// GET /dashboard/cities/
func (h *SiteAdminController) CityList(c *fiber.Ctx) error {
	var rows []sModel.CityModel
	if err := h.DB.Order("city_name ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch cities")
	}
	items := make([]*sDTO.CityResponse, 0, len(rows))
	for i := range rows {
		items = append(items, sDTO.NewCityResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// POST /dashboard/cities/create/ — nama kota tidak boleh dobel
func (h *SiteAdminController) CityCreate(c *fiber.Ctx) error {
	var req sDTO.CreateCityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()

	var count int64
	if err := h.DB.Model(&sModel.CityModel{}).
		Where("LOWER(city_name) = ?", strings.ToLower(m.CityName)).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check city name")
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "City with this name already exists")
	}

	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "City with this name already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create city")
	}
	return helper.JsonCreated(c, "City created successfully", sDTO.NewCityResponse(m))
}

// POST /dashboard/cities/:id/edit/
func (h *SiteAdminController) CityEdit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req sDTO.UpdateCityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m sModel.CityModel
	if err := h.DB.First(&m, "city_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "City not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch city")
	}

	oldName := m.CityName
	req.ApplyToModel(&m)

	if !strings.EqualFold(m.CityName, oldName) {
		var count int64
		if err := h.DB.Model(&sModel.CityModel{}).
			Where("LOWER(city_name) = ? AND city_id <> ?", strings.ToLower(m.CityName), id).
			Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check city name")
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "City with this name already exists")
		}
	}

	if err := h.DB.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "City with this name already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update city")
	}
	return helper.JsonOK(c, "City updated successfully", sDTO.NewCityResponse(&m))
}

// POST /dashboard/cities/:id/delete/
func (h *SiteAdminController) CityDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}
	var m sModel.CityModel
	if err := h.DB.First(&m, "city_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "City not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch city")
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete city")
	}
	return helper.JsonOK(c, "City deleted successfully", fiber.Map{"id": m.CityID})
}
