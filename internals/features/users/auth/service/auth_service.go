// internals/features/users/auth/service/auth_service.go
package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nutriwell_backend/internals/configs"
	authHelper "nutriwell_backend/internals/features/users/auth/helper"
	userDTO "nutriwell_backend/internals/features/users/user/dto"
	userModel "nutriwell_backend/internals/features/users/user/model"
	helpers "nutriwell_backend/internals/helpers"
)

/* ==========================
   REGISTER
========================== */

type registerInput struct {
	UserName        string `json:"user_name" form:"user_name"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	PasswordConfirm string `json:"password_confirm" form:"password_confirm"`
	FirstName       string `json:"first_name" form:"first_name"`
	LastName        string `json:"last_name" form:"last_name"`
}

// Register membuat akun publik (non-staff). Semua kegagalan validasi:
// tidak ada baris yang ditulis.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.UserName = strings.TrimSpace(input.UserName)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	if err := authHelper.ValidateRegisterInput(input.UserName, input.Email, input.Password, input.PasswordConfirm); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Uniqueness check dulu supaya pesan jelas; unique index tetap jadi pagar.
	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("LOWER(user_name) = ?", strings.ToLower(input.UserName)).
		Count(&count).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}
	if count > 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Username already taken")
	}
	if err := db.Model(&userModel.UserModel{}).
		Where("LOWER(user_email) = ?", input.Email).
		Count(&count).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}
	if count > 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Email already registered")
	}

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		UserName:     input.UserName,
		UserEmail:    input.Email,
		UserPassword: passwordHash,
		UserIsActive: true,
	}
	if v := strings.TrimSpace(input.FirstName); v != "" {
		user.UserFirstName = &v
	}
	if v := strings.TrimSpace(input.LastName); v != "" {
		user.UserLastName = &v
	}

	if err := db.Create(&user).Error; err != nil {
		if helpers.IsUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Username or email already registered")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	return helpers.JsonCreated(c, "Registration successful", userDTO.NewUserResponse(&user))
}

/* ==========================
   LOGIN (username/email + password)
========================== */

type loginInput struct {
	Identifier string `json:"identifier" form:"identifier"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Identifier = strings.TrimSpace(input.Identifier)

	if err := authHelper.ValidateLoginInput(input.Identifier, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	if err := db.
		Where("LOWER(user_name) = ? OR LOWER(user_email) = ?",
			strings.ToLower(input.Identifier), strings.ToLower(input.Identifier)).
		First(&user).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}
	if !user.UserIsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}
	if !authHelper.CheckPassword(user.UserPassword, input.Password) {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	ttl := configs.AccessTTLDefault
	if input.RememberMe {
		ttl = configs.AccessTTLRemember
	}
	token, err := CreateAccessToken(&user, ttl)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create token")
	}
	SetAuthCookie(c, token, input.RememberMe)

	// Staff diarahkan ke dashboard, selain itu ke beranda.
	redirectTo := "/"
	if user.UserIsStaff {
		redirectTo = "/dashboard/"
	}

	return helpers.JsonOK(c, "Login successful", fiber.Map{
		"access_token": token,
		"redirect_to":  redirectTo,
		"user":         userDTO.NewUserResponse(&user),
	})
}

/* ==========================
   LOGOUT
========================== */

func Logout(c *fiber.Ctx) error {
	ClearAuthCookie(c)
	return helpers.JsonOK(c, "Logged out", nil)
}
