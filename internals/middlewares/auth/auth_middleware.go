// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nutriwell_backend/internals/configs"
	userModel "nutriwell_backend/internals/features/users/user/model"
)

// AuthMiddleware memverifikasi JWT dari header Authorization atau cookie,
// lalu menyimpan user_id / user_name / is_staff ke Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid token")
		}

		if err := validateExpiry(claims); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - token expired")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user ID")
		}

		var user userModel.UserModel
		if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
		}
		if !user.UserIsActive {
			return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
		}

		c.Locals("user_id", user.UserID.String())
		c.Locals("user_name", user.UserName)
		c.Locals("is_staff", user.UserIsStaff)

		return c.Next()
	}
}

// StaffOnly menolak request dari akun non-staff. Pasang SETELAH AuthMiddleware.
func StaffOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isStaff, _ := c.Locals("is_staff").(bool)
		if !isStaff {
			return fiber.NewError(fiber.StatusForbidden, "Staff access required")
		}
		return c.Next()
	}
}

// CurrentUserID membaca user_id yang sudah diset AuthMiddleware.
func CurrentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	if raw == "" {
		return uuid.Nil, errors.New("user_id tidak ada di context")
	}
	return uuid.Parse(raw)
}

/* ===================== helpers ===================== */

func extractToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")), nil
	}
	if cookie := c.Cookies(configs.AuthCookieName); cookie != "" {
		return cookie, nil
	}
	return "", errors.New("Unauthorized - missing token")
}

func validateExpiry(claims jwt.MapClaims) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("exp claim missing")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("exp claim invalid")
	}
	if time.Now().After(time.Unix(int64(expFloat), 0)) {
		return errors.New("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"].(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("user_id claim missing")
	}
	return uuid.Parse(raw)
}
