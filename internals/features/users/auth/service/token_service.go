// internals/features/users/auth/service/token_service.go
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"nutriwell_backend/internals/configs"
	userModel "nutriwell_backend/internals/features/users/user/model"
)

// CreateAccessToken membuat JWT HMAC dengan klaim minimum yang dipakai middleware.
func CreateAccessToken(user *userModel.UserModel, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   user.UserID.String(),
		"user_name": user.UserName,
		"is_staff":  user.UserIsStaff,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// SetAuthCookie memasang cookie access token. remember=false → session cookie
// (tanpa Expires), remember=true → 30 hari.
func SetAuthCookie(c *fiber.Ctx, token string, remember bool) {
	cookie := &fiber.Cookie{
		Name:     configs.AuthCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if remember {
		cookie.Expires = time.Now().Add(configs.AccessTTLRemember)
	}
	c.Cookie(cookie)
}

func ClearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     configs.AuthCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})
}
