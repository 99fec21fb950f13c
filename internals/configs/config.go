package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret    string
	UploadDir    string
	MediaBaseURL string
	CORSOrigins  string
)

const (
	// TTL token akses: default vs "remember me"
	AccessTTLDefault  = 24 * time.Hour
	AccessTTLRemember = 30 * 24 * time.Hour

	AuthCookieName = "access_token"
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env tidak ditemukan, pakai ENV dari sistem")
	} else {
		log.Println("✅ .env berhasil dimuat")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	UploadDir = GetEnv("UPLOAD_DIR", "media")
	MediaBaseURL = GetEnv("MEDIA_BASE_URL", "/media")
	CORSOrigins = GetEnv("CORS_ORIGINS", "http://localhost:5173")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func GetEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
