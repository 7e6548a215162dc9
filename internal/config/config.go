package config

import (
	"os"
	"strconv"
	"time"

	"lionscars-service/internal/pkg/jwt"
)

type AppConfig struct {
	// Server
	HTTPAddr    string
	DatabaseURL string
	RedisAddr   string
	RedisPass   string

	// JWT
	JWT jwt.Config

	// Image publishing
	UploadDir    string // filesystem root of published images
	UploadPrefix string // URL prefix the storefront uses
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr:    getEnv("HTTP_ADDR", ":4000"),
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/lionscars?sslmode=disable"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   getEnv("REDIS_PASS", ""),

		JWT: jwt.Config{
			Secret:   getEnv("JWT_SECRET", ""),
			Issuer:   "lionscars",
			Audience: "lionscars-console",
			TTL:      time.Duration(getEnvInt("JWT_TTL_HOURS", 12)) * time.Hour,
		},

		UploadDir:    getEnv("UPLOAD_DIR", "public/autoefec"),
		UploadPrefix: getEnv("UPLOAD_PUBLIC_PREFIX", "/autoefec"),
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
