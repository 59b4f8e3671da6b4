package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppName         string
	Version         string
	Port            string
	APIPrefix       string
	DBPath          string
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	CORSOrigins     string
}

func Load() Config {
	return Config{
		AppName:         getEnv("APP_NAME", "MiniFocus"),
		Version:         getEnv("APP_VERSION", "0.1.0"),
		Port:            getEnv("PORT", "8080"),
		APIPrefix:       getEnv("API_PREFIX", "/api/v1"),
		DBPath:          getEnv("DB_PATH", "data/minifocus.db"),
		SecretKey:       getEnv("SECRET_KEY", "change_me_in_production"),
		AccessTokenTTL:  time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 300)) * time.Minute,
		RefreshTokenTTL: time.Duration(getEnvInt("REFRESH_TOKEN_EXPIRE_DAYS", 7)) * 24 * time.Hour,
		CORSOrigins:     getEnv("CORS_ORIGINS", "http://localhost:3000"),
	}
}

// AllowOrigins normalizes the comma-separated CORS list for fiber's middleware.
func (config Config) AllowOrigins() string {
	parts := strings.Split(config.CORSOrigins, ",")
	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			cleaned = append(cleaned, origin)
		}
	}
	return strings.Join(cleaned, ",")
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
