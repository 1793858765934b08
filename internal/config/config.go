package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	JWTSecret  string
	TokenTTL   time.Duration
	// PhonePolicy selects the contact-number validation policy: "international"
	// (10-15 characters) or "indian" (strict 10-digit mobile). Which rule is
	// canonical is pending a product decision, so it stays configurable.
	PhonePolicy string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	CORSOrigins []string
	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		JWTSecret:   getEnv("JWT_SECRET", "change-me"),
		TokenTTL:    getEnvDuration("TOKEN_TTL", 24*time.Hour),
		PhonePolicy: getEnv("PHONE_POLICY", "international"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"*"}),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
