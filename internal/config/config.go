package config

import (
	"os"
	"strconv"
	"time"
)

// Config is read once at process start and held immutable for the process
// lifetime.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	RedisAddr   string
	CORSOrigin  string
}

// Load reads configuration from the environment, falling back to the same
// development defaults the rest of the deployment assumes.
func Load() Config {
	cfg := Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getenv("JWT_SECRET", "dev"),
		TokenTTL:    60 * time.Minute,
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		CORSOrigin:  getenv("CORS_ORIGIN", "http://localhost:5173"),
	}
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			cfg.TokenTTL = time.Duration(minutes) * time.Minute
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
