package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DatabaseURL    string
	SessionBackend string
	RedisURL       string
	PasswordHasher string
	LogLevel       string
	LogFormat      string
	MaxUploadBytes int64
	CORSOrigins    string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    getEnv("DATABASE_URL", "sqlite://resumeboost.db"),
		SessionBackend: strings.ToLower(getEnv("SESSION_BACKEND", "memory")),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),
		PasswordHasher: getEnv("PASSWORD_HASHER", "plain"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 15<<20)),
		CORSOrigins:    getEnv("CORS_ORIGINS", "*"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
