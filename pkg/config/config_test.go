package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "SESSION_BACKEND", "REDIS_URL", "PASSWORD_HASHER", "LOG_LEVEL", "LOG_FORMAT", "MAX_UPLOAD_BYTES", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite://resumeboost.db", cfg.DatabaseURL)
	assert.Equal(t, "memory", cfg.SessionBackend)
	assert.Equal(t, "plain", cfg.PasswordHasher)
	assert.Equal(t, int64(15<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "*", cfg.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_BACKEND", "Redis")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("LOG_FORMAT", "json")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "redis", cfg.SessionBackend)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "lots")

	cfg := Load()
	assert.Equal(t, int64(15<<20), cfg.MaxUploadBytes)
}
