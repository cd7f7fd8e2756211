package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "DB_AUTO_MIGRATE", "CORS_ALLOWED_ORIGINS", "IDEMPOTENCY_TTL", "SESSION_MAX_AGE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 10*time.Minute, cfg.IdempotencyTTL)
	assert.Equal(t, 86400*7, cfg.SessionMaxAge)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("IDEMPOTENCY_TTL", "30s")
	t.Setenv("SESSION_MAX_AGE", "60")
	t.Setenv("GIN_MODE", "release")

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.IdempotencyTTL)
	assert.Equal(t, 60, cfg.SessionMaxAge)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("SESSION_MAX_AGE", "forever")
	t.Setenv("IDEMPOTENCY_TTL", "soon")

	cfg := Load()

	assert.Equal(t, 86400*7, cfg.SessionMaxAge)
	assert.Equal(t, 10*time.Minute, cfg.IdempotencyTTL)
}

func TestRedisAddr(t *testing.T) {
	cfg := &Config{RedisHost: "cache", RedisPort: "6380"}
	assert.Equal(t, "cache:6380", cfg.RedisAddr())

	cfg.RedisHost = ""
	assert.Equal(t, "", cfg.RedisAddr())
}
