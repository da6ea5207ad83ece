package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.False(t, cfg.RedisTLS)
	assert.Equal(t, "HeartSafe Training", cfg.BusinessName)
	assert.Equal(t, "America/Toronto", cfg.BusinessTZ)
	assert.Equal(t, "auto", cfg.EmailProvider)
	assert.Empty(t, cfg.ReminderSecret)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("EMAIL_PROVIDER", " SendGrid ")
	t.Setenv("BUSINESS_NAME", "HeartSafe CPR")
	t.Setenv("REMINDER_SECRET", "s3cret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://heartsafe.example, https://www.heartsafe.example ,")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.RedisTLS)
	assert.Equal(t, "sendgrid", cfg.EmailProvider)
	assert.Equal(t, "HeartSafe CPR", cfg.BusinessName)
	assert.Equal(t, "s3cret", cfg.ReminderSecret)
	assert.Equal(t, []string{"https://heartsafe.example", "https://www.heartsafe.example"}, cfg.CORSAllowedOrigins)
}

func TestGetEnvAsBoolInvalid(t *testing.T) {
	t.Setenv("REDIS_TLS", "not-a-bool")
	cfg := Load()
	assert.False(t, cfg.RedisTLS)
}
