package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string

	RedisAddr     string
	RedisPassword string
	RedisTLS      bool

	// Email provider selection: "sendgrid", "ses", or "stub".
	EmailProvider string
	AWSRegion     string

	// Default (business) mailbox.
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	// Daycare-partner mailbox. When unset, sends for daycare-attributed
	// bookings silently fall back to the default mailbox.
	DaycareSendGridAPIKey string
	DaycareFromEmail      string
	DaycareFromName       string

	// Notification targets.
	AdminEmail     string
	DaycareCCEmail string
	BusinessName   string
	BusinessTZ     string
	ReminderSecret string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", nil),

		RedisAddr:     getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),

		EmailProvider: strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", "auto"))),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "HeartSafe Training"),

		DaycareSendGridAPIKey: getEnv("DAYCARE_SENDGRID_API_KEY", ""),
		DaycareFromEmail:      getEnv("DAYCARE_FROM_EMAIL", ""),
		DaycareFromName:       getEnv("DAYCARE_FROM_NAME", "HeartSafe Daycare Courses"),

		AdminEmail:     getEnv("ADMIN_EMAIL", ""),
		DaycareCCEmail: getEnv("DAYCARE_CC_EMAIL", ""),
		BusinessName:   getEnv("BUSINESS_NAME", "HeartSafe Training"),
		BusinessTZ:     getEnv("BUSINESS_TZ", "America/Toronto"),
		ReminderSecret: getEnv("REMINDER_SECRET", ""),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated environment variable into trimmed entries.
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
