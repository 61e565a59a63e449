package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	GinMode   string
	Port      string
	TZ        string
	DBHost    string
	DBPort    string
	DBUser    string
	DBPass    string
	DBName    string
	DBSSLMode string

	JWTSecret   string
	JWTTTLHours int

	AIProvider   string
	OpenAIAPIKey string
	GeminiAPIKey string
}

func Load() *Config {
	if getenv("GIN_MODE", "debug") == "debug" {
		if err := godotenv.Load(); err == nil {
			slog.Info("loaded environment from .env")
		}
	}

	cfg := &Config{
		GinMode:   getenv("GIN_MODE", "debug"),
		Port:      getenv("PORT", "8080"),
		TZ:        getenv("TZ", "UTC"),
		DBHost:    getenv("DB_HOST", "localhost"),
		DBPort:    getenv("DB_PORT", "5432"),
		DBUser:    getenv("DB_USER", "postgres"),
		DBPass:    getenv("DB_PASS", ""),
		DBName:    getenv("DB_NAME", "postgres"),
		DBSSLMode: os.Getenv("DB_SSLMODE"),

		JWTSecret:   getenv("JWT_SECRET", ""),
		JWTTTLHours: getenvInt("JWT_TTL_HOURS", 24),

		AIProvider:   getenv("AI_PROVIDER", "gemini"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	return cfg
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil && n > 0 {
			return n
		}
	}
	return def
}
