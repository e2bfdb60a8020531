package config

import (
	"fmt"
	"log"
	"os"
	"time"
)

const defaultJWTSecret = "dev-secret-change-me"

// Config holds all startup configuration. It is built once in main and
// never mutated afterwards; handlers receive it through their constructors.
type Config struct {
	JWTSecret      string
	TokenTTL       time.Duration
	MongoURI       string
	DatabaseName   string
	Port           string
	AppEnv         string
	SendGridAPIKey string
	EmailSender    string
	NotifyEmail    string
}

// Load reads configuration from the environment, applying development
// defaults. Running in production with the default JWT secret is refused.
func Load() (*Config, error) {
	cfg := &Config{
		JWTSecret:      getEnv("JWT_SECRET", defaultJWTSecret),
		TokenTTL:       24 * time.Hour,
		MongoURI:       getEnv("DATABASE_URL", "mongodb://localhost:27017"),
		DatabaseName:   getEnv("DATABASE_NAME", "laundry"),
		Port:           getEnv("PORT", "8000"),
		AppEnv:         getEnv("APP_ENV", "local"),
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", ""),
		NotifyEmail:    getEnv("NOTIFY_EMAIL", ""),
	}

	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET must be set when APP_ENV=%s", cfg.AppEnv)
		}
		log.Println("Warning: JWT_SECRET not set, using development default")
	}

	return cfg, nil
}

// IsProduction reports whether the app runs with production settings.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
