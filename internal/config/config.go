package config

import (
	"log"
	"os"
	"time"
)

const (
	defaultDBPath     = "./kurocal.db"
	defaultPort       = "8080"
	defaultEnv        = "development"
	defaultSessionTTL = 24 * time.Hour
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	DBPath     string
	Port       string
	Env        string
	SessionTTL time.Duration
}

// IsDev reports whether the server runs in local development mode.
func (c Config) IsDev() bool {
	return c.Env == defaultEnv
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: production should use real env injection.
	if err := loadDotEnv(".env"); err != nil {
		log.Printf("warning: failed to read .env: %v", err)
	}

	cfg := Config{
		DBPath:     os.Getenv("DB_PATH"),
		Port:       os.Getenv("PORT"),
		Env:        os.Getenv("APP_ENV"),
		SessionTTL: defaultSessionTTL,
	}

	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}

	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			log.Printf("warning: invalid SESSION_TTL %q, using %s", raw, defaultSessionTTL)
		} else {
			cfg.SessionTTL = ttl
		}
	}

	return cfg
}
