package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries all runtime settings, sourced from the environment.
type Config struct {
	Port        int
	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// DefaultLookbackDays is the sales-velocity window used when a caller
	// does not pass lookback_days.
	DefaultLookbackDays int

	// SweepInterval is how often the background low-stock sweep runs.
	SweepInterval time.Duration
}

// Load reads configuration from the environment. DATABASE_URL is the only
// required setting.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                envInt("PORT", 8080),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		RedisAddr:           envString("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		RedisDB:             envInt("REDIS_DB", 0),
		DefaultLookbackDays: envInt("ALERT_LOOKBACK_DAYS", 30),
		SweepInterval:       envDuration("ALERT_SWEEP_INTERVAL", 15*time.Minute),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.DefaultLookbackDays < 1 {
		return nil, fmt.Errorf("ALERT_LOOKBACK_DAYS must be a positive integer")
	}
	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
