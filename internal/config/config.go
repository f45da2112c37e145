// Package config reads runtime settings from the environment. A .env file,
// when present, is loaded into the environment by the root command first.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Config holds the application configuration
type Config struct {
	OpenLibrary OpenLibraryConfig
	SeedPath    string
	LogLevel    slog.Level
}

// OpenLibraryConfig holds lookup client settings
type OpenLibraryConfig struct {
	BaseURL  string
	Timeout  time.Duration
	Interval time.Duration // minimum spacing between requests; 0 disables pacing
}

// Load reads the configuration from environment variables, applying defaults
func Load() (*Config, error) {
	timeout, err := durationEnv("OPENLIBRARY_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	interval, err := durationEnv("OPENLIBRARY_RATE", time.Second)
	if err != nil {
		return nil, err
	}
	level, err := ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	return &Config{
		OpenLibrary: OpenLibraryConfig{
			BaseURL:  getEnv("OPENLIBRARY_URL", "https://openlibrary.org"),
			Timeout:  timeout,
			Interval: interval,
		},
		SeedPath: os.Getenv("BOOKSTOCK_SEED"),
		LogLevel: level,
	}, nil
}

// ParseLevel maps debug, info, warn and error to slog levels
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: must be debug, info, warn or error", s)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
