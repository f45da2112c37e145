package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"OPENLIBRARY_URL", "OPENLIBRARY_TIMEOUT", "OPENLIBRARY_RATE", "BOOKSTOCK_SEED", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://openlibrary.org", cfg.OpenLibrary.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.OpenLibrary.Timeout)
	assert.Equal(t, time.Second, cfg.OpenLibrary.Interval)
	assert.Empty(t, cfg.SeedPath)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENLIBRARY_URL", "http://localhost:9999")
	t.Setenv("OPENLIBRARY_TIMEOUT", "5s")
	t.Setenv("OPENLIBRARY_RATE", "0s")
	t.Setenv("BOOKSTOCK_SEED", "seed.yaml")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", cfg.OpenLibrary.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.OpenLibrary.Timeout)
	assert.Zero(t, cfg.OpenLibrary.Interval)
	assert.Equal(t, "seed.yaml", cfg.SeedPath)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "OPENLIBRARY_TIMEOUT", value: "soon"},
		{key: "OPENLIBRARY_RATE", value: "10"},
		{key: "LOG_LEVEL", value: "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()

			assert.ErrorContains(t, err, tt.key)
		})
	}
}
