package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DevMode)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("API_BASE_URL", "https://api.example.com/v1")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("HTTP_TIMEOUT", "3s")

	cfg := Load()

	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, "https://api.example.com/v1", cfg.APIBaseURL)
	assert.True(t, cfg.DevMode)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
}

func TestLoadIgnoresGarbageValues(t *testing.T) {
	t.Setenv("DEV_MODE", "yes please")
	t.Setenv("HTTP_TIMEOUT", "soon")

	cfg := Load()

	assert.False(t, cfg.DevMode)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
}
