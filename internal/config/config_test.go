package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:4000", c.BaseURL)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, "session.json", c.SessionFile)
	assert.Equal(t, "jobs_storm", c.UploadPreset)
	assert.Equal(t, "info", c.LogLevel)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("JOBSSTORM_BASE_URL", "https://api.example.com")
	t.Setenv("JOBSSTORM_REQUEST_TIMEOUT", "30s")
	t.Setenv("JOBSSTORM_LOG_LEVEL", "debug")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "https://api.example.com", c.BaseURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, "debug", c.LogLevel)
	// Untouched variables keep their defaults.
	assert.Equal(t, "session.json", c.SessionFile)
}

func TestParseEnv_BadDurationIgnored(t *testing.T) {
	t.Setenv("JOBSSTORM_REQUEST_TIMEOUT", "whenever")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 15*time.Second, c.RequestTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:4000", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
