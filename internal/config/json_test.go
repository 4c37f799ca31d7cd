package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonConfig_Unmarshal(t *testing.T) {
	data := []byte(`{
		"base_url": "https://api.example.com",
		"request_timeout": "20s",
		"session_file": "/tmp/sess.json",
		"cloud_name": "acme",
		"upload_preset": "jobs_storm",
		"log_level": "warn"
	}`)

	var jc JsonConfig
	require.NoError(t, json.Unmarshal(data, &jc))

	assert.Equal(t, "https://api.example.com", jc.BaseURL)
	assert.Equal(t, 20*time.Second, jc.RequestTimeout.Duration)
	assert.Equal(t, "/tmp/sess.json", jc.SessionFile)
	assert.Equal(t, "acme", jc.CloudName)
	assert.Equal(t, "jobs_storm", jc.UploadPreset)
	assert.Equal(t, "warn", jc.LogLevel)
}

func TestJsonConfig_NanosecondTimeout(t *testing.T) {
	var jc JsonConfig
	require.NoError(t, json.Unmarshal([]byte(`{"request_timeout": 5000000000}`), &jc))
	assert.Equal(t, 5*time.Second, jc.RequestTimeout.Duration)
}
