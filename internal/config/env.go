package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with values from the process environment. A .env file
// in the working directory is folded in first when present; a missing file is
// not an error.
//
// Recognized variables:
//
//	JOBSSTORM_BASE_URL
//	JOBSSTORM_REQUEST_TIMEOUT (go duration, e.g. "15s")
//	JOBSSTORM_SESSION_FILE
//	JOBSSTORM_CLOUD_NAME
//	JOBSSTORM_UPLOAD_PRESET
//	JOBSSTORM_LOG_LEVEL
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("JOBSSTORM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("JOBSSTORM_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("JOBSSTORM_SESSION_FILE"); v != "" {
		cfg.SessionFile = v
	}
	if v := os.Getenv("JOBSSTORM_CLOUD_NAME"); v != "" {
		cfg.CloudName = v
	}
	if v := os.Getenv("JOBSSTORM_UPLOAD_PRESET"); v != "" {
		cfg.UploadPreset = v
	}
	if v := os.Getenv("JOBSSTORM_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
