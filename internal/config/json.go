package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/flagx"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be given either as a string like "15s"
// or as integer nanoseconds.
type JsonConfig struct {
	BaseURL        string         `json:"base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	SessionFile    string         `json:"session_file"`
	CloudName      string         `json:"cloud_name"`
	UploadPreset   string         `json:"upload_preset"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays cfg with values loaded from the JSON file given via the
// -c/-config flag. When no file is given the function is a no-op. Read or
// unmarshal errors panic; config is resolved once at startup and a broken
// file should stop the program.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
	if jc.CloudName != "" {
		cfg.CloudName = jc.CloudName
	}
	if jc.UploadPreset != "" {
		cfg.UploadPreset = jc.UploadPreset
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
