// Package config assembles runtime settings for the admin console from
// defaults, an optional JSON file, environment variables and command-line
// flags. Later sources take precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the JobsStorm admin console.
//
// Fields:
//   - BaseURL: origin of the backend REST API, without a trailing slash.
//   - RequestTimeout: per-request deadline applied by the transport.
//   - SessionFile: path where the admin session token is persisted.
//   - CloudName: account name of the image host used for uploads.
//   - UploadPreset: unsigned upload preset on the image host.
//   - LogLevel: debug|info|warn|error.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	SessionFile    string
	CloudName      string
	UploadPreset   string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:4000"
	c.RequestTimeout = 15 * time.Second
	c.SessionFile = "session.json"
	c.UploadPreset = "jobs_storm"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if a -c/-config file is given), the environment (including a .env
// file when present) and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
