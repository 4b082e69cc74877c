package config

import "time"

// Config holds runtime settings for the StruMind console.
//
// Fields:
//   - BaseURL: root of the StruMind HTTP API, e.g. "http://127.0.0.1:8000".
//   - PollInterval: how often a live analysis job's status is re-fetched.
//   - HTTPTimeout: per-request deadline for API calls.
//   - DatabasePath: SQLite file holding the session token and query cache.
//
// Units: PollInterval and HTTPTimeout are time.Durations (e.g., 2*time.Second).
type Config struct {
	BaseURL      string
	PollInterval time.Duration
	HTTPTimeout  time.Duration
	DatabasePath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8000"
	c.PollInterval = 2 * time.Second
	c.HTTPTimeout = 10 * time.Second
	c.DatabasePath = "strumind.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
