package config

import "time"

// Config holds runtime settings for the Notes-AI CLI.
//
// Fields:
//   - APIServerAddr: base URL of the backend HTTP API.
//   - RequestTimeout: per-request timeout for backend calls.
//   - DraftsDBPath: path of the local sqlite file caching note drafts.
//
// Units: RequestTimeout is a time.Duration (e.g., 10*time.Second).
type Config struct {
	APIServerAddr  string
	DraftsDBPath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIServerAddr = "http://localhost:8080"
	c.DraftsDBPath = "notesai-drafts.db"
	c.RequestTimeout = 10 * time.Second
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
