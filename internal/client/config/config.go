package config

import "time"

// Config holds runtime settings for the Escalator CLI.
//
// Fields:
//   - APIBaseURL: root of the REST API, including the /api prefix.
//   - RequestTimeout: upper bound on every network call.
//   - DatabasePath: location of the local credential database.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000/api"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "escalator.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
