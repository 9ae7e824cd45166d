// Package config holds the runtime settings of the embedding application.
// There is no CLI, so the overlay order is: defaults, then an optional JSON
// file, then environment variables. Later sources take precedence.
package config

import "time"

// Config holds runtime settings for the inspection logger core.
//
// Fields:
//   - DatabasePath: SQLite DSN/path of the local record store.
//   - UploadTimeout: per-request timeout for media uploads.
//   - UploadBatchSize: limit of upload attempts per reconcile pass.
type Config struct {
	DatabasePath    string
	UploadTimeout   time.Duration
	UploadBatchSize int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "inspekto.db"
	c.UploadTimeout = 30 * time.Second
	c.UploadBatchSize = 12
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and environment variables (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
