// Package config holds the storefront CLI settings: defaults, then an
// optional JSON file (-c/-config), then command-line flags.
package config

import "time"

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - ServerURL: base URL of the storefront HTTP API.
//   - RequestTimeout: per-request deadline.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig applies defaults, then JSON, then flags. Later sources take
// precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
