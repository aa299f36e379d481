package config

import (
	"strings"
	"time"
)

// Config holds runtime settings for the FitTrack CLI.
//
// Fields:
//   - APIBaseURL: prefix for every backend path; empty means Origin is used.
//   - Origin: where the client is considered to run from.
//   - RequestTimeout: ceiling for a single HTTP request.
//   - StoragePath: SQLite file holding the session token.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string        `env:"FITTRACK_API_BASE_URL"`
	Origin         string        `env:"FITTRACK_ORIGIN"`
	RequestTimeout time.Duration `env:"FITTRACK_REQUEST_TIMEOUT"`
	StoragePath    string        `env:"FITTRACK_STORAGE_PATH"`
	LogLevel       string        `env:"FITTRACK_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = ""
	c.Origin = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second
	c.StoragePath = "fittrack.db"
	c.LogLevel = "info"
}

// BaseURL returns the URL request paths are resolved against.
func (c *Config) BaseURL() string {
	if c.APIBaseURL != "" {
		return strings.TrimRight(c.APIBaseURL, "/")
	}
	return strings.TrimRight(c.Origin, "/")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
