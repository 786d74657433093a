package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime configuration, populated from STORDERS_*
// environment variables.
type Config struct {
	// ListenAddr is the HTTP API listen address
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8000"`
	// DatabasePath is the SQLite database file; ":memory:" for ephemeral use
	DatabasePath string `envconfig:"DB_PATH" default:"storders.db"`
	// APIBaseURL is where the MCP adapter reaches the REST API
	APIBaseURL string `envconfig:"API_BASE_URL" default:"http://localhost:8000"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// MaxListLimit caps the page size of list endpoints
	MaxListLimit int `envconfig:"MAX_LIST_LIMIT" default:"100"`
}

// Load reads configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("STORDERS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
