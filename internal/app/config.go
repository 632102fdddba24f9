package app

import (
	"fmt"
	"slices"
)

// Config holds everything an App needs besides its streams.
type Config struct {
	ConfigPath string // optional .hcl file or directory

	LogFormat string
	LogLevel  string
}

var (
	logFormats = []string{"auto", "text", "json"}
	logLevels  = []string{"debug", "info", "warn", "error"}
)

// NewConfig validates cfg and fills in defaults for empty logging fields.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "auto"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if !slices.Contains(logFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log-format %q: must be one of %v", cfg.LogFormat, logFormats)
	}
	if !slices.Contains(logLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log-level %q: must be one of %v", cfg.LogLevel, logLevels)
	}
	return &cfg, nil
}
