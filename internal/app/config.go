package app

import (
	"fmt"
)

// Config holds the validated settings of one application run.
type Config struct {
	PuzzlePath   string // empty selects the built-in classic puzzle
	Start        string // overrides the puzzle's start key when set
	Goal         string // overrides the puzzle's goal key when set
	OutputFormat string // text or json
	LogFormat    string // text or json
	LogLevel     string // debug, info, warn or error
}

// NewConfig validates c and fills in defaults for empty fields.
func NewConfig(c Config) (*Config, error) {
	if c.OutputFormat == "" {
		c.OutputFormat = "text"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}

	switch c.OutputFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid format %q: must be 'text' or 'json'", c.OutputFormat)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}

	return &c, nil
}
