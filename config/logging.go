package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// LogConfig defines application log settings.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn or error.
	Level string `json:"level"`
}

// SetDefaults applies sane defaults.
func (c *LogConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks the level name.
func (c LogConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// OutputConfig defines where generated timetables are written.
type OutputConfig struct {
	// Dir is the output directory. Empty means the input file's directory.
	Dir string `json:"dir"`
}
