package report

import "fmt"

// Config defines settings for the run report store and its rotation.
type Config struct {
	Enabled bool `json:"enabled"`
	// Backend selects the store type: "jsonl" or "rotating".
	Backend string `json:"backend"`
	// Path is the file location of the store.
	Path string `json:"path"`
	// MaxSizeMB triggers rotation when the file exceeds this size in megabytes.
	MaxSizeMB int `json:"max_size_mb"`
	// MaxBackups limits the number of rotated files to keep.
	MaxBackups int `json:"max_backups"`
	// MaxAgeDays removes rotated files older than this number of days.
	MaxAgeDays int `json:"max_age_days"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Backend == "" {
		c.Backend = "jsonl"
	}
	if c.Path == "" {
		c.Path = "timetable-runs.jsonl"
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.Backend != "jsonl" && c.Backend != "rotating" {
		return fmt.Errorf("unknown backend %s", c.Backend)
	}
	if c.Path == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}

// NewStore opens the configured store, or a NopStore when disabled.
func NewStore(c Config) (Store, error) {
	if !c.Enabled {
		return NopStore{}, nil
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Backend == "rotating" {
		return NewRotatingJSONLStore(c.Path, c.MaxSizeMB, c.MaxBackups, c.MaxAgeDays)
	}
	return NewJSONLStore(c.Path)
}
