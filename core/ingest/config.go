package ingest

import (
	"fmt"
	"time"

	"github.com/kilianp07/timetable/core/model"
)

// Malformed-line policies.
const (
	PolicyAbort = "abort"
	PolicySkip  = "skip"
)

// Config bounds and interprets the input timetable.
type Config struct {
	// MaxEntries caps the number of non-blank lines read across both providers.
	MaxEntries int `json:"max_entries"`
	// MaxDurationSeconds is the longest accepted journey.
	MaxDurationSeconds int `json:"max_duration_seconds"`
	// SecondaryProvider is the provider name, matched case-sensitively, whose
	// services belong to the secondary role. Every other name is primary.
	SecondaryProvider string `json:"secondary_provider"`
	// OnMalformed is "abort" to fail the whole run or "skip" to drop the line.
	OnMalformed string `json:"on_malformed"`
}

// DefaultConfig mirrors the reference timetable rules.
func DefaultConfig() Config {
	c := Config{}
	c.SetDefaults()
	return c
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.MaxEntries == 0 {
		c.MaxEntries = 50
	}
	if c.MaxDurationSeconds == 0 {
		c.MaxDurationSeconds = int(model.DefaultMaxDuration / time.Second)
	}
	if c.SecondaryProvider == "" {
		c.SecondaryProvider = "Veeru"
	}
	if c.OnMalformed == "" {
		c.OnMalformed = PolicyAbort
	}
}

// Validate checks the configured bounds.
func (c Config) Validate() error {
	if c.MaxEntries <= 0 {
		return fmt.Errorf("max_entries must be positive")
	}
	if c.MaxDurationSeconds <= 0 {
		return fmt.Errorf("max_duration_seconds must be positive")
	}
	if c.SecondaryProvider == "" {
		return fmt.Errorf("secondary_provider is required")
	}
	if c.OnMalformed != PolicyAbort && c.OnMalformed != PolicySkip {
		return fmt.Errorf("unknown on_malformed policy %s", c.OnMalformed)
	}
	return nil
}

// MaxDuration returns MaxDurationSeconds as a time.Duration.
func (c Config) MaxDuration() time.Duration {
	return time.Duration(c.MaxDurationSeconds) * time.Second
}

// RoleOf maps a provider name to its role.
func (c Config) RoleOf(provider string) model.Role {
	if provider == c.SecondaryProvider {
		return model.Secondary
	}
	return model.Primary
}
