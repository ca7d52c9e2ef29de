package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/timetable/core/dominance"
	"github.com/kilianp07/timetable/core/ingest"
	"github.com/kilianp07/timetable/core/metrics"
	"github.com/kilianp07/timetable/core/report"
)

// EnvPrefix marks environment variables that override file settings.
// Nested keys are separated by a double underscore, e.g.
// TT_INGEST__MAX_ENTRIES=20.
const EnvPrefix = "TT_"

// Config is the application configuration.
type Config struct {
	Log     LogConfig        `json:"log"`
	Ingest  ingest.Config    `json:"ingest"`
	Filter  dominance.Config `json:"filter"`
	Output  OutputConfig     `json:"output"`
	Report  report.Config    `json:"report"`
	Metrics metrics.Config   `json:"metrics"`
}

// Load reads the configuration file at path, applies environment overrides
// and defaults, and validates the result. An empty path loads defaults and
// environment overrides only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a validated configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.SetDefaults()
	return &cfg
}

// SetDefaults fills unset fields of every section.
func (c *Config) SetDefaults() {
	c.Log.SetDefaults()
	c.Ingest.SetDefaults()
	c.Filter.SetDefaults()
	c.Report.SetDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Ingest.Validate(); err != nil {
		return fmt.Errorf("ingest: %w", err)
	}
	if _, err := c.Filter.Rule(); err != nil {
		return fmt.Errorf("filter: %w", err)
	}
	if c.Report.Enabled {
		if err := c.Report.Validate(); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}
	return nil
}
