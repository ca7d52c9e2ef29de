package dominance

import "github.com/kilianp07/timetable/core/model"

// Config selects the provider kept on ties.
type Config struct {
	// Prefer is "primary" or "secondary".
	Prefer string `json:"prefer"`
}

// SetDefaults prefers the primary provider.
func (c *Config) SetDefaults() {
	if c.Prefer == "" {
		c.Prefer = model.Primary.String()
	}
}

// Rule builds the dominance rule described by the config.
func (c Config) Rule() (Rule, error) {
	r, err := model.ParseRole(c.Prefer)
	if err != nil {
		return Rule{}, err
	}
	return Rule{Prefer: r}, nil
}
