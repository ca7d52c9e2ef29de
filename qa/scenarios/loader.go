package scenarios

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Expected is the timetable a scenario must produce.
type Expected struct {
	// Output is the exact text timetable.
	Output string `yaml:"output"`
	// Removed counts dominated services per role name.
	Removed map[string]int `yaml:"removed,omitempty"`
	// Dropped counts lines rejected for their duration.
	Dropped int `yaml:"dropped,omitempty"`
	// Error, when set, must be contained in the run error.
	Error string `yaml:"error,omitempty"`
}

// Scenario is one golden timetable case.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	// Prefer overrides the tie-break provider role.
	Prefer string `yaml:"prefer,omitempty"`
	// OnMalformed overrides the malformed-line policy.
	OnMalformed string   `yaml:"on_malformed,omitempty"`
	Input       string   `yaml:"input"`
	Expected    Expected `yaml:"expected"`
}

// Load reads every scenario document from the YAML file at path.
func Load(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	var out []Scenario
	dec := yaml.NewDecoder(f)
	for {
		var sc Scenario
		if err := dec.Decode(&sc); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		out = append(out, sc)
	}
}
