// Package metrics provides metrics sink implementations. Importing it
// registers the "prometheus" sink type with the core factory.
package metrics

import (
	"github.com/kilianp07/timetable/core/factory"
	coremetrics "github.com/kilianp07/timetable/core/metrics"
)

// init registers built-in metrics sinks.
func init() {
	_ = coremetrics.RegisterSink("prometheus", func(conf map[string]any) (coremetrics.Sink, error) {
		var c struct {
			Textfile string `json:"textfile"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewPromSink(c.Textfile)
	})
}
