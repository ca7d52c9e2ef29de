package metrics

import (
	"time"

	"github.com/kilianp07/timetable/core/dominance"
	"github.com/kilianp07/timetable/core/ingest"
	"github.com/kilianp07/timetable/core/model"
)

// RunStats is the observable outcome of one timetable generation.
type RunStats struct {
	Ingest      ingest.Stats
	Filter      dominance.Result
	Survivors   map[model.Role]int
	Elapsed     time.Duration
	CompletedAt time.Time
}

// Sink records run statistics for observability purposes.
type Sink interface {
	RecordRun(RunStats) error
}

// Flusher is implemented by sinks that buffer output until the run ends.
type Flusher interface {
	Flush() error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordRun(RunStats) error { return nil }

// MultiSink fans out run statistics to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRun forwards the stats to all sinks, returning the first error encountered.
func (m *MultiSink) RecordRun(st RunStats) error {
	for _, s := range m.Sinks {
		if err := s.RecordRun(st); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes every sink that buffers output.
func (m *MultiSink) Flush() error {
	for _, s := range m.Sinks {
		if f, ok := s.(Flusher); ok {
			if err := f.Flush(); err != nil {
				return err
			}
		}
	}
	return nil
}
