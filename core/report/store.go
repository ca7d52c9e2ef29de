package report

import (
	"context"
	"time"

	"github.com/kilianp07/timetable/core/dominance"
	"github.com/kilianp07/timetable/core/ingest"
	"github.com/kilianp07/timetable/core/model"
)

// Record captures one timetable generation run.
type Record struct {
	ID          string                      `json:"id"`
	Timestamp   time.Time                   `json:"timestamp"`
	Input       string                      `json:"input"`
	Output      string                      `json:"output,omitempty"`
	Ingest      ingest.Stats                `json:"ingest"`
	Comparisons int                         `json:"comparisons"`
	Removals    []dominance.Removal         `json:"removals"`
	Survivors   map[model.Role]int          `json:"survivors"`
	Durations   map[model.Role]DurationStat `json:"durations"`
}

// Query defines filters for retrieving records.
type Query struct {
	Start time.Time
	End   time.Time
	// Provider matches records that removed a service of this provider.
	Provider string
}

func (q Query) match(r Record) bool {
	if !q.Start.IsZero() && r.Timestamp.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && r.Timestamp.After(q.End) {
		return false
	}
	if q.Provider == "" {
		return true
	}
	for _, rm := range r.Removals {
		if rm.Service.Provider == q.Provider {
			return true
		}
	}
	return false
}

// Store persists run records and supports querying.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Query(ctx context.Context, q Query) ([]Record, error)
	Close() error
}

// NopStore drops every record.
type NopStore struct{}

func (NopStore) Append(context.Context, Record) error          { return nil }
func (NopStore) Query(context.Context, Query) ([]Record, error) { return nil, nil }
func (NopStore) Close() error                                   { return nil }
