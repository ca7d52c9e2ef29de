package report

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/timetable/core/dominance"
	"github.com/kilianp07/timetable/core/ingest"
	"github.com/kilianp07/timetable/core/model"
	"github.com/kilianp07/timetable/core/timetable"
)

// DurationStat summarises surviving journey times in minutes.
type DurationStat struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean_minutes"`
	StdDev float64 `json:"stddev_minutes"`
	Min    float64 `json:"min_minutes"`
	Max    float64 `json:"max_minutes"`
}

// Summarize computes journey statistics for one set of services.
func Summarize(s *timetable.ServiceSet) DurationStat {
	var mins []float64
	for svc := range s.All() {
		mins = append(mins, svc.Duration().Minutes())
	}
	ds := DurationStat{Count: len(mins)}
	if len(mins) == 0 {
		return ds
	}
	ds.Mean = stat.Mean(mins, nil)
	if len(mins) > 1 {
		ds.StdDev = stat.StdDev(mins, nil)
	}
	ds.Min, ds.Max = mins[0], mins[0]
	for _, m := range mins[1:] {
		ds.Min = min(ds.Min, m)
		ds.Max = max(ds.Max, m)
	}
	return ds
}

// NewRecord assembles the record of a completed run.
func NewRecord(id string, at time.Time, input, output string, st ingest.Stats, res dominance.Result, tt *timetable.Timetable) Record {
	rec := Record{
		ID:          id,
		Timestamp:   at,
		Input:       input,
		Output:      output,
		Ingest:      st,
		Comparisons: res.Comparisons,
		Removals:    res.Removals,
		Survivors:   map[model.Role]int{},
		Durations:   map[model.Role]DurationStat{},
	}
	for _, r := range model.Roles {
		rec.Survivors[r] = tt.Set(r).Len()
		rec.Durations[r] = Summarize(tt.Set(r))
	}
	return rec
}
