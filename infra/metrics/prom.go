package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/timetable/core/metrics"
	"github.com/kilianp07/timetable/core/model"
)

// PromSink records run statistics in Prometheus metrics. A one-shot CLI run
// cannot be scraped, so when a textfile path is set the registry is written
// there for the node exporter textfile collector on Flush.
type PromSink struct {
	ingested    *prometheus.CounterVec
	dropped     *prometheus.CounterVec
	removed     *prometheus.CounterVec
	surviving   *prometheus.GaugeVec
	comparisons prometheus.Histogram
	duration    prometheus.Histogram
	lastRun     prometheus.Gauge

	gatherer prometheus.Gatherer
	textfile string
}

// NewPromSink registers timetable metrics on a fresh registry.
func NewPromSink(textfile string) (*PromSink, error) {
	reg := prometheus.NewRegistry()
	return NewPromSinkWithRegistry(textfile, reg, reg)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer and a nil
// gatherer to the global gatherer.
func NewPromSinkWithRegistry(textfile string, reg prometheus.Registerer, g prometheus.Gatherer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	s := &PromSink{gatherer: g, textfile: textfile}
	var err error
	if s.ingested, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_services_ingested_total",
		Help: "Services accepted from the input timetable",
	}, []string{"role"})); err != nil {
		return nil, err
	}
	if s.dropped, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_services_dropped_total",
		Help: "Input lines dropped during ingestion",
	}, []string{"reason"})); err != nil {
		return nil, err
	}
	if s.removed, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_services_removed_total",
		Help: "Services removed as dominated by the other provider",
	}, []string{"role", "reason"})); err != nil {
		return nil, err
	}
	if s.surviving, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "timetable_services_surviving",
		Help: "Services left in the efficient timetable of the last run",
	}, []string{"role"})); err != nil {
		return nil, err
	}
	if s.comparisons, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetable_filter_comparisons",
		Help:    "Service pairs compared per filter pass",
		Buckets: prometheus.ExponentialBuckets(1, 4, 6),
	})); err != nil {
		return nil, err
	}
	if s.duration, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetable_run_duration_seconds",
		Help:    "Wall time of a timetable generation run",
		Buckets: prometheus.DefBuckets,
	})); err != nil {
		return nil, err
	}
	if s.lastRun, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "timetable_last_run_timestamp_seconds",
		Help: "Unix time of the last completed run",
	})); err != nil {
		return nil, err
	}
	return s, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordRun updates every metric from the run statistics.
func (s *PromSink) RecordRun(st coremetrics.RunStats) error {
	for _, r := range model.Roles {
		s.ingested.WithLabelValues(r.String()).Add(float64(st.Ingest.Accepted[r]))
		s.surviving.WithLabelValues(r.String()).Set(float64(st.Survivors[r]))
	}
	s.dropped.WithLabelValues("invalid_duration").Add(float64(st.Ingest.InvalidDuration))
	s.dropped.WithLabelValues("malformed").Add(float64(st.Ingest.Malformed))
	s.dropped.WithLabelValues("duplicate").Add(float64(st.Ingest.Duplicates))
	for _, rm := range st.Filter.Removals {
		s.removed.WithLabelValues(rm.Service.Role.String(), string(rm.Reason)).Inc()
	}
	s.comparisons.Observe(float64(st.Filter.Comparisons))
	s.duration.Observe(st.Elapsed.Seconds())
	if !st.CompletedAt.IsZero() {
		s.lastRun.Set(float64(st.CompletedAt.Unix()))
	}
	return nil
}

// Flush writes the gathered metrics to the textfile, if one is configured.
func (s *PromSink) Flush() error {
	if s.textfile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(s.textfile, s.gatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
