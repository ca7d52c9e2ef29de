package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/timetable/config"
	"github.com/kilianp07/timetable/core/dominance"
	"github.com/kilianp07/timetable/core/ingest"
	coremetrics "github.com/kilianp07/timetable/core/metrics"
	"github.com/kilianp07/timetable/core/model"
	"github.com/kilianp07/timetable/core/report"
	"github.com/kilianp07/timetable/core/timetable"
	"github.com/kilianp07/timetable/infra/logger"
	_ "github.com/kilianp07/timetable/infra/metrics"
	"github.com/kilianp07/timetable/pkg/export"
)

// Outcome describes one completed generation run.
type Outcome struct {
	RunID     string
	Timetable *timetable.Timetable
	Ingest    ingest.Stats
	Filter    dominance.Result
	Output    string
}

// Service wires ingestion, filtering, export, reporting and metrics.
type Service struct {
	cfg    *config.Config
	reader *ingest.Reader
	filter *dominance.Filter
	store  report.Store
	sink   coremetrics.Sink
	log    logger.Logger
	now    func() time.Time
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		return nil, err
	}
	reader, err := ingest.NewReader(cfg.Ingest, logger.New("ingest"))
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	rule, err := cfg.Filter.Rule()
	if err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}
	sink, err := coremetrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	store, err := report.NewStore(cfg.Report)
	if err != nil {
		return nil, fmt.Errorf("report store: %w", err)
	}
	return &Service{
		cfg:    cfg,
		reader: reader,
		filter: dominance.NewFilter(rule, logger.New("filter")),
		store:  store,
		sink:   sink,
		log:    logger.New("service"),
		now:    time.Now,
	}, nil
}

// Generate builds the efficient timetable from inputPath and writes it to a
// new file in outputDir. A blank or invalid outputDir falls back to the
// configured output directory, then to the input file's directory.
func (s *Service) Generate(ctx context.Context, inputPath, outputDir string) (*Outcome, error) {
	inputPath = unquote(inputPath)
	out, err := s.run(ctx, inputPath)
	if err != nil {
		return nil, err
	}
	dir := ResolveOutputDir(inputPath, outputDir, s.cfg.Output.Dir)
	out.Output = export.OutputPath(dir, s.now())
	if err := export.WriteFile(out.Output, out.Timetable); err != nil {
		return nil, fmt.Errorf("write timetable: %w", err)
	}
	s.log.Infof("output timetable generated at %s", out.Output)
	s.finish(ctx, inputPath, out)
	return out, nil
}

// Check builds the efficient timetable from inputPath and prints it to w
// without creating any file.
func (s *Service) Check(ctx context.Context, inputPath string, w io.Writer) (*Outcome, error) {
	inputPath = unquote(inputPath)
	out, err := s.run(ctx, inputPath)
	if err != nil {
		return nil, err
	}
	if err := export.WriteText(w, out.Timetable); err != nil {
		return nil, fmt.Errorf("write timetable: %w", err)
	}
	s.finish(ctx, inputPath, out)
	return out, nil
}

func (s *Service) run(ctx context.Context, inputPath string) (*Outcome, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	start := s.now()
	tt, st, err := s.reader.Read(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", inputPath, err)
	}
	res := s.filter.Apply(tt)
	s.log.Infof("filter compared %d pairs and removed %d primary and %d secondary services",
		res.Comparisons, res.Removed(model.Primary), res.Removed(model.Secondary))

	out := &Outcome{RunID: uuid.NewString(), Timetable: tt, Ingest: st, Filter: res}
	if err := s.sink.RecordRun(coremetrics.RunStats{
		Ingest:      st,
		Filter:      res,
		Survivors:   map[model.Role]int{model.Primary: tt.Primary.Len(), model.Secondary: tt.Secondary.Len()},
		Elapsed:     s.now().Sub(start),
		CompletedAt: s.now(),
	}); err != nil {
		s.log.Errorf("metrics: %v", err)
	}
	return out, nil
}

// finish persists the run record and flushes buffered metrics. Failures are
// logged; the timetable itself has already been produced.
func (s *Service) finish(ctx context.Context, inputPath string, out *Outcome) {
	rec := report.NewRecord(out.RunID, s.now(), inputPath, out.Output, out.Ingest, out.Filter, out.Timetable)
	if err := s.store.Append(ctx, rec); err != nil {
		s.log.Errorf("report append: %v", err)
	}
	if f, ok := s.sink.(coremetrics.Flusher); ok {
		if err := f.Flush(); err != nil {
			s.log.Errorf("metrics flush: %v", err)
		}
	}
}

// Reports returns the stored run records matching q.
func (s *Service) Reports(ctx context.Context, q report.Query) ([]report.Record, error) {
	return s.store.Query(ctx, q)
}

// Close releases resources held by the service.
func (s *Service) Close() error { return s.store.Close() }

// ResolveOutputDir picks the first candidate that names an existing
// directory, falling back to the directory of inputPath.
func ResolveOutputDir(inputPath string, candidates ...string) string {
	for _, c := range candidates {
		c = unquote(c)
		if c == "" {
			continue
		}
		if fi, err := os.Stat(c); err == nil && fi.IsDir() {
			return c
		}
	}
	return filepath.Dir(inputPath)
}

func unquote(p string) string {
	return strings.TrimSpace(strings.ReplaceAll(p, `"`, ""))
}
