package ingest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kilianp07/timetable/core/logger"
	"github.com/kilianp07/timetable/core/model"
	"github.com/kilianp07/timetable/core/timetable"
)

// Stats counts what happened to the input lines.
type Stats struct {
	Lines           int                `json:"lines"`
	Accepted        map[model.Role]int `json:"accepted"`
	Duplicates      int                `json:"duplicates"`
	InvalidDuration int                `json:"invalid_duration"`
	Malformed       int                `json:"malformed"`
	Truncated       bool               `json:"truncated"`
}

// Reader loads an input timetable into per-provider service sets.
type Reader struct {
	cfg Config
	log logger.Logger
}

// NewReader validates cfg and returns a Reader. log may be nil.
func NewReader(cfg Config, log logger.Logger) (*Reader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Reader{cfg: cfg, log: logger.OrNop(log)}, nil
}

// Read parses lines of the form "<provider> <HH:MM> <HH:MM>". Services whose
// journey exceeds the configured maximum are dropped. A malformed line aborts
// the read with a *model.MalformedRecordError unless the skip policy is set.
// Blank lines are ignored; at most MaxEntries other lines are considered.
func (r *Reader) Read(ctx context.Context, in io.Reader) (*timetable.Timetable, Stats, error) {
	tt := timetable.New()
	st := Stats{Accepted: map[model.Role]int{}}
	sc := bufio.NewScanner(in)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if st.Lines == r.cfg.MaxEntries {
			st.Truncated = true
			r.log.Warnf("entry limit %d reached, ignoring input from line %d", r.cfg.MaxEntries, lineNo)
			break
		}
		st.Lines++

		svc, err := r.parse(lineNo, text)
		var malformed *model.MalformedRecordError
		switch {
		case errors.As(err, &malformed):
			st.Malformed++
			if r.cfg.OnMalformed == PolicyAbort {
				r.log.Errorf("aborting ingestion: %v", err)
				return nil, st, err
			}
			r.log.Warnf("skipping %v", err)
			continue
		case errors.Is(err, model.ErrInvalidDuration):
			st.InvalidDuration++
			r.log.Warnf("dropping line %d: %v", lineNo, err)
			continue
		case err != nil:
			return nil, st, err
		}

		if !tt.Add(svc) {
			st.Duplicates++
			r.log.Debugf("line %d duplicates an existing %s service", lineNo, svc.Role)
			continue
		}
		st.Accepted[svc.Role]++
	}
	if err := sc.Err(); err != nil {
		return nil, st, fmt.Errorf("read input: %w", err)
	}
	r.log.Infof("ingested %d primary and %d secondary services from %d lines",
		st.Accepted[model.Primary], st.Accepted[model.Secondary], st.Lines)
	return tt, st, nil
}

func (r *Reader) parse(lineNo int, text string) (model.Service, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return model.Service{}, &model.MalformedRecordError{
			Line: lineNo, Text: text,
			Reason: fmt.Sprintf("expected 3 fields, got %d", len(fields)),
		}
	}
	dep, err := model.ParseClock(fields[1])
	if err != nil {
		return model.Service{}, &model.MalformedRecordError{Line: lineNo, Text: text, Reason: "departure: " + err.Error()}
	}
	arr, err := model.ParseClock(fields[2])
	if err != nil {
		return model.Service{}, &model.MalformedRecordError{Line: lineNo, Text: text, Reason: "arrival: " + err.Error()}
	}
	provider := fields[0]
	return model.NewService(provider, r.cfg.RoleOf(provider), dep, arr, r.cfg.MaxDuration())
}
