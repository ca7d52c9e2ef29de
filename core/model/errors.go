package model

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidDuration is matched by every InvalidDurationError.
	ErrInvalidDuration = errors.New("invalid service duration")
	// ErrMalformedRecord is matched by every MalformedRecordError.
	ErrMalformedRecord = errors.New("malformed service record")
)

// InvalidDurationError reports a service whose journey is negative or longer
// than the allowed maximum. Such services never enter a timetable.
type InvalidDurationError struct {
	Provider  string
	Departure Clock
	Arrival   Clock
	Max       time.Duration
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("service %s %s %s: duration %s outside [0, %s]",
		e.Provider, e.Departure, e.Arrival, e.Arrival.Sub(e.Departure), e.Max)
}

func (e *InvalidDurationError) Is(target error) bool { return target == ErrInvalidDuration }

// MalformedRecordError reports an input line that cannot be parsed.
type MalformedRecordError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d %q: %s", e.Line, e.Text, e.Reason)
}

func (e *MalformedRecordError) Is(target error) bool { return target == ErrMalformedRecord }
