package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a wall-clock time within a single day, stored as seconds since
// midnight. Services never span midnight so no date is carried.
type Clock int

// ClockOf builds a Clock from an hour and minute. It panics on out of range
// values and is meant for literals; use ParseClock for input.
func ClockOf(hour, minute int) Clock {
	c, err := newClock(hour, minute)
	if err != nil {
		panic(err)
	}
	return c
}

func newClock(hour, minute int) (Clock, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute %d out of range", minute)
	}
	return Clock(hour*3600 + minute*60), nil
}

// ParseClock parses "HH:MM". One or two digit parts are accepted.
func ParseClock(s string) (Clock, error) {
	hs, ms, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("time %q: missing ':'", s)
	}
	h, err := parseClockPart(hs)
	if err != nil {
		return 0, fmt.Errorf("time %q: hour: %w", s, err)
	}
	m, err := parseClockPart(ms)
	if err != nil {
		return 0, fmt.Errorf("time %q: minute: %w", s, err)
	}
	c, err := newClock(h, m)
	if err != nil {
		return 0, fmt.Errorf("time %q: %w", s, err)
	}
	return c, nil
}

func parseClockPart(s string) (int, error) {
	if len(s) == 0 || len(s) > 2 {
		return 0, fmt.Errorf("expected 1 or 2 digits, got %q", s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-numeric %q", s)
		}
	}
	return strconv.Atoi(s)
}

// Hour returns the hour component.
func (c Clock) Hour() int { return int(c) / 3600 }

// Minute returns the minute component.
func (c Clock) Minute() int { return int(c) % 3600 / 60 }

// Seconds returns seconds since midnight.
func (c Clock) Seconds() int { return int(c) }

// Sub returns the duration between c and an earlier clock u.
func (c Clock) Sub(u Clock) time.Duration {
	return time.Duration(c-u) * time.Second
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c Clock) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Clock) UnmarshalText(b []byte) error {
	v, err := ParseClock(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
