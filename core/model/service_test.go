package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    Clock
		wantErr bool
	}{
		{"09:00", ClockOf(9, 0), false},
		{"9:5", ClockOf(9, 5), false},
		{"00:00", 0, false},
		{"23:59", ClockOf(23, 59), false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"12", 0, true},
		{"ab:10", 0, true},
		{"-1:10", 0, true},
		{"123:00", 0, true},
		{"10:", 0, true},
	}
	for _, c := range cases {
		got, err := ParseClock(c.in)
		if c.wantErr {
			assert.Error(t, err, c.in)
			continue
		}
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestClockString(t *testing.T) {
	assert.Equal(t, "09:05", ClockOf(9, 5).String())
	assert.Equal(t, 30*time.Minute, ClockOf(9, 30).Sub(ClockOf(9, 0)))
}

func TestNewServiceDurationBounds(t *testing.T) {
	s, err := NewService("Jai", Primary, ClockOf(9, 0), ClockOf(10, 0), DefaultMaxDuration)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, s.Duration())

	_, err = NewService("Jai", Primary, ClockOf(8, 0), ClockOf(9, 5), DefaultMaxDuration)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDuration))
	var de *InvalidDurationError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "Jai", de.Provider)

	_, err = NewService("Jai", Primary, ClockOf(9, 0), ClockOf(8, 30), DefaultMaxDuration)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestServiceOverlaps(t *testing.T) {
	a := Service{Departure: ClockOf(9, 0), Arrival: ClockOf(9, 30)}
	touching := Service{Departure: ClockOf(9, 30), Arrival: ClockOf(9, 50)}
	disjoint := Service{Departure: ClockOf(9, 31), Arrival: ClockOf(9, 50)}
	inside := Service{Departure: ClockOf(9, 10), Arrival: ClockOf(9, 20)}

	assert.True(t, a.Overlaps(touching))
	assert.True(t, touching.Overlaps(a))
	assert.False(t, a.Overlaps(disjoint))
	assert.False(t, disjoint.Overlaps(a))
	assert.True(t, a.Overlaps(inside))
}

func TestServiceOrdering(t *testing.T) {
	a := Service{Departure: ClockOf(9, 0), Arrival: ClockOf(9, 30)}
	b := Service{Departure: ClockOf(9, 0), Arrival: ClockOf(9, 45)}
	c := Service{Departure: ClockOf(8, 0), Arrival: ClockOf(9, 50)}
	assert.True(t, a.Less(b))
	assert.True(t, c.Less(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, "Jai 09:00 09:30", Service{Provider: "Jai", Departure: a.Departure, Arrival: a.Arrival}.String())
}

func TestRoleText(t *testing.T) {
	b, err := Secondary.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "secondary", string(b))
	var r Role
	require.NoError(t, r.UnmarshalText([]byte("secondary")))
	assert.Equal(t, Secondary, r)
	assert.Error(t, r.UnmarshalText([]byte("tertiary")))
	assert.Equal(t, Primary, Secondary.Other())
}
