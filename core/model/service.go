package model

import "time"

// DefaultMaxDuration is the longest journey a service may take.
const DefaultMaxDuration = time.Hour

// Service represents one scheduled bus trip. It is a value and is not
// modified after construction.
type Service struct {
	Provider  string `json:"provider"`
	Role      Role   `json:"role"`
	Departure Clock  `json:"departure"`
	Arrival   Clock  `json:"arrival"`
}

// ServiceKey identifies a service within one provider's timetable.
type ServiceKey struct {
	Departure Clock
	Arrival   Clock
}

// NewService validates the journey duration and returns the service.
// Negative durations and durations above maxDur yield an *InvalidDurationError.
func NewService(provider string, role Role, departure, arrival Clock, maxDur time.Duration) (Service, error) {
	d := arrival.Sub(departure)
	if d < 0 || d > maxDur {
		return Service{}, &InvalidDurationError{Provider: provider, Departure: departure, Arrival: arrival, Max: maxDur}
	}
	return Service{Provider: provider, Role: role, Departure: departure, Arrival: arrival}, nil
}

// Duration returns the journey time.
func (s Service) Duration() time.Duration { return s.Arrival.Sub(s.Departure) }

// Key returns the departure/arrival pair used for set identity.
func (s Service) Key() ServiceKey { return ServiceKey{Departure: s.Departure, Arrival: s.Arrival} }

// Less orders services by departure, then arrival.
func (s Service) Less(o Service) bool {
	if s.Departure != o.Departure {
		return s.Departure < o.Departure
	}
	return s.Arrival < o.Arrival
}

// Compare returns -1, 0 or +1 following Less.
func (s Service) Compare(o Service) int {
	switch {
	case s.Less(o):
		return -1
	case o.Less(s):
		return 1
	default:
		return 0
	}
}

// Overlaps reports whether the two journey windows overlap or touch: the
// later-starting service departs no later than the other arrives.
func (s Service) Overlaps(o Service) bool {
	switch {
	case s.Departure > o.Departure:
		return s.Departure <= o.Arrival
	case o.Departure > s.Departure:
		return o.Departure <= s.Arrival
	default:
		return true
	}
}

// String formats the service as an output timetable line.
func (s Service) String() string {
	return s.Provider + " " + s.Departure.String() + " " + s.Arrival.String()
}
