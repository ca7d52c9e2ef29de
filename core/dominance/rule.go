package dominance

import "github.com/kilianp07/timetable/core/model"

// Outcome tells the sweep which side of a compared pair to delete.
type Outcome int

const (
	// Keep leaves both services in place.
	Keep Outcome = iota
	// RemovePrimary deletes the primary provider's service.
	RemovePrimary
	// RemoveSecondary deletes the secondary provider's service.
	RemoveSecondary
)

func (o Outcome) String() string {
	switch o {
	case Keep:
		return "keep"
	case RemovePrimary:
		return "remove_primary"
	case RemoveSecondary:
		return "remove_secondary"
	default:
		return "unknown"
	}
}

// Removes returns the role deleted by the outcome. ok is false for Keep.
func (o Outcome) Removes() (r model.Role, ok bool) {
	switch o {
	case RemovePrimary:
		return model.Primary, true
	case RemoveSecondary:
		return model.Secondary, true
	default:
		return 0, false
	}
}

func removing(r model.Role) Outcome {
	if r == model.Primary {
		return RemovePrimary
	}
	return RemoveSecondary
}

// Reason names the branch of the rule that produced a decision.
type Reason string

const (
	ReasonExactTie      Reason = "exact_tie"
	ReasonSameDeparture Reason = "same_departure"
	ReasonSameArrival   Reason = "same_arrival"
	ReasonLongerOverlap Reason = "longer_overlap"
	ReasonDisjoint      Reason = "disjoint"
)

// Decision is the result of comparing one primary/secondary pair.
type Decision struct {
	Outcome Outcome
	Reason  Reason
}

// Rule decides which of two services from competing providers is dominated.
// Prefer is the provider kept when the services cannot otherwise be told
// apart: identical times, or overlapping windows of equal length.
type Rule struct {
	Prefer model.Role
}

// DefaultRule keeps the primary provider on ties.
func DefaultRule() Rule { return Rule{Prefer: model.Primary} }

// Decide compares primary service a against secondary service b.
func (r Rule) Decide(a, b model.Service) Decision {
	loser := r.Prefer.Other()
	switch {
	case a.Departure == b.Departure && a.Arrival == b.Arrival:
		return Decision{removing(loser), ReasonExactTie}
	case a.Departure == b.Departure:
		// the later arrival is dominated
		if a.Arrival > b.Arrival {
			return Decision{RemovePrimary, ReasonSameDeparture}
		}
		return Decision{RemoveSecondary, ReasonSameDeparture}
	case a.Arrival == b.Arrival:
		// the earlier departure is dominated
		if a.Departure > b.Departure {
			return Decision{RemoveSecondary, ReasonSameArrival}
		}
		return Decision{RemovePrimary, ReasonSameArrival}
	case !a.Overlaps(b):
		return Decision{Keep, ReasonDisjoint}
	}
	da, db := a.Duration(), b.Duration()
	switch {
	case da < db:
		return Decision{RemoveSecondary, ReasonLongerOverlap}
	case da > db:
		return Decision{RemovePrimary, ReasonLongerOverlap}
	default:
		return Decision{removing(loser), ReasonLongerOverlap}
	}
}
