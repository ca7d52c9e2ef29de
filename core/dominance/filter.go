package dominance

import (
	"github.com/kilianp07/timetable/core/logger"
	"github.com/kilianp07/timetable/core/model"
	"github.com/kilianp07/timetable/core/timetable"
)

// Removal explains why a service left the timetable.
type Removal struct {
	Service model.Service `json:"service"`
	By      model.Service `json:"by"`
	Reason  Reason        `json:"reason"`
}

// Result summarises one filter pass.
type Result struct {
	Comparisons int       `json:"comparisons"`
	Removals    []Removal `json:"removals"`
}

// Removed returns how many services of role r were removed.
func (r Result) Removed(role model.Role) int {
	n := 0
	for _, rm := range r.Removals {
		if rm.Service.Role == role {
			n++
		}
	}
	return n
}

// Filter removes dominated services from a timetable.
type Filter struct {
	rule Rule
	log  logger.Logger
}

// NewFilter returns a Filter applying rule. log may be nil.
func NewFilter(rule Rule, log logger.Logger) *Filter {
	return &Filter{rule: rule, log: logger.OrNop(log)}
}

// slot is one entry of a snapshot; removed marks it as gone from the live set.
type slot struct {
	svc     model.Service
	removed bool
}

func snapshot(s *timetable.ServiceSet) []slot {
	members := s.Snapshot()
	out := make([]slot, len(members))
	for i, m := range members {
		out[i].svc = m
	}
	return out
}

// Apply compares every primary service against every secondary service and
// deletes the dominated one of each pair from the live sets. Iteration runs
// over snapshots taken up front so deletions never disturb the sweep. Once a
// primary service is removed it is not compared further.
func (f *Filter) Apply(tt *timetable.Timetable) Result {
	var res Result
	primary := snapshot(tt.Primary)
	secondary := snapshot(tt.Secondary)

	for i := range primary {
		a := &primary[i]
		for j := range secondary {
			b := &secondary[j]
			if b.removed {
				continue
			}
			res.Comparisons++
			d := f.rule.Decide(a.svc, b.svc)
			switch d.Outcome {
			case RemovePrimary:
				a.removed = true
				tt.Primary.Remove(a.svc)
				res.Removals = append(res.Removals, f.removal(a.svc, b.svc, d.Reason))
			case RemoveSecondary:
				b.removed = true
				tt.Secondary.Remove(b.svc)
				res.Removals = append(res.Removals, f.removal(b.svc, a.svc, d.Reason))
			}
			if a.removed {
				break
			}
		}
	}
	return res
}

func (f *Filter) removal(loser, winner model.Service, reason Reason) Removal {
	f.log.Debugw("service dominated", map[string]any{
		"removed": loser.String(),
		"by":      winner.String(),
		"reason":  string(reason),
	})
	return Removal{Service: loser, By: winner, Reason: reason}
}
