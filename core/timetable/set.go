package timetable

import (
	"iter"
	"slices"

	"github.com/kilianp07/timetable/core/model"
)

// ServiceSet stores one provider's services ordered by departure, then
// arrival. A departure/arrival pair is stored at most once.
type ServiceSet struct {
	items []model.Service
}

// NewServiceSet returns a set holding the given services.
func NewServiceSet(services ...model.Service) *ServiceSet {
	s := &ServiceSet{}
	for _, svc := range services {
		s.Insert(svc)
	}
	return s
}

func (s *ServiceSet) search(svc model.Service) (int, bool) {
	return slices.BinarySearchFunc(s.items, svc, model.Service.Compare)
}

// Insert adds svc and reports whether it was not already present.
func (s *ServiceSet) Insert(svc model.Service) bool {
	i, found := s.search(svc)
	if found {
		return false
	}
	s.items = slices.Insert(s.items, i, svc)
	return true
}

// Remove deletes svc and reports whether it was present.
func (s *ServiceSet) Remove(svc model.Service) bool {
	i, found := s.search(svc)
	if !found {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// Contains reports whether a service with the same times is stored.
func (s *ServiceSet) Contains(svc model.Service) bool {
	_, found := s.search(svc)
	return found
}

// Len returns the number of stored services.
func (s *ServiceSet) Len() int { return len(s.items) }

// Snapshot returns a copy of the members in ascending order.
func (s *ServiceSet) Snapshot() []model.Service { return slices.Clone(s.items) }

// All yields the members in ascending departure order. The sequence can be
// ranged over any number of times.
func (s *ServiceSet) All() iter.Seq[model.Service] {
	return func(yield func(model.Service) bool) {
		for _, svc := range s.items {
			if !yield(svc) {
				return
			}
		}
	}
}

// Timetable pairs the two providers' sets for one generation run.
type Timetable struct {
	Primary   *ServiceSet
	Secondary *ServiceSet
}

// New returns a timetable with two empty sets.
func New() *Timetable {
	return &Timetable{Primary: NewServiceSet(), Secondary: NewServiceSet()}
}

// Set returns the set holding services of the given role.
func (t *Timetable) Set(r model.Role) *ServiceSet {
	if r == model.Secondary {
		return t.Secondary
	}
	return t.Primary
}

// Add inserts svc into the set matching its role.
func (t *Timetable) Add(svc model.Service) bool { return t.Set(svc.Role).Insert(svc) }

// Len returns the number of services across both sets.
func (t *Timetable) Len() int { return t.Primary.Len() + t.Secondary.Len() }
