package timetable

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kilianp07/timetable/core/model"
)

func svc(dh, dm, ah, am int) model.Service {
	return model.Service{Provider: "Jai", Departure: model.ClockOf(dh, dm), Arrival: model.ClockOf(ah, am)}
}

func TestServiceSetOrdering(t *testing.T) {
	s := NewServiceSet(svc(10, 0, 10, 30), svc(8, 0, 8, 20), svc(9, 0, 9, 45), svc(9, 0, 9, 30))
	got := slices.Collect(s.All())
	want := []model.Service{svc(8, 0, 8, 20), svc(9, 0, 9, 30), svc(9, 0, 9, 45), svc(10, 0, 10, 30)}
	assert.Equal(t, want, got)
	// restartable
	assert.Equal(t, want, slices.Collect(s.All()))
}

func TestServiceSetDuplicatesCollapse(t *testing.T) {
	s := NewServiceSet()
	assert.True(t, s.Insert(svc(9, 0, 9, 30)))
	assert.False(t, s.Insert(svc(9, 0, 9, 30)))
	assert.Equal(t, 1, s.Len())
}

func TestServiceSetRemove(t *testing.T) {
	s := NewServiceSet(svc(9, 0, 9, 30), svc(9, 0, 9, 45))
	assert.False(t, s.Remove(svc(7, 0, 7, 30)))
	assert.True(t, s.Remove(svc(9, 0, 9, 45)))
	assert.False(t, s.Contains(svc(9, 0, 9, 45)))
	assert.True(t, s.Contains(svc(9, 0, 9, 30)))
	assert.Equal(t, 1, s.Len())
}

func TestServiceSetSnapshotIsCopy(t *testing.T) {
	s := NewServiceSet(svc(9, 0, 9, 30))
	snap := s.Snapshot()
	s.Remove(svc(9, 0, 9, 30))
	assert.Len(t, snap, 1)
	assert.Equal(t, 0, s.Len())
}

func TestServiceSetEarlyStop(t *testing.T) {
	s := NewServiceSet(svc(8, 0, 8, 30), svc(9, 0, 9, 30), svc(10, 0, 10, 30))
	n := 0
	for range s.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestTimetableAddByRole(t *testing.T) {
	tt := New()
	a := svc(9, 0, 9, 30)
	b := svc(9, 0, 9, 30)
	b.Provider, b.Role = "Veeru", model.Secondary
	assert.True(t, tt.Add(a))
	assert.True(t, tt.Add(b))
	assert.Equal(t, 1, tt.Primary.Len())
	assert.Equal(t, 1, tt.Secondary.Len())
	assert.Equal(t, 2, tt.Len())
	assert.Same(t, tt.Secondary, tt.Set(model.Secondary))
}
