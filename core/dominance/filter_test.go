package dominance

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/timetable/core/model"
	"github.com/kilianp07/timetable/core/timetable"
)

func mustClock(t *testing.T, s string) model.Clock {
	t.Helper()
	c, err := model.ParseClock(s)
	require.NoError(t, err)
	return c
}

func jai(t *testing.T, dep, arr string) model.Service {
	return model.Service{Provider: "Jai", Role: model.Primary, Departure: mustClock(t, dep), Arrival: mustClock(t, arr)}
}

func veeru(t *testing.T, dep, arr string) model.Service {
	return model.Service{Provider: "Veeru", Role: model.Secondary, Departure: mustClock(t, dep), Arrival: mustClock(t, arr)}
}

func build(primary, secondary []model.Service) *timetable.Timetable {
	return &timetable.Timetable{
		Primary:   timetable.NewServiceSet(primary...),
		Secondary: timetable.NewServiceSet(secondary...),
	}
}

func survivors(tt *timetable.Timetable) ([]model.Service, []model.Service) {
	return slices.Collect(tt.Primary.All()), slices.Collect(tt.Secondary.All())
}

func TestFilterScenarios(t *testing.T) {
	cases := []struct {
		name          string
		a, b          model.Service
		wantPrimary   int
		wantSecondary int
		reason        Reason
	}{
		{"same departure later arrival", jai(t, "09:00", "09:30"), veeru(t, "09:00", "09:45"), 1, 0, ReasonSameDeparture},
		{"same arrival earlier departure", jai(t, "09:00", "09:30"), veeru(t, "09:15", "09:30"), 0, 1, ReasonSameArrival},
		{"overlap shorter wins", jai(t, "09:00", "10:00"), veeru(t, "09:10", "09:40"), 0, 1, ReasonLongerOverlap},
		{"disjoint windows", jai(t, "08:00", "08:30"), veeru(t, "09:00", "09:30"), 1, 1, ""},
		{"exact tie", jai(t, "09:00", "09:30"), veeru(t, "09:00", "09:30"), 1, 0, ReasonExactTie},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tt := build([]model.Service{c.a}, []model.Service{c.b})
			res := NewFilter(DefaultRule(), nil).Apply(tt)
			assert.Equal(t, c.wantPrimary, tt.Primary.Len())
			assert.Equal(t, c.wantSecondary, tt.Secondary.Len())
			assert.Equal(t, 1, res.Comparisons)
			if c.reason == "" {
				assert.Empty(t, res.Removals)
				return
			}
			require.Len(t, res.Removals, 1)
			assert.Equal(t, c.reason, res.Removals[0].Reason)
		})
	}
}

func TestFilterSameArrivalLaterPrimarySurvives(t *testing.T) {
	// same arrival, but the primary service leaves later
	tt := build([]model.Service{jai(t, "09:15", "09:30")}, []model.Service{veeru(t, "09:00", "09:30")})
	NewFilter(DefaultRule(), nil).Apply(tt)
	p, s := survivors(tt)
	assert.Len(t, p, 1)
	assert.Empty(t, s)
}

func TestFilterIdempotentAgainstEmptyPeer(t *testing.T) {
	tt := build(
		[]model.Service{jai(t, "08:00", "08:30"), jai(t, "09:00", "09:50"), jai(t, "10:00", "10:10")},
		[]model.Service{veeru(t, "09:05", "09:40"), veeru(t, "10:00", "10:10"), veeru(t, "12:00", "12:30")},
	)
	f := NewFilter(DefaultRule(), nil)
	f.Apply(tt)
	p, s := survivors(tt)

	again := build(p, nil)
	res := f.Apply(again)
	assert.Equal(t, 0, res.Comparisons)
	assert.Equal(t, p, slices.Collect(again.Primary.All()))

	again = build(nil, s)
	f.Apply(again)
	assert.Equal(t, s, slices.Collect(again.Secondary.All()))
}

func TestFilterExactTieIgnoresInsertionOrder(t *testing.T) {
	a := []model.Service{jai(t, "07:00", "07:20"), jai(t, "09:00", "09:30"), jai(t, "11:00", "11:45")}
	b := []model.Service{veeru(t, "11:00", "11:45"), veeru(t, "09:00", "09:30"), veeru(t, "07:00", "07:20")}

	tt := build(a, b)
	NewFilter(DefaultRule(), nil).Apply(tt)
	assert.Equal(t, 3, tt.Primary.Len())
	assert.Equal(t, 0, tt.Secondary.Len())

	slices.Reverse(a)
	slices.Reverse(b)
	tt = build(a, b)
	NewFilter(DefaultRule(), nil).Apply(tt)
	assert.Equal(t, 3, tt.Primary.Len())
	assert.Equal(t, 0, tt.Secondary.Len())
}

func TestFilterPreferSecondary(t *testing.T) {
	tt := build([]model.Service{jai(t, "09:00", "09:30")}, []model.Service{veeru(t, "09:00", "09:30")})
	NewFilter(Rule{Prefer: model.Secondary}, nil).Apply(tt)
	assert.Equal(t, 0, tt.Primary.Len())
	assert.Equal(t, 1, tt.Secondary.Len())
}

func TestFilterNonOverlapPreserved(t *testing.T) {
	a := []model.Service{jai(t, "06:00", "06:40"), jai(t, "08:00", "08:30"), jai(t, "13:00", "13:59")}
	b := []model.Service{veeru(t, "07:00", "07:50"), veeru(t, "08:31", "09:00"), veeru(t, "14:00", "14:05")}
	tt := build(a, b)
	res := NewFilter(DefaultRule(), nil).Apply(tt)
	assert.Empty(t, res.Removals)
	assert.Equal(t, 9, res.Comparisons)
	p, s := survivors(tt)
	assert.Equal(t, a, p)
	assert.Equal(t, b, s)
}

func TestFilterDurationTieRemovesSecondary(t *testing.T) {
	tt := build([]model.Service{jai(t, "09:00", "09:30")}, []model.Service{veeru(t, "09:10", "09:40")})
	res := NewFilter(DefaultRule(), nil).Apply(tt)
	assert.Equal(t, 1, tt.Primary.Len())
	assert.Equal(t, 0, tt.Secondary.Len())
	require.Len(t, res.Removals, 1)
	assert.Equal(t, model.Secondary, res.Removals[0].Service.Role)
	assert.Equal(t, 1, res.Removed(model.Secondary))
}

func TestFilterBreaksAfterPrimaryRemoved(t *testing.T) {
	// the first secondary service removes the primary one; the second
	// secondary service would have lost to it and must therefore survive
	tt := build(
		[]model.Service{jai(t, "09:00", "09:50")},
		[]model.Service{veeru(t, "09:05", "09:20"), veeru(t, "09:30", "09:55")},
	)
	res := NewFilter(DefaultRule(), nil).Apply(tt)
	assert.Equal(t, 0, tt.Primary.Len())
	assert.Equal(t, 2, tt.Secondary.Len())
	assert.Equal(t, 1, res.Comparisons)
}

func TestFilterContinuesAfterSecondaryRemoved(t *testing.T) {
	tt := build(
		[]model.Service{jai(t, "09:00", "09:10"), jai(t, "09:30", "09:40")},
		[]model.Service{veeru(t, "09:05", "09:35"), veeru(t, "09:00", "09:20")},
	)
	res := NewFilter(DefaultRule(), nil).Apply(tt)
	assert.Equal(t, 2, tt.Primary.Len())
	assert.Equal(t, 0, tt.Secondary.Len())
	// removed secondaries are skipped for the second primary service
	assert.Equal(t, 2, res.Comparisons)
}

func TestRuleDecide(t *testing.T) {
	r := DefaultRule()
	d := r.Decide(jai(t, "09:00", "09:45"), veeru(t, "09:00", "09:30"))
	assert.Equal(t, Decision{RemovePrimary, ReasonSameDeparture}, d)
	d = r.Decide(jai(t, "09:20", "09:50"), veeru(t, "09:00", "09:40"))
	assert.Equal(t, Decision{RemoveSecondary, ReasonLongerOverlap}, d)
	d = r.Decide(jai(t, "09:00", "09:30"), veeru(t, "09:30", "09:40"))
	assert.Equal(t, Decision{RemovePrimary, ReasonLongerOverlap}, d)
	role, ok := RemoveSecondary.Removes()
	assert.True(t, ok)
	assert.Equal(t, model.Secondary, role)
	_, ok = Keep.Removes()
	assert.False(t, ok)
}
