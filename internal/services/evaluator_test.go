package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poi-route-service/internal/adapters/distance"
	"poi-route-service/internal/domain"
	"poi-route-service/internal/ports"
)

func TestVisitMinutes(t *testing.T) {
	tests := []struct {
		categories []string
		want       int
	}{
		{[]string{"museum", "hotel"}, 20},
		{[]string{"guest_house"}, 20},
		{[]string{"restaurant", "museum"}, 90},
		{[]string{"cafe", "restaurant"}, 70},
		{[]string{"cafe"}, 50},
		{[]string{"nature"}, 60},
		{[]string{"tourist_attraction"}, 60},
		{[]string{"bar"}, 45},
		{nil, 45},
	}
	for _, tt := range tests {
		p := place("p", 4, 0, tt.categories...)
		assert.Equal(t, tt.want, VisitMinutes(&p), "categories %v", tt.categories)
	}
}

func TestRouteEvaluatorBuild(t *testing.T) {
	a := place("a", 4, 0.00, "museum")
	b := place("b", 4, 0.01, "cafe")
	c := place("c", 4, 0.02, "bar")

	e := NewRouteEvaluator(distance.NewMockTravelEstimator([]distance.MockLeg{
		{From: a.Location, To: b.Location, Meters: 1000, Seconds: 300},
		{From: b.Location, To: c.Location, Meters: 500, Seconds: 200},
	}, ports.TravelResult{}))

	profile := baseProfile()
	profile.TimeBudgetMinutes = 194
	profile.TravelMode = domain.ModeWalking

	r := e.Build("route-x-0", pool(a, b, c), profile)

	require.Len(t, r.Segments, 2)
	assert.Equal(t, domain.Segment{FromPosition: 0, ToPosition: 1, DurationSeconds: 300, DistanceMeters: 1000}, r.Segments[0])
	assert.Equal(t, domain.Segment{FromPosition: 1, ToPosition: 2, DurationSeconds: 200, DistanceMeters: 500}, r.Segments[1])
	assert.Equal(t, []int{90, 50, 45}, []int{r.Stops[0].PlannedVisitMinutes, r.Stops[1].PlannedVisitMinutes, r.Stops[2].PlannedVisitMinutes})
	assert.Equal(t, 185*60+500, r.TotalDurationSeconds)
	assert.Equal(t, 1500.0, r.TotalDistanceMeters)
	assert.Equal(t, domain.ModeWalking, r.TravelMode)
	assert.True(t, r.Feasible)

	profile.TimeBudgetMinutes = 193
	assert.False(t, Feasible(r, profile), "over the time budget")

	profile.TimeBudgetMinutes = 480
	profile.MandatoryCategories = []string{"museum", "park"}
	assert.False(t, Feasible(r, profile), "park is not covered")

	profile.MandatoryCategories = []string{"cafe"}
	assert.True(t, Feasible(r, profile))
}

func TestRouteEvaluatorEmptyAndSingleStop(t *testing.T) {
	e := fixedEvaluator()
	profile := baseProfile()

	empty := e.Build("route-x-0", nil, profile)
	assert.Empty(t, empty.Stops)
	assert.Empty(t, empty.Segments)
	assert.Zero(t, empty.TotalDurationSeconds)
	assert.True(t, empty.Feasible)

	profile.MandatoryCategories = []string{"museum"}
	assert.False(t, e.Build("route-x-0", nil, profile).Feasible)

	a := place("a", 4, 0, "museum")
	single := e.Build("route-x-1", pool(a), profile)
	assert.Empty(t, single.Segments)
	assert.Equal(t, 90*60, single.TotalDurationSeconds)
	assert.True(t, single.Feasible)
}
