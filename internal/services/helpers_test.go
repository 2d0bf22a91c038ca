package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"poi-route-service/internal/adapters/distance"
	"poi-route-service/internal/catalog"
	"poi-route-service/internal/domain"
	"poi-route-service/internal/ports"
)

// place builds an operational place on the 39.9 parallel; lon spreads places apart.
func place(id string, rating float64, lon float64, categories ...string) domain.Place {
	return domain.Place{
		ID:          id,
		Name:        "Place " + id,
		Location:    domain.Coordinates{Lat: 39.9, Lon: lon},
		Categories:  categories,
		RatingScore: rating,
	}
}

func newCatalog(t *testing.T, places ...domain.Place) *catalog.Catalog {
	t.Helper()

	c := catalog.New()
	_, err := c.LoadPlaces(places)
	require.NoError(t, err)
	return c
}

func fixedEvaluator() *RouteEvaluator {
	return NewRouteEvaluator(distance.NewMockTravelEstimator(nil, ports.TravelResult{DistanceMeters: 1000, DurationSeconds: 600}))
}

func placeIDs(places []*domain.Place) []string {
	out := make([]string, 0, len(places))
	for _, p := range places {
		out = append(out, p.ID)
	}
	return out
}

func stopIDs(r *domain.Route) []string {
	return placeIDs(r.Places())
}

// requireConsistent checks every structural invariant of a route and that its
// derived state matches a fresh recomputation.
func requireConsistent(t *testing.T, e *RouteEvaluator, r *domain.Route, profile domain.TripProfile) {
	t.Helper()

	for i, s := range r.Stops {
		require.Equal(t, i, s.Position, "stop %d position", i)
		require.Equal(t, VisitMinutes(s.Place), s.PlannedVisitMinutes, "stop %d visit minutes", i)
	}
	require.Len(t, r.Segments, max(0, len(r.Stops)-1))

	fresh := r.Clone()
	e.Recompute(fresh, profile)
	require.Equal(t, fresh, r)
}

func baseProfile() domain.TripProfile {
	return domain.TripProfile{
		RequestID:         "req-test",
		StopBudget:        3,
		TimeBudgetMinutes: 480,
		CategoryWeights:   map[string]float64{},
		TravelMode:        domain.ModeDriving,
	}
}
