package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poi-route-service/internal/adapters/distance"
	"poi-route-service/internal/domain"
)

func ankaraPlaces() []domain.Place {
	categories := [][]string{{"museum"}, {"restaurant"}, {"cafe"}, {"park"}, {"historical", "landmark"}, {"hotel"}}

	var places []domain.Place
	for i := 0; i < 36; i++ {
		p := place(fmt.Sprintf("p%02d", i), 3.0+float64(i%5)*0.4, 32.80+float64(i)*0.003, categories[i%len(categories)]...)
		p.Location.Lat = 39.90 + float64(i%6)*0.004
		p.RatingCount = 10 * i
		places = append(places, p)
	}
	return places
}

func newPlanner(t *testing.T, opts ...PlannerOption) *RoutePlanner {
	t.Helper()
	return NewRoutePlanner(newCatalog(t, ankaraPlaces()...), distance.NewSpeedTableEstimator(nil), opts...)
}

func TestGenerateRoutesScenarioMandatoryFirst(t *testing.T) {
	cat := newCatalog(t,
		place("A", 4.5, 32.80, "museum"),
		place("B", 4.0, 32.81, "restaurant"),
		place("C", 3.0, 32.82, "cafe"),
	)
	planner := NewRoutePlanner(cat, distance.NewSpeedTableEstimator(nil))

	sawAB := false
	for i := 0; i < 50; i++ {
		profile := baseProfile()
		profile.RequestID = fmt.Sprintf("scenario-%d", i)
		profile.StopBudget = 2
		profile.MandatoryCategories = []string{"museum"}

		routes, err := planner.GenerateRoutes(context.Background(), profile, 1)
		require.NoError(t, err)
		require.Len(t, routes, 1)

		// The museum is always taken first; the second slot comes from the
		// shuffled score ranking [B, C].
		rng := NewRouteRand(profile.RequestID, 0)
		rng.Shuffle(1, func(i, j int) {})
		head := []string{"B", "C"}
		rng.Shuffle(len(head), func(i, j int) { head[i], head[j] = head[j], head[i] })

		got := stopIDs(routes[0])
		require.Equal(t, []string{"A", head[0]}, got, "request %s", profile.RequestID)
		if got[1] == "B" {
			sawAB = true
		}
	}
	assert.True(t, sawAB, "some request yields [A, B]")
}

func TestGenerateRoutesIsDeterministic(t *testing.T) {
	profile := ParseTripProfile(map[string]string{
		"requestId":         "req-ankara-1",
		"maxStops":          "5",
		"maxBudgetMin":      "240",
		"mandatoryTypes":    "restaurant,park",
		"centerLat":         "39.91",
		"centerLng":         "32.85",
		"radiusKm":          "15",
		"weight_restaurant": "1.2",
		"weight_park":       "1.0",
	})

	first, err := newPlanner(t, WithWorkers(1)).GenerateRoutes(context.Background(), profile, 4)
	require.NoError(t, err)
	second, err := newPlanner(t, WithWorkers(8)).GenerateRoutes(context.Background(), profile, 4)
	require.NoError(t, err)

	require.Len(t, first, 4)
	assert.Equal(t, first, second)
	for i, r := range first {
		assert.Equal(t, RouteID("req-ankara-1", i), r.RouteID)
	}
}

func TestGenerateRoutesInvariants(t *testing.T) {
	planner := newPlanner(t)
	profile := baseProfile()
	profile.StopBudget = 6
	profile.MandatoryCategories = []string{"museum", "cafe"}

	routes, err := planner.GenerateRoutes(context.Background(), profile, 3)
	require.NoError(t, err)

	for _, r := range routes {
		require.LessOrEqual(t, len(r.Stops), 6)
		seen := map[string]bool{}
		for _, id := range stopIDs(r) {
			require.False(t, seen[id], "duplicate stop %s in %s", id, r.RouteID)
			seen[id] = true
		}
		requireConsistent(t, planner.Evaluator(), r, profile)
	}
}

func TestGenerateRoutesBoundaries(t *testing.T) {
	planner := newPlanner(t)
	profile := baseProfile()

	profile.StopBudget = 1
	routes, err := planner.GenerateRoutes(context.Background(), profile, 0)
	require.NoError(t, err)
	require.Len(t, routes, 1, "k below one yields one route")
	assert.Len(t, routes[0].Stops, 1)

	profile.StopBudget = 50
	routes, err = planner.GenerateRoutes(context.Background(), profile, 1)
	require.NoError(t, err)
	assert.Len(t, routes[0].Stops, 30)
}

func TestGenerateRoutesSingleStopIsMandatory(t *testing.T) {
	cat := newCatalog(t,
		place("park", 5.0, 32.80, "park"),
		place("museum", 3.0, 32.81, "museum"),
	)
	planner := NewRoutePlanner(cat, distance.NewSpeedTableEstimator(nil))
	profile := baseProfile()
	profile.StopBudget = 1
	profile.MandatoryCategories = []string{"museum"}

	routes, err := planner.GenerateRoutes(context.Background(), profile, 5)
	require.NoError(t, err)
	for _, r := range routes {
		assert.Equal(t, []string{"museum"}, stopIDs(r), r.RouteID)
		assert.True(t, r.Feasible, r.RouteID)
	}
}

func TestGenerateRoutesEmptyPool(t *testing.T) {
	planner := newPlanner(t)
	profile := baseProfile()
	profile.MinRating = 4.9
	profile.MandatoryCategories = []string{"museum"}

	routes, err := planner.GenerateRoutes(context.Background(), profile, 2)
	require.NoError(t, err)
	for _, r := range routes {
		assert.Empty(t, r.Stops)
		assert.False(t, r.Feasible)
	}
}

func TestGenerateRoutesValidation(t *testing.T) {
	_, err := NewRoutePlanner(nil, distance.NewSpeedTableEstimator(nil)).GenerateRoutes(context.Background(), baseProfile(), 1)
	assert.ErrorIs(t, err, ErrNoCatalog)

	planner := newPlanner(t)

	profile := baseProfile()
	profile.StopBudget = 0
	_, err = planner.GenerateRoutes(context.Background(), profile, 1)
	assert.ErrorIs(t, err, ErrInvalidStopBudget)

	profile = baseProfile()
	profile.TimeBudgetMinutes = 0
	_, err = planner.GenerateRoutes(context.Background(), profile, 1)
	assert.ErrorIs(t, err, ErrInvalidTimeBudget)

	_, err = planner.GenerateRoute(profile, 0)
	assert.ErrorIs(t, err, ErrInvalidTimeBudget)
}

func TestGenerateRoutesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newPlanner(t).GenerateRoutes(ctx, baseProfile(), 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateRouteMatchesAlternative(t *testing.T) {
	planner := newPlanner(t)
	profile := baseProfile()

	routes, err := planner.GenerateRoutes(context.Background(), profile, 3)
	require.NoError(t, err)

	single, err := planner.GenerateRoute(profile, 2)
	require.NoError(t, err)
	assert.Equal(t, routes[2], single)
}

func TestNewRoutePlannerFreezesCatalog(t *testing.T) {
	planner := newPlanner(t)

	assert.True(t, planner.Catalog().Frozen())
	_, err := planner.Catalog().LoadPlaces([]domain.Place{{ID: "late"}})
	assert.Error(t, err)
}
