package services

import (
	"poi-route-service/internal/domain"
	"poi-route-service/internal/ports"
)

const defaultVisitMinutes = 45

// visitRules are checked in order; the first rule with a matching category wins.
var visitRules = []struct {
	categories []string
	minutes    int
}{
	{[]string{"hotel", "lodging", "guest_house"}, 20},
	{[]string{"museum"}, 90},
	{[]string{"restaurant"}, 70},
	{[]string{"cafe"}, 50},
	{[]string{"park", "nature"}, 60},
	{[]string{"historical", "landmark", "tourist_attraction"}, 60},
}

// VisitMinutes estimates how long a visitor stays at p.
func VisitMinutes(p *domain.Place) int {
	for _, rule := range visitRules {
		for _, c := range rule.categories {
			if p.HasCategory(c) {
				return rule.minutes
			}
		}
	}
	return defaultVisitMinutes
}

// RouteEvaluator derives segments, totals and feasibility from a route's stops.
type RouteEvaluator struct {
	travel ports.TravelEstimator
}

func NewRouteEvaluator(travel ports.TravelEstimator) *RouteEvaluator {
	return &RouteEvaluator{travel: travel}
}

// Segments computes the travel legs between consecutive places.
func (e *RouteEvaluator) Segments(places []*domain.Place, mode domain.TravelMode) []domain.Segment {
	if len(places) < 2 {
		return []domain.Segment{}
	}

	segments := make([]domain.Segment, 0, len(places)-1)
	for i := 0; i+1 < len(places); i++ {
		r := e.travel.Estimate(places[i].Location, places[i+1].Location, mode)
		segments = append(segments, domain.Segment{
			FromPosition:    i,
			ToPosition:      i + 1,
			DurationSeconds: r.DurationSeconds,
			DistanceMeters:  r.DistanceMeters,
		})
	}
	return segments
}

// Recompute rebuilds every derived field of route from its current stops:
// positions, segments, totals and feasibility. Planned visit minutes are
// kept as they are on the stops.
func (e *RouteEvaluator) Recompute(route *domain.Route, profile domain.TripProfile) {
	route.Reindex()
	route.Segments = e.Segments(route.Places(), route.TravelMode)

	travelSeconds := 0
	distance := 0.0
	for _, s := range route.Segments {
		travelSeconds += s.DurationSeconds
		distance += s.DistanceMeters
	}

	visitMinutes := 0
	for _, s := range route.Stops {
		visitMinutes += s.PlannedVisitMinutes
	}

	route.TotalDurationSeconds = travelSeconds + visitMinutes*60
	route.TotalDistanceMeters = distance
	route.Feasible = Feasible(route, profile)
}

// Feasible reports whether the route covers every mandatory category and
// fits the profile's time budget.
func Feasible(route *domain.Route, profile domain.TripProfile) bool {
	for _, m := range profile.MandatoryCategories {
		covered := false
		for _, s := range route.Stops {
			if s.Place.HasCategory(m) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}

	return route.TotalDurationSeconds <= profile.TimeBudgetMinutes*60
}

// Build assembles and evaluates a route from already ordered places.
func (e *RouteEvaluator) Build(routeID string, ordered []*domain.Place, profile domain.TripProfile) *domain.Route {
	route := &domain.Route{
		RouteID:    routeID,
		TravelMode: profile.TravelMode,
		Stops:      make([]domain.RouteStop, 0, len(ordered)),
	}
	for i, p := range ordered {
		route.Stops = append(route.Stops, domain.RouteStop{
			Position:            i,
			Place:               p,
			PlannedVisitMinutes: VisitMinutes(p),
		})
	}

	e.Recompute(route, profile)
	return route
}
