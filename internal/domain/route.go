package domain

import "slices"

// Represents a single stop in a visiting route.
// The Place is shared with the catalog and must be treated as read-only.
type RouteStop struct {
	Position            int
	Place               *Place
	PlannedVisitMinutes int
}

// Segment is the travel leg between two consecutive stops.
type Segment struct {
	FromPosition    int
	ToPosition      int
	DurationSeconds int
	DistanceMeters  float64
}

// Represents one recommended itinerary.
//
// Invariants after construction and after every mutation:
//   - Stops[i].Position == i
//   - len(Segments) == max(0, len(Stops)-1)
//   - totals and Feasible reflect the current stops
type Route struct {
	RouteID              string
	TravelMode           TravelMode
	Stops                []RouteStop
	Segments             []Segment
	TotalDurationSeconds int
	TotalDistanceMeters  float64
	Feasible             bool

	// Rerolls counts applied rerolls; it advances the reroll random stream.
	Rerolls int
}

// Places returns the stop places in visiting order.
func (r *Route) Places() []*Place {
	out := make([]*Place, 0, len(r.Stops))
	for _, s := range r.Stops {
		out = append(out, s.Place)
	}
	return out
}

// Reindex rewrites stop positions to match slice order.
func (r *Route) Reindex() {
	for i := range r.Stops {
		r.Stops[i].Position = i
	}
}

// Clone returns a deep copy of the route's own state. Places stay shared.
func (r *Route) Clone() *Route {
	c := *r
	c.Stops = slices.Clone(r.Stops)
	c.Segments = slices.Clone(r.Segments)
	return &c
}
