package services

import (
	"math/rand"
	"strconv"
	"strings"

	"poi-route-service/internal/catalog"
	"poi-route-service/internal/domain"
)

const rerollTopN = 25

// MutationOutcome tells callers whether a mutation changed the route and, if
// not, why. Non-applied outcomes always leave the route untouched.
type MutationOutcome int

const (
	OutcomeApplied MutationOutcome = iota
	OutcomeNoCandidate
	OutcomeInvalidInput
)

func (o MutationOutcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeNoCandidate:
		return "no_candidate"
	case OutcomeInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// RerollOverrides narrows the replacement search for a single reroll.
// Nil fields fall back to the profile defaults.
type RerollOverrides struct {
	Category      string
	MinRating     *float64
	MaxPriceLevel *string
}

// ParseRerollOverrides reads the "type", "minRating" and "maxPriceLevel" keys.
func ParseRerollOverrides(params map[string]string) RerollOverrides {
	var ov RerollOverrides
	ov.Category = strings.ToLower(strings.TrimSpace(params["type"]))

	if v, ok := params["minRating"]; ok && strings.TrimSpace(v) != "" {
		if f := catalog.ParseFloat(v, -1); f >= 0 {
			ov.MinRating = &f
		}
	}
	if v, ok := params["maxPriceLevel"]; ok {
		s := strings.TrimSpace(v)
		ov.MaxPriceLevel = &s
	}
	return ov
}

// RouteMutator applies the interactive edits to a route. Every applied edit
// recomputes all derived state; rejected edits leave the route unchanged.
//
// A route must not be mutated concurrently; serialize calls per route.
type RouteMutator struct {
	catalog   *catalog.Catalog
	evaluator *RouteEvaluator
}

func NewRouteMutator(cat *catalog.Catalog, evaluator *RouteEvaluator) *RouteMutator {
	return &RouteMutator{catalog: cat, evaluator: evaluator}
}

// Reroll replaces the stop at index with another place of the desired
// category, drawn from the 25 best-scoring eligible candidates. Places used
// by the other stops are excluded. A nil rng uses NewRerollRand keyed by the
// route's reroll count.
func (m *RouteMutator) Reroll(
	route *domain.Route,
	profile domain.TripProfile,
	index int,
	ov RerollOverrides,
	rng *rand.Rand,
) MutationOutcome {
	if index < 0 || index >= len(route.Stops) {
		return OutcomeInvalidInput
	}

	current := route.Stops[index].Place
	locked := make(map[string]struct{}, len(route.Stops))
	for i, s := range route.Stops {
		if i != index {
			locked[s.Place.ID] = struct{}{}
		}
	}

	category := ov.Category
	if category == "" {
		category = current.PrimaryCategory()
	}
	minRating := profile.MinRating
	if ov.MinRating != nil {
		minRating = *ov.MinRating
	}
	maxPrice := profile.MaxPriceLevel
	if ov.MaxPriceLevel != nil {
		maxPrice = *ov.MaxPriceLevel
	}

	candidates := make([]*domain.Place, 0)
	for _, p := range BuildCandidatePool(profile, m.catalog) {
		if _, ok := locked[p.ID]; ok {
			continue
		}
		if minRating > 0 && p.RatingScore < minRating {
			continue
		}
		if category != "" && !p.HasCategory(category) {
			continue
		}
		if exceedsPriceLevel(p.PriceLevel, maxPrice) {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		return OutcomeNoCandidate
	}
	// The current place is the only choice; re-selecting it changes nothing.
	if len(candidates) == 1 && candidates[0].ID == current.ID {
		return OutcomeApplied
	}

	if rng == nil {
		rng = NewRerollRand(route.RouteID, index, current.ID, route.Rerolls)
	}
	top := rankByScore(candidates, profile)
	top = top[:min(rerollTopN, len(top))]
	replacement := top[rng.Intn(len(top))]

	route.Stops[index].Place = replacement
	route.Stops[index].PlannedVisitMinutes = VisitMinutes(replacement)
	route.Rerolls++
	m.evaluator.Recompute(route, profile)
	return OutcomeApplied
}

// Insert places p at index, clamped into [0, len(stops)].
func (m *RouteMutator) Insert(route *domain.Route, profile domain.TripProfile, index int, p *domain.Place) MutationOutcome {
	if p == nil {
		return OutcomeInvalidInput
	}

	index = max(0, min(index, len(route.Stops)))
	stop := domain.RouteStop{Place: p, PlannedVisitMinutes: VisitMinutes(p)}
	route.Stops = append(route.Stops[:index], append([]domain.RouteStop{stop}, route.Stops[index:]...)...)

	m.evaluator.Recompute(route, profile)
	return OutcomeApplied
}

// Remove deletes the stop at index.
func (m *RouteMutator) Remove(route *domain.Route, profile domain.TripProfile, index int) MutationOutcome {
	if index < 0 || index >= len(route.Stops) {
		return OutcomeInvalidInput
	}

	route.Stops = append(route.Stops[:index], route.Stops[index+1:]...)
	m.evaluator.Recompute(route, profile)
	return OutcomeApplied
}

// Reorder applies a permutation: the stop at order[i] moves to position i.
// Anything but a permutation of [0, len(stops)) is rejected.
func (m *RouteMutator) Reorder(route *domain.Route, profile domain.TripProfile, order []int) MutationOutcome {
	n := len(route.Stops)
	if len(order) != n {
		return OutcomeInvalidInput
	}

	seen := make([]bool, n)
	for _, i := range order {
		if i < 0 || i >= n || seen[i] {
			return OutcomeInvalidInput
		}
		seen[i] = true
	}

	reordered := make([]domain.RouteStop, 0, n)
	for _, i := range order {
		reordered = append(reordered, route.Stops[i])
	}
	route.Stops = reordered

	m.evaluator.Recompute(route, profile)
	return OutcomeApplied
}

// exceedsPriceLevel compares integer price levels. Places without a level,
// an empty ceiling, or non-numeric values never exceed.
func exceedsPriceLevel(level, ceiling string) bool {
	level, ceiling = strings.TrimSpace(level), strings.TrimSpace(ceiling)
	if level == "" || ceiling == "" {
		return false
	}

	l, err := strconv.Atoi(level)
	if err != nil {
		return false
	}
	c, err := strconv.Atoi(ceiling)
	if err != nil {
		return false
	}
	return l > c
}
