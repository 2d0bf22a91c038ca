package services

import (
	"context"
	"fmt"
	"sync"

	"poi-route-service/internal/catalog"
	"poi-route-service/internal/domain"
	"poi-route-service/internal/platform/obs"
	"poi-route-service/internal/ports"
)

const defaultWorkers = 4

// RoutePlanner generates alternative routes for trip profiles from a frozen
// catalog and exposes the mutator that edits them afterwards.
//
// The planner is safe for concurrent use; the routes it returns are not.
type RoutePlanner struct {
	catalog   *catalog.Catalog
	evaluator *RouteEvaluator
	mutator   *RouteMutator
	workers   int
}

type PlannerOption func(*RoutePlanner)

// WithWorkers bounds how many alternatives are generated in parallel.
func WithWorkers(n int) PlannerOption {
	return func(p *RoutePlanner) {
		if n > 0 {
			p.workers = n
		}
	}
}

// NewRoutePlanner freezes cat: no loads are accepted once planning starts.
func NewRoutePlanner(cat *catalog.Catalog, travel ports.TravelEstimator, opts ...PlannerOption) *RoutePlanner {
	if cat != nil {
		cat.Freeze()
	}

	evaluator := NewRouteEvaluator(travel)
	p := &RoutePlanner{
		catalog:   cat,
		evaluator: evaluator,
		mutator:   NewRouteMutator(cat, evaluator),
		workers:   defaultWorkers,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *RoutePlanner) Catalog() *catalog.Catalog { return p.catalog }

func (p *RoutePlanner) Mutator() *RouteMutator { return p.mutator }

func (p *RoutePlanner) Evaluator() *RouteEvaluator { return p.evaluator }

// RouteID names alternative index of a request.
func RouteID(requestID string, index int) string {
	return fmt.Sprintf("route-%s-%d", requestID, index)
}

// GenerateRoutes produces k alternative routes (k < 1 is treated as 1).
//
// Each alternative uses its own deterministic random source, so the output
// is identical for identical inputs regardless of scheduling.
func (p *RoutePlanner) GenerateRoutes(
	ctx context.Context,
	profile domain.TripProfile,
	k int,
) (_ []*domain.Route, err error) {
	defer obs.Time(ctx, "planner.GenerateRoutes")(&err)

	if p.catalog == nil {
		return nil, fmt.Errorf("generate routes: %w", ErrNoCatalog)
	}
	if err := ValidateProfile(profile); err != nil {
		return nil, fmt.Errorf("generate routes: %w", err)
	}
	profile = ClampStopBudget(profile)
	k = max(1, k)

	pool := BuildCandidatePool(profile, p.catalog)
	routes := make([]*domain.Route, k)

	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for i := 0; i < k; i++ {
		wg.Add(1)
		go func(idx int) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}
			routes[idx] = p.generate(profile, pool, idx)
		}(i)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("generate routes: %w", err)
	}
	return routes, nil
}

// GenerateRoute builds alternative index of the request on its own.
func (p *RoutePlanner) GenerateRoute(profile domain.TripProfile, index int) (*domain.Route, error) {
	if p.catalog == nil {
		return nil, fmt.Errorf("generate route: %w", ErrNoCatalog)
	}
	if err := ValidateProfile(profile); err != nil {
		return nil, fmt.Errorf("generate route: %w", err)
	}
	profile = ClampStopBudget(profile)
	return p.generate(profile, BuildCandidatePool(profile, p.catalog), index), nil
}

func (p *RoutePlanner) generate(profile domain.TripProfile, pool []*domain.Place, index int) *domain.Route {
	rng := NewRouteRand(profile.RequestID, index)
	selected := SelectPlaces(profile, pool, rng)
	ordered := SequenceTour(selected, profile)
	return p.evaluator.Build(RouteID(profile.RequestID, index), ordered, profile)
}
