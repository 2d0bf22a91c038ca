package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"poi-route-service/internal/ports"
)

// RouteCache is an in-memory, TTL-bounded store of route sessions.
// Sessions live only as long as the process; nothing is persisted.
// Every access refreshes the session's expiry.
//
// The cache is safe for concurrent use.
type RouteCache struct {
	c   *gocache.Cache
	ttl time.Duration
}

func NewRouteCache(ttl time.Duration) *RouteCache {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RouteCache{
		c:   gocache.New(ttl, ttl/2),
		ttl: ttl,
	}
}

func (r *RouteCache) Add(s *ports.RouteSession) error {
	if err := r.c.Add(s.Route.RouteID, s, r.ttl); err != nil {
		return fmt.Errorf("add route %q: %w", s.Route.RouteID, ports.ErrRouteExists)
	}
	return nil
}

func (r *RouteCache) Get(routeID string) (*ports.RouteSession, error) {
	v, ok := r.c.Get(routeID)
	if !ok {
		return nil, fmt.Errorf("get route %q: %w", routeID, ports.ErrRouteNotFound)
	}

	s, ok := v.(*ports.RouteSession)
	if !ok {
		return nil, fmt.Errorf("get route %q: unexpected cache entry %T", routeID, v)
	}
	r.c.Set(routeID, s, r.ttl)
	return s, nil
}

func (r *RouteCache) Delete(routeID string) {
	r.c.Delete(routeID)
}

func (r *RouteCache) Len() int { return r.c.ItemCount() }
