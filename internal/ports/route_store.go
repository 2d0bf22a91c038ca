package ports

import (
	"errors"
	"sync"

	"poi-route-service/internal/domain"
)

// RouteSession is a generated route kept alive for interactive mutation,
// together with the profile it was generated for.
//
// Mutations on the same route must be serialized; callers hold Mu while
// reading or mutating Route.
type RouteSession struct {
	Mu      sync.Mutex
	Route   *domain.Route
	Profile domain.TripProfile
}

var (
	ErrRouteNotFound = errors.New("route not found")
	ErrRouteExists   = errors.New("route already exists")
)

// Port: a process-local store of route sessions keyed by route id.
// Add never replaces a live session; it fails with ErrRouteExists instead.
type RouteStore interface {
	Add(session *RouteSession) error
	Get(routeID string) (*RouteSession, error)
	Delete(routeID string)
}
