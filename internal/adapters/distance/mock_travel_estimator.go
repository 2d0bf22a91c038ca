package distance

import (
	"poi-route-service/internal/domain"
	"poi-route-service/internal/ports"
)

// MockLeg is a canned travel result between two coordinates.
type MockLeg struct {
	From, To domain.Coordinates
	Meters   float64
	Seconds  int
}

// MockTravelEstimator returns canned legs and a fixed fallback for
// everything else, regardless of travel mode.
type MockTravelEstimator struct {
	m        map[[2]domain.Coordinates]ports.TravelResult
	fallback ports.TravelResult
}

func NewMockTravelEstimator(legs []MockLeg, fallback ports.TravelResult) *MockTravelEstimator {
	m := make(map[[2]domain.Coordinates]ports.TravelResult, len(legs))
	for _, l := range legs {
		m[[2]domain.Coordinates{l.From, l.To}] = ports.TravelResult{DistanceMeters: l.Meters, DurationSeconds: l.Seconds}
	}
	return &MockTravelEstimator{m: m, fallback: fallback}
}

func (e *MockTravelEstimator) Estimate(from, to domain.Coordinates, _ domain.TravelMode) ports.TravelResult {
	if r, ok := e.m[[2]domain.Coordinates{from, to}]; ok {
		return r
	}
	return e.fallback
}
