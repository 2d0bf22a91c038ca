package ports

import "poi-route-service/internal/domain"

// Distance and travel duration between two locations.
type TravelResult struct {
	DistanceMeters  float64
	DurationSeconds int
}

// Contract for estimating travel between two coordinates for a travel mode.
// Implementations must be pure so route totals can be recomputed exactly.
type TravelEstimator interface {
	Estimate(from, to domain.Coordinates, mode domain.TravelMode) TravelResult
}
