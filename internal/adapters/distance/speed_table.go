package distance

import (
	"math"

	"poi-route-service/internal/domain"
	"poi-route-service/internal/ports"
)

// DefaultSpeedsKmh are average urban speeds per travel mode.
var DefaultSpeedsKmh = map[domain.TravelMode]float64{
	domain.ModeDriving: 25.0,
	domain.ModeWalking: 4.8,
	domain.ModeCycling: 14.0,
}

// SpeedTableEstimator implements TravelEstimator with great-circle distance
// and a fixed average speed per mode. Unknown modes use the driving speed.
//
// The estimator is immutable and safe for concurrent use.
type SpeedTableEstimator struct {
	speeds map[domain.TravelMode]float64
}

func NewSpeedTableEstimator(speeds map[domain.TravelMode]float64) *SpeedTableEstimator {
	if speeds == nil {
		speeds = DefaultSpeedsKmh
	}

	copied := make(map[domain.TravelMode]float64, len(speeds))
	for m, kmh := range speeds {
		copied[m] = kmh
	}
	return &SpeedTableEstimator{speeds: copied}
}

func (e *SpeedTableEstimator) speed(mode domain.TravelMode) float64 {
	if kmh, ok := e.speeds[mode]; ok && kmh > 0 {
		return kmh
	}
	if kmh, ok := e.speeds[domain.ModeDriving]; ok && kmh > 0 {
		return kmh
	}
	return DefaultSpeedsKmh[domain.ModeDriving]
}

func (e *SpeedTableEstimator) Estimate(from, to domain.Coordinates, mode domain.TravelMode) ports.TravelResult {
	km := from.DistanceKm(to)
	hours := km / e.speed(mode)

	// Durations are whole seconds; round to nearest for domain consistency.
	return ports.TravelResult{
		DistanceMeters:  km * 1000,
		DurationSeconds: int(math.Round(hours * 3600)),
	}
}
