package services

import (
	"poi-route-service/internal/catalog"
	"poi-route-service/internal/domain"
)

// BuildCandidatePool applies the profile's hard filters to the catalog:
// operational status, minimum rating and geofence. An empty pool is a valid
// result.
func BuildCandidatePool(profile domain.TripProfile, cat *catalog.Catalog) []*domain.Place {
	all := cat.All()
	pool := make([]*domain.Place, 0, len(all))

	for _, p := range all {
		if !p.IsOperational() {
			continue
		}
		if profile.MinRating > 0 && p.RatingScore < profile.MinRating {
			continue
		}
		if g := profile.Geofence; g != nil && g.Center.DistanceKm(p.Location) > g.RadiusKm {
			continue
		}
		pool = append(pool, p)
	}

	return pool
}
