package services

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"poi-route-service/internal/catalog"
	"poi-route-service/internal/domain"
)

const (
	defaultRequestID     = "req"
	defaultStopBudget    = 6
	defaultTimeBudgetMin = 480
	maxStopBudget        = 30
	weightKeyPrefix      = "weight_"
)

// ParseTripProfile builds a profile from the flat string mapping callers send.
//
// Unparsable numbers fall back to defaults. Stop budgets above 30 are
// clamped; non-positive budgets are kept so ValidateProfile can reject them.
func ParseTripProfile(v map[string]string) domain.TripProfile {
	get := func(keys ...string) string {
		for _, k := range keys {
			if s := strings.TrimSpace(v[k]); s != "" {
				return s
			}
		}
		return ""
	}

	p := domain.TripProfile{
		RequestID:         get("requestId", "tripId"),
		StopBudget:        min(catalog.ParseInt(get("maxStops"), defaultStopBudget), maxStopBudget),
		TimeBudgetMinutes: catalog.ParseInt(get("maxBudgetMin", "maxDurationMin"), defaultTimeBudgetMin),
		TravelMode:        domain.ParseTravelMode(get("mode", "travelMode")),
		MinRating:         catalog.ParseFloat(get("minRating"), 0),
		MaxPriceLevel:     get("maxPriceLevel"),
		CategoryWeights:   map[string]float64{},
	}
	if p.RequestID == "" {
		p.RequestID = defaultRequestID
	}

	mandatory := catalog.NormalizeCategories(strings.FieldsFunc(get("mandatoryTypes"), func(r rune) bool {
		return r == ',' || r == ';'
	}))
	slices.Sort(mandatory)
	p.MandatoryCategories = slices.Compact(mandatory)

	for key, val := range v {
		if !strings.HasPrefix(key, weightKeyPrefix) {
			continue
		}
		category := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(key, weightKeyPrefix)))
		if w := catalog.ParseFloat(val, 0); category != "" && w > 0 {
			p.CategoryWeights[category] = w
		}
	}

	lat, hasLat := optionalFloat(get("centerLat"))
	lng, hasLng := optionalFloat(get("centerLng"))
	if hasLat && hasLng {
		p.Center = &domain.Coordinates{Lat: lat, Lon: lng}
		if radius, ok := optionalFloat(get("radiusKm")); ok {
			p.Geofence = &domain.Geofence{Center: *p.Center, RadiusKm: radius}
		}
	}

	return p
}

func optionalFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f := catalog.ParseFloat(s, math.NaN())
	return f, !math.IsNaN(f)
}

// ClampStopBudget caps the stop budget at the largest supported route size.
func ClampStopBudget(p domain.TripProfile) domain.TripProfile {
	p.StopBudget = min(p.StopBudget, maxStopBudget)
	return p
}

// ValidateProfile rejects profiles the pipeline cannot plan for.
func ValidateProfile(p domain.TripProfile) error {
	if p.StopBudget <= 0 {
		return fmt.Errorf("validate profile: stopBudget=%d: %w", p.StopBudget, ErrInvalidStopBudget)
	}
	if p.TimeBudgetMinutes <= 0 {
		return fmt.Errorf("validate profile: timeBudgetMinutes=%d: %w", p.TimeBudgetMinutes, ErrInvalidTimeBudget)
	}
	return nil
}
