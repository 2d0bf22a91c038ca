package domain

import "strings"

type TravelMode string

const (
	ModeDriving TravelMode = "driving"
	ModeWalking TravelMode = "walking"
	ModeCycling TravelMode = "cycling"
)

// ParseTravelMode maps free text onto a known mode; anything unknown drives.
func ParseTravelMode(s string) TravelMode {
	switch TravelMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeWalking:
		return ModeWalking
	case ModeCycling:
		return ModeCycling
	default:
		return ModeDriving
	}
}

// Geofence is a circular constraint around a center point.
type Geofence struct {
	Center   Coordinates
	RadiusKm float64
}

// TripProfile is the caller-supplied description of the trip to plan.
//
// Center is set whenever the caller provided center coordinates; Geofence
// additionally requires a radius. The score's distance term only needs Center.
type TripProfile struct {
	RequestID           string
	StopBudget          int
	TimeBudgetMinutes   int
	MandatoryCategories []string
	CategoryWeights     map[string]float64
	Center              *Coordinates
	Geofence            *Geofence
	TravelMode          TravelMode
	MinRating           float64
	MaxPriceLevel       string
}

// IsMandatory reports whether tag is one of the profile's mandatory categories.
func (p TripProfile) IsMandatory(tag string) bool {
	t := strings.ToLower(strings.TrimSpace(tag))
	for _, m := range p.MandatoryCategories {
		if m == t {
			return true
		}
	}
	return false
}
