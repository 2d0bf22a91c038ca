package domain

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0088

// Immutable geographic coordinates (latitude, longitude) in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Return coordinates as [lon, lat] for GeoJSON-style consumers.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// DistanceKm returns the haversine great-circle distance to o in kilometres.
func (c Coordinates) DistanceKm(o Coordinates) float64 {
	dLat := toRadians(o.Lat - c.Lat)
	dLon := toRadians(o.Lon - c.Lon)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(c.Lat))*math.Cos(toRadians(o.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
