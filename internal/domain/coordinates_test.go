package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	origin := Coordinates{Lat: 0, Lon: 0}

	assert.InDelta(t, 111.195, origin.DistanceKm(Coordinates{Lat: 0, Lon: 1}), 0.001)
	assert.InDelta(t, 111.195, origin.DistanceKm(Coordinates{Lat: 1, Lon: 0}), 0.001)
	assert.Zero(t, origin.DistanceKm(origin))

	ankara := Coordinates{Lat: 39.9208, Lon: 32.8541}
	istanbul := Coordinates{Lat: 41.0082, Lon: 28.9784}
	assert.InDelta(t, ankara.DistanceKm(istanbul), istanbul.DistanceKm(ankara), 1e-9)
	assert.InDelta(t, 350, ankara.DistanceKm(istanbul), 5)
}

func TestCoordsToList(t *testing.T) {
	assert.Equal(t, []float64{32.85, 39.92}, Coordinates{Lat: 39.92, Lon: 32.85}.CoordsToList())
}
