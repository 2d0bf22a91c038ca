package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poi-route-service/internal/domain"
)

func TestParseTripProfileDefaults(t *testing.T) {
	p := ParseTripProfile(map[string]string{})

	assert.Equal(t, "req", p.RequestID)
	assert.Equal(t, 6, p.StopBudget)
	assert.Equal(t, 480, p.TimeBudgetMinutes)
	assert.Equal(t, domain.ModeDriving, p.TravelMode)
	assert.Empty(t, p.MandatoryCategories)
	assert.Empty(t, p.CategoryWeights)
	assert.Nil(t, p.Center)
	assert.Nil(t, p.Geofence)
	assert.NoError(t, ValidateProfile(p))
}

func TestParseTripProfile(t *testing.T) {
	p := ParseTripProfile(map[string]string{
		"requestId":         "req-ankara-1",
		"maxStops":          "5",
		"maxBudgetMin":      "240",
		"mandatoryTypes":    "Restaurant, park;restaurant",
		"minRating":         "4.0",
		"maxPriceLevel":     "2",
		"centerLat":         "39.9208",
		"centerLng":         "32.8541",
		"radiusKm":          "15",
		"mode":              "Walking",
		"weight_restaurant": "1.2",
		"weight_Cafe":       "0.8",
		"weight_hotel":      "0",
		"weight_bar":        "-1",
		"weight_zoo":        "lots",
	})

	assert.Equal(t, "req-ankara-1", p.RequestID)
	assert.Equal(t, 5, p.StopBudget)
	assert.Equal(t, 240, p.TimeBudgetMinutes)
	assert.Equal(t, []string{"park", "restaurant"}, p.MandatoryCategories)
	assert.Equal(t, 4.0, p.MinRating)
	assert.Equal(t, "2", p.MaxPriceLevel)
	assert.Equal(t, domain.ModeWalking, p.TravelMode)
	assert.Equal(t, map[string]float64{"restaurant": 1.2, "cafe": 0.8}, p.CategoryWeights)

	require.NotNil(t, p.Center)
	assert.Equal(t, domain.Coordinates{Lat: 39.9208, Lon: 32.8541}, *p.Center)
	require.NotNil(t, p.Geofence)
	assert.Equal(t, 15.0, p.Geofence.RadiusKm)
	assert.True(t, p.IsMandatory("PARK"))
}

func TestParseTripProfileAliases(t *testing.T) {
	p := ParseTripProfile(map[string]string{
		"tripId":         "trip-7",
		"maxDurationMin": "90",
		"travelMode":     "cycling",
		"centerLat":      "39.9",
		"centerLng":      "32.8",
	})

	assert.Equal(t, "trip-7", p.RequestID)
	assert.Equal(t, 90, p.TimeBudgetMinutes)
	assert.Equal(t, domain.ModeCycling, p.TravelMode)
	assert.NotNil(t, p.Center, "center alone still feeds the distance score")
	assert.Nil(t, p.Geofence, "geofence needs a radius")
}

func TestParseTripProfileStopBudget(t *testing.T) {
	assert.Equal(t, 30, ParseTripProfile(map[string]string{"maxStops": "100"}).StopBudget)
	assert.Equal(t, 6, ParseTripProfile(map[string]string{"maxStops": "many"}).StopBudget)

	zero := ParseTripProfile(map[string]string{"maxStops": "0"})
	assert.ErrorIs(t, ValidateProfile(zero), ErrInvalidStopBudget)

	negative := ParseTripProfile(map[string]string{"maxBudgetMin": "-10"})
	assert.ErrorIs(t, ValidateProfile(negative), ErrInvalidTimeBudget)
}

func TestClampStopBudget(t *testing.T) {
	p := baseProfile()
	p.StopBudget = 31
	assert.Equal(t, 30, ClampStopBudget(p).StopBudget)

	p.StopBudget = 4
	assert.Equal(t, 4, ClampStopBudget(p).StopBudget)
}
