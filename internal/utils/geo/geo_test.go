package geo_test

import (
	"math"
	"testing"

	"github.com/SscSPs/rotalivre/internal/utils/geo"
	"github.com/stretchr/testify/assert"
)

func TestHaversineIdentity(t *testing.T) {
	assert.Equal(t, 0.0, geo.Haversine(-23.5505, -46.6333, -23.5505, -46.6333))
}

func TestHaversineSymmetry(t *testing.T) {
	points := [][4]float64{
		{-23.5505, -46.6333, -22.9068, -43.1729},
		{0, 0, 10, 10},
		{51.5074, -0.1278, 40.7128, -74.0060},
	}
	for _, p := range points {
		a := geo.Haversine(p[0], p[1], p[2], p[3])
		b := geo.Haversine(p[2], p[3], p[0], p[1])
		assert.InDelta(t, a, b, 1e-9)
		assert.GreaterOrEqual(t, a, 0.0)
	}
}

func TestHaversineKnownDistances(t *testing.T) {
	// São Paulo to Rio de Janeiro.
	assert.InDelta(t, 360.7, geo.Haversine(-23.5505, -46.6333, -22.9068, -43.1729), 1.0)
	// One degree of latitude.
	assert.InDelta(t, 111.19, geo.Haversine(0, 0, 1, 0), 0.01)
}

func TestHaversineAntipodalDoesNotOverflow(t *testing.T) {
	d := geo.Haversine(0, 0, 0, 180)
	assert.InDelta(t, geo.EarthRadiusKm*3.141592653589793, d, 1e-6)
}

func TestDistanceRoundsToTwoDecimals(t *testing.T) {
	assert.Equal(t, 111.19, geo.Distance(0, 0, 1, 0))
}

func TestDegreeProxyKm(t *testing.T) {
	assert.InDelta(t, 0.222, geo.DegreeProxyKm(0, 0, 0.001, 0.001), 1e-9)
	assert.InDelta(t, 10.0, geo.DegreeProxyKm(0, 0, 0, geo.DegreeSpan(10)), 1e-9)
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, geo.ValidCoordinates(-90, 180))
	assert.False(t, geo.ValidCoordinates(90.1, 0))
	assert.False(t, geo.ValidCoordinates(0, -180.5))
}

func TestFormatKm(t *testing.T) {
	assert.Equal(t, "0.5 km", geo.FormatKm(0.46))
	assert.Equal(t, "12.0 km", geo.FormatKm(12))
}

func TestNonFiniteInputsPassThrough(t *testing.T) {
	assert.True(t, math.IsNaN(geo.Distance(math.NaN(), 0, 0, 0)))
	assert.True(t, math.IsNaN(geo.Round(math.NaN(), 2)))
	assert.True(t, math.IsInf(geo.Round(math.Inf(1), 2), 1))
	assert.True(t, math.IsInf(geo.Round(math.Inf(-1), 2), -1))
	assert.Equal(t, "NaN km", geo.FormatKm(math.NaN()))
	assert.Equal(t, "+Inf km", geo.FormatKm(math.Inf(1)))
}
