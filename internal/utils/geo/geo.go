// Package geo holds the great-circle helpers shared by reports, places and geocoding.
package geo

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// kmPerDegree approximates one degree of latitude at the equator.
const kmPerDegree = 111.0

// Haversine returns the great-circle distance in kilometres between two points
// given in decimal degrees. Inputs are not validated.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	// Clamp rounding noise so antipodal points don't produce NaN.
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// Distance is Haversine rounded to two decimals, the value exposed in responses.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	return Round(Haversine(lat1, lon1, lat2, lon2), 2)
}

// Round rounds half away from zero to the given number of decimal places.
// NaN and infinities are returned unchanged.
func Round(v float64, places int32) float64 {
	if !finite(v) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// DegreeProxyKm is the cheap "manhattan in degrees" radius used to pre-filter
// community reports. The report repositories evaluate the same formula in SQL
// against DegreeSpan; this is the Go form of that predicate. It overestimates
// away from the equator.
func DegreeProxyKm(lat1, lon1, lat2, lon2 float64) float64 {
	return (math.Abs(lat1-lat2) + math.Abs(lon1-lon2)) * kmPerDegree
}

// DegreeSpan converts a radius in km into the degree budget DegreeProxyKm compares against.
func DegreeSpan(radiusKm float64) float64 {
	return radiusKm / kmPerDegree
}

// ValidCoordinates reports whether lat/lon fall inside [-90,90] x [-180,180].
func ValidCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// FormatKm renders a distance the way the maps route displays it, e.g. "1.2 km".
func FormatKm(km float64) string {
	if !finite(km) {
		return fmt.Sprintf("%g km", km)
	}
	return fmt.Sprintf("%s km", decimal.NewFromFloat(km).StringFixed(1))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
