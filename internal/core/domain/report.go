package domain

import "time"

// WeatherType is the condition a rider reports.
type WeatherType string

const (
	WeatherRain   WeatherType = "rain"
	WeatherSun    WeatherType = "sun"
	WeatherCloud  WeatherType = "cloud"
	WeatherWind   WeatherType = "wind"
	WeatherDanger WeatherType = "danger"
)

// WeatherTypes lists every accepted report type.
var WeatherTypes = []WeatherType{WeatherRain, WeatherSun, WeatherCloud, WeatherWind, WeatherDanger}

// IsValid reports whether t is a known report type.
func (t WeatherType) IsValid() bool {
	for _, known := range WeatherTypes {
		if t == known {
			return true
		}
	}
	return false
}

const (
	// ReportLifetime is how long a community report stays visible.
	ReportLifetime = 2 * time.Hour

	MinIntensity     = 1
	MaxIntensity     = 3
	DefaultIntensity = 1

	DefaultReportRadiusKm = 10.0
	MaxReportsReturned    = 20
)

// WeatherReport is a crowd-sourced, short-lived condition report.
// ExpiresAt is fixed at insert time to CreatedAt + ReportLifetime.
type WeatherReport struct {
	ID          int64       `json:"id"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	WeatherType WeatherType `json:"weather_type"`
	Intensity   int         `json:"intensity"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
	ExpiresAt   time.Time   `json:"expires_at"`
	Distance    float64     `json:"distance"`
}

// ReportQuery selects the reports visible around a point at a given instant.
type ReportQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Now       time.Time
	Limit     int
}
