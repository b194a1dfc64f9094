package dto

import (
	"time"

	"github.com/SscSPs/rotalivre/internal/core/domain"
)

// CoordinatesParams binds the lat/lon query pair shared by several routes.
type CoordinatesParams struct {
	Lat *float64 `form:"lat" binding:"required"`
	Lon *float64 `form:"lon" binding:"required"`
}

// WeatherResponse is the body of GET /api/weather.
type WeatherResponse struct {
	Success         bool                     `json:"success"`
	Current         domain.CurrentConditions `json:"current"`
	Forecast        []domain.DailyForecast   `json:"forecast"`
	RainProbability int                      `json:"rain_probability"`
	Timestamp       time.Time                `json:"timestamp"`
}

func ToWeatherResponse(s *domain.WeatherSnapshot) WeatherResponse {
	forecast := s.Forecast
	if forecast == nil {
		forecast = []domain.DailyForecast{}
	}
	return WeatherResponse{
		Success:         true,
		Current:         s.Current,
		Forecast:        forecast,
		RainProbability: s.RainProbability,
		Timestamp:       s.Timestamp,
	}
}
