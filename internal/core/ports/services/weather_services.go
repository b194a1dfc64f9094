package services

import (
	"context"

	"github.com/SscSPs/rotalivre/internal/core/domain"
)

// WeatherSvcFacade serves current conditions and forecast for a point.
type WeatherSvcFacade interface {
	// GetWeather always returns a snapshot; Provenance tells live from fallback data.
	GetWeather(ctx context.Context, lat, lon float64) (*domain.WeatherSnapshot, domain.Provenance)
}
