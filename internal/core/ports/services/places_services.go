package services

import (
	"context"

	"github.com/SscSPs/rotalivre/internal/core/domain"
)

// PlacesSvcFacade backs the map view with rider-relevant places around a point.
type PlacesSvcFacade interface {
	// FindNearby maps query to amenity tags and never fails.
	FindNearby(ctx context.Context, lat, lon float64, query string) *domain.MapsResult
}
