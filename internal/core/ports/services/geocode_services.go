package services

import (
	"context"

	"github.com/SscSPs/rotalivre/internal/core/domain"
)

// GeocodeSvcFacade resolves coordinates to addresses and back.
type GeocodeSvcFacade interface {
	// Reverse fails only for invalid coordinates (apperrors.ErrValidation).
	Reverse(ctx context.Context, lat, lon float64) (*domain.Location, domain.Provenance, error)

	// Search geocodes free text. When origin is set every result carries its
	// distance and results are ordered nearest first.
	Search(ctx context.Context, query string, limit int, origin *domain.Coordinates) ([]domain.Location, domain.Provenance, error)
}
