package services

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/SscSPs/rotalivre/internal/apperrors"
	"github.com/SscSPs/rotalivre/internal/core/domain"
	"github.com/SscSPs/rotalivre/internal/core/ports/providers"
	portssvc "github.com/SscSPs/rotalivre/internal/core/ports/services"
	"github.com/SscSPs/rotalivre/internal/platform/fallback"
	"github.com/SscSPs/rotalivre/internal/utils/geo"
)

const (
	DefaultGeocodeLimit = 5
	MaxGeocodeLimit     = 20
)

type geocodeService struct {
	BaseService
	geocoder providers.Geocoder
	policy   *fallback.Policy
}

func NewGeocodeService(geocoder providers.Geocoder, policy *fallback.Policy) portssvc.GeocodeSvcFacade {
	return &geocodeService{geocoder: geocoder, policy: policy}
}

func (s *geocodeService) Reverse(ctx context.Context, lat, lon float64) (*domain.Location, domain.Provenance, error) {
	if !geo.ValidCoordinates(lat, lon) {
		return nil, domain.Provenance{}, apperrors.NewBadRequestError("Coordenadas inválidas")
	}

	var primary func(context.Context) (*domain.Location, error)
	if s.geocoder.Configured() {
		primary = func(ctx context.Context) (*domain.Location, error) {
			return s.geocoder.Reverse(ctx, lat, lon)
		}
	}
	res := fallback.Do(ctx, s.policy, s.geocoder.Name(), primary, func() *domain.Location {
		loc := MockLocation()
		return &loc
	})
	return res.Value, res.Provenance(s.geocoder.Name()), nil
}

func (s *geocodeService) Search(ctx context.Context, query string, limit int, origin *domain.Coordinates) ([]domain.Location, domain.Provenance, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.Provenance{}, apperrors.NewBadRequestError("Parâmetro q é obrigatório")
	}
	if origin != nil && !geo.ValidCoordinates(origin.Lat, origin.Lng) {
		return nil, domain.Provenance{}, apperrors.NewBadRequestError("Coordenadas inválidas")
	}
	if limit <= 0 {
		limit = DefaultGeocodeLimit
	}
	limit = min(limit, MaxGeocodeLimit)

	var primary func(context.Context) ([]domain.Location, error)
	if s.geocoder.Configured() {
		primary = func(ctx context.Context) ([]domain.Location, error) {
			return s.geocoder.Search(ctx, query, limit)
		}
	}
	res := fallback.Do(ctx, s.policy, s.geocoder.Name(), primary, func() []domain.Location {
		return []domain.Location{MockLocation()}
	})

	locations := res.Value
	if locations == nil {
		locations = []domain.Location{}
	}
	if origin != nil {
		for i := range locations {
			d := geo.Distance(origin.Lat, origin.Lng, locations[i].Latitude, locations[i].Longitude)
			locations[i].Distance = &d
		}
		slices.SortStableFunc(locations, func(a, b domain.Location) int {
			return cmp.Compare(*a.Distance, *b.Distance)
		})
	}
	return locations, res.Provenance(s.geocoder.Name()), nil
}

// MockLocation is the fixed answer served while geocoding is unavailable.
func MockLocation() domain.Location {
	return domain.Location{
		PlaceID:     "mock_place_123",
		Latitude:    -23.5505,
		Longitude:   -46.6333,
		DisplayName: "São Paulo, SP, Brasil",
		Address: domain.Address{
			City:        "São Paulo",
			State:       "São Paulo",
			Country:     "Brasil",
			CountryCode: "br",
		},
		BoundingBox: []string{"-23.6505", "-23.4505", "-46.7333", "-46.5333"},
	}
}
