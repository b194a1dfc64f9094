package services

import (
	"context"
	"slices"
	"strings"

	"github.com/SscSPs/rotalivre/internal/core/domain"
	"github.com/SscSPs/rotalivre/internal/core/ports/providers"
	portssvc "github.com/SscSPs/rotalivre/internal/core/ports/services"
	"github.com/SscSPs/rotalivre/internal/platform/fallback"
	"github.com/SscSPs/rotalivre/internal/utils/geo"
)

const (
	// DefaultMapsQuery is used when the map view sends no query.
	DefaultMapsQuery = "gas station"

	mapsRadiusMeters = 5000
	mapsMaxPlaces    = 10
	mapsProviderName = "OpenStreetMap Overpass API"
)

// queryAmenities maps the map view's quick filters onto OSM amenity tags.
var queryAmenities = map[string][]string{
	"gas station": {"fuel"},
	"posto":       {"fuel"},
	"oficina":     {"motorcycle_repair", "car_repair"},
	"hospital":    {"hospital"},
	"farmacia":    {"pharmacy"},
	"restaurante": {"restaurant", "fast_food"},
	"hotel":       {"hotel"},
	"banco":       {"bank", "atm"},
}

var defaultAmenities = []string{"fuel", "motorcycle_repair"}

// AmenitiesForQuery returns the amenity tags for a quick-filter query and
// reports whether the query was recognised. Unknown queries get fuel and repair shops.
func AmenitiesForQuery(query string) ([]string, bool) {
	if tags, ok := queryAmenities[strings.ToLower(strings.TrimSpace(query))]; ok {
		return slices.Clone(tags), true
	}
	return slices.Clone(defaultAmenities), false
}

type placesService struct {
	BaseService
	finder providers.AmenityFinder
	policy *fallback.Policy
}

func NewPlacesService(finder providers.AmenityFinder, policy *fallback.Policy) portssvc.PlacesSvcFacade {
	return &placesService{finder: finder, policy: policy}
}

func (s *placesService) FindNearby(ctx context.Context, lat, lon float64, query string) *domain.MapsResult {
	if strings.TrimSpace(query) == "" {
		query = DefaultMapsQuery
	}
	amenities, _ := AmenitiesForQuery(query)

	res := fallback.Do(ctx, s.policy, s.finder.Name(),
		func(ctx context.Context) ([]domain.Place, error) {
			places, err := s.finder.NearbyAmenities(ctx, lat, lon, mapsRadiusMeters, amenities)
			if err != nil {
				return nil, err
			}
			SortPlacesByDistance(places)
			if len(places) > mapsMaxPlaces {
				places = places[:mapsMaxPlaces]
			}
			return places, nil
		},
		func() []domain.Place { return MockMapPlaces(lat, lon) },
	)

	prov := res.Provenance(s.finder.Name())
	prov.Provider = mapsProviderName
	return &domain.MapsResult{
		Places:       res.Value,
		Query:        query,
		Latitude:     lat,
		Longitude:    lon,
		RadiusMeters: mapsRadiusMeters,
		Provenance:   prov,
	}
}

// SortPlacesByDistance orders places nearest first, keeping ties stable.
func SortPlacesByDistance(places []domain.Place) {
	slices.SortStableFunc(places, func(a, b domain.Place) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
}

// MockMapPlaces returns four well-known stops around the point, used when
// Overpass cannot be reached.
func MockMapPlaces(lat, lon float64) []domain.Place {
	mk := func(id, name, address, placeType string, rating, dLat, dLon float64) domain.Place {
		r := rating
		coords := domain.Coordinates{Lat: lat + dLat, Lng: lon + dLon}
		return domain.Place{
			ID:          id,
			Name:        name,
			Address:     address,
			Coordinates: coords,
			Distance:    geo.Distance(lat, lon, coords.Lat, coords.Lng),
			Rating:      &r,
			Type:        placeType,
			Source:      domain.PlaceSourceMock,
		}
	}
	return []domain.Place{
		mk("mock_1", "Posto Shell", "Av. Paulista, 1000", "fuel", 4.2, 0.001, 0.001),
		mk("mock_2", "Oficina Moto Peças", "Rua Augusta, 500", "motorcycle_repair", 4.5, -0.002, 0.002),
		mk("mock_3", "Posto Ipiranga", "Rua da Consolação, 800", "fuel", 4.0, 0.003, -0.001),
		mk("mock_4", "Borracharia 24h", "Av. Rebouças, 300", "car_repair", 4.3, -0.001, -0.003),
	}
}
