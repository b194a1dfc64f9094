// Package providers declares the outbound ports to third-party data sources.
// Implementations issue one request per call and never retry; a 429 answer
// is reported as apperrors.ErrRateLimited.
package providers

import (
	"context"

	"github.com/SscSPs/rotalivre/internal/core/domain"
)

// WeatherProvider fetches current conditions and a short forecast.
type WeatherProvider interface {
	Name() string
	// Configured is false when the provider needs a key that is absent.
	Configured() bool
	FetchWeather(ctx context.Context, lat, lon float64) (*domain.WeatherSnapshot, error)
}

// AmenityFinder lists OpenStreetMap features around a point. A tag is a bare
// amenity value ("fuel") or a key=value pair ("tourism=hotel").
type AmenityFinder interface {
	Name() string
	NearbyAmenities(ctx context.Context, lat, lon float64, radiusMeters int, tags []string) ([]domain.Place, error)
}

// PlaceSearcher runs a free-text place search around a point.
type PlaceSearcher interface {
	Name() string
	Configured() bool
	SearchPlaces(ctx context.Context, query string, lat, lon, radiusKm float64) ([]domain.Place, error)
}

// Geocoder resolves coordinates to addresses and back.
type Geocoder interface {
	Name() string
	Configured() bool
	Reverse(ctx context.Context, lat, lon float64) (*domain.Location, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Location, error)
}

// Autocompleter suggests places for a partial query.
type Autocompleter interface {
	Name() string
	Suggest(ctx context.Context, query string, limit int) ([]domain.Suggestion, error)
}

// Registry bundles one implementation of every outbound port.
type Registry struct {
	Weather       WeatherProvider
	Amenities     AmenityFinder
	PlaceSearch   PlaceSearcher
	Geocoder      Geocoder
	Autocompleter Autocompleter
}
