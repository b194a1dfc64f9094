// Package providers builds the upstream clients from configuration.
package providers

import (
	"github.com/SscSPs/rotalivre/internal/adapters/providers/locationiq"
	"github.com/SscSPs/rotalivre/internal/adapters/providers/nominatim"
	"github.com/SscSPs/rotalivre/internal/adapters/providers/openmeteo"
	"github.com/SscSPs/rotalivre/internal/adapters/providers/openweather"
	"github.com/SscSPs/rotalivre/internal/adapters/providers/overpass"
	"github.com/SscSPs/rotalivre/internal/adapters/providers/providerhttp"
	"github.com/SscSPs/rotalivre/internal/adapters/providers/serpapi"
	portsprov "github.com/SscSPs/rotalivre/internal/core/ports/providers"
	"github.com/SscSPs/rotalivre/internal/platform/config"
)

// NewRegistry creates every client with its own timeout. Clients whose key is
// missing are still returned; they report Configured() == false.
func NewRegistry(cfg *config.Config) portsprov.Registry {
	weatherHTTP := providerhttp.NewHTTPClient(cfg.WeatherTimeout)
	placesHTTP := providerhttp.NewHTTPClient(cfg.PlacesTimeout)
	geocodeHTTP := providerhttp.NewHTTPClient(cfg.GeocodeTimeout)

	var weather portsprov.WeatherProvider
	switch cfg.WeatherProvider {
	case config.WeatherProviderOpenWeather:
		weather = openweather.NewClient(cfg.OpenWeatherAPIKey, cfg.OpenWeatherBaseURL, weatherHTTP)
	default:
		weather = openmeteo.NewClient(cfg.OpenMeteoBaseURL, weatherHTTP)
	}

	return portsprov.Registry{
		Weather:       weather,
		Amenities:     overpass.NewClient(cfg.OverpassURL, placesHTTP),
		PlaceSearch:   serpapi.NewClient(cfg.SerpAPIKey, cfg.SerpAPIBaseURL, placesHTTP),
		Geocoder:      locationiq.NewClient(cfg.LocationIQAPIKey, cfg.LocationIQBaseURL, geocodeHTTP),
		Autocompleter: nominatim.NewClient(cfg.NominatimBaseURL, providerhttp.NewHTTPClient(cfg.AutocompleteTimeout)),
	}
}
