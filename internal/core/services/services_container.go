package services

import (
	portsprov "github.com/SscSPs/rotalivre/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/rotalivre/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rotalivre/internal/core/ports/services"
	"github.com/SscSPs/rotalivre/internal/observability"
	"github.com/SscSPs/rotalivre/internal/platform/config"
	"github.com/SscSPs/rotalivre/internal/platform/fallback"
	"github.com/jonboulle/clockwork"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// metrics may be nil; a nil clock means the wall clock.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	upstream portsprov.Registry,
	metrics *observability.Metrics,
	clock clockwork.Clock,
) *portssvc.ServiceContainer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	policy := fallback.NewPolicy(metrics)

	return &portssvc.ServiceContainer{
		User:               NewUserService(repos.UserRepo, clock),
		TokenService:       NewTokenService(cfg, clock),
		GoogleOAuthHandler: NewGoogleOAuthHandlerService(cfg),
		Report: NewReportService(repos.ReportRepo, policy,
			WithReportClock(clock),
			WithReportMetrics(metrics),
			WithReportRetention(cfg.ReportRetention),
		),
		Weather: NewWeatherService(upstream.Weather, policy, cfg.WeatherCacheTTL, metrics, clock),
		Places:  NewPlacesService(upstream.Amenities, policy),
		Search: NewSearchService(upstream.Amenities, upstream.PlaceSearch, upstream.Autocompleter,
			policy, cfg.SearchCacheTTL, metrics),
		Geocode: NewGeocodeService(upstream.Geocoder, policy),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade               = (*userService)(nil)
	_ portssvc.TokenSvcFacade              = (*tokenService)(nil)
	_ portssvc.GoogleOAuthHandlerSvcFacade = (*googleOAuthHandlerService)(nil)
	_ portssvc.ReportSvcFacade             = (*reportService)(nil)
	_ portssvc.WeatherSvcFacade            = (*weatherService)(nil)
	_ portssvc.PlacesSvcFacade             = (*placesService)(nil)
	_ portssvc.SearchSvcFacade             = (*searchService)(nil)
	_ portssvc.GeocodeSvcFacade            = (*geocodeService)(nil)
)
