package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/rotalivre/internal/core/domain"
	portssvc "github.com/SscSPs/rotalivre/internal/core/ports/services"
	"github.com/SscSPs/rotalivre/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) FindOrCreateGoogleUser(ctx context.Context, identity domain.GoogleIdentity) (*domain.User, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateSessionToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
	configured bool
}

func (m *MockGoogleOAuthService) Configured() bool { return m.configured }

func (m *MockGoogleOAuthService) ExchangeCodeForIDToken(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*domain.GoogleIdentity, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoogleIdentity), args.Error(1)
}

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) NearbyReports(ctx context.Context, lat, lon, radiusKm float64) ([]domain.WeatherReport, domain.Provenance) {
	args := m.Called(ctx, lat, lon, radiusKm)
	return args.Get(0).([]domain.WeatherReport), args.Get(1).(domain.Provenance)
}

func (m *MockReportService) SubmitReport(ctx context.Context, req dto.CreateReportRequest) (*domain.ReportSubmission, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportSubmission), args.Error(1)
}

func (m *MockReportService) PurgeExpiredReports(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock WeatherService ---
type MockWeatherService struct {
	mock.Mock
}

func (m *MockWeatherService) GetWeather(ctx context.Context, lat, lon float64) (*domain.WeatherSnapshot, domain.Provenance) {
	args := m.Called(ctx, lat, lon)
	return args.Get(0).(*domain.WeatherSnapshot), args.Get(1).(domain.Provenance)
}

// --- Mock PlacesService ---
type MockPlacesService struct {
	mock.Mock
}

func (m *MockPlacesService) FindNearby(ctx context.Context, lat, lon float64, query string) *domain.MapsResult {
	args := m.Called(ctx, lat, lon, query)
	return args.Get(0).(*domain.MapsResult)
}

// --- Mock SearchService ---
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResult, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SearchResult), args.Error(1)
}

func (m *MockSearchService) SearchByCategory(ctx context.Context, category string, lat, lng float64, radiusKm *float64, filters domain.SearchFilters) (*domain.SearchResult, error) {
	args := m.Called(ctx, category, lat, lng, radiusKm, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SearchResult), args.Error(1)
}

func (m *MockSearchService) Autocomplete(ctx context.Context, query string, limit int) ([]domain.Suggestion, domain.Provenance) {
	args := m.Called(ctx, query, limit)
	return args.Get(0).([]domain.Suggestion), args.Get(1).(domain.Provenance)
}

func (m *MockSearchService) Categories() []domain.Category {
	args := m.Called()
	return args.Get(0).([]domain.Category)
}

func (m *MockSearchService) CacheStats() domain.CacheStats {
	args := m.Called()
	return args.Get(0).(domain.CacheStats)
}

func (m *MockSearchService) ClearCache(category string) int {
	args := m.Called(category)
	return args.Int(0)
}

// --- Mock GeocodeService ---
type MockGeocodeService struct {
	mock.Mock
}

func (m *MockGeocodeService) Reverse(ctx context.Context, lat, lon float64) (*domain.Location, domain.Provenance, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Get(1).(domain.Provenance), args.Error(2)
	}
	return args.Get(0).(*domain.Location), args.Get(1).(domain.Provenance), args.Error(2)
}

func (m *MockGeocodeService) Search(ctx context.Context, query string, limit int, origin *domain.Coordinates) ([]domain.Location, domain.Provenance, error) {
	args := m.Called(ctx, query, limit, origin)
	if args.Get(0) == nil {
		return nil, args.Get(1).(domain.Provenance), args.Error(2)
	}
	return args.Get(0).([]domain.Location), args.Get(1).(domain.Provenance), args.Error(2)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.UserSvcFacade               = (*MockUserService)(nil)
	_ portssvc.TokenSvcFacade              = (*MockTokenService)(nil)
	_ portssvc.GoogleOAuthHandlerSvcFacade = (*MockGoogleOAuthService)(nil)
	_ portssvc.ReportSvcFacade             = (*MockReportService)(nil)
	_ portssvc.WeatherSvcFacade            = (*MockWeatherService)(nil)
	_ portssvc.PlacesSvcFacade             = (*MockPlacesService)(nil)
	_ portssvc.SearchSvcFacade             = (*MockSearchService)(nil)
	_ portssvc.GeocodeSvcFacade            = (*MockGeocodeService)(nil)
)
