package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/rotalivre/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ReportRepository ---
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) SaveReport(ctx context.Context, report domain.WeatherReport) (int64, error) {
	args := m.Called(ctx, report)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) FindRecentReports(ctx context.Context, q domain.ReportQuery) ([]domain.WeatherReport, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeatherReport), args.Error(1)
}

func (m *MockReportRepository) PurgeExpiredReports(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock providers ---
type MockWeatherProvider struct {
	mock.Mock
	configured bool
}

func (m *MockWeatherProvider) Name() string     { return "mockweather" }
func (m *MockWeatherProvider) Configured() bool { return m.configured }

func (m *MockWeatherProvider) FetchWeather(ctx context.Context, lat, lon float64) (*domain.WeatherSnapshot, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeatherSnapshot), args.Error(1)
}

type MockAmenityFinder struct {
	mock.Mock
}

func (m *MockAmenityFinder) Name() string { return "overpass" }

func (m *MockAmenityFinder) NearbyAmenities(ctx context.Context, lat, lon float64, radiusMeters int, tags []string) ([]domain.Place, error) {
	args := m.Called(ctx, lat, lon, radiusMeters, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Place), args.Error(1)
}

type MockPlaceSearcher struct {
	mock.Mock
	configured bool
}

func (m *MockPlaceSearcher) Name() string     { return "serpapi" }
func (m *MockPlaceSearcher) Configured() bool { return m.configured }

func (m *MockPlaceSearcher) SearchPlaces(ctx context.Context, query string, lat, lon, radiusKm float64) ([]domain.Place, error) {
	args := m.Called(ctx, query, lat, lon, radiusKm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Place), args.Error(1)
}

type MockGeocoder struct {
	mock.Mock
	configured bool
}

func (m *MockGeocoder) Name() string     { return "locationiq" }
func (m *MockGeocoder) Configured() bool { return m.configured }

func (m *MockGeocoder) Reverse(ctx context.Context, lat, lon float64) (*domain.Location, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockGeocoder) Search(ctx context.Context, query string, limit int) ([]domain.Location, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Location), args.Error(1)
}

type MockAutocompleter struct {
	mock.Mock
}

func (m *MockAutocompleter) Name() string { return "nominatim" }

func (m *MockAutocompleter) Suggest(ctx context.Context, query string, limit int) ([]domain.Suggestion, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Suggestion), args.Error(1)
}

func ptr[T any](v T) *T { return &v }
