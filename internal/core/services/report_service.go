package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/SscSPs/rotalivre/internal/apperrors"
	"github.com/SscSPs/rotalivre/internal/core/domain"
	portsrepo "github.com/SscSPs/rotalivre/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rotalivre/internal/core/ports/services"
	"github.com/SscSPs/rotalivre/internal/dto"
	"github.com/SscSPs/rotalivre/internal/observability"
	"github.com/SscSPs/rotalivre/internal/platform/fallback"
	"github.com/SscSPs/rotalivre/internal/utils/geo"
	"github.com/jonboulle/clockwork"
)

// reportStoreProvider names the report store in provenance and metrics.
const reportStoreProvider = "report_store"

// demoReportIDSpace bounds the random receipt id handed out in demo mode.
const demoReportIDSpace = 1000

type reportService struct {
	BaseService
	reportRepo portsrepo.ReportRepositoryFacade
	policy     *fallback.Policy
	metrics    *observability.Metrics
	clock      clockwork.Clock
	retention  time.Duration
}

// ReportServiceOption configures optional dependencies of the report service.
type ReportServiceOption func(*reportService)

func WithReportClock(clock clockwork.Clock) ReportServiceOption {
	return func(s *reportService) {
		s.clock = clock
	}
}

func WithReportMetrics(metrics *observability.Metrics) ReportServiceOption {
	return func(s *reportService) {
		s.metrics = metrics
	}
}

// WithReportRetention sets how long expired reports are kept before purging.
func WithReportRetention(d time.Duration) ReportServiceOption {
	return func(s *reportService) {
		s.retention = d
	}
}

// NewReportService creates the community report service.
func NewReportService(reportRepo portsrepo.ReportRepositoryFacade, policy *fallback.Policy, opts ...ReportServiceOption) portssvc.ReportSvcFacade {
	s := &reportService{
		reportRepo: reportRepo,
		policy:     policy,
		clock:      clockwork.NewRealClock(),
		retention:  7 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *reportService) SubmitReport(ctx context.Context, req dto.CreateReportRequest) (*domain.ReportSubmission, error) {
	if req.Latitude == nil || req.Longitude == nil || req.WeatherType == "" {
		return nil, apperrors.NewBadRequestError("Missing required fields")
	}
	if !geo.ValidCoordinates(*req.Latitude, *req.Longitude) {
		return nil, apperrors.NewBadRequestError("Invalid coordinates")
	}
	weatherType := domain.WeatherType(req.WeatherType)
	if !weatherType.IsValid() {
		return nil, apperrors.NewBadRequestError("Invalid weather type")
	}
	intensity := domain.DefaultIntensity
	if req.Intensity != nil {
		intensity = *req.Intensity
	}
	if intensity < domain.MinIntensity || intensity > domain.MaxIntensity {
		return nil, apperrors.NewBadRequestError("Intensity must be between 1 and 3")
	}

	now := s.clock.Now().UTC()
	report := domain.WeatherReport{
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		WeatherType: weatherType,
		Intensity:   intensity,
		Description: req.Description,
		CreatedAt:   now,
		ExpiresAt:   now.Add(domain.ReportLifetime),
	}

	id, err := s.reportRepo.SaveReport(ctx, report)
	if err != nil {
		s.LogWarn(ctx, "Report store unavailable, accepting report in demo mode", slog.String("error", err.Error()))
		s.countSubmission("demo")
		return &domain.ReportSubmission{ID: rand.Int64N(demoReportIDSpace), Demo: true}, nil
	}

	s.countSubmission("stored")
	s.LogInfo(ctx, "Weather report stored", slog.Int64("report_id", id), slog.String("weather_type", string(weatherType)))
	return &domain.ReportSubmission{ID: id}, nil
}

func (s *reportService) NearbyReports(ctx context.Context, lat, lon, radiusKm float64) ([]domain.WeatherReport, domain.Provenance) {
	if radiusKm <= 0 {
		radiusKm = domain.DefaultReportRadiusKm
	}
	now := s.clock.Now().UTC()
	query := domain.ReportQuery{
		Latitude:  lat,
		Longitude: lon,
		RadiusKm:  radiusKm,
		Now:       now,
		Limit:     domain.MaxReportsReturned,
	}

	res := fallback.Do(ctx, s.policy, reportStoreProvider,
		func(ctx context.Context) ([]domain.WeatherReport, error) {
			return s.reportRepo.FindRecentReports(ctx, query)
		},
		func() []domain.WeatherReport { return MockReports(lat, lon, now) },
	)

	reports := res.Value
	if reports == nil {
		reports = []domain.WeatherReport{}
	}
	for i := range reports {
		reports[i].Distance = geo.Distance(lat, lon, reports[i].Latitude, reports[i].Longitude)
	}
	return reports, res.Provenance(reportStoreProvider)
}

func (s *reportService) PurgeExpiredReports(ctx context.Context) (int64, error) {
	cutoff := s.clock.Now().UTC().Add(-s.retention)
	n, err := s.reportRepo.PurgeExpiredReports(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired reports: %w", err)
	}
	s.LogInfo(ctx, "Purged expired weather reports", slog.Int64("deleted", n), slog.Time("expired_before", cutoff))
	return n, nil
}

func (s *reportService) countSubmission(mode string) {
	if s.metrics != nil {
		s.metrics.ReportsSubmitted.WithLabelValues(mode).Inc()
	}
}

// MockReports returns the three sample reports shown when the store is down,
// anchored just around the requested point.
func MockReports(lat, lon float64, now time.Time) []domain.WeatherReport {
	mk := func(id int64, dLat, dLon float64, wt domain.WeatherType, intensity int, desc string, age time.Duration) domain.WeatherReport {
		created := now.Add(-age)
		return domain.WeatherReport{
			ID:          id,
			Latitude:    lat + dLat,
			Longitude:   lon + dLon,
			WeatherType: wt,
			Intensity:   intensity,
			Description: desc,
			CreatedAt:   created,
			ExpiresAt:   created.Add(domain.ReportLifetime),
		}
	}
	return []domain.WeatherReport{
		mk(1, 0.001, 0.001, domain.WeatherRain, 2, "Chuva moderada na região", 0),
		mk(2, -0.002, 0.002, domain.WeatherSun, 1, "Tempo bom para andar de moto", 30*time.Minute),
		mk(3, 0.003, -0.001, domain.WeatherCloud, 1, "Céu nublado, sem chuva", 45*time.Minute),
	}
}
