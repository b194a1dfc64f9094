package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/rotalivre/internal/core/domain"
)

// ReportReader defines read operations for community weather reports
type ReportReader interface {
	// FindRecentReports returns reports created within the report lifetime before
	// q.Now, not yet expired and inside the degree-proxy radius, newest first.
	FindRecentReports(ctx context.Context, q domain.ReportQuery) ([]domain.WeatherReport, error)
}

// ReportWriter defines write operations for community weather reports
type ReportWriter interface {
	// SaveReport inserts a report and returns its generated ID.
	SaveReport(ctx context.Context, report domain.WeatherReport) (int64, error)
}

// ReportLifecycleManager defines housekeeping for stale reports
type ReportLifecycleManager interface {
	// PurgeExpiredReports deletes reports that expired before the given instant.
	PurgeExpiredReports(ctx context.Context, before time.Time) (int64, error)
}

// ReportRepositoryFacade combines all report-related repository interfaces
type ReportRepositoryFacade interface {
	ReportReader
	ReportWriter
	ReportLifecycleManager
}
