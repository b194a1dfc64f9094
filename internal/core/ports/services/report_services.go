package services

import (
	"context"

	"github.com/SscSPs/rotalivre/internal/core/domain"
	"github.com/SscSPs/rotalivre/internal/dto"
)

// ReportReaderSvc defines read operations for community reports
type ReportReaderSvc interface {
	// NearbyReports never fails: when the store is unavailable it returns
	// synthetic reports and flags the provenance as fallback.
	NearbyReports(ctx context.Context, lat, lon, radiusKm float64) ([]domain.WeatherReport, domain.Provenance)
}

// ReportWriterSvc defines write operations for community reports
type ReportWriterSvc interface {
	// SubmitReport stores a validated report. When the store is unavailable the
	// receipt is marked Demo and nothing is persisted.
	SubmitReport(ctx context.Context, req dto.CreateReportRequest) (*domain.ReportSubmission, error)
}

// ReportLifecycleSvc defines housekeeping for stale reports
type ReportLifecycleSvc interface {
	// PurgeExpiredReports deletes reports expired longer than the retention period.
	PurgeExpiredReports(ctx context.Context) (int64, error)
}

// ReportSvcFacade combines all report-related service interfaces
type ReportSvcFacade interface {
	ReportReaderSvc
	ReportWriterSvc
	ReportLifecycleSvc
}
