package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/rotalivre/internal/core/domain"
	portsrepo "github.com/SscSPs/rotalivre/internal/core/ports/repositories"
	"github.com/SscSPs/rotalivre/internal/utils/geo"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportRepository struct {
	BaseRepository
}

func newPgxReportRepository(db *pgxpool.Pool) portsrepo.ReportRepositoryFacade {
	return &PgxReportRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ReportRepositoryFacade = (*PgxReportRepository)(nil)

func (r *PgxReportRepository) SaveReport(ctx context.Context, report domain.WeatherReport) (int64, error) {
	query := `
        INSERT INTO weather_reports (latitude, longitude, weather_type, intensity, description, created_at, expires_at)
        VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)
        RETURNING id;
    `
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		report.Latitude,
		report.Longitude,
		string(report.WeatherType),
		report.Intensity,
		report.Description,
		report.CreatedAt,
		report.ExpiresAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save weather report: %w", err)
	}
	return id, nil
}

func (r *PgxReportRepository) FindRecentReports(ctx context.Context, q domain.ReportQuery) ([]domain.WeatherReport, error) {
	query := `
		SELECT id, latitude, longitude, weather_type, intensity, COALESCE(description, ''), created_at, expires_at
		FROM weather_reports
		WHERE created_at > $1
		  AND expires_at > $2
		  AND (ABS(latitude - $3) + ABS(longitude - $4)) < $5
		ORDER BY created_at DESC, id DESC
		LIMIT $6;
	`
	rows, err := r.Pool.Query(ctx, query,
		q.Now.Add(-domain.ReportLifetime),
		q.Now,
		q.Latitude,
		q.Longitude,
		geo.DegreeSpan(q.RadiusKm),
		q.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query weather reports: %w", err)
	}

	reports, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.WeatherReport, error) {
		var rep domain.WeatherReport
		var weatherType string
		err := row.Scan(&rep.ID, &rep.Latitude, &rep.Longitude, &weatherType, &rep.Intensity, &rep.Description, &rep.CreatedAt, &rep.ExpiresAt)
		rep.WeatherType = domain.WeatherType(weatherType)
		return rep, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan weather reports: %w", err)
	}
	return reports, nil
}

func (r *PgxReportRepository) PurgeExpiredReports(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM weather_reports WHERE expires_at < $1;`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to purge weather reports: %w", err)
	}
	return tag.RowsAffected(), nil
}
