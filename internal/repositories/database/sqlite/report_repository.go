package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SscSPs/rotalivre/internal/core/domain"
	portsrepo "github.com/SscSPs/rotalivre/internal/core/ports/repositories"
	"github.com/SscSPs/rotalivre/internal/utils/geo"
)

type SQLiteReportRepository struct {
	db *sql.DB
}

func newSQLiteReportRepository(db *sql.DB) portsrepo.ReportRepositoryFacade {
	return &SQLiteReportRepository{db: db}
}

var _ portsrepo.ReportRepositoryFacade = (*SQLiteReportRepository)(nil)

func (r *SQLiteReportRepository) SaveReport(ctx context.Context, report domain.WeatherReport) (int64, error) {
	query := `
		INSERT INTO weather_reports (latitude, longitude, weather_type, intensity, description, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	res, err := r.db.ExecContext(ctx, query,
		report.Latitude,
		report.Longitude,
		string(report.WeatherType),
		report.Intensity,
		nullString(report.Description),
		formatTime(report.CreatedAt),
		formatTime(report.ExpiresAt),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save weather report: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new report id: %w", err)
	}
	return id, nil
}

func (r *SQLiteReportRepository) FindRecentReports(ctx context.Context, q domain.ReportQuery) ([]domain.WeatherReport, error) {
	query := `
		SELECT id, latitude, longitude, weather_type, intensity, description, created_at, expires_at
		FROM weather_reports
		WHERE created_at > ?
		  AND expires_at > ?
		  AND (ABS(latitude - ?) + ABS(longitude - ?)) < ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?;
	`
	rows, err := r.db.QueryContext(ctx, query,
		formatTime(q.Now.Add(-domain.ReportLifetime)),
		formatTime(q.Now),
		q.Latitude,
		q.Longitude,
		geo.DegreeSpan(q.RadiusKm),
		q.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query weather reports: %w", err)
	}
	defer rows.Close()

	reports := make([]domain.WeatherReport, 0, q.Limit)
	for rows.Next() {
		var (
			rep         domain.WeatherReport
			weatherType string
			description sql.NullString
			createdAt   string
			expiresAt   string
		)
		if err := rows.Scan(&rep.ID, &rep.Latitude, &rep.Longitude, &weatherType, &rep.Intensity, &description, &createdAt, &expiresAt); err != nil {
			return nil, fmt.Errorf("failed to scan weather report: %w", err)
		}
		rep.WeatherType = domain.WeatherType(weatherType)
		rep.Description = description.String
		if rep.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if rep.ExpiresAt, err = parseTime(expiresAt); err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate weather reports: %w", err)
	}
	return reports, nil
}

func (r *SQLiteReportRepository) PurgeExpiredReports(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM weather_reports WHERE expires_at < ?;`, formatTime(before))
	if err != nil {
		return 0, fmt.Errorf("failed to purge weather reports: %w", err)
	}
	return res.RowsAffected()
}
