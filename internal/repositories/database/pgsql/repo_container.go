package pgsql

import (
	portsrepo "github.com/SscSPs/rotalivre/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every repository to one shared pgx pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:   newPgxUserRepository(dbPool),
		ReportRepo: newPgxReportRepository(dbPool),
	}
}
