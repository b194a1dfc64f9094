package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/rotalivre/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository to one shared SQLite handle.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:   newSQLiteUserRepository(db),
		ReportRepo: newSQLiteReportRepository(db),
	}
}
