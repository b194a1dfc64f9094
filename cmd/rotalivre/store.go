package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/rotalivre/internal/core/ports/repositories"
	"github.com/SscSPs/rotalivre/internal/platform/config"
	"github.com/SscSPs/rotalivre/internal/repositories/database/pgsql"
	"github.com/SscSPs/rotalivre/internal/repositories/database/sqlite"
	"github.com/SscSPs/rotalivre/internal/repositories/database/unavailable"
	"github.com/SscSPs/rotalivre/pkg/database"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// store is the process-wide handle on the configured database.
type store struct {
	repos portsrepo.RepositoryProvider
	close func()
}

// openStore opens and migrates the configured database. When that fails and
// the store is optional, repositories that report the store as unavailable
// are returned instead so the API can degrade.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*store, error) {
	s, err := openConfiguredStore(ctx, cfg, logger)
	if err == nil {
		return s, nil
	}
	if cfg.StoreRequired {
		return nil, err
	}
	logger.Warn("Persistent store unavailable, serving degraded responses", slog.String("error", err.Error()))
	return &store{repos: unavailable.NewRepositoryProvider(err), close: func() {}}, nil
}

func openConfiguredStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*store, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		// migrations go through database/sql; the pool serves the application
		if err := migratePostgres(cfg.DatabaseURL, logger); err != nil {
			return nil, err
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		logger.Info("Database connection pool established.", slog.String("driver", cfg.DBDriver))
		return &store{repos: pgsql.NewRepositoryProvider(pool), close: pool.Close}, nil
	default:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(config.DriverSQLite, db, logger); err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.Info("Database opened.", slog.String("driver", config.DriverSQLite), slog.String("path", cfg.SQLitePath))
		return &store{
			repos: sqlite.NewRepositoryProvider(db),
			close: func() {
				if err := db.Close(); err != nil {
					logger.Error("Error closing database", slog.String("error", err.Error()))
				}
			},
		}, nil
	}
}

func migratePostgres(databaseURL string, logger *slog.Logger) error {
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}
	return database.Migrate(config.DriverPostgres, migrationDB, logger)
}
