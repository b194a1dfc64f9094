package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository holds the pool shared by every Postgres repository.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
