package db

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier represents the read operations used by the row loaders.
// Both *pgxpool.Pool and pgxmock pools satisfy this interface.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
