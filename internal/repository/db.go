// Package repository declares the persistence interfaces used by the use
// case layer. Concrete implementations live under
// internal/infra/adapter/persistence.
package repository

import (
	"context"
	"database/sql"
)

// DB is the subset of *sql.DB the repositories need. It is also satisfied
// by the circuit-breaker wrapper in internal/resilience/circuitbreaker,
// which is what production wiring passes in.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
