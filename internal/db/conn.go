package db

import (
	"context"
	"database/sql"
)

// Conn is the query surface the key-value repository needs. Both the pooled
// *sql.DB and a *sql.Tx opened for an atomic write satisfy it.
type Conn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ Conn = (*sql.DB)(nil)
	_ Conn = (*sql.Tx)(nil)
)
