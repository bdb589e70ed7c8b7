package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/alexanderramin/cursada/internal/db"
)

// FailNthWrite returns a transaction hook whose Nth ExecContext call (counted
// from 1) returns err instead of reaching the database. Reads pass through.
func FailNthWrite(n int32, err error) func(db.Conn) db.Conn {
	return func(conn db.Conn) db.Conn {
		return &failNthWrite{Conn: conn, n: n, err: err}
	}
}

type failNthWrite struct {
	db.Conn
	writes atomic.Int32
	n      int32
	err    error
}

func (f *failNthWrite) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.writes.Add(1) == f.n {
		return nil, f.err
	}
	return f.Conn.ExecContext(ctx, query, args...)
}
