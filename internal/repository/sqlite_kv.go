package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/cursada/internal/db"
)

// SQLiteKVRepo implements KVRepo over the kv_entries table.
type SQLiteKVRepo struct {
	db db.Conn
}

// NewSQLiteKVRepo creates a new SQLiteKVRepo.
func NewSQLiteKVRepo(conn db.Conn) *SQLiteKVRepo {
	return &SQLiteKVRepo{db: conn}
}

func (r *SQLiteKVRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("kv entry %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading kv entry %q: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteKVRepo) Put(ctx context.Context, key, value string) error {
	query := `INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, value, nowUTC()); err != nil {
		return fmt.Errorf("writing kv entry %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteKVRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting kv entry %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteKVRepo) List(ctx context.Context, prefix string) ([]KVEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT key, value, updated_at FROM kv_entries WHERE key LIKE ? ESCAPE '\' ORDER BY key`,
		likePrefix(prefix))
	if err != nil {
		return nil, fmt.Errorf("listing kv entries: %w", err)
	}
	defer rows.Close()

	var out []KVEntry
	for rows.Next() {
		var e KVEntry
		var updated string
		if err := rows.Scan(&e.Key, &e.Value, &updated); err != nil {
			return nil, fmt.Errorf("scanning kv entry: %w", err)
		}
		e.UpdatedAt = parseTime(updated)
		out = append(out, e)
	}
	return out, rows.Err()
}

// SQLiteKVStore implements KVStore on a SQLite database.
type SQLiteKVStore struct {
	db     *sql.DB
	txHook func(db.Conn) db.Conn
}

// SQLiteKVOption configures a SQLiteKVStore.
type SQLiteKVOption func(*SQLiteKVStore)

// WithTxHook wraps the transaction handed to Atomic callbacks. Tests use it
// to fail a write halfway through.
func WithTxHook(hook func(db.Conn) db.Conn) SQLiteKVOption {
	return func(s *SQLiteKVStore) { s.txHook = hook }
}

// NewSQLiteKVStore wraps an open, migrated database.
func NewSQLiteKVStore(database *sql.DB, opts ...SQLiteKVOption) *SQLiteKVStore {
	s := &SQLiteKVStore{db: database}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenSQLiteKVStore opens (and migrates) the database at path.
func OpenSQLiteKVStore(path string) (*SQLiteKVStore, error) {
	database, err := db.OpenDB(path)
	if err != nil {
		return nil, err
	}
	return NewSQLiteKVStore(database), nil
}

func (s *SQLiteKVStore) KV() KVRepo {
	return NewSQLiteKVRepo(s.db)
}

// Atomic runs fn against a repository bound to one transaction. Every write
// fn made is rolled back when it returns an error or panics.
func (s *SQLiteKVStore) Atomic(ctx context.Context, fn func(ctx context.Context, kv KVRepo) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting kv transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	var conn db.Conn = tx
	if s.txHook != nil {
		conn = s.txHook(conn)
	}
	if err := fn(ctx, NewSQLiteKVRepo(conn)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rolling back kv transaction: %w", rbErr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing kv transaction: %w", err)
	}
	return nil
}

func (s *SQLiteKVStore) Close() error {
	return s.db.Close()
}
