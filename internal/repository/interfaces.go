package repository

import (
	"context"
	"time"
)

// KVEntry is one stored value with its last write time.
type KVEntry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// KVRepo is the local key-value store used for per-term selections and
// gray zones. Values are opaque strings (JSON in practice).
type KVRepo interface {
	// Get returns the value for key, or an error wrapping ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// List returns the entries whose key starts with prefix, sorted by key.
	List(ctx context.Context, prefix string) ([]KVEntry, error)
}

// KVStore hands out KV repositories, either bound to the live store or to
// an atomic batch whose writes land together or not at all.
type KVStore interface {
	KV() KVRepo
	Atomic(ctx context.Context, fn func(ctx context.Context, kv KVRepo) error) error
	Close() error
}
