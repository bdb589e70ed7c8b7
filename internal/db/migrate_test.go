package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesKVTable(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='kv_entries'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "kv_entries", name)
}

func TestMigrate_PreservesExistingRows(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO kv_entries (key, value, updated_at) VALUES ('selection:2025-2', '["a"]', '2025-03-01T00:00:00Z')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	var value string
	require.NoError(t, db.QueryRow(`SELECT value FROM kv_entries WHERE key = 'selection:2025-2'`).Scan(&value))
	assert.Equal(t, `["a"]`, value)
}

func TestOpenDB_CreatesDirectory(t *testing.T) {
	path := t.TempDir() + "/nested/dir/cursada.db"
	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM kv_entries`).Scan(&n))
	assert.Zero(t, n)
}
