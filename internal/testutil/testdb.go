package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/cursada/internal/db"
)

// NewTestDB opens an in-memory SQLite database with migrations applied and
// closes it when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}
