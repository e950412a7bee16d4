package testutil

import (
	"database/sql"
	"testing"

	"github.com/npellerin/foulee/internal/db"
)

// NewTestDB opens a fresh in-memory SQLite database with the full
// foulee schema (profiles, plans, sessions, feedback) migrated, scoped
// to the test's lifetime.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open in-memory database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW wraps the test database in the production UnitOfWork so
// service tests run transactions the same way the binary does.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
