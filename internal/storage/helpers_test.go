// ABOUTME: Shared test helpers for the storage package.
// ABOUTME: Opens a throwaway database in a temp directory.
package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/akontos/liftlog/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "liftlog.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *DB, username string) int64 {
	t.Helper()
	id, err := db.CreateUser(username, "secret")
	if err != nil {
		t.Fatalf("CreateUser(%q) error = %v", username, err)
	}
	return id
}

func testDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}
