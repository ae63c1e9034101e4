// ABOUTME: Tests for one-rep-max upsert and recall.
// ABOUTME: Covers same-day overwrite, history, and latest lookup.
package storage

import (
	"testing"
)

func TestUpsertOneRepMaxSameDayOverwrites(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db, "aggelos")
	date := testDate(t, "2024-03-11")

	if err := db.UpsertOneRepMax(userID, "Back-squat", 100, date); err != nil {
		t.Fatalf("UpsertOneRepMax() error = %v", err)
	}
	if err := db.UpsertOneRepMax(userID, "Back-squat", 105, date); err != nil {
		t.Fatalf("UpsertOneRepMax() second call error = %v", err)
	}

	orms, err := db.ListOneRepMaxes(userID)
	if err != nil {
		t.Fatalf("ListOneRepMaxes() error = %v", err)
	}
	if len(orms) != 1 {
		t.Fatalf("got %d rows after same-day upsert, want 1", len(orms))
	}
	if orms[0].Value != 105 {
		t.Errorf("value = %.1f, want 105", orms[0].Value)
	}
}

func TestUpsertOneRepMaxDifferentDaysAccumulate(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db, "aggelos")

	if err := db.UpsertOneRepMax(userID, "Back-squat", 100, testDate(t, "2024-03-04")); err != nil {
		t.Fatalf("UpsertOneRepMax() error = %v", err)
	}
	if err := db.UpsertOneRepMax(userID, "Back-squat", 105, testDate(t, "2024-03-11")); err != nil {
		t.Fatalf("UpsertOneRepMax() error = %v", err)
	}

	orms, err := db.ListOneRepMaxes(userID)
	if err != nil {
		t.Fatalf("ListOneRepMaxes() error = %v", err)
	}
	if len(orms) != 2 {
		t.Fatalf("got %d rows, want 2", len(orms))
	}
}

func TestLatestOneRepMax(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db, "aggelos")

	if err := db.UpsertOneRepMax(userID, "Back-squat", 100, testDate(t, "2024-03-04")); err != nil {
		t.Fatalf("UpsertOneRepMax() error = %v", err)
	}
	if err := db.UpsertOneRepMax(userID, "Back-squat", 105, testDate(t, "2024-03-11")); err != nil {
		t.Fatalf("UpsertOneRepMax() error = %v", err)
	}
	if err := db.UpsertOneRepMax(userID, "Deadlift", 160, testDate(t, "2024-03-12")); err != nil {
		t.Fatalf("UpsertOneRepMax() error = %v", err)
	}

	latest, err := db.LatestOneRepMax(userID, "Back-squat")
	if err != nil {
		t.Fatalf("LatestOneRepMax() error = %v", err)
	}
	if latest == nil {
		t.Fatal("LatestOneRepMax() = nil, want a record")
	}
	if latest.Value != 105 {
		t.Errorf("latest value = %.1f, want 105", latest.Value)
	}
}

func TestLatestOneRepMaxAbsent(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db, "aggelos")

	latest, err := db.LatestOneRepMax(userID, "Back-squat")
	if err != nil {
		t.Fatalf("LatestOneRepMax() error = %v", err)
	}
	if latest != nil {
		t.Errorf("LatestOneRepMax() = %+v, want nil when nothing recorded", latest)
	}
}

func TestOneRepMaxScopedByUser(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	if err := db.UpsertOneRepMax(alice, "Back-squat", 120, testDate(t, "2024-03-11")); err != nil {
		t.Fatalf("UpsertOneRepMax() error = %v", err)
	}

	latest, err := db.LatestOneRepMax(bob, "Back-squat")
	if err != nil {
		t.Fatalf("LatestOneRepMax() error = %v", err)
	}
	if latest != nil {
		t.Errorf("bob sees alice's 1RM: %+v", latest)
	}
}
