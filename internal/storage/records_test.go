// ABOUTME: Tests for the resistance, mobility, and cardio logs.
// ABOUTME: Covers user scoping, last-set recall, batch inserts, and reassignment.
package storage

import (
	"errors"
	"testing"

	"github.com/akontos/liftlog/internal/models"
)

func TestResistanceSetsScopedByUser(t *testing.T) {
	db := setupTestDB(t)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	aliceSet := models.NewResistanceSet(alice, 1, "Monday", "Back-squat", 1, "1×4 @88%", 100, 4, 2)
	bobSet := models.NewResistanceSet(bob, 1, "Monday", "Back-squat", 1, "1×4 @88%", 60, 4, 3)
	if err := db.InsertResistanceSet(aliceSet); err != nil {
		t.Fatalf("InsertResistanceSet() error = %v", err)
	}
	if err := db.InsertResistanceSet(bobSet); err != nil {
		t.Fatalf("InsertResistanceSet() error = %v", err)
	}

	got, err := db.ListResistanceSets(alice)
	if err != nil {
		t.Fatalf("ListResistanceSets() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("alice sees %d sets, want 1", len(got))
	}
	if got[0].Weight != 100 {
		t.Errorf("alice's set weight = %.1f, want 100", got[0].Weight)
	}
}

func TestListResistanceSetsNoUser(t *testing.T) {
	db := setupTestDB(t)

	sets, err := db.ListResistanceSets(0)
	if err != nil {
		t.Fatalf("ListResistanceSets(0) error = %v", err)
	}
	if sets != nil {
		t.Errorf("ListResistanceSets(0) = %v, want nil", sets)
	}
}

func TestFetchLastSetPicksMostRecent(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db, "aggelos")

	older := models.NewResistanceSet(userID, 1, "Monday", "Back-squat", 1, "1×4 @88%", 90, 4, 3).
		WithDate(testDate(t, "2024-03-04"))
	newer := models.NewResistanceSet(userID, 2, "Monday", "Back-squat", 1, "1×4 @88%", 100, 4, 2).
		WithDate(testDate(t, "2024-03-11"))
	for _, s := range []*models.ResistanceSet{older, newer} {
		if err := db.InsertResistanceSet(s); err != nil {
			t.Fatalf("InsertResistanceSet() error = %v", err)
		}
	}

	last, err := db.FetchLastSet("Back-squat", 1, userID)
	if err != nil {
		t.Fatalf("FetchLastSet() error = %v", err)
	}
	if last == nil {
		t.Fatal("FetchLastSet() = nil, want a result")
	}
	if last.Weight != 100 || last.Reps != 4 || last.RIR != 2 {
		t.Errorf("FetchLastSet() = %+v, want weight 100, reps 4, RIR 2", last)
	}
}

func TestFetchLastSetAbsent(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db, "aggelos")

	last, err := db.FetchLastSet("Back-squat", 1, userID)
	if err != nil {
		t.Fatalf("FetchLastSet() error = %v", err)
	}
	if last != nil {
		t.Errorf("FetchLastSet() = %+v, want nil for unlogged exercise", last)
	}

	// Same for a missing identity.
	last, err = db.FetchLastSet("Back-squat", 1, 0)
	if err != nil {
		t.Fatalf("FetchLastSet(userID=0) error = %v", err)
	}
	if last != nil {
		t.Errorf("FetchLastSet(userID=0) = %+v, want nil", last)
	}
}

func TestFetchLastSetDistinguishesSetNumbers(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db, "aggelos")

	date := testDate(t, "2024-03-11")
	set1 := models.NewResistanceSet(userID, 1, "Monday", "Back-squat", 1, "", 100, 4, 2).WithDate(date)
	set2 := models.NewResistanceSet(userID, 1, "Monday", "Back-squat", 2, "", 90, 6, 2).WithDate(date)
	if err := db.InsertResistanceSets([]*models.ResistanceSet{set1, set2}); err != nil {
		t.Fatalf("InsertResistanceSets() error = %v", err)
	}

	last, err := db.FetchLastSet("Back-squat", 2, userID)
	if err != nil {
		t.Fatalf("FetchLastSet() error = %v", err)
	}
	if last == nil || last.Weight != 90 {
		t.Errorf("FetchLastSet(set 2) = %+v, want weight 90", last)
	}
}

func TestInsertResistanceSetsEmptyBatch(t *testing.T) {
	db := setupTestDB(t)

	err := db.InsertResistanceSets(nil)
	if !errors.Is(err, ErrNothingToSave) {
		t.Fatalf("InsertResistanceSets(nil) error = %v, want ErrNothingToSave", err)
	}
}

func TestInsertResistanceSetsAssignsIDs(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db, "aggelos")

	sets := []*models.ResistanceSet{
		models.NewResistanceSet(userID, 1, "Tuesday", "Bench Press", 1, "4×6", 80, 6, 2),
		models.NewResistanceSet(userID, 1, "Tuesday", "Bench Press", 2, "4×6", 80, 6, 1),
	}
	if err := db.InsertResistanceSets(sets); err != nil {
		t.Fatalf("InsertResistanceSets() error = %v", err)
	}
	for i, s := range sets {
		if s.ID == 0 {
			t.Errorf("set %d has no id after batch insert", i)
		}
	}
}

func TestMaxWeightPerDay(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db, "aggelos")

	day1 := testDate(t, "2024-03-04")
	day2 := testDate(t, "2024-03-11")
	for _, s := range []*models.ResistanceSet{
		models.NewResistanceSet(userID, 1, "Monday", "Back-squat", 1, "", 100, 4, 2).WithDate(day1),
		models.NewResistanceSet(userID, 1, "Monday", "Back-squat", 2, "", 90, 6, 2).WithDate(day1),
		models.NewResistanceSet(userID, 2, "Monday", "Back-squat", 1, "", 102.5, 4, 2).WithDate(day2),
		// Different exercise, must not leak in.
		models.NewResistanceSet(userID, 2, "Monday", "Hip-thrust", 1, "", 140, 8, 2).WithDate(day2),
	} {
		if err := db.InsertResistanceSet(s); err != nil {
			t.Fatalf("InsertResistanceSet() error = %v", err)
		}
	}

	points, err := db.MaxWeightPerDay(userID, "Back-squat")
	if err != nil {
		t.Fatalf("MaxWeightPerDay() error = %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if !points[0].Date.Equal(day1) || points[0].Weight != 100 {
		t.Errorf("point 0 = %s %.1f, want %s 100", points[0].Date, points[0].Weight, day1)
	}
	if !points[1].Date.Equal(day2) || points[1].Weight != 102.5 {
		t.Errorf("point 1 = %s %.1f, want %s 102.5", points[1].Date, points[1].Weight, day2)
	}
}

func TestMobilityRoundtrip(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db, "aggelos")

	entry := &models.MobilityEntry{
		UserID:        userID,
		Date:          testDate(t, "2024-03-11"),
		Prep:          true,
		JointFlow:     true,
		AnimalCircuit: false,
		CuffFinisher:  true,
	}
	if err := db.InsertMobilityEntry(entry); err != nil {
		t.Fatalf("InsertMobilityEntry() error = %v", err)
	}

	entries, err := db.ListMobilityEntries(userID)
	if err != nil {
		t.Fatalf("ListMobilityEntries() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	got := entries[0]
	if !got.Prep || !got.JointFlow || got.AnimalCircuit || !got.CuffFinisher {
		t.Errorf("flags = %+v, want prep/joint/cuff true, animal false", got)
	}
}

func TestCardioRoundtrip(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db, "aggelos")

	entry := &models.CardioEntry{
		UserID:      userID,
		Date:        testDate(t, "2024-03-11"),
		Type:        "Zone-2 Run",
		DurationMin: 45,
		AvgHR:       142,
	}
	if err := db.InsertCardioEntry(entry); err != nil {
		t.Fatalf("InsertCardioEntry() error = %v", err)
	}

	entries, err := db.ListCardioEntries(userID)
	if err != nil {
		t.Fatalf("ListCardioEntries() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Type != "Zone-2 Run" || entries[0].DurationMin != 45 || entries[0].AvgHR != 142 {
		t.Errorf("entry = %+v, want Zone-2 Run 45 min @142", entries[0])
	}
}

func TestReassignAllRecords(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	if err := db.InsertResistanceSet(
		models.NewResistanceSet(alice, 1, "Monday", "Back-squat", 1, "", 100, 4, 2),
	); err != nil {
		t.Fatalf("InsertResistanceSet() error = %v", err)
	}
	if err := db.InsertCardioEntry(&models.CardioEntry{
		UserID: alice, Date: testDate(t, "2024-03-11"), Type: "Other", DurationMin: 30,
	}); err != nil {
		t.Fatalf("InsertCardioEntry() error = %v", err)
	}

	if err := db.ReassignAllRecords(bob); err != nil {
		t.Fatalf("ReassignAllRecords() error = %v", err)
	}

	aliceSets, err := db.ListResistanceSets(alice)
	if err != nil {
		t.Fatalf("ListResistanceSets(alice) error = %v", err)
	}
	if len(aliceSets) != 0 {
		t.Errorf("alice still sees %d sets after reassignment", len(aliceSets))
	}

	bobSets, err := db.ListResistanceSets(bob)
	if err != nil {
		t.Fatalf("ListResistanceSets(bob) error = %v", err)
	}
	bobCardio, err := db.ListCardioEntries(bob)
	if err != nil {
		t.Fatalf("ListCardioEntries(bob) error = %v", err)
	}
	if len(bobSets) != 1 || len(bobCardio) != 1 {
		t.Errorf("bob sees %d sets and %d cardio entries, want 1 and 1", len(bobSets), len(bobCardio))
	}
}
