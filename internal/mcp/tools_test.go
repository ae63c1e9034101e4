// ABOUTME: Tests for the MCP tool handlers.
// ABOUTME: Calls handlers directly against a temp store, no stdio transport.
package mcp

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/akontos/liftlog/internal/models"
	"github.com/akontos/liftlog/internal/storage"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := storage.Open(filepath.Join(t.TempDir(), "liftlog.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	userID, err := db.CreateUser("aggelos", "secret")
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	s, err := NewServer(db, userID, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return s
}

func TestHandleLogSetAndGetLastSet(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	_, out, err := s.handleLogSet(ctx, nil, logSetInput{
		Exercise: "Back-squat",
		Weight:   100,
		Reps:     4,
		RIR:      2,
		Week:     1,
		Day:      "Monday",
		Date:     "2024-03-11",
	})
	if err != nil {
		t.Fatalf("handleLogSet() error = %v", err)
	}
	if out.ID == 0 {
		t.Error("handleLogSet() returned id 0")
	}
	if out.Target != "1×4 @88% + 3×6 @78%" {
		t.Errorf("target = %q, want the Monday squat prescription", out.Target)
	}

	_, res, err := s.handleGetLastSet(ctx, nil, getLastSetInput{Exercise: "Back-squat"})
	if err != nil {
		t.Fatalf("handleGetLastSet() error = %v", err)
	}
	last, ok := res.(*models.SetResult)
	if !ok {
		t.Fatalf("handleGetLastSet() = %T, want *models.SetResult", res)
	}
	if last.Weight != 100 || last.Reps != 4 || last.RIR != 2 {
		t.Errorf("last set = %+v, want 100×4 @2", last)
	}
}

func TestHandleLogSetRejectsMalformedDate(t *testing.T) {
	s := setupTestServer(t)

	_, _, err := s.handleLogSet(context.Background(), nil, logSetInput{
		Exercise: "Back-squat",
		Weight:   100,
		Reps:     4,
		Date:     "2024-3-1",
	})
	if err == nil {
		t.Fatal("handleLogSet() accepted a malformed date")
	}

	// Nothing may have been recorded under today's date.
	_, res, err := s.handleListSets(context.Background(), nil, listSetsInput{})
	if err != nil {
		t.Fatalf("handleListSets() error = %v", err)
	}
	if _, ok := res.(map[string]any); !ok {
		t.Errorf("handleListSets() = %T, want the no-sets message after a rejected log", res)
	}
}

func TestHandleRecord1RMRejectsMalformedDate(t *testing.T) {
	s := setupTestServer(t)

	_, _, err := s.handleRecord1RM(context.Background(), nil, record1RMInput{
		Exercise: "Deadlift",
		Value:    180,
		Date:     "not-a-date",
	})
	if err == nil {
		t.Fatal("handleRecord1RM() accepted a malformed date")
	}
}

func TestHandleGetLastSetAbsent(t *testing.T) {
	s := setupTestServer(t)

	_, res, err := s.handleGetLastSet(context.Background(), nil, getLastSetInput{Exercise: "Deadlift"})
	if err != nil {
		t.Fatalf("handleGetLastSet() error = %v", err)
	}
	if _, ok := res.(map[string]any); !ok {
		t.Errorf("handleGetLastSet() = %T, want a message map when nothing is logged", res)
	}
}

func TestHandleRecordAndGetLatest1RM(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	for _, in := range []record1RMInput{
		{Exercise: "Back-squat", Value: 100, Date: "2024-03-11"},
		{Exercise: "Back-squat", Value: 105, Date: "2024-03-11"}, // same day replaces
	} {
		if _, _, err := s.handleRecord1RM(ctx, nil, in); err != nil {
			t.Fatalf("handleRecord1RM() error = %v", err)
		}
	}

	_, res, err := s.handleGetLatest1RM(ctx, nil, exerciseInput{Exercise: "Back-squat"})
	if err != nil {
		t.Fatalf("handleGetLatest1RM() error = %v", err)
	}
	latest, ok := res.(*models.OneRepMax)
	if !ok {
		t.Fatalf("handleGetLatest1RM() = %T, want *models.OneRepMax", res)
	}
	if latest.Value != 105 {
		t.Errorf("latest 1RM = %.1f, want 105 after same-day replace", latest.Value)
	}
}

func TestHandleListSetsLimit(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, _, err := s.handleLogSet(ctx, nil, logSetInput{
			Exercise:  "Bench Press",
			Weight:    80,
			Reps:      6,
			SetNumber: i + 1,
			Date:      "2024-03-12",
		}); err != nil {
			t.Fatalf("handleLogSet() error = %v", err)
		}
	}

	_, res, err := s.handleListSets(ctx, nil, listSetsInput{Limit: 3})
	if err != nil {
		t.Fatalf("handleListSets() error = %v", err)
	}
	sets, ok := res.([]*models.ResistanceSet)
	if !ok {
		t.Fatalf("handleListSets() = %T, want []*models.ResistanceSet", res)
	}
	if len(sets) != 3 {
		t.Errorf("got %d sets, want 3 (limit)", len(sets))
	}
}

func TestHandleGetProgress(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	for _, in := range []logSetInput{
		{Exercise: "Deadlift", Weight: 160, Reps: 3, Date: "2024-03-04"},
		{Exercise: "Deadlift", Weight: 165, Reps: 3, Date: "2024-03-11"},
	} {
		if _, _, err := s.handleLogSet(ctx, nil, in); err != nil {
			t.Fatalf("handleLogSet() error = %v", err)
		}
	}

	_, res, err := s.handleGetProgress(ctx, nil, exerciseInput{Exercise: "Deadlift"})
	if err != nil {
		t.Fatalf("handleGetProgress() error = %v", err)
	}
	points, ok := res.([]models.ProgressPoint)
	if !ok {
		t.Fatalf("handleGetProgress() = %T, want []models.ProgressPoint", res)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].Weight != 160 || points[1].Weight != 165 {
		t.Errorf("points = %+v, want 160 then 165", points)
	}
}

func TestHandleLogMobilityCountsCircuits(t *testing.T) {
	s := setupTestServer(t)

	_, out, err := s.handleLogMobility(context.Background(), nil, logMobilityInput{
		Prep:      true,
		JointFlow: true,
		Date:      "2024-03-11",
	})
	if err != nil {
		t.Fatalf("handleLogMobility() error = %v", err)
	}
	if out.Message != "Logged mobility: 2 of 4 circuits completed" {
		t.Errorf("message = %q", out.Message)
	}
}
