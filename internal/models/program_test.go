// ABOUTME: Tests for the program template lookups.
// ABOUTME: Checks day membership, targets, and exercise enumeration.
package models

import (
	"testing"
)

func TestIsTrainingDay(t *testing.T) {
	for _, day := range TrainingDays {
		if !IsTrainingDay(day) {
			t.Errorf("IsTrainingDay(%q) = false", day)
		}
	}
	for _, day := range []string{"Wednesday", "Sunday", ""} {
		if IsTrainingDay(day) {
			t.Errorf("IsTrainingDay(%q) = true", day)
		}
	}
}

func TestTargetFor(t *testing.T) {
	tests := []struct {
		day      string
		exercise string
		want     string
	}{
		{"Monday", "Back-squat", "1×4 @88% + 3×6 @78%"},
		{"Monday", "Hip-thrust", "4×8"},
		{"Tuesday", "Dips", "3×10"},
		{"Thursday AM", "Deadlift", "1×3 @90% + 3×6 @80%"},
		{"Friday", "Weighted Pull-up", "3×6–8"},
		// Scheduled elsewhere, not this day.
		{"Monday", "Bench Press", ""},
		// Unknown day.
		{"Sunday", "Back-squat", ""},
	}
	for _, tt := range tests {
		if got := TargetFor(tt.day, tt.exercise); got != tt.want {
			t.Errorf("TargetFor(%q, %q) = %q, want %q", tt.day, tt.exercise, got, tt.want)
		}
	}
}

func TestExercisesForDay(t *testing.T) {
	got := ExercisesForDay("Tuesday")
	want := []string{"Bench Press", "Overhead Press", "Dips"}
	if len(got) != len(want) {
		t.Fatalf("ExercisesForDay(Tuesday) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ExercisesForDay(Tuesday)[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if got := ExercisesForDay("Sunday"); len(got) != 0 {
		t.Errorf("ExercisesForDay(Sunday) = %v, want empty", got)
	}
}

func TestAllExercisesCoversEveryDay(t *testing.T) {
	all := AllExercises()

	total := 0
	for _, day := range TrainingDays {
		total += len(WeeklyResistance[day])
	}
	if len(all) != total {
		t.Fatalf("AllExercises() has %d entries, want %d", len(all), total)
	}

	seen := make(map[string]bool)
	for _, name := range all {
		if seen[name] {
			t.Errorf("duplicate exercise %q", name)
		}
		seen[name] = true
	}
}
