// ABOUTME: Tests for the progress bar scaling.
// ABOUTME: Bodyweight-only histories must not break the chart.
package main

import "testing"

func TestBarWidth(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		best   float64
		want   int
	}{
		{"at best", 100, 100, 30},
		{"half of best", 50, 100, 15},
		{"zero weight", 0, 100, 0},
		{"bodyweight only history", 0, 0, 0},
	}
	for _, tt := range tests {
		if got := barWidth(tt.weight, tt.best); got != tt.want {
			t.Errorf("%s: barWidth(%.1f, %.1f) = %d, want %d",
				tt.name, tt.weight, tt.best, got, tt.want)
		}
	}
}
