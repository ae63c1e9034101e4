// ABOUTME: CLI command for exercise progress over time.
// ABOUTME: Prints the heaviest set per day as a simple trend.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akontos/liftlog/internal/models"
)

var progressCmd = &cobra.Command{
	Use:   "progress <exercise>",
	Short: "Show weight progression for an exercise",
	Long: `Show the heaviest logged weight per day for an exercise, oldest
first, with a bar scaled to the all-time best.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser()
		if err != nil {
			return err
		}

		points, err := repo.MaxWeightPerDay(user.ID, args[0])
		if err != nil {
			return fmt.Errorf("failed to load progress: %w", err)
		}
		if len(points) == 0 {
			fmt.Printf("No logged sets of %s yet.\n", args[0])
			return nil
		}

		best := 0.0
		for _, p := range points {
			if p.Weight > best {
				best = p.Weight
			}
		}

		color.New(color.Bold).Printf("%s — best %.1f kg\n", args[0], best)
		for _, p := range points {
			fmt.Printf("  %s  %6.1f kg  %s\n",
				p.Date.Format(models.DateLayout), p.Weight,
				strings.Repeat("█", barWidth(p.Weight, best)))
		}
		return nil
	},
}

// barWidth scales a weight against the all-time best into a 0-30 char
// bar. Bodyweight-only history (best 0) gets no bar rather than a
// division by zero.
func barWidth(weight, best float64) int {
	if best <= 0 {
		return 0
	}
	return int(weight / best * 30)
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
