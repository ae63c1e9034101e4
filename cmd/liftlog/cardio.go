// ABOUTME: CLI command for logging cardio sessions.
// ABOUTME: Stores type, duration and optional average heart rate.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akontos/liftlog/internal/models"
)

var cardioDate string

var cardioCmd = &cobra.Command{
	Use:   "cardio <type> <minutes> [avg_hr]",
	Short: "Log a cardio session",
	Long: fmt.Sprintf(`Log a cardio session with its duration and, optionally, the
average heart rate.

Known session types: %s. Anything else is stored as given.

EXAMPLES:

  liftlog cardio "Zone-2 Run" 45 142
  liftlog cardio "HIIT (4x4)" 25`, strings.Join(models.CardioTypes, ", ")),
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser()
		if err != nil {
			return err
		}

		duration, err := strconv.Atoi(args[1])
		if err != nil || duration < 1 {
			return fmt.Errorf("invalid duration: %s (want minutes)", args[1])
		}

		avgHR := 0
		if len(args) == 3 {
			avgHR, err = strconv.Atoi(args[2])
			if err != nil || avgHR < 0 {
				return fmt.Errorf("invalid average heart rate: %s", args[2])
			}
		}

		date := time.Now()
		if cardioDate != "" {
			date, err = time.Parse(models.DateLayout, cardioDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s (want YYYY-MM-DD)", cardioDate)
			}
		}

		entry := &models.CardioEntry{
			UserID:      user.ID,
			Date:        date,
			Type:        args[0],
			DurationMin: duration,
			AvgHR:       avgHR,
		}
		if err := repo.InsertCardioEntry(entry); err != nil {
			return fmt.Errorf("failed to save cardio entry: %w", err)
		}

		color.Green("✓ Logged %s: %d min", entry.Type, entry.DurationMin)
		if entry.AvgHR > 0 {
			fmt.Printf("  avg HR %d bpm\n", entry.AvgHR)
		}
		return nil
	},
}

func init() {
	cardioCmd.Flags().StringVar(&cardioDate, "date", "", "date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(cardioCmd)
}
