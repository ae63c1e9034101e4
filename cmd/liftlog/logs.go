// ABOUTME: CLI command for browsing logged entries.
// ABOUTME: Shows recent rows from each record table, newest first.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akontos/liftlog/internal/models"
)

var logsLimit int

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show recent log entries",
	Long: `Show the most recent entries across all record types: resistance
sets, mobility sessions, cardio and body metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser()
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		sets, err := repo.ListResistanceSets(user.ID)
		if err != nil {
			return fmt.Errorf("failed to list sets: %w", err)
		}
		bold.Println("Resistance")
		if len(sets) == 0 {
			faint.Println("  (none)")
		}
		for i, s := range sets {
			if i >= logsLimit {
				faint.Printf("  … and %d more\n", len(sets)-logsLimit)
				break
			}
			fmt.Printf("  %s  %-22s set %d: %.1f×%d @RIR %d\n",
				s.Date.Format(models.DateLayout), s.Exercise, s.SetNumber,
				s.Weight, s.Reps, s.RIR)
		}

		mobility, err := repo.ListMobilityEntries(user.ID)
		if err != nil {
			return fmt.Errorf("failed to list mobility entries: %w", err)
		}
		bold.Println("Mobility")
		if len(mobility) == 0 {
			faint.Println("  (none)")
		}
		for i, m := range mobility {
			if i >= logsLimit {
				faint.Printf("  … and %d more\n", len(mobility)-logsLimit)
				break
			}
			fmt.Printf("  %s  prep=%v joint=%v animal=%v cuff=%v\n",
				m.Date.Format(models.DateLayout), m.Prep, m.JointFlow,
				m.AnimalCircuit, m.CuffFinisher)
		}

		cardio, err := repo.ListCardioEntries(user.ID)
		if err != nil {
			return fmt.Errorf("failed to list cardio entries: %w", err)
		}
		bold.Println("Cardio")
		if len(cardio) == 0 {
			faint.Println("  (none)")
		}
		for i, c := range cardio {
			if i >= logsLimit {
				faint.Printf("  … and %d more\n", len(cardio)-logsLimit)
				break
			}
			line := fmt.Sprintf("  %s  %-14s %d min", c.Date.Format(models.DateLayout), c.Type, c.DurationMin)
			if c.AvgHR > 0 {
				line += fmt.Sprintf(", avg HR %d", c.AvgHR)
			}
			fmt.Println(line)
		}

		metrics, err := repo.ListBodyMetrics(user.ID)
		if err != nil {
			return fmt.Errorf("failed to list body metrics: %w", err)
		}
		bold.Println("Body metrics")
		if len(metrics) == 0 {
			faint.Println("  (none)")
		}
		for i, m := range metrics {
			if i >= logsLimit {
				faint.Printf("  … and %d more\n", len(metrics)-logsLimit)
				break
			}
			line := fmt.Sprintf("  %s  %.1f kg", m.Date.Format(models.DateLayout), m.WeightKG)
			if m.BodyFatPct != nil {
				line += fmt.Sprintf(", %.1f%% bf", *m.BodyFatPct)
			}
			fmt.Println(line)
		}

		return nil
	},
}

func init() {
	logsCmd.Flags().IntVarP(&logsLimit, "limit", "n", 5, "entries to show per record type")
	rootCmd.AddCommand(logsCmd)
}
