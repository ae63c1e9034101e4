// ABOUTME: CLI command for logging mobility circuit completion.
// ABOUTME: Records which of the four circuits were done on a given day.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akontos/liftlog/internal/models"
)

var (
	mobPrep   bool
	mobJoint  bool
	mobAnimal bool
	mobCuff   bool
	mobDate   string
)

var mobilityCmd = &cobra.Command{
	Use:   "mobility",
	Short: "Log a mobility session",
	Long: `Log which mobility circuits were completed today.

CIRCUITS:

  --prep     Session preparation
  --joint    Joint flow
  --animal   Animal-walk circuit
  --cuff     Rotator-cuff finisher

EXAMPLES:

  liftlog mobility --prep --joint
  liftlog mobility --prep --joint --animal --cuff --date 2024-03-14`,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser()
		if err != nil {
			return err
		}

		date := time.Now()
		if mobDate != "" {
			date, err = time.Parse(models.DateLayout, mobDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s (want YYYY-MM-DD)", mobDate)
			}
		}

		entry := &models.MobilityEntry{
			UserID:        user.ID,
			Date:          date,
			Prep:          mobPrep,
			JointFlow:     mobJoint,
			AnimalCircuit: mobAnimal,
			CuffFinisher:  mobCuff,
		}
		if err := repo.InsertMobilityEntry(entry); err != nil {
			return fmt.Errorf("failed to save mobility entry: %w", err)
		}

		color.Green("✓ Logged mobility session for %s", date.Format(models.DateLayout))
		for _, c := range []struct {
			name string
			done bool
		}{
			{"Session prep", mobPrep},
			{"Joint flow", mobJoint},
			{"Animal circuit", mobAnimal},
			{"Cuff finisher", mobCuff},
		} {
			mark := "✗"
			if c.done {
				mark = "✓"
			}
			fmt.Printf("  %s %s\n", mark, c.name)
		}
		return nil
	},
}

func init() {
	mobilityCmd.Flags().BoolVar(&mobPrep, "prep", false, "session preparation done")
	mobilityCmd.Flags().BoolVar(&mobJoint, "joint", false, "joint flow done")
	mobilityCmd.Flags().BoolVar(&mobAnimal, "animal", false, "animal circuit done")
	mobilityCmd.Flags().BoolVar(&mobCuff, "cuff", false, "cuff finisher done")
	mobilityCmd.Flags().StringVar(&mobDate, "date", "", "date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(mobilityCmd)
}
