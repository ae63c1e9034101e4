// ABOUTME: CLI command for recalling the most recent set of an exercise.
// ABOUTME: Mirrors the pre-fill behavior of the logging form.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var lastSetNumber int

var lastCmd = &cobra.Command{
	Use:   "last <exercise>",
	Short: "Show the last logged set of an exercise",
	Long: `Show the most recently logged set of an exercise, the way the
logging form pre-fills weight, reps and RIR from the previous session.

Use --set to look up a specific set number (default 1).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser()
		if err != nil {
			return err
		}

		exercise := args[0]
		result, err := repo.FetchLastSet(exercise, lastSetNumber, user.ID)
		if err != nil {
			return fmt.Errorf("failed to fetch last set: %w", err)
		}
		if result == nil {
			fmt.Printf("No logged sets of %s (set %d) yet.\n", exercise, lastSetNumber)
			return nil
		}

		color.New(color.Bold).Printf("%s (set %d)\n", exercise, lastSetNumber)
		fmt.Printf("  %.1f kg × %d @ RIR %d\n", result.Weight, result.Reps, result.RIR)
		return nil
	},
}

func init() {
	lastCmd.Flags().IntVar(&lastSetNumber, "set", 1, "set number to look up")
	rootCmd.AddCommand(lastCmd)
}
