// ABOUTME: CLI command for printing the training program template.
// ABOUTME: Works without a store; useful before any account exists.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akontos/liftlog/internal/models"
)

var programCmd = &cobra.Command{
	Use:   "program",
	Short: "Show the training program template",
	Long: `Show the built-in training program: the resistance exercises and
prescribed set/rep targets per day, plus the cardio and mobility menus.
The program repeats over a 4-week cycle.`,
	Run: func(cmd *cobra.Command, args []string) {
		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Printf("Resistance (weeks 1-%d)\n", models.ProgramWeeks)
		for _, day := range models.TrainingDays {
			fmt.Printf("  %s\n", day)
			for _, exercise := range models.ExercisesForDay(day) {
				fmt.Printf("    %-24s %s\n", exercise, faint.Sprint(models.TargetFor(day, exercise)))
			}
		}

		bold.Println("Cardio")
		for _, t := range models.CardioTypes {
			fmt.Printf("  %s\n", t)
		}

		bold.Println("Mobility circuits")
		for _, c := range models.MobilityCircuits {
			fmt.Printf("  %s\n", c)
		}
	},
}

func init() {
	rootCmd.AddCommand(programCmd)
}
