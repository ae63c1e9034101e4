// ABOUTME: CLI command for one-rep-max records.
// ABOUTME: Upserts per-day values and shows the latest or full history.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akontos/liftlog/internal/models"
)

var ormDate string

var ormCmd = &cobra.Command{
	Use:   "1rm",
	Short: "Track one-rep-max records",
}

var ormRecordCmd = &cobra.Command{
	Use:   "record <exercise> <weight>",
	Short: "Record a one-rep max",
	Long: `Record a one-rep max for an exercise. Recording twice on the same
day overwrites the earlier value instead of adding a second row.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser()
		if err != nil {
			return err
		}

		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil || value <= 0 {
			return fmt.Errorf("invalid weight: %s", args[1])
		}

		date := time.Now()
		if ormDate != "" {
			date, err = time.Parse(models.DateLayout, ormDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s (want YYYY-MM-DD)", ormDate)
			}
		}

		if err := repo.UpsertOneRepMax(user.ID, args[0], value, date); err != nil {
			return fmt.Errorf("failed to record 1RM: %w", err)
		}

		color.Green("✓ %s 1RM: %.1f kg (%s)", args[0], value, date.Format(models.DateLayout))
		return nil
	},
}

var ormLatestCmd = &cobra.Command{
	Use:   "latest [exercise]",
	Short: "Show the latest one-rep max",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser()
		if err != nil {
			return err
		}

		exercises := models.AllExercises()
		if len(args) == 1 {
			exercises = args
		}

		found := false
		for _, exercise := range exercises {
			orm, err := repo.LatestOneRepMax(user.ID, exercise)
			if err != nil {
				return fmt.Errorf("failed to fetch latest 1RM: %w", err)
			}
			if orm == nil {
				continue
			}
			found = true
			fmt.Printf("%-22s %.1f kg  %s\n", exercise, orm.Value,
				color.New(color.Faint).Sprint(orm.Date.Format(models.DateLayout)))
		}
		if !found {
			fmt.Println("No 1RM records yet.")
		}
		return nil
	},
}

var ormHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show all one-rep-max records",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser()
		if err != nil {
			return err
		}

		orms, err := repo.ListOneRepMaxes(user.ID)
		if err != nil {
			return fmt.Errorf("failed to list 1RMs: %w", err)
		}
		if len(orms) == 0 {
			fmt.Println("No 1RM records yet.")
			return nil
		}

		for _, orm := range orms {
			fmt.Printf("%s  %-22s %.1f kg\n",
				orm.Date.Format(models.DateLayout), orm.Exercise, orm.Value)
		}
		return nil
	},
}

func init() {
	ormRecordCmd.Flags().StringVar(&ormDate, "date", "", "date (YYYY-MM-DD, default today)")
	ormCmd.AddCommand(ormRecordCmd)
	ormCmd.AddCommand(ormLatestCmd)
	ormCmd.AddCommand(ormHistoryCmd)
	rootCmd.AddCommand(ormCmd)
}
