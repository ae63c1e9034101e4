// ABOUTME: CLI command for recording body metrics.
// ABOUTME: Pre-fills unset fields from the most recent snapshot.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akontos/liftlog/internal/models"
)

var (
	bioHeight  float64
	bioWeight  float64
	bioSex     string
	bioAge     int
	bioBodyFat float64
	bioDate    string
)

var biometricsCmd = &cobra.Command{
	Use:   "biometrics",
	Short: "Record body metrics",
	Long: `Record a snapshot of body metrics. Fields left unset fall back to
the most recent snapshot, so a weigh-in only needs --weight.

EXAMPLES:

  liftlog biometrics --height 181 --weight 84.2 --sex male --age 34
  liftlog biometrics --weight 83.6 --bodyfat 17.2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser()
		if err != nil {
			return err
		}

		date := time.Now()
		if bioDate != "" {
			date, err = time.Parse(models.DateLayout, bioDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s (want YYYY-MM-DD)", bioDate)
			}
		}

		prev, err := repo.LatestBodyMetrics(user.ID)
		if err != nil {
			return fmt.Errorf("failed to load previous metrics: %w", err)
		}

		m := &models.BodyMetrics{
			UserID:   user.ID,
			Date:     date,
			HeightCM: bioHeight,
			WeightKG: bioWeight,
			Sex:      bioSex,
			Age:      bioAge,
		}
		if prev != nil {
			if !cmd.Flags().Changed("height") {
				m.HeightCM = prev.HeightCM
			}
			if !cmd.Flags().Changed("weight") {
				m.WeightKG = prev.WeightKG
			}
			if !cmd.Flags().Changed("sex") {
				m.Sex = prev.Sex
			}
			if !cmd.Flags().Changed("age") {
				m.Age = prev.Age
			}
			if !cmd.Flags().Changed("bodyfat") {
				m.BodyFatPct = prev.BodyFatPct
			}
		}
		if cmd.Flags().Changed("bodyfat") {
			m = m.WithBodyFat(bioBodyFat)
		}

		if err := repo.InsertBodyMetrics(m); err != nil {
			return fmt.Errorf("failed to save body metrics: %w", err)
		}

		color.Green("✓ Recorded body metrics for %s", date.Format(models.DateLayout))
		fmt.Printf("  %.1f cm, %.1f kg, %s, %d y\n", m.HeightCM, m.WeightKG, m.Sex, m.Age)
		if m.BodyFatPct != nil {
			fmt.Printf("  body fat %.1f%%\n", *m.BodyFatPct)
		}
		return nil
	},
}

func init() {
	biometricsCmd.Flags().Float64Var(&bioHeight, "height", 0, "height in cm")
	biometricsCmd.Flags().Float64Var(&bioWeight, "weight", 0, "weight in kg")
	biometricsCmd.Flags().StringVar(&bioSex, "sex", "", "sex")
	biometricsCmd.Flags().IntVar(&bioAge, "age", 0, "age in years")
	biometricsCmd.Flags().Float64Var(&bioBodyFat, "bodyfat", 0, "body fat percentage")
	biometricsCmd.Flags().StringVar(&bioDate, "date", "", "date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(biometricsCmd)
}
