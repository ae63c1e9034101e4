// ABOUTME: CLI command for logging resistance sets.
// ABOUTME: Parses WEIGHTxREPS[@RIR] specs and batch-saves a whole session.
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

var (
	setWeek  int
	setDay   string
	setDate  string
	setStart int
)

var setCmd = &cobra.Command{
	Use:   "set <exercise> <weight>x<reps>[@rir] [more sets...]",
	Short: "Log resistance sets",
	Long: `Log one or more sets of a resistance exercise.

Each set is written as WEIGHTxREPS or WEIGHTxREPS@RIR, for example
100x5@2 (100 kg for 5 reps with 2 reps in reserve). Sets are numbered
in the order given, starting at --start-set.

When --day names a program day that schedules the exercise, the
prescribed target is stored alongside the set.

EXAMPLES:

  liftlog set Back-squat 100x5@2
  liftlog set "Bench Press" 80x6 80x6 75x8 --week 2 --day Tuesday
  liftlog set Deadlift 170x3@1 --date 2024-03-14`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser()
		if err != nil {
			return err
		}

		exercise := args[0]
		date := time.Now()
		if setDate != "" {
			date, err = time.Parse(models.DateLayout, setDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s (want YYYY-MM-DD)", setDate)
			}
		}

		target := models.TargetFor(setDay, exercise)

		var sets []*models.ResistanceSet
		for i, spec := range args[1:] {
			weight, reps, rir, err := parseSetSpec(spec)
			if err != nil {
				return err
			}
			s := models.NewResistanceSet(user.ID, setWeek, setDay, exercise,
				setStart+i, target, weight, reps, rir).WithDate(date)
			sets = append(sets, s)
		}

		if err := repo.InsertResistanceSets(sets); err != nil {
			return fmt.Errorf("failed to save sets: %w", err)
		}

		color.Green("✓ Logged %d set(s) of %s", len(sets), exercise)
		faint := color.New(color.Faint)
		for _, s := range sets {
			fmt.Printf("  set %d: %.1f kg × %d @ RIR %d %s\n",
				s.SetNumber, s.Weight, s.Reps, s.RIR, faint.Sprint(s.Target))
		}
		return nil
	},
}

// parseSetSpec parses WEIGHTxREPS[@RIR], e.g. "100x5@2".
func parseSetSpec(spec string) (weight float64, reps, rir int, err error) {
	rir = 3 // original tracker's slider default

	body, rirPart, hasRIR := strings.Cut(spec, "@")
	weightPart, repsPart, ok := strings.Cut(body, "x")
	if !ok {
		return 0, 0, 0, fmt.Errorf("invalid set %q (want WEIGHTxREPS[@RIR], e.g. 100x5@2)", spec)
	}

	// Zero is a valid weight (bodyweight dips, pull-ups); negative is not.
	weight, err = strconv.ParseFloat(weightPart, 64)
	if err != nil || weight < 0 {
		return 0, 0, 0, fmt.Errorf("invalid weight in set %q", spec)
	}

	reps, err = strconv.Atoi(repsPart)
	if err != nil || reps < 1 {
		return 0, 0, 0, fmt.Errorf("invalid reps in set %q", spec)
	}

	if hasRIR {
		rir, err = strconv.Atoi(rirPart)
		if err != nil || rir < 0 {
			return 0, 0, 0, fmt.Errorf("invalid RIR in set %q", spec)
		}
	}

	return weight, reps, rir, nil
}

func init() {
	setCmd.Flags().IntVarP(&setWeek, "week", "w", 1, "program week (1-4)")
	setCmd.Flags().StringVarP(&setDay, "day", "d", "", "program day (Monday, Tuesday, Thursday AM, Friday)")
	setCmd.Flags().StringVar(&setDate, "date", "", "date (YYYY-MM-DD, default today)")
	setCmd.Flags().IntVar(&setStart, "start-set", 1, "set number of the first spec")
	rootCmd.AddCommand(setCmd)
}
