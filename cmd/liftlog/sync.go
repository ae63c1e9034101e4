// ABOUTME: CLI commands for mirroring the training log to Charm Cloud.
// ABOUTME: Push, status, and wipe of the KV mirror.
package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akontos/liftlog/internal/charm"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror your training log to Charm Cloud",
	Long: `Mirror your training log to Charm Cloud so it follows you across
machines. Subcommands:

  push     Upload all local rows to the cloud mirror
  status   Show the linked account and mirrored row counts
  wipe     Discard the local mirror and rebuild from the cloud`,
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload all local data to the cloud mirror",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser()
		if err != nil {
			return err
		}

		client, err := charm.InitClient()
		if err != nil {
			return fmt.Errorf("failed to connect to Charm: %w", err)
		}
		defer client.Close()

		if client.IsReadOnly() {
			return fmt.Errorf("mirror is locked by another process")
		}

		logger := log.New(cmd.ErrOrStderr())

		// Batch the writes, sync once at the end.
		client.SetAutoSync(false)

		data, err := repo.GetAllData(user.ID)
		if err != nil {
			return fmt.Errorf("failed to load local data: %w", err)
		}

		pushed := 0
		for _, s := range data.Resistance {
			if err := client.PutResistanceSet(user.Username, s); err != nil {
				logger.Warn("skipping set", "id", s.ID, "err", err)
				continue
			}
			pushed++
		}
		for _, m := range data.Mobility {
			if err := client.PutMobilityEntry(user.Username, m); err != nil {
				logger.Warn("skipping mobility entry", "id", m.ID, "err", err)
				continue
			}
			pushed++
		}
		for _, c := range data.Cardio {
			if err := client.PutCardioEntry(user.Username, c); err != nil {
				logger.Warn("skipping cardio entry", "id", c.ID, "err", err)
				continue
			}
			pushed++
		}
		for _, b := range data.BodyMetrics {
			if err := client.PutBodyMetrics(user.Username, b); err != nil {
				logger.Warn("skipping body metrics", "id", b.ID, "err", err)
				continue
			}
			pushed++
		}
		for _, o := range data.OneRepMaxes {
			if err := client.PutOneRepMax(user.Username, o); err != nil {
				logger.Warn("skipping 1RM", "id", o.ID, "err", err)
				continue
			}
			pushed++
		}

		if err := client.Sync(); err != nil {
			return fmt.Errorf("cloud sync failed: %w", err)
		}

		color.Green("✓ Pushed %d rows to Charm Cloud", pushed)
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the mirror status",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser()
		if err != nil {
			return err
		}

		client, err := charm.InitClient()
		if err != nil {
			return fmt.Errorf("failed to connect to Charm: %w", err)
		}
		defer client.Close()

		id, err := client.ID()
		if err != nil {
			return fmt.Errorf("failed to fetch Charm account: %w", err)
		}
		fmt.Printf("Charm account: %s\n", id)
		if client.IsReadOnly() {
			color.Yellow("mirror is read-only (locked by another process)")
		}

		counts, err := client.Counts(user.Username)
		if err != nil {
			return fmt.Errorf("failed to count mirrored rows: %w", err)
		}
		for _, label := range []string{"resistance", "mobility", "cardio", "body_metrics", "one_rep_max"} {
			fmt.Printf("  %-14s %d\n", label, counts[label])
		}
		return nil
	},
}

var syncWipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Discard the local mirror and rebuild from the cloud",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.InitClient()
		if err != nil {
			return fmt.Errorf("failed to connect to Charm: %w", err)
		}
		defer client.Close()

		if err := client.Reset(); err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}
		color.Green("✓ Local mirror rebuilt from Charm Cloud")
		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncPushCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncWipeCmd)
	rootCmd.AddCommand(syncCmd)
}
