// ABOUTME: Root Cobra command for liftlog CLI.
// ABOUTME: Opens the store and resolves the active account via PersistentPre/PostRunE.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akontos/liftlog/internal/config"
	"github.com/akontos/liftlog/internal/models"
	"github.com/akontos/liftlog/internal/storage"
)

var (
	cfg         *config.Config
	repo        *storage.DB
	currentUser *models.User

	flagUser string
)

var rootCmd = &cobra.Command{
	Use:   "liftlog",
	Short: "4-week strength & conditioning tracker",
	Long: `Liftlog is a CLI tracker for a 4-week strength & conditioning program.

WHAT IT TRACKS:

  Resistance     one row per set: exercise, weight, reps, RIR, program target
  Mobility       which of the four circuits you completed each day
  Cardio         HIIT and Zone-2 sessions with duration and average HR
  Biometrics     dated snapshots of height, weight, age, body fat
  1RM            one-rep-max history per exercise

QUICK START:

  $ liftlog user create alice               # Create an account
  $ liftlog set Back-squat 100x5@2          # Log one set (weight x reps @ RIR)
  $ liftlog set Bench\ Press 80x6 80x6 75x8 # Log a whole session
  $ liftlog last Back-squat                 # Recall last session's numbers
  $ liftlog 1rm record Deadlift 180         # Record a tested max
  $ liftlog progress Back-squat             # Per-day max weight history
  $ liftlog logs                            # Recent entries, newest first

ACCOUNTS:

  Every record belongs to an account. Pass --user or set a default with
  'liftlog user login <name>'. Rows logged before accounts existed are
  adopted by the first-created account on startup.

MCP INTEGRATION:

  Run 'liftlog mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  Records live in a SQLite database at ~/.local/share/liftlog/liftlog.db.
  'liftlog sync' mirrors them to Charm Cloud.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch the store
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "program" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}

		return resolveUser()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// resolveUser loads the account named by --user or the config default.
// Leaves currentUser nil when neither names an account; commands that
// need an identity call requireUser.
func resolveUser() error {
	username := flagUser
	if username == "" {
		username = cfg.Username
	}
	if username == "" {
		return nil
	}

	u, err := repo.GetUser(username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no such user %q (create one with 'liftlog user create %s')", username, username)
		}
		return err
	}
	currentUser = u
	return nil
}

// requireUser returns the active account or an actionable error.
func requireUser() (*models.User, error) {
	if currentUser == nil {
		return nil, fmt.Errorf("no account selected: pass --user or run 'liftlog user login <name>'")
	}
	return currentUser, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "account to act as (overrides config default)")
}
