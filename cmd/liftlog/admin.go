// ABOUTME: CLI maintenance commands.
// ABOUTME: Bulk-reassigns every logged row to a chosen account.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akontos/liftlog/internal/storage"
)

var reassignTo string

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Maintenance commands",
}

var adminReassignCmd = &cobra.Command{
	Use:   "reassign --to <username>",
	Short: "Reassign all logged data to one account",
	Long: `Reassign every logged row, across all record types and regardless of
current owner, to the named account. Useful after consolidating data
from a shared installation into a single account.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := repo.GetUser(reassignTo)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("no such user: %s", reassignTo)
			}
			return fmt.Errorf("failed to look up user: %w", err)
		}

		fmt.Printf("This reassigns ALL logged data to %s. Continue? [y/N] ", target.Username)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return nil
		}

		if err := repo.ReassignAllRecords(target.ID); err != nil {
			return fmt.Errorf("reassign failed: %w", err)
		}

		color.Green("✓ All records now belong to %s", target.Username)
		return nil
	},
}

func init() {
	adminReassignCmd.Flags().StringVar(&reassignTo, "to", "", "username to receive all records")
	adminReassignCmd.MarkFlagRequired("to")
	adminCmd.AddCommand(adminReassignCmd)
	rootCmd.AddCommand(adminCmd)
}
