// ABOUTME: CLI commands for account management.
// ABOUTME: Covers signup, login (default account), password change, and listing.
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

var passwordFlag string

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Create a new account",
	Long: `Create a new account. The password is read from --password or, when
the flag is omitted, from standard input.

Usernames are unique; creating a duplicate fails without touching the
existing account.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]

		password, err := readPassword()
		if err != nil {
			return err
		}

		id, err := repo.CreateUser(username, password)
		if err != nil {
			if errors.Is(err, storage.ErrUsernameTaken) {
				return fmt.Errorf("username %q is already taken", username)
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		color.Green("✓ Created account %s", username)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("id %d", id))
		return nil
	},
}

var userLoginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Verify a password and make the account the default",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]

		u, err := repo.GetUser(username)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("no such user %q", username)
			}
			return err
		}

		password, err := readPassword()
		if err != nil {
			return err
		}

		if !storage.VerifyPassword(u.PasswordHash, password) {
			return fmt.Errorf("wrong password for %q", username)
		}

		cfg.Username = username
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.Green("✓ Logged in as %s", username)
		return nil
	},
}

var userPasswdCmd = &cobra.Command{
	Use:   "passwd <username>",
	Short: "Change an account's password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]

		u, err := repo.GetUser(username)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("no such user %q", username)
			}
			return err
		}

		password, err := readPassword()
		if err != nil {
			return err
		}

		if err := repo.UpdatePassword(u.ID, password); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}

		color.Green("✓ Password updated for %s", username)
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		users, err := repo.ListUsers()
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		if len(users) == 0 {
			fmt.Println("No accounts yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, u := range users {
			marker := " "
			if currentUser != nil && u.ID == currentUser.ID {
				marker = "*"
			}
			fmt.Printf("%s %s %s\n", marker, faint.Sprintf("%3d", u.ID), u.Username)
		}
		return nil
	},
}

// readPassword returns the --password flag value or reads a line from
// stdin. Empty passwords are rejected.
func readPassword() (string, error) {
	if passwordFlag != "" {
		return passwordFlag, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	return password, nil
}

func init() {
	userCreateCmd.Flags().StringVar(&passwordFlag, "password", "", "password (read from stdin when omitted)")
	userLoginCmd.Flags().StringVar(&passwordFlag, "password", "", "password (read from stdin when omitted)")
	userPasswdCmd.Flags().StringVar(&passwordFlag, "password", "", "new password (read from stdin when omitted)")

	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userLoginCmd)
	userCmd.AddCommand(userPasswdCmd)
	userCmd.AddCommand(userListCmd)
	rootCmd.AddCommand(userCmd)
}
