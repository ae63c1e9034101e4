// ABOUTME: CLI command that runs the MCP server over stdio.
// ABOUTME: Exposes logging tools and program resources to AI assistants.
package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/akontos/liftlog/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server (stdio)",
	Long: `Run a Model Context Protocol server over stdio so AI assistants can
log sets, cardio, mobility and body metrics, record 1RMs, and read
your program and training summary.

All tools act as the logged-in account (or the one given via --user).

Add to Claude Desktop config:

  {
    "mcpServers": {
      "liftlog": {
        "command": "liftlog",
        "args": ["mcp"]
      }
    }
  }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser()
		if err != nil {
			return err
		}

		logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
			ReportTimestamp: true,
			Prefix:          "liftlog-mcp",
		})

		server, err := mcp.NewServer(repo, user.ID, logger)
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
