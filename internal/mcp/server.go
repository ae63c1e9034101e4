// ABOUTME: MCP server setup for the training log.
// ABOUTME: Binds the store and the authenticated account to MCP tools/resources.
package mcp

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/akontos/liftlog/internal/storage"
)

// Server wraps the MCP server with storage access. All tools operate on
// behalf of a single account resolved before the server starts; the
// protocol carries no identity of its own.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	userID    int64
	logger    *log.Logger
}

// NewServer creates a new MCP server for the given account.
func NewServer(repo storage.Repository, userID int64, logger *log.Logger) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "liftlog",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		userID:    userID,
		logger:    logger,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("starting MCP server", "user_id", s.userID)
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
