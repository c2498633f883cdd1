// ABOUTME: MCP server setup for the fitness trackers.
// ABOUTME: Wraps the MCP server around the state containers.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/fitverse/internal/account"
	"github.com/harperreed/fitverse/internal/coach"
	"github.com/harperreed/fitverse/internal/health"
	"github.com/harperreed/fitverse/internal/social"
	"github.com/harperreed/fitverse/internal/workout"
)

// Server wraps the MCP server with the state containers. Tools act as
// the signed-in user restored from the persisted session.
type Server struct {
	mcpServer *mcp.Server
	accounts  *account.Service
	workouts  *workout.Service
	health    *health.Service
	social    *social.Service
	coach     *coach.Gateway
}

// NewServer creates a new MCP server over the given containers.
func NewServer(
	accounts *account.Service,
	workouts *workout.Service,
	healthSvc *health.Service,
	socialSvc *social.Service,
	gateway *coach.Gateway,
) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fitverse",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		accounts:  accounts,
		workouts:  workouts,
		health:    healthSvc,
		social:    socialSvc,
		coach:     gateway,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
