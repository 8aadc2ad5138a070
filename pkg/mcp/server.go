package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/blueelliott/singular-controls/pkg/singular"
)

// Server wraps the MCP server with Singular overlay control functionality
type Server struct {
	mcpServer  *server.MCPServer
	registry   *singular.Registry
	dispatcher *singular.Dispatcher
	events     *singular.EventLog
}

// NewServer creates a new MCP server for overlay control
func NewServer(registry *singular.Registry, dispatcher *singular.Dispatcher, events *singular.EventLog) *Server {
	s := &Server{
		registry:   registry,
		dispatcher: dispatcher,
		events:     events,
	}

	// Create MCP server
	s.mcpServer = server.NewMCPServer(
		"singular-controls",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register all tools
	s.registerTools()

	return s
}

// ServeStdio starts the MCP server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
