// Package mcp exposes the tiling engine to MCP clients over stdio. Window
// commands are forwarded to the running daemon through its IPC socket;
// window enumeration uses a direct backend connection.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/MisterMaroki/swipey-sub000/internal/ipc"
	"github.com/MisterMaroki/swipey-sub000/internal/platform"
)

const (
	ServerName    = "swipey"
	ServerVersion = "0.1.0"
)

// Server is the MCP server for window tiling control.
type Server struct {
	mcpServer *mcpsdk.Server
	client    *ipc.Client
	backend   platform.Backend
}

// NewServer creates an MCP server. The backend may be nil, in which case
// list_windows reports an error instead of window data.
func NewServer(backend platform.Backend) *Server {
	s := &Server{
		client:  ipc.NewClient(),
		backend: backend,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "tile_window",
		Description: "Tile the focused window to a named position (e.g. left-half, top-right-quarter, maximize, restore)",
	}, s.handleTileWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List manageable windows on the current desktop with their frames",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_status",
		Description: "Get the daemon status: active sessions, tiled window count, uptime",
	}, s.handleGetStatus)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "start_grid_session",
		Description: "Capture the current window layout and start propagating resizes across shared edges",
	}, s.handleStartGrid)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "stop_grid_session",
		Description: "Stop the active grid resize session",
	}, s.handleStopGrid)
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}
