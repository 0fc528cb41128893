// Package mcp exposes the game engine over the Model Context Protocol, so
// external clients can drive a playthrough tool call by tool call.
package mcp

import (
	"context"
	"fmt"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"potionhouse/internal/game"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "Potion House MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "1.0.0"
)

// Server hosts the MCP server around a single engine instance. The engine is
// not safe for concurrent use, so every tool handler takes the mutex.
type Server struct {
	mcpServer *mcp.Server
	engine    *game.Engine
	mu        sync.Mutex
}

// New creates a configured MCP server wrapping the given engine.
func New(engine *game.Engine) (*Server, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine is required")
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	server := &Server{mcpServer: mcpServer, engine: engine}
	registerGameTools(mcpServer, server)

	return server, nil
}

// Serve runs the MCP server on stdio until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	if err := s.mcpServer.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
