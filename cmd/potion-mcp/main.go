// potion-mcp serves the game engine over MCP on stdio, so an external
// client can play through the four days tool call by tool call.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"potionhouse/internal/game"
	"potionhouse/internal/logging"
	"potionhouse/internal/mcp"
	"potionhouse/internal/story"
)

func main() {
	log.SetPrefix("[MCP] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	library, err := story.NewLibrary()
	if err != nil {
		log.Fatalf("failed to load story library: %v", err)
	}

	sessionLogger, err := logging.NewSessionLogger()
	if err != nil {
		log.Fatalf("failed to initialize session logger: %v", err)
	}
	defer sessionLogger.Close()

	engine := game.New(library, game.WithRecorder(sessionLogger))

	server, err := mcp.New(engine)
	if err != nil {
		log.Fatalf("failed to create MCP server: %v", err)
	}

	if err := server.Serve(ctx); err != nil {
		log.Fatalf("failed to serve MCP: %v", err)
	}
}
