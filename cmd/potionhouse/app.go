package main

import (
	"context"
	"fmt"
	"os"

	"potionhouse/cmd/potionhouse/ui"
	"potionhouse/internal/debug"
	"potionhouse/internal/game"
	"potionhouse/internal/logging"
	"potionhouse/internal/observability"
	"potionhouse/internal/story"
)

func createApp() (ui.Model, func(), error) {
	debugMode := os.Getenv("DEBUG") == "1" || os.Getenv("DEBUG") == "true"

	debugLogger := debug.NewLogger(debugMode)

	ctx := context.Background()
	tracingConfig := observability.LoadConfigFromEnv()
	tracerProvider, err := observability.InitTracing(ctx, tracingConfig)
	if err != nil {
		debugLogger.Printf("Failed to initialize tracing: %v", err)
		tracerProvider = &observability.TracerProvider{}
	} else if tracerProvider.IsEnabled() {
		debugLogger.Println("OpenTelemetry tracing initialized and enabled")
	} else {
		debugLogger.Println("OpenTelemetry tracing disabled (set OTEL_TRACES_ENABLED=true to enable)")
	}

	sessionLogger, err := logging.NewSessionLogger()
	if err != nil {
		return ui.Model{}, nil, fmt.Errorf("failed to initialize session logger: %w", err)
	}
	debugLogger.Printf("Session %s started", sessionLogger.SessionID())

	library, err := story.NewLibrary()
	if err != nil {
		return ui.Model{}, nil, fmt.Errorf("failed to load story library: %w", err)
	}

	// Intent spans start from a context carrying the session id, so the
	// whole playthrough groups under one id in the trace backend.
	traceCtx := observability.WithSessionID(context.Background(), sessionLogger.SessionID())
	engine := game.New(library,
		game.WithRecorder(sessionLogger),
		game.WithTracer(tracerProvider.GetTracer("potionhouse/game")),
		game.WithTraceContext(traceCtx),
	)

	model := ui.NewModel(engine, debugLogger)

	cleanup := func() {
		sessionLogger.Close()
		if tracerProvider != nil {
			tracerProvider.Shutdown(context.Background())
		}
	}

	return model, cleanup, nil
}
