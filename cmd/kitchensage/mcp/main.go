package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joeshaw/envdecode"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"kitchensage"
	"kitchensage/tools"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// stdout carries the MCP protocol
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	var catalogConfig kitchensage.CatalogConfig
	if err := envdecode.Decode(&catalogConfig); err != nil {
		log.Fatalf("SETUP: Failed to decode: %s", err)
	}

	var serverConfig kitchensage.ServerConfig
	if err := envdecode.Decode(&serverConfig); err != nil {
		log.Fatalf("SETUP: Failed to decode: %s", err)
	}

	state, err := kitchensage.NewRecipeState(ctx, catalogConfig)
	if err != nil {
		slog.Error("SETUP: Failed to create recipe state", "error", err)
		os.Exit(1)
	}

	catalog, err := tools.LoadCatalog(ctx, state)
	if err != nil {
		slog.Error("SETUP: Failed to load recipe catalog", "error", err)
		os.Exit(1)
	}

	tracerProvider, meterProvider, otelShutdown, err := kitchensage.InitOtel(ctx)
	if err != nil {
		slog.Error("SETUP: Failed to initialize OpenTelemetry", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			slog.Error("SETUP: Failed to shutdown OpenTelemetry", "error", err)
		}
	}()

	logger, cleanup, err := kitchensage.OpenToolCallLog(serverConfig)
	if err != nil {
		slog.Error("SETUP: Failed to create tool call logger", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := cleanup(); err != nil {
			slog.Error("SETUP: Failed to flush tool call log", "error", err)
		}
	}()

	app, err := kitchensage.NewApp(catalog, serverConfig, logger, http.DefaultClient,
		tools.WithInstrumentation(
			tracerProvider.Tracer(kitchensage.TracerNameMCP),
			meterProvider.Meter(kitchensage.TracerNameMCP),
		),
	)
	if err != nil {
		slog.Error("SETUP: Failed to wire tools", "error", err)
		os.Exit(1)
	}

	server := kitchensage.NewMCPServer(serverConfig, app.Dispatcher)
	slog.Info("SERVER: Serving MCP over stdio", "name", serverConfig.Name, "version", serverConfig.Version)

	if err := server.Run(ctx, mcp.NewStdioTransport()); err != nil && ctx.Err() == nil {
		slog.Error("SERVER: Stopped with error", "error", err)
		return
	}
	slog.Info("SERVER: Stopped")
}
