package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joeshaw/envdecode"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"kitchensage"
	"kitchensage/tools"
)

// Usage: cli [tool] [json-input]
//
//	cli search_recipes '{"category": "breakfast", "limit": 5}'
func main() {
	ctx := context.Background()

	var catalogConfig kitchensage.CatalogConfig
	if err := envdecode.Decode(&catalogConfig); err != nil {
		log.Fatalf("SETUP: Failed to decode: %s", err)
	}

	var serverConfig kitchensage.ServerConfig
	if err := envdecode.Decode(&serverConfig); err != nil {
		log.Fatalf("SETUP: Failed to decode: %s", err)
	}

	call := tools.Call{Name: argOr(1, "get_categories")}
	if err := json.Unmarshal([]byte(argOr(2, "{}")), &call.Input); err != nil {
		slog.Error("SETUP: Tool input must be a JSON object", "error", err)
		os.Exit(2)
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

	tracerProvider, meterProvider, otelShutdown, err := kitchensage.InitOtel(ctx)
	if err != nil {
		slog.Error("SETUP: Failed to initialize OpenTelemetry", "error", err)
		return
	}
	defer func() {
		if err := otelShutdown(ctx); err != nil {
			slog.Error("SETUP: Failed to shutdown OpenTelemetry", "error", err)
		}
	}()

	tracer := tracerProvider.Tracer(kitchensage.TracerNameCLI)
	meter := meterProvider.Meter(kitchensage.TracerNameCLI)

	app, err := kitchensage.NewApp(catalog, serverConfig, logger, http.DefaultClient, tools.WithInstrumentation(tracer, meter))
	if err != nil {
		slog.Error("SETUP: Failed to wire tools", "error", err)
		return
	}

	ctx, span := tracer.Start(ctx, kitchensage.TracerNameCLI, trace.WithAttributes(
		attribute.String("tool_name", call.Name),
		attribute.Int("catalog.recipes", catalog.Len()),
	))
	defer span.End()

	output, err := app.Dispatcher.Dispatch(ctx, call)
	if err != nil {
		slog.Error("FAILURE: Error handling tool call", "error", err)
		return
	}

	kitchensage.DumpCall(os.Stdout, call, output)

	if serverConfig.SlackWebhookURL == "" {
		return
	}
	payload, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		slog.Error("Failed to marshal result", "error", err)
		return
	}
	message := fmt.Sprintf("*%s*\n```%s```", call.Name, payload)
	if err := postToSlack(ctx, serverConfig, message); err != nil {
		slog.Error("Failed to post result to Slack", "error", err)
	}
}

func argOr(i int, def string) string {
	if len(os.Args) > i {
		return os.Args[i]
	}
	return def
}
