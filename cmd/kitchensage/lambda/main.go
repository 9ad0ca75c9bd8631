package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joeshaw/envdecode"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"kitchensage"
	"kitchensage/tools"
)

type Params struct {
	Tool  string         `json:"tool"`
	Input map[string]any `json:"input"`
}

type Results struct {
	Output map[string]any `json:"output"`
}

func main() {
	var catalogConfig kitchensage.CatalogConfig
	if err := envdecode.Decode(&catalogConfig); err != nil {
		log.Fatalf("Failed to decode: %s", err)
	}
	if !catalogConfig.UseS3() {
		log.Fatalf("SETUP: CATALOG_S3_BUCKET must be set")
	}

	var serverConfig kitchensage.ServerConfig
	if err := envdecode.Decode(&serverConfig); err != nil {
		log.Fatalf("Failed to decode: %s", err)
	}

	// Warm invocations reuse the catalog and the meal plans created so far.
	setup := &lazySetup{init: func(ctx context.Context) (*kitchensage.App, trace.Tracer, error) {
		state, err := kitchensage.NewRecipeState(ctx, catalogConfig)
		if err != nil {
			return nil, nil, err
		}
		catalog, err := tools.LoadCatalog(ctx, state)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("SETUP: S3 recipe catalog loaded", "recipes_count", catalog.Len())

		tracerProvider, meterProvider, _, err := kitchensage.InitOtel(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
		}
		tracer := tracerProvider.Tracer(kitchensage.TracerNameLambda)

		app, err := kitchensage.NewApp(catalog, serverConfig, kitchensage.NewStdoutToolCallLogger(), http.DefaultClient,
			tools.WithInstrumentation(tracer, meterProvider.Meter(kitchensage.TracerNameLambda)),
		)
		if err != nil {
			return nil, nil, err
		}
		return app, tracer, nil
	}}

	fn := func(ctx context.Context, params Params) (Results, error) {
		app, tracer, err := setup.get(ctx)
		if err != nil {
			slog.Error("SETUP: Failed to initialize", "error", err)
			return Results{}, err
		}

		ctx, span := tracer.Start(ctx, kitchensage.TracerNameLambda, trace.WithAttributes(
			attribute.String("tool_name", params.Tool),
		))
		defer span.End()

		output, err := app.Dispatcher.Dispatch(ctx, tools.Call{Name: params.Tool, Input: params.Input})
		if err != nil {
			span.SetStatus(codes.Error, "Tool call failed")
			span.RecordError(err)
			slog.Error("RESULT: Error handling tool call", "error", err)
			return Results{}, err
		}

		return Results{Output: output}, nil
	}

	lambda.Start(fn)
}
