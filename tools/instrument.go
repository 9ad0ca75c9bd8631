package tools

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentedTool wraps a Tool with a span per call, call and failure
// counters, and an execution time histogram.
type InstrumentedTool struct {
	Tool
	tracer   trace.Tracer
	calls    metric.Int64Counter
	failures metric.Int64Counter
	duration metric.Float64Histogram
}

// Instrument wraps t. Metric instruments that fail to register are replaced
// by the meter's no-op fallbacks, so Run never has to check them.
func Instrument(t Tool, tracer trace.Tracer, meter metric.Meter) *InstrumentedTool {
	calls, _ := meter.Int64Counter("tool_calls_total",
		metric.WithDescription("Total number of tool calls executed"))
	failures, _ := meter.Int64Counter("tool_calls_failed_total",
		metric.WithDescription("Total number of tool calls that failed"))
	duration, _ := meter.Float64Histogram("tool_execution_time_seconds",
		metric.WithDescription("Tool execution time"), metric.WithUnit("s"))

	return &InstrumentedTool{
		Tool:     t,
		tracer:   tracer,
		calls:    calls,
		failures: failures,
		duration: duration,
	}
}

// Unwrap returns the wrapped tool.
func (t *InstrumentedTool) Unwrap() Tool { return t.Tool }

func (t *InstrumentedTool) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	name := t.Tool.Name()
	attrs := metric.WithAttributes(attribute.String("tool_name", name))

	ctx, span := t.tracer.Start(ctx, "Tool."+name, trace.WithAttributes(
		attribute.String("tool_name", name),
		attribute.Int("input_keys", len(input)),
	))
	defer span.End()

	t.calls.Add(ctx, 1, attrs)

	start := time.Now()
	output, err := t.Tool.Run(ctx, input)
	elapsed := time.Since(start)
	t.duration.Record(ctx, elapsed.Seconds(), attrs)

	if err != nil {
		t.failures.Add(ctx, 1, attrs)
		span.SetStatus(codes.Error, "Tool execution failed")
		span.RecordError(err)
		return nil, err
	}

	span.AddEvent("Tool executed successfully", trace.WithAttributes(
		attribute.Float64("tool_execution_time_seconds", elapsed.Seconds()),
	))
	return output, nil
}
