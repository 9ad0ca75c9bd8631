package kitchensage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"kitchensage/tools"
)

// Dispatcher runs tool calls by name and records each one.
type Dispatcher struct {
	tools  ToolProvider
	logger ToolCallLogger
}

func NewDispatcher(tp ToolProvider, logger ToolCallLogger) *Dispatcher {
	if logger == nil {
		logger = NewNoOpToolCallLogger()
	}
	return &Dispatcher{tools: tp, logger: logger}
}

// Tools lists the tools the dispatcher can run.
func (d *Dispatcher) Tools() []tools.Tool {
	return d.tools.GetTools()
}

// Dispatch runs call. Unknown tools and tool failures are returned as errors;
// both are still logged.
func (d *Dispatcher) Dispatch(ctx context.Context, call tools.Call) (map[string]any, error) {
	slog.Info("DISPATCH: Handling tool call", "name", call.Name, "tool_use_id", call.ToolUseID)

	input := call.Input
	if input == nil {
		input = map[string]any{}
	}
	entry := ToolCallLog{Name: call.Name, Timestamp: time.Now().UTC(), Input: input}

	tool, err := d.tools.GetTool(call.Name)
	if err != nil {
		entry.Error = err.Error()
		d.log(entry)
		return nil, fmt.Errorf("failed to get tool %q: %w", call.Name, err)
	}

	start := time.Now()
	output, err := tool.Run(ctx, input)
	entry.DurationMS = time.Since(start).Milliseconds()

	if err != nil {
		entry.Error = err.Error()
		d.log(entry)
		slog.Error("DISPATCH: Tool failed", "name", call.Name, "error", err)
		return nil, fmt.Errorf("failed to run tool %q: %w", call.Name, err)
	}

	entry.Output = output
	d.log(entry)
	slog.Info("DISPATCH: Tool executed", "name", call.Name, "duration_ms", entry.DurationMS)
	return output, nil
}

func (d *Dispatcher) log(entry ToolCallLog) {
	if err := d.logger.LogToolCall(entry); err != nil {
		slog.Error("DISPATCH: Failed to log tool call", "name", entry.Name, "error", err)
	}
}
