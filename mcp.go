package kitchensage

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"kitchensage/tools"
)

type toolHandler = func(context.Context, *mcp.ServerSession, *mcp.CallToolParamsFor[map[string]any]) (*mcp.CallToolResultFor[any], error)

// NewMCPServer exposes every tool the dispatcher knows as an MCP tool.
func NewMCPServer(cfg ServerConfig, d *Dispatcher) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: cfg.Name, Version: cfg.Version}, nil)

	for _, tool := range d.Tools() {
		server.AddTool(&mcp.Tool{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: tool.InputSchema(),
		}, newToolHandler(d, tool.Name()))
		slog.Info("SETUP: Registered MCP tool", "name", tool.Name())
	}
	return server
}

// newToolHandler reports tool failures as error results so the client sees
// the message instead of a protocol error.
func newToolHandler(d *Dispatcher, name string) toolHandler {
	return func(ctx context.Context, _ *mcp.ServerSession, params *mcp.CallToolParamsFor[map[string]any]) (*mcp.CallToolResultFor[any], error) {
		output, err := d.Dispatch(ctx, tools.Call{Name: name, Input: params.Arguments})
		if err != nil {
			return errorResult(err.Error()), nil
		}

		payload, err := json.Marshal(output)
		if err != nil {
			return errorResult("failed to marshal tool result: " + err.Error()), nil
		}
		return &mcp.CallToolResultFor[any]{
			Content: []mcp.Content{&mcp.TextContent{Text: string(payload)}},
		}, nil
	}
}

func errorResult(msg string) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}
