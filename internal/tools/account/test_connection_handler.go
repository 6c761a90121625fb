package account

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

type connectionStatus struct {
	Connected bool                    `json:"connected"`
	Account   *jupiterone.AccountInfo `json:"account"`
}

func TestConnectionHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleTestConnection(ctx, deps.ClientFor(ctx), deps.AnalyticsService)
	}
}

func handleTestConnection(ctx context.Context, client jupiterone.Service, asService analytics.Service) (*mcp.CallToolResult, error) {
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("test-connection"))

	status := connectionStatus{Connected: client.TestConnection(ctx)}
	if status.Connected {
		info, err := client.GetAccountInfo(ctx)
		if err != nil {
			return tools.ErrorResult("Connection test failed", err), nil
		}
		status.Account = info
	}

	slog.Debug("connection tested", "connected", status.Connected)
	return tools.JSONResult(status)
}
