package integrations

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

func GetIntegrationJobHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetIntegrationJob(ctx, request, deps.ClientFor(ctx), deps.AnalyticsService)
	}
}

func handleGetIntegrationJob(ctx context.Context, request mcp.CallToolRequest, client jupiterone.Service, asService analytics.Service) (*mcp.CallToolResult, error) {
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("get-integration-job"))

	var args GetIntegrationJobInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	job, err := client.GetIntegrationJob(ctx, args.IntegrationJobID, args.IntegrationInstanceID)
	if err != nil {
		return tools.ErrorResult("Error getting integration job", err), nil
	}
	return tools.JSONResult(job)
}
