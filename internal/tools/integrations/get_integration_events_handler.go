package integrations

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

type eventPage struct {
	JobID    string                        `json:"jobId"`
	Returned int                           `json:"returned"`
	Events   []jupiterone.IntegrationEvent `json:"events"`
	PageInfo jupiterone.PageInfo           `json:"pageInfo"`
}

func GetIntegrationEventsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetIntegrationEvents(ctx, request, deps.ClientFor(ctx), deps.AnalyticsService)
	}
}

func handleGetIntegrationEvents(ctx context.Context, request mcp.CallToolRequest, client jupiterone.Service, asService analytics.Service) (*mcp.CallToolResult, error) {
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("get-integration-events"))

	var args GetIntegrationEventsInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	page, err := client.GetIntegrationEvents(ctx, args.JobID, args.IntegrationInstanceID, args.Cursor, args.Size)
	if err != nil {
		return tools.ErrorResult("Error getting integration events", err), nil
	}
	return tools.JSONResult(eventPage{
		JobID:    args.JobID,
		Returned: len(page.Events),
		Events:   nonNil(page.Events),
		PageInfo: page.PageInfo,
	})
}
