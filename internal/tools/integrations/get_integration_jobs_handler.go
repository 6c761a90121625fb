package integrations

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

type jobPage struct {
	Returned int                 `json:"returned"`
	Jobs     []map[string]any    `json:"jobs"`
	PageInfo jupiterone.PageInfo `json:"pageInfo"`
}

func GetIntegrationJobsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetIntegrationJobs(ctx, request, deps.ClientFor(ctx), deps.AnalyticsService)
	}
}

func handleGetIntegrationJobs(ctx context.Context, request mcp.CallToolRequest, client jupiterone.Service, asService analytics.Service) (*mcp.CallToolResult, error) {
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("get-integration-jobs"))

	var args GetIntegrationJobsInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	page, err := client.GetIntegrationJobs(ctx, jupiterone.IntegrationJobFilters{
		Status:                  args.Status,
		IntegrationInstanceID:   args.IntegrationInstanceID,
		IntegrationDefinitionID: args.IntegrationDefinitionID,
		IntegrationInstanceIDs:  args.IntegrationInstanceIDs,
		Cursor:                  args.Cursor,
		Size:                    args.Size,
	})
	if err != nil {
		return tools.ErrorResult("Error getting integration jobs", err), nil
	}
	return tools.JSONResult(jobPage{
		Returned: len(page.Jobs),
		Jobs:     nonNil(page.Jobs),
		PageInfo: page.PageInfo,
	})
}
