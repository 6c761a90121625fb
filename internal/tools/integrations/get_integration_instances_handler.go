package integrations

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

type instancePage struct {
	Returned  int                 `json:"returned"`
	Instances []map[string]any    `json:"instances"`
	PageInfo  jupiterone.PageInfo `json:"pageInfo"`
}

func GetIntegrationInstancesHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetIntegrationInstances(ctx, request, deps.ClientFor(ctx), deps.AnalyticsService)
	}
}

func handleGetIntegrationInstances(ctx context.Context, request mcp.CallToolRequest, client jupiterone.Service, asService analytics.Service) (*mcp.CallToolResult, error) {
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("get-integration-instances"))

	var args GetIntegrationInstancesInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	page, err := client.GetIntegrationInstances(ctx, jupiterone.IntegrationInstanceFilters{
		DefinitionID: args.DefinitionID,
		Cursor:       args.Cursor,
		Limit:        args.Limit,
	})
	if err != nil {
		return tools.ErrorResult("Error getting integration instances", err), nil
	}
	return tools.JSONResult(instancePage{
		Returned:  len(page.Instances),
		Instances: nonNil(page.Instances),
		PageInfo:  page.PageInfo,
	})
}
