package integrations

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

type definitionPage struct {
	Returned    int                 `json:"returned"`
	Definitions []map[string]any    `json:"definitions"`
	PageInfo    jupiterone.PageInfo `json:"pageInfo"`
}

func GetIntegrationDefinitionsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetIntegrationDefinitions(ctx, request, deps.ClientFor(ctx), deps.AnalyticsService)
	}
}

func handleGetIntegrationDefinitions(ctx context.Context, request mcp.CallToolRequest, client jupiterone.Service, asService analytics.Service) (*mcp.CallToolResult, error) {
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("get-integration-definitions"))

	var args GetIntegrationDefinitionsInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	page, err := client.GetIntegrationDefinitions(ctx, args.Cursor, args.IncludeConfig)
	if err != nil {
		return tools.ErrorResult("Error getting integration definitions", err), nil
	}
	return tools.JSONResult(definitionPage{
		Returned:    len(page.Definitions),
		Definitions: nonNil(page.Definitions),
		PageInfo:    page.PageInfo,
	})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
