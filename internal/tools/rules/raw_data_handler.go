package rules

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

type rawDataURL struct {
	RawDataKey string `json:"rawDataKey"`
	URL        string `json:"url"`
}

func GetRawDataDownloadURLHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetRawDataDownloadURL(ctx, request, deps.ClientFor(ctx), deps.AnalyticsService)
	}
}

func handleGetRawDataDownloadURL(ctx context.Context, request mcp.CallToolRequest, client jupiterone.Service, asService analytics.Service) (*mcp.CallToolResult, error) {
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("get-raw-data-download-url"))

	var args RawDataInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	url, err := client.GetRawDataDownloadURL(ctx, args.RawDataKey)
	if err != nil {
		return tools.ErrorResult("Error getting raw data download URL", err), nil
	}
	return tools.JSONResult(rawDataURL{RawDataKey: args.RawDataKey, URL: url})
}

func GetRuleEvaluationQueryResultsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetRuleEvaluationQueryResults(ctx, request, deps.ClientFor(ctx), deps.AnalyticsService)
	}
}

func handleGetRuleEvaluationQueryResults(ctx context.Context, request mcp.CallToolRequest, client jupiterone.Service, asService analytics.Service) (*mcp.CallToolResult, error) {
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("get-rule-evaluation-query-results"))

	var args RawDataInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	results, err := client.GetRawDataResults(ctx, args.RawDataKey)
	if err != nil {
		return tools.ErrorResult("Error getting rule evaluation query results", err), nil
	}
	return tools.JSONResult(results)
}
