package rules

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

func GetRuleEvaluationDetailsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetRuleEvaluationDetails(ctx, request, deps.ClientFor(ctx), deps.AnalyticsService)
	}
}

func handleGetRuleEvaluationDetails(ctx context.Context, request mcp.CallToolRequest, client jupiterone.Service, asService analytics.Service) (*mcp.CallToolResult, error) {
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("get-rule-evaluation-details"))

	var args GetRuleEvaluationDetailsInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	details, err := client.GetRuleEvaluationDetails(ctx, args.RuleID, args.Timestamp)
	if err != nil {
		return tools.ErrorResult("Error getting rule evaluation details", err), nil
	}
	return tools.JSONResult(details)
}
