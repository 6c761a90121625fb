package rules

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

type deletedRule struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

func DeleteRuleHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleDeleteRule(ctx, request, deps.ClientFor(ctx), deps.AnalyticsService)
	}
}

func handleDeleteRule(ctx context.Context, request mcp.CallToolRequest, client jupiterone.Service, asService analytics.Service) (*mcp.CallToolResult, error) {
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("delete-rule"))

	var args RuleIDInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := client.DeleteRuleInstance(ctx, args.RuleID)
	if err != nil {
		return tools.ErrorResult("Error deleting rule", err), nil
	}

	slog.Info("Deleted rule", "id", id)
	return tools.JSONResult(deletedRule{Success: true, ID: id})
}
