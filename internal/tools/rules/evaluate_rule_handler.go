package rules

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

type evaluationTriggered struct {
	RuleID   string `json:"ruleId"`
	ID       string `json:"id"`
	TypeName string `json:"__typename"`
}

func EvaluateRuleHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleEvaluateRule(ctx, request, deps.ClientFor(ctx), deps.AnalyticsService)
	}
}

func handleEvaluateRule(ctx context.Context, request mcp.CallToolRequest, client jupiterone.Service, asService analytics.Service) (*mcp.CallToolResult, error) {
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("evaluate-rule"))

	var args RuleIDInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	trigger, err := client.EvaluateRuleInstance(ctx, args.RuleID)
	if err != nil {
		return tools.ErrorResult("Error evaluating rule", err), nil
	}

	return tools.JSONResult(evaluationTriggered{
		RuleID:   args.RuleID,
		ID:       trigger.ID,
		TypeName: trigger.TypeName,
	})
}
