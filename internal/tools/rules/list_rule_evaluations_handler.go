package rules

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

type evaluationPage struct {
	RuleID      string                      `json:"ruleId"`
	Returned    int                         `json:"returned"`
	Evaluations []jupiterone.RuleEvaluation `json:"evaluations"`
	PageInfo    jupiterone.PageInfo         `json:"pageInfo"`
}

func ListRuleEvaluationsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListRuleEvaluations(ctx, request, deps.ClientFor(ctx), deps.AnalyticsService)
	}
}

func handleListRuleEvaluations(ctx context.Context, request mcp.CallToolRequest, client jupiterone.Service, asService analytics.Service) (*mcp.CallToolResult, error) {
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("list-rule-evaluations"))

	var args ListRuleEvaluationsInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	page, err := client.ListRuleEvaluations(ctx, jupiterone.RuleEvaluationFilters{
		RuleID:         args.RuleID,
		BeginTimestamp: args.BeginTimestamp,
		EndTimestamp:   args.EndTimestamp,
		Limit:          args.Limit,
		Tag:            args.Tag,
		Cursor:         args.Cursor,
	})
	if err != nil {
		return tools.ErrorResult("Error listing rule evaluations", err), nil
	}

	evaluations := page.Results
	if evaluations == nil {
		evaluations = []jupiterone.RuleEvaluation{}
	}
	return tools.JSONResult(evaluationPage{
		RuleID:      args.RuleID,
		Returned:    len(evaluations),
		Evaluations: evaluations,
		PageInfo:    page.PageInfo,
	})
}
