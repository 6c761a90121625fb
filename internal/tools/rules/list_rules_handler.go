package rules

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

const defaultPageSize = 100

type ruleSummary struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Description           string   `json:"description"`
	Version               any      `json:"version"`
	PollingInterval       string   `json:"pollingInterval"`
	LastEvaluationStartOn any      `json:"lastEvaluationStartOn"`
	LastEvaluationEndOn   any      `json:"lastEvaluationEndOn"`
	LatestAlertID         *string  `json:"latestAlertId"`
	LatestAlertIsActive   *bool    `json:"latestAlertIsActive"`
	Type                  string   `json:"type"`
	Tags                  []string `json:"tags"`
	Outputs               []string `json:"outputs"`
}

type rulePage struct {
	Returned int                 `json:"returned"`
	Rules    []ruleSummary       `json:"rules"`
	PageInfo jupiterone.PageInfo `json:"pageInfo"`
}

func ListRulesHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListRules(ctx, request, deps.ClientFor(ctx), deps.AnalyticsService)
	}
}

func handleListRules(ctx context.Context, request mcp.CallToolRequest, client jupiterone.Service, asService analytics.Service) (*mcp.CallToolResult, error) {
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("list-rules"))

	var args ListRulesInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if args.Limit == 0 {
		args.Limit = defaultPageSize
	}

	page, err := client.ListRuleInstances(ctx, args.Limit, args.Cursor)
	if err != nil {
		return tools.ErrorResult("Error listing rules", err), nil
	}

	resp := rulePage{
		Returned: len(page.QuestionInstances),
		Rules:    make([]ruleSummary, 0, len(page.QuestionInstances)),
		PageInfo: page.PageInfo,
	}
	for _, r := range page.QuestionInstances {
		resp.Rules = append(resp.Rules, ruleSummary{
			ID:                    r.ID,
			Name:                  r.Name,
			Description:           r.Description,
			Version:               r.Version,
			PollingInterval:       r.PollingInterval,
			LastEvaluationStartOn: r.LastEvaluationStartOn,
			LastEvaluationEndOn:   r.LastEvaluationEndOn,
			LatestAlertID:         r.LatestAlertID,
			LatestAlertIsActive:   r.LatestAlertIsActive,
			Type:                  r.Type,
			Tags:                  r.Tags,
			Outputs:               r.Outputs,
		})
	}
	return tools.JSONResult(resp)
}
