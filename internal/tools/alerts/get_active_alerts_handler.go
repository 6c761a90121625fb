package alerts

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

type alertSummary struct {
	ID                    string                  `json:"id"`
	Name                  string                  `json:"name"`
	Description           string                  `json:"description,omitempty"`
	Level                 string                  `json:"level"`
	Status                jupiterone.AlertStatus  `json:"status"`
	CreatedOn             any                     `json:"createdOn"`
	LastUpdatedOn         any                     `json:"lastUpdatedOn"`
	LastEvaluationBeginOn any                     `json:"lastEvaluationBeginOn,omitempty"`
	LastEvaluationEndOn   any                     `json:"lastEvaluationEndOn,omitempty"`
	RecordCount           int                     `json:"recordCount"`
	Tags                  []string                `json:"tags"`
	Labels                []jupiterone.Label      `json:"labels"`
	Outputs               []jupiterone.NamedValue `json:"outputs"`
	Users                 []string                `json:"users,omitempty"`
	RuleID                string                  `json:"ruleId"`
	RuleVersion           any                     `json:"ruleVersion,omitempty"`
	EndReason             string                  `json:"endReason,omitempty"`
	DismissedOn           any                     `json:"dismissedOn,omitempty"`
}

type activeAlerts struct {
	Total        int            `json:"total"`
	Returned     int            `json:"returned"`
	ActiveAlerts []alertSummary `json:"activeAlerts"`
}

func summarize(a jupiterone.AlertInstance) alertSummary {
	s := alertSummary{
		ID:                    a.ID,
		Name:                  a.RuleName(),
		Level:                 a.Level,
		Status:                a.Status,
		CreatedOn:             a.CreatedOn,
		LastUpdatedOn:         a.LastUpdatedOn,
		LastEvaluationBeginOn: a.LastEvaluationBeginOn,
		LastEvaluationEndOn:   a.LastEvaluationEndOn,
		RecordCount:           a.RecordCount(),
		Tags:                  []string{},
		Labels:                []jupiterone.Label{},
		Outputs:               []jupiterone.NamedValue{},
		Users:                 a.Users,
		RuleID:                a.RuleID,
		RuleVersion:           a.RuleVersion,
		EndReason:             a.EndReason,
		DismissedOn:           a.DismissedOn,
	}
	switch {
	case a.QuestionRuleInstance != nil:
		s.Description = a.QuestionRuleInstance.Description
		if a.QuestionRuleInstance.Tags != nil {
			s.Tags = a.QuestionRuleInstance.Tags
		}
		if a.QuestionRuleInstance.Labels != nil {
			s.Labels = a.QuestionRuleInstance.Labels
		}
	case a.ReportRuleInstance != nil:
		s.Description = a.ReportRuleInstance.Description
	}
	if a.LastEvaluationResult != nil && a.LastEvaluationResult.Outputs != nil {
		s.Outputs = a.LastEvaluationResult.Outputs
	}
	return s
}

func GetActiveAlertsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetActiveAlerts(ctx, request, deps.ClientFor(ctx), deps.AnalyticsService)
	}
}

func handleGetActiveAlerts(ctx context.Context, request mcp.CallToolRequest, client jupiterone.Service, asService analytics.Service) (*mcp.CallToolResult, error) {
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("get-active-alerts"))

	var args GetActiveAlertsInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	instances, err := client.GetAllAlertInstances(ctx, jupiterone.AlertStatusActive)
	if err != nil {
		slog.Error("Error getting active alerts", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Error getting active alerts: %s. Please check your JupiterOne API credentials and connection.", err.Error())), nil
	}

	limited := instances
	if args.Limit > 0 && args.Limit < len(instances) {
		limited = instances[:args.Limit]
	}

	resp := activeAlerts{
		Total:        len(instances),
		Returned:     len(limited),
		ActiveAlerts: make([]alertSummary, 0, len(limited)),
	}
	for _, a := range limited {
		resp.ActiveAlerts = append(resp.ActiveAlerts, summarize(a))
	}
	return tools.JSONResult(resp)
}
