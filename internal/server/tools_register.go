package server

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jupiterone/jupiterone-mcp/internal/metrics"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
	"github.com/jupiterone/jupiterone-mcp/internal/tools/account"
	"github.com/jupiterone/jupiterone-mcp/internal/tools/alerts"
	"github.com/jupiterone/jupiterone-mcp/internal/tools/dashboards"
	"github.com/jupiterone/jupiterone-mcp/internal/tools/integrations"
	"github.com/jupiterone/jupiterone-mcp/internal/tools/query"
	"github.com/jupiterone/jupiterone-mcp/internal/tools/rules"
)

// RegisterTools registers all enabled MCP tools and adds them to the provided MCP server.
// When read-only mode is enabled (JUPITERONE_READ_ONLY or Config.ReadOnly) only tools
// annotated as read-only are registered. A tool without the annotation counts as a mutation.
func (s *JupiterOneMCPServer) RegisterTools() error {
	deps := &tools.ToolDependencies{
		Config:           s.config,
		Client:           s.client,
		AnalyticsService: s.anService,
		Metrics:          s.metrics,
		Log:              s.log,
	}

	all := getAllTools(deps)
	if s.config != nil && s.config.ReadOnly {
		all = readOnlyTools(all)
	}

	for i := range all {
		all[i].Handler = withMetrics(s.metrics, all[i].Tool.Name, all[i].Handler)
	}

	s.MCPServer.AddTools(all...)
	return nil
}

func readOnlyTools(all []server.ServerTool) []server.ServerTool {
	filtered := make([]server.ServerTool, 0, len(all))
	for _, t := range all {
		if t.Tool.Annotations.ReadOnlyHint != nil && *t.Tool.Annotations.ReadOnlyHint {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// withMetrics records the outcome and duration of every call of a tool.
func withMetrics(m *metrics.Metrics, name string, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		result, err := next(ctx, request)

		outcome := metrics.ResultSuccess
		switch {
		case err != nil:
			outcome = metrics.ResultError
		case result != nil && result.IsError:
			outcome = metrics.ResultToolError
		}
		m.ObserveToolCall(name, outcome, time.Since(start))
		return result, err
	}
}

// getAllTools returns all available tools with their specs and handlers
func getAllTools(deps *tools.ToolDependencies) []server.ServerTool {
	return []server.ServerTool{
		// Account
		{
			Tool:    account.TestConnectionSpec(),
			Handler: account.TestConnectionHandler(deps),
		},
		// Alerts
		{
			Tool:    alerts.GetActiveAlertsSpec(),
			Handler: alerts.GetActiveAlertsHandler(deps),
		},
		// Rules
		{
			Tool:    rules.ListRulesSpec(),
			Handler: rules.ListRulesHandler(deps),
		},
		{
			Tool:    rules.GetRuleDetailsSpec(),
			Handler: rules.GetRuleDetailsHandler(deps),
		},
		{
			Tool:    rules.CreateInlineQuestionRuleSpec(),
			Handler: rules.CreateInlineQuestionRuleHandler(deps),
		},
		{
			Tool:    rules.UpdateInlineQuestionRuleSpec(),
			Handler: rules.UpdateInlineQuestionRuleHandler(deps),
		},
		{
			Tool:    rules.DeleteRuleSpec(),
			Handler: rules.DeleteRuleHandler(deps),
		},
		{
			Tool:    rules.EvaluateRuleSpec(),
			Handler: rules.EvaluateRuleHandler(deps),
		},
		{
			Tool:    rules.ListRuleEvaluationsSpec(),
			Handler: rules.ListRuleEvaluationsHandler(deps),
		},
		{
			Tool:    rules.GetRuleEvaluationDetailsSpec(),
			Handler: rules.GetRuleEvaluationDetailsHandler(deps),
		},
		{
			Tool:    rules.GetRawDataDownloadURLSpec(),
			Handler: rules.GetRawDataDownloadURLHandler(deps),
		},
		{
			Tool:    rules.GetRuleEvaluationQueryResultsSpec(),
			Handler: rules.GetRuleEvaluationQueryResultsHandler(deps),
		},
		// Dashboards
		{
			Tool:    dashboards.GetDashboardsSpec(),
			Handler: dashboards.GetDashboardsHandler(deps),
		},
		{
			Tool:    dashboards.GetDashboardDetailsSpec(),
			Handler: dashboards.GetDashboardDetailsHandler(deps),
		},
		{
			Tool:    dashboards.CreateDashboardSpec(),
			Handler: dashboards.CreateDashboardHandler(deps),
		},
		{
			Tool:    dashboards.CreateDashboardWidgetSpec(),
			Handler: dashboards.CreateDashboardWidgetHandler(deps),
		},
		{
			Tool:    dashboards.UpdateDashboardSpec(),
			Handler: dashboards.UpdateDashboardHandler(deps),
		},
		// Integrations
		{
			Tool:    integrations.GetIntegrationDefinitionsSpec(),
			Handler: integrations.GetIntegrationDefinitionsHandler(deps),
		},
		{
			Tool:    integrations.GetIntegrationInstancesSpec(),
			Handler: integrations.GetIntegrationInstancesHandler(deps),
		},
		{
			Tool:    integrations.GetIntegrationJobsSpec(),
			Handler: integrations.GetIntegrationJobsHandler(deps),
		},
		{
			Tool:    integrations.GetIntegrationJobSpec(),
			Handler: integrations.GetIntegrationJobHandler(deps),
		},
		{
			Tool:    integrations.GetIntegrationEventsSpec(),
			Handler: integrations.GetIntegrationEventsHandler(deps),
		},
		// J1QL
		{
			Tool:    query.ExecuteJ1QLQuerySpec(),
			Handler: query.ExecuteJ1QLQueryHandler(deps),
		},
		{
			Tool:    query.ValidateJ1QLQuerySpec(),
			Handler: query.ValidateJ1QLQueryHandler(deps),
		},
		{
			Tool:    query.CreateJ1QLFromNaturalLanguageSpec(),
			Handler: query.CreateJ1QLFromNaturalLanguageHandler(deps),
		},
		{
			Tool:    query.GetJ1QLExamplesSpec(),
			Handler: query.GetJ1QLExamplesHandler(deps),
		},
	}
}
