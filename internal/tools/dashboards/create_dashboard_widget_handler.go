package dashboards

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/j1ql"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

type createdWidget struct {
	DashboardID string             `json:"dashboardId"`
	Widget      *jupiterone.Widget `json:"widget"`
	URL         string             `json:"url"`
}

func CreateDashboardWidgetHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleCreateDashboardWidget(ctx, request, deps)
	}
}

func handleCreateDashboardWidget(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	client, asService := deps.ClientFor(ctx), deps.AnalyticsService
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("create-dashboard-widget"))

	var args CreateDashboardWidgetInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	queries := args.Input.Config.Queries
	named := make([]j1ql.NamedQuery, 0, len(queries))
	for i := range queries {
		if queries[i].ID == "" {
			queries[i].ID = uuid.NewString()
		}
		named = append(named, j1ql.NamedQuery{Name: queries[i].Name, Query: queries[i].Query})
	}

	if result := tools.RejectInvalidQueries(ctx, deps.Validator(client), asService, "create-dashboard-widget", named); result != nil {
		return result, nil
	}

	widget, err := client.CreateDashboardWidget(ctx, args.DashboardID, args.Input)
	if err != nil {
		return tools.ErrorResult("Error creating dashboard widget", err), nil
	}

	slog.Info("Created dashboard widget", "dashboardId", args.DashboardID, "widgetId", widget.ID, "type", widget.Type)
	return tools.JSONResult(createdWidget{
		DashboardID: args.DashboardID,
		Widget:      widget,
		URL:         dashboardURL(ctx, client, args.DashboardID),
	})
}
