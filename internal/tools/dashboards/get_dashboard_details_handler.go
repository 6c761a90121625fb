package dashboards

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

type dashboardDetails struct {
	dashboardSummary
	Published           *bool                           `json:"published"`
	PublishedToUserIDs  []string                        `json:"publishedToUserIds"`
	PublishedToGroupIDs []string                        `json:"publishedToGroupIds"`
	GroupIDs            []string                        `json:"groupIds"`
	UserIDs             []string                        `json:"userIds"`
	ScopeFilters        any                             `json:"scopeFilters"`
	Parameters          []jupiterone.DashboardParameter `json:"parameters"`
	Widgets             []jupiterone.Widget             `json:"widgets"`
	Layouts             jupiterone.DashboardLayouts     `json:"layouts"`
}

func newDashboardDetails(d *jupiterone.DashboardDetails) dashboardDetails {
	details := dashboardDetails{
		dashboardSummary:    newDashboardSummary(d.Dashboard),
		Published:           d.Published,
		PublishedToUserIDs:  d.PublishedToUserIDs,
		PublishedToGroupIDs: d.PublishedToGroupIDs,
		GroupIDs:            d.GroupIDs,
		UserIDs:             d.UserIDs,
		ScopeFilters:        d.ScopeFilters,
		Parameters:          d.Parameters,
		Widgets:             d.Widgets,
		Layouts:             normalizeLayouts(d.Layouts),
	}
	if details.Parameters == nil {
		details.Parameters = []jupiterone.DashboardParameter{}
	}
	if details.Widgets == nil {
		details.Widgets = []jupiterone.Widget{}
	}
	return details
}

// normalizeLayouts replaces missing breakpoints with empty lists.
func normalizeLayouts(l jupiterone.DashboardLayouts) jupiterone.DashboardLayouts {
	for _, items := range []*[]jupiterone.LayoutItem{&l.XS, &l.SM, &l.MD, &l.LG, &l.XL} {
		if *items == nil {
			*items = []jupiterone.LayoutItem{}
		}
	}
	return l
}

func GetDashboardDetailsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetDashboardDetails(ctx, request, deps.ClientFor(ctx), deps.AnalyticsService)
	}
}

func handleGetDashboardDetails(ctx context.Context, request mcp.CallToolRequest, client jupiterone.Service, asService analytics.Service) (*mcp.CallToolResult, error) {
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("get-dashboard-details"))

	var args DashboardIDInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	dashboard, err := client.GetDashboard(ctx, args.DashboardID)
	if err != nil {
		return tools.ErrorResult("Error getting dashboard details", err), nil
	}
	return tools.JSONResult(newDashboardDetails(dashboard))
}
