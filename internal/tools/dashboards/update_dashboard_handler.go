package dashboards

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

type updatedDashboard struct {
	ID      string                      `json:"id"`
	Name    string                      `json:"name"`
	Layouts jupiterone.DashboardLayouts `json:"layouts"`
	URL     string                      `json:"url"`
}

func UpdateDashboardHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleUpdateDashboard(ctx, request, deps.ClientFor(ctx), deps.AnalyticsService)
	}
}

func handleUpdateDashboard(ctx context.Context, request mcp.CallToolRequest, client jupiterone.Service, asService analytics.Service) (*mcp.CallToolResult, error) {
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("update-dashboard"))

	var args UpdateDashboardInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := checkDuplicateWidgets(args.Layouts); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	layouts := normalizeLayouts(args.Layouts)
	dashboard, err := client.PatchDashboardLayouts(ctx, args.DashboardID, layouts)
	if err != nil {
		return tools.ErrorResult("Error updating dashboard", err), nil
	}

	return tools.JSONResult(updatedDashboard{
		ID:      dashboard.ID,
		Name:    dashboard.Name,
		Layouts: normalizeLayouts(dashboard.Layouts),
		URL:     dashboardURL(ctx, client, dashboard.ID),
	})
}

// checkDuplicateWidgets rejects a breakpoint that places the same widget twice.
func checkDuplicateWidgets(l jupiterone.DashboardLayouts) error {
	breakpoints := []struct {
		name  string
		items []jupiterone.LayoutItem
	}{
		{"xs", l.XS}, {"sm", l.SM}, {"md", l.MD}, {"lg", l.LG}, {"xl", l.XL},
	}
	for _, bp := range breakpoints {
		seen := make(map[string]bool, len(bp.items))
		for _, item := range bp.items {
			if seen[item.I] {
				return fmt.Errorf("invalid arguments: widget %s appears more than once in the %s layout", item.I, bp.name)
			}
			seen[item.I] = true
		}
	}
	return nil
}
