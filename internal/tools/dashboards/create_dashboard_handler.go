package dashboards

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

type createdDashboard struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

func CreateDashboardHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleCreateDashboard(ctx, request, deps.ClientFor(ctx), deps.AnalyticsService)
	}
}

func handleCreateDashboard(ctx context.Context, request mcp.CallToolRequest, client jupiterone.Service, asService analytics.Service) (*mcp.CallToolResult, error) {
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("create-dashboard"))

	var args CreateDashboardInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	dashboard, err := client.CreateDashboard(ctx, args.Name, args.Type)
	if err != nil {
		return tools.ErrorResult("Error creating dashboard", err), nil
	}

	slog.Info("Created dashboard", "id", dashboard.ID, "type", args.Type)
	return tools.JSONResult(createdDashboard{
		ID:   dashboard.ID,
		Name: args.Name,
		Type: args.Type,
		URL:  dashboardURL(ctx, client, dashboard.ID),
	})
}

// dashboardURL falls back to the default subdomain when the account lookup fails.
func dashboardURL(ctx context.Context, client jupiterone.Service, dashboardID string) string {
	var subdomain string
	if info, err := client.GetAccountInfo(ctx); err == nil && info != nil {
		subdomain = info.AccountSubdomain
	}
	return jupiterone.DashboardURL(dashboardID, subdomain)
}
