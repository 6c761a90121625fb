package dashboards

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

// dashboardSummary renames the platform's underscore timestamps.
type dashboardSummary struct {
	ID               string                    `json:"id"`
	Name             string                    `json:"name"`
	Category         string                    `json:"category"`
	SupportedUseCase string                    `json:"supportedUseCase"`
	IsJ1ManagedBoard bool                      `json:"isJ1ManagedBoard"`
	ResourceGroupID  string                    `json:"resourceGroupId"`
	Starred          bool                      `json:"starred"`
	LastUpdated      any                       `json:"lastUpdated"`
	CreatedAt        any                       `json:"createdAt"`
	Prerequisites    *jupiterone.Prerequisites `json:"prerequisites"`
}

func newDashboardSummary(d jupiterone.Dashboard) dashboardSummary {
	return dashboardSummary{
		ID:               d.ID,
		Name:             d.Name,
		Category:         d.Category,
		SupportedUseCase: d.SupportedUseCase,
		IsJ1ManagedBoard: d.IsJ1ManagedBoard,
		ResourceGroupID:  d.ResourceGroupID,
		Starred:          d.Starred,
		LastUpdated:      d.TimeUpdated,
		CreatedAt:        d.CreatedAt,
		Prerequisites:    d.Prerequisites,
	}
}

type dashboardList struct {
	Total      int                `json:"total"`
	Dashboards []dashboardSummary `json:"dashboards"`
}

func GetDashboardsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetDashboards(ctx, deps.ClientFor(ctx), deps.AnalyticsService)
	}
}

func handleGetDashboards(ctx context.Context, client jupiterone.Service, asService analytics.Service) (*mcp.CallToolResult, error) {
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("get-dashboards"))

	dashboards, err := client.GetDashboards(ctx)
	if err != nil {
		return tools.ErrorResult("Error getting dashboards", err), nil
	}

	resp := dashboardList{
		Total:      len(dashboards),
		Dashboards: make([]dashboardSummary, 0, len(dashboards)),
	}
	for _, d := range dashboards {
		resp.Dashboards = append(resp.Dashboards, newDashboardSummary(d))
	}
	return tools.JSONResult(resp)
}
