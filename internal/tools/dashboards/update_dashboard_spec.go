package dashboards

import (
	_ "embed"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
)

//go:embed descriptions/update_dashboard.md
var updateDashboardDescription string

type UpdateDashboardInput struct {
	DashboardID string                      `json:"dashboardId" validate:"required" jsonschema_description:"The ID of the dashboard to update"`
	Layouts     jupiterone.DashboardLayouts `json:"layouts" jsonschema_description:"Widget positions and sizes per breakpoint"`
}

func UpdateDashboardSpec() mcp.Tool {
	return mcp.NewTool("update-dashboard",
		mcp.WithDescription(updateDashboardDescription),
		mcp.WithInputSchema[UpdateDashboardInput](),
		mcp.WithTitleAnnotation("Update Dashboard Layout"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
