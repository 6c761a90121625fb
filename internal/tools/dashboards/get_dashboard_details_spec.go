package dashboards

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type DashboardIDInput struct {
	DashboardID string `json:"dashboardId" validate:"required" jsonschema_description:"The unique identifier of the dashboard"`
}

func GetDashboardDetailsSpec() mcp.Tool {
	return mcp.NewTool("get-dashboard-details",
		mcp.WithDescription("Get detailed information about one dashboard: its widgets with their queries and settings, parameters, sharing and the layout of every breakpoint."),
		mcp.WithInputSchema[DashboardIDInput](),
		mcp.WithTitleAnnotation("Get Dashboard Details"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
