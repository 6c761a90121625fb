package dashboards

import (
	_ "embed"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
)

//go:embed descriptions/create_dashboard_widget.md
var createWidgetDescription string

type CreateDashboardWidgetInput struct {
	DashboardID string                 `json:"dashboardId" validate:"required" jsonschema_description:"The ID of the dashboard to add the widget to"`
	Input       jupiterone.WidgetInput `json:"input" jsonschema_description:"The widget to create: title, chart type and config with its queries"`
}

func CreateDashboardWidgetSpec() mcp.Tool {
	return mcp.NewTool("create-dashboard-widget",
		mcp.WithDescription(createWidgetDescription),
		mcp.WithInputSchema[CreateDashboardWidgetInput](),
		mcp.WithTitleAnnotation("Create Dashboard Widget"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
