package dashboards

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func GetDashboardsSpec() mcp.Tool {
	return mcp.NewTool("get-dashboards",
		mcp.WithDescription("List all dashboards available in the JupiterOne account, both personal and account-level, with their metadata. Use get-dashboard-details to read the widgets and layout of one dashboard."),
		mcp.WithTitleAnnotation("Get Dashboards"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
