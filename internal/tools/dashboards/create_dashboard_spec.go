package dashboards

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type CreateDashboardInput struct {
	Name string `json:"name" validate:"required" jsonschema_description:"Name of the dashboard"`
	Type string `json:"type" validate:"required,oneof=User Account" jsonschema:"enum=User,enum=Account" jsonschema_description:"User for a personal dashboard, Account for one shared with the account. Prefer User unless asked otherwise."`
}

func CreateDashboardSpec() mcp.Tool {
	return mcp.NewTool("create-dashboard",
		mcp.WithDescription("Create a new empty dashboard and return its ID and web URL. Add widgets with create-dashboard-widget, then call update-dashboard to give every widget a size and position. Include the dashboard URL in the reply to the user."),
		mcp.WithInputSchema[CreateDashboardInput](),
		mcp.WithTitleAnnotation("Create Dashboard"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
