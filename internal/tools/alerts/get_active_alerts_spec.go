package alerts

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetActiveAlertsInput struct {
	Limit int `json:"limit,omitempty" validate:"omitempty,min=1,max=1000" jsonschema:"minimum=1,maximum=1000" jsonschema_description:"Maximum number of alerts to return (between 1 and 1000). All active alerts are returned when omitted."`
}

func GetActiveAlertsSpec() mcp.Tool {
	return mcp.NewTool("get-active-alerts",
		mcp.WithDescription("List the currently active alerts in the JupiterOne account with their level, status, timestamps, record counts and the rule that raised them. Use this for alert data; use list-rules or get-rule-details for the configuration behind an alert."),
		mcp.WithInputSchema[GetActiveAlertsInput](),
		mcp.WithTitleAnnotation("Get Active Alerts"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
