package integrations

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetIntegrationEventsInput struct {
	JobID                 string `json:"jobId" validate:"required" jsonschema_description:"The ID of the job to read events for"`
	IntegrationInstanceID string `json:"integrationInstanceId" validate:"required" jsonschema_description:"The ID of the instance the job belongs to"`
	Cursor                string `json:"cursor,omitempty" jsonschema_description:"Pagination cursor from a previous response's pageInfo.endCursor"`
	Size                  int    `json:"size,omitempty" validate:"omitempty,min=1,max=1000" jsonschema:"minimum=1,maximum=1000" jsonschema_description:"Maximum number of events to return (1-1000)"`
}

func GetIntegrationEventsSpec() mcp.Tool {
	return mcp.NewTool("get-integration-events",
		mcp.WithDescription("Read the event log of one integration job run to troubleshoot it. Events carry a level and an event code; look for error level events first."),
		mcp.WithInputSchema[GetIntegrationEventsInput](),
		mcp.WithTitleAnnotation("Get Integration Events"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
