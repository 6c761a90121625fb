package integrations

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetIntegrationJobInput struct {
	IntegrationJobID      string `json:"integrationJobId" validate:"required" jsonschema_description:"The ID of the job"`
	IntegrationInstanceID string `json:"integrationInstanceId" validate:"required" jsonschema_description:"The ID of the instance the job belongs to"`
}

func GetIntegrationJobSpec() mcp.Tool {
	return mcp.NewTool("get-integration-job",
		mcp.WithDescription("Get the details of one integration job run: status, timing, error flags and the integration it belongs to."),
		mcp.WithInputSchema[GetIntegrationJobInput](),
		mcp.WithTitleAnnotation("Get Integration Job"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
