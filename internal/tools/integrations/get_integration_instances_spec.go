package integrations

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetIntegrationInstancesInput struct {
	DefinitionID string `json:"definitionId,omitempty" jsonschema_description:"Only return instances of this integration definition"`
	Limit        int    `json:"limit,omitempty" validate:"omitempty,min=1,max=1000" jsonschema:"minimum=1,maximum=1000" jsonschema_description:"Maximum number of instances to return (1-1000)"`
	Cursor       string `json:"cursor,omitempty" jsonschema_description:"Pagination cursor from a previous response's pageInfo.endCursor"`
}

func GetIntegrationInstancesSpec() mcp.Tool {
	return mcp.NewTool("get-integration-instances",
		mcp.WithDescription("List the configured integration instances of the account, the actual connections to AWS accounts, GitHub organizations and so on, with their status and most recent job. "+
			"Usually called with a definitionId from get-integration-definitions. When another task needs an instance ID, ask the user which instance to use."),
		mcp.WithInputSchema[GetIntegrationInstancesInput](),
		mcp.WithTitleAnnotation("Get Integration Instances"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
