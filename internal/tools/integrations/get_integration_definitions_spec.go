package integrations

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetIntegrationDefinitionsInput struct {
	Cursor        string `json:"cursor,omitempty" jsonschema_description:"Pagination cursor from a previous response's pageInfo.endCursor"`
	IncludeConfig bool   `json:"includeConfig,omitempty" jsonschema_description:"Include the configuration field schema of every definition. Usually false."`
}

func GetIntegrationDefinitionsSpec() mcp.Tool {
	return mcp.NewTool("get-integration-definitions",
		mcp.WithDescription("List the integration definitions available to the account (AWS, Azure, GitHub, Slack, Jira...). Each has a name and a title; match them against what the user asks for and ask the user to choose when several fit. "+
			"Start here when an integration instance ID is needed, for example for a rule action, then call get-integration-instances with the definition ID. "+
			"Follow pageInfo.endCursor until hasNextPage is false to see the full list."),
		mcp.WithInputSchema[GetIntegrationDefinitionsInput](),
		mcp.WithTitleAnnotation("Get Integration Definitions"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
