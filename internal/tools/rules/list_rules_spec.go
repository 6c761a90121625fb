package rules

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type ListRulesInput struct {
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=1000" jsonschema:"minimum=1,maximum=1000" jsonschema_description:"Maximum number of rules to return per page (between 1 and 1000). Defaults to 100."`
	Cursor string `json:"cursor,omitempty" jsonschema_description:"Pagination cursor. Use pageInfo.endCursor from the previous response; omit it for the first page."`
}

func ListRulesSpec() mcp.Tool {
	return mcp.NewTool("list-rules",
		mcp.WithDescription("List the alert rules of the JupiterOne account one page at a time. Returns rule IDs, names, descriptions, versions, polling intervals and latest alert information together with pageInfo. While pageInfo.hasNextPage is true call again with cursor set to pageInfo.endCursor. This lists rule configuration, not alerts."),
		mcp.WithInputSchema[ListRulesInput](),
		mcp.WithTitleAnnotation("List Rules"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
