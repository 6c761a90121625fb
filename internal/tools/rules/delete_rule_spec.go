package rules

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func DeleteRuleSpec() mcp.Tool {
	return mcp.NewTool("delete-rule",
		mcp.WithDescription("Delete an alert rule by its ID. The rule stops being evaluated and its actions no longer run. This cannot be undone."),
		mcp.WithInputSchema[RuleIDInput](),
		mcp.WithTitleAnnotation("Delete Rule"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
