package rules

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func EvaluateRuleSpec() mcp.Tool {
	return mcp.NewTool("evaluate-rule",
		mcp.WithDescription("Trigger an immediate evaluation of an alert rule instead of waiting for its polling interval. Follow up with list-rule-evaluations to see the outcome."),
		mcp.WithInputSchema[RuleIDInput](),
		mcp.WithTitleAnnotation("Evaluate Rule"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
