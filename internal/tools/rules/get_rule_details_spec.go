package rules

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type RuleIDInput struct {
	RuleID string `json:"ruleId" validate:"required" jsonschema_description:"The unique identifier of the rule"`
}

func GetRuleDetailsSpec() mcp.Tool {
	return mcp.NewTool("get-rule-details",
		mcp.WithDescription("Get the full configuration of an alert rule by its ID: queries, conditions, actions, polling interval, labels and state. Use it to inspect working examples before creating or updating a rule."),
		mcp.WithInputSchema[RuleIDInput](),
		mcp.WithTitleAnnotation("Get Rule Details"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
