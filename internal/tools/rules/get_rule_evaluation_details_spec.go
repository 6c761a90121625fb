package rules

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetRuleEvaluationDetailsInput struct {
	RuleID    string `json:"ruleId" validate:"required" jsonschema_description:"The ID of the rule"`
	Timestamp int64  `json:"timestamp" validate:"required,min=1" jsonschema_description:"Timestamp of the evaluation in epoch milliseconds, as returned by list-rule-evaluations"`
}

func GetRuleEvaluationDetailsSpec() mcp.Tool {
	return mcp.NewTool("get-rule-evaluation-details",
		mcp.WithDescription("Get the step-by-step breakdown of one rule evaluation: query, condition and action steps with their status and logs."),
		mcp.WithInputSchema[GetRuleEvaluationDetailsInput](),
		mcp.WithTitleAnnotation("Get Rule Evaluation Details"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
