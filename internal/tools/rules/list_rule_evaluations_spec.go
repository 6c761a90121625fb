package rules

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type ListRuleEvaluationsInput struct {
	RuleID         string `json:"ruleId" validate:"required" jsonschema_description:"The ID of the rule to get evaluations for"`
	BeginTimestamp int64  `json:"beginTimestamp,omitempty" validate:"omitempty,min=0" jsonschema_description:"Start of the evaluation period in epoch milliseconds"`
	EndTimestamp   int64  `json:"endTimestamp,omitempty" validate:"omitempty,gtefield=BeginTimestamp" jsonschema_description:"End of the evaluation period in epoch milliseconds"`
	Limit          int    `json:"limit,omitempty" validate:"omitempty,min=1,max=1000" jsonschema:"minimum=1,maximum=1000" jsonschema_description:"Maximum number of evaluations to return (1-1000)"`
	Tag            string `json:"tag,omitempty" jsonschema_description:"Filter evaluations by tag"`
	Cursor         string `json:"cursor,omitempty" jsonschema_description:"Pagination cursor from a previous response's pageInfo.endCursor"`
}

func ListRuleEvaluationsSpec() mcp.Tool {
	return mcp.NewTool("list-rule-evaluations",
		mcp.WithDescription("List the evaluation history of a rule: when it ran, its outputs and the raw data descriptors of each query. Pass a rawDataKey from the results to get-rule-evaluation-query-results or get-raw-data-download-url."),
		mcp.WithInputSchema[ListRuleEvaluationsInput](),
		mcp.WithTitleAnnotation("List Rule Evaluations"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
