package rules

import (
	_ "embed"

	"github.com/mark3labs/mcp-go/mcp"
)

//go:embed descriptions/update_inline_question_rule.md
var updateRuleDescription string

type UpdateInlineQuestionRuleInput struct {
	ID string `json:"id" validate:"required" jsonschema_description:"ID of the rule to update"`
	RuleFields
}

func UpdateInlineQuestionRuleSpec() mcp.Tool {
	return mcp.NewTool("update-inline-question-rule",
		mcp.WithDescription(updateRuleDescription),
		mcp.WithInputSchema[UpdateInlineQuestionRuleInput](),
		mcp.WithTitleAnnotation("Update Inline Question Rule"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
