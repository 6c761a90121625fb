package rules

import (
	_ "embed"

	"github.com/mark3labs/mcp-go/mcp"
)

//go:embed descriptions/create_inline_question_rule.md
var createRuleDescription string

type CreateInlineQuestionRuleInput struct {
	RuleFields
}

func CreateInlineQuestionRuleSpec() mcp.Tool {
	return mcp.NewTool("create-inline-question-rule",
		mcp.WithDescription(createRuleDescription),
		mcp.WithInputSchema[CreateInlineQuestionRuleInput](),
		mcp.WithTitleAnnotation("Create Inline Question Rule"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
