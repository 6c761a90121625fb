package query

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type CreateJ1QLFromNaturalLanguageInput struct {
	Question string `json:"question" validate:"required" jsonschema_description:"The question to translate, e.g. 'Which users do not have MFA enabled?'"`
}

func CreateJ1QLFromNaturalLanguageSpec() mcp.Tool {
	return mcp.NewTool("create-j1ql-from-natural-language",
		mcp.WithDescription("Translate a natural language question into a J1QL query with the JupiterOne query assistant. "+
			"Unless the user supplies a query, use this to write the queries for rules, widgets and questions about the account's data, then check the result with validate-j1ql-query."),
		mcp.WithInputSchema[CreateJ1QLFromNaturalLanguageInput](),
		mcp.WithTitleAnnotation("Create J1QL From Natural Language"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
