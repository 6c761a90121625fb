package query

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type ValidateJ1QLQueryInput struct {
	Query string `json:"query" validate:"required" jsonschema_description:"The J1QL query to validate"`
}

func ValidateJ1QLQuerySpec() mcp.Tool {
	return mcp.NewTool("validate-j1ql-query",
		mcp.WithDescription("Check a J1QL query before using it in a rule or widget. The query is executed with a small LIMIT. "+
			"A query is valid only if the engine accepts it and it returns data. An invalid query comes back with the engine error and a concrete suggestion; apply it and validate again."),
		mcp.WithInputSchema[ValidateJ1QLQueryInput](),
		mcp.WithTitleAnnotation("Validate J1QL Query"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
