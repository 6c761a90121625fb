package query

import (
	_ "embed"

	"github.com/mark3labs/mcp-go/mcp"
)

//go:embed descriptions/execute_j1ql_query.md
var executeQueryDescription string

type ExecuteJ1QLQueryInput struct {
	Query                    string           `json:"query" validate:"required" jsonschema_description:"The J1QL query to execute"`
	Variables                map[string]any   `json:"variables,omitempty" jsonschema_description:"Values for parameters referenced in the query"`
	Cursor                   string           `json:"cursor,omitempty" jsonschema_description:"Cursor from a previous response to fetch the next page"`
	ScopeFilters             []map[string]any `json:"scopeFilters,omitempty" jsonschema_description:"Scope filters restricting the entities the query can see"`
	IncludeDeleted           *bool            `json:"includeDeleted,omitempty" jsonschema_description:"Include deleted entities"`
	DeferredResponse         string           `json:"deferredResponse,omitempty" validate:"omitempty,oneof=DISABLED FORCE" jsonschema:"enum=DISABLED,enum=FORCE" jsonschema_description:"FORCE returns a URL to the results instead of the rows"`
	ReturnRowMetadata        *bool            `json:"returnRowMetadata,omitempty" jsonschema_description:"Return metadata with every row"`
	ReturnComputedProperties *bool            `json:"returnComputedProperties,omitempty" jsonschema_description:"Return computed properties"`
}

func ExecuteJ1QLQuerySpec() mcp.Tool {
	return mcp.NewTool("execute-j1ql-query",
		mcp.WithDescription(executeQueryDescription),
		mcp.WithInputSchema[ExecuteJ1QLQueryInput](),
		mcp.WithTitleAnnotation("Execute J1QL Query"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
