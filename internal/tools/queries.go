package tools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/j1ql"
)

// RejectInvalidQueries validates the queries a mutation is about to persist.
// It returns a tool error listing every failing query, or nil when all are valid.
func RejectInvalidQueries(ctx context.Context, validator *j1ql.Validator, asService analytics.Service, toolName string, queries []j1ql.NamedQuery) *mcp.CallToolResult {
	failures := validator.ValidateNamedQueries(ctx, queries)
	if len(failures) == 0 {
		return nil
	}

	asService.EmitEvent(asService.NewQueriesRejectedEvent(toolName, len(failures)))
	slog.Warn("Rejected mutation with invalid queries", "tool", toolName, "failures", len(failures))
	return mcp.NewToolResultError(j1ql.FormatFailures(failures))
}
