package query

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/j1ql"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

type queryResults struct {
	Query    string                    `json:"query"`
	Results  *jupiterone.QueryResponse `json:"results"`
	Metadata j1ql.QueryMetadata        `json:"metadata"`
}

func ExecuteJ1QLQueryHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleExecuteJ1QLQuery(ctx, request, deps.ClientFor(ctx), deps.AnalyticsService)
	}
}

func handleExecuteJ1QLQuery(ctx context.Context, request mcp.CallToolRequest, client jupiterone.Service, asService analytics.Service) (*mcp.CallToolResult, error) {
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("execute-j1ql-query"))

	var args ExecuteJ1QLQueryInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	metadata := j1ql.GetQueryMetadata(args.Query)
	slog.Debug("Executing J1QL query", "entityClasses", metadata.EntityClasses, "hasLimit", metadata.HasLimit)

	resp, err := client.ExecuteJ1QLQuery(ctx, jupiterone.QueryRequest{
		Query:        args.Query,
		Variables:    args.Variables,
		Cursor:       args.Cursor,
		ScopeFilters: args.ScopeFilters,
		Flags:        args.flags(),
	})
	if err != nil {
		diagnosis := j1ql.HandleQueryError(err, args.Query)
		slog.Error("Error executing J1QL query", "error", diagnosis.Error)
		return mcp.NewToolResultError(fmt.Sprintf("Error executing query: %s\n\nSuggestion: %s", diagnosis.Error, diagnosis.Suggestion)), nil
	}

	response := tools.CreateLLMResponse(tools.SummaryQueryExecuted, queryResults{
		Query:    args.Query,
		Results:  resp,
		Metadata: metadata,
	}, tools.NextStepsAfterQuery...)
	return tools.JSONResult(response)
}

// flags is nil unless a flag was set.
func (in ExecuteJ1QLQueryInput) flags() *jupiterone.QueryFlags {
	if in.IncludeDeleted == nil && in.DeferredResponse == "" && in.ReturnRowMetadata == nil && in.ReturnComputedProperties == nil {
		return nil
	}
	return &jupiterone.QueryFlags{
		IncludeDeleted:           in.IncludeDeleted,
		DeferredResponse:         in.DeferredResponse,
		ReturnRowMetadata:        in.ReturnRowMetadata,
		ReturnComputedProperties: in.ReturnComputedProperties,
	}
}
