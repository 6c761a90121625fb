package query

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/j1ql"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

type validation struct {
	Query string `json:"query"`
	j1ql.ValidationResult
	Metadata j1ql.QueryMetadata `json:"metadata"`
}

func ValidateJ1QLQueryHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleValidateJ1QLQuery(ctx, request, deps)
	}
}

func handleValidateJ1QLQuery(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	client, asService := deps.ClientFor(ctx), deps.AnalyticsService
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("validate-j1ql-query"))

	var args ValidateJ1QLQueryInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := deps.Validator(client).ValidateQuery(ctx, args.Query)
	data := validation{
		Query:            args.Query,
		ValidationResult: result,
		Metadata:         j1ql.GetQueryMetadata(args.Query),
	}

	if !result.IsValid {
		slog.Info("J1QL query did not validate", "error", result.Error)
		return tools.JSONResult(tools.CreateLLMResponse(tools.SummaryQueryInvalid, data, tools.NextStepsAfterInvalidQuery...))
	}
	return tools.JSONResult(tools.CreateLLMResponse(tools.SummaryQueryValid, data, tools.NextStepsAfterValidQuery...))
}
