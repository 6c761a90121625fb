package query

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

func CreateJ1QLFromNaturalLanguageHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleCreateJ1QLFromNaturalLanguage(ctx, request, deps.ClientFor(ctx), deps.AnalyticsService)
	}
}

func handleCreateJ1QLFromNaturalLanguage(ctx context.Context, request mcp.CallToolRequest, client jupiterone.Service, asService analytics.Service) (*mcp.CallToolResult, error) {
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("create-j1ql-from-natural-language"))

	var args CreateJ1QLFromNaturalLanguageInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	generated, err := client.CreateJ1QLFromNaturalLanguage(ctx, args.Question)
	if err != nil {
		return tools.ErrorResult("Error generating J1QL query", err), nil
	}
	if generated.Query == "" {
		return mcp.NewToolResultError("Error generating J1QL query: no query was generated for the question. Rephrase it using entity classes such as User, Device or DataStore."), nil
	}

	return tools.JSONResult(tools.CreateLLMResponse(tools.SummaryQueryGenerated, generated, tools.NextStepsAfterGeneratedQuery...))
}
