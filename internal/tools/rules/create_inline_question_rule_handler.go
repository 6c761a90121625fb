package rules

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

func CreateInlineQuestionRuleHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleCreateInlineQuestionRule(ctx, request, deps)
	}
}

func handleCreateInlineQuestionRule(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	client, asService := deps.ClientFor(ctx), deps.AnalyticsService
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("create-inline-question-rule"))

	var args CreateInlineQuestionRuleInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if result := tools.RejectInvalidQueries(ctx, deps.Validator(client), asService, "create-inline-question-rule", args.namedQueries()); result != nil {
		return result, nil
	}

	rule, err := client.CreateInlineQuestionRuleInstance(ctx, args.input(""))
	if err != nil {
		return tools.ErrorResult("Error creating inline question rule", err), nil
	}

	slog.Info("Created inline question rule", "id", rule.ID, "name", rule.Name)
	return tools.JSONResult(newSaveRuleResponse(rule, ruleURL(ctx, client, deps.BaseURL(), rule.ID)))
}
