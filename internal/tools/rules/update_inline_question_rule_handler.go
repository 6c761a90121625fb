package rules

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

func UpdateInlineQuestionRuleHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleUpdateInlineQuestionRule(ctx, request, deps)
	}
}

// handleUpdateInlineQuestionRule replaces the whole rule definition; omitted
// optional fields are cleared by the platform.
func handleUpdateInlineQuestionRule(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	client, asService := deps.ClientFor(ctx), deps.AnalyticsService
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("update-inline-question-rule"))

	var args UpdateInlineQuestionRuleInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if result := tools.RejectInvalidQueries(ctx, deps.Validator(client), asService, "update-inline-question-rule", args.namedQueries()); result != nil {
		return result, nil
	}

	rule, err := client.UpdateInlineQuestionRuleInstance(ctx, args.input(args.ID))
	if err != nil {
		return tools.ErrorResult("Error updating inline question rule", err), nil
	}

	slog.Info("Updated inline question rule", "id", rule.ID, "name", rule.Name)
	return tools.JSONResult(newSaveRuleResponse(rule, ruleURL(ctx, client, deps.BaseURL(), rule.ID)))
}
