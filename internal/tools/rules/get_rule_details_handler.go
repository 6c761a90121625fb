package rules

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

func GetRuleDetailsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetRuleDetails(ctx, request, deps.ClientFor(ctx), deps.AnalyticsService)
	}
}

// handleGetRuleDetails searches every page since the API has no lookup by ID.
func handleGetRuleDetails(ctx context.Context, request mcp.CallToolRequest, client jupiterone.Service, asService analytics.Service) (*mcp.CallToolResult, error) {
	if result := tools.CheckServices(client, asService); result != nil {
		return result, nil
	}
	asService.EmitEvent(asService.NewToolsEvent("get-rule-details"))

	var args RuleIDInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	instances, err := client.GetAllRuleInstances(ctx)
	if err != nil {
		return tools.ErrorResult("Error getting rule details", err), nil
	}

	for i := range instances {
		if instances[i].ID == args.RuleID {
			return tools.JSONResult(instances[i])
		}
	}

	errMessage := fmt.Sprintf("Rule with ID %s not found", args.RuleID)
	slog.Info(errMessage)
	return mcp.NewToolResultError(errMessage), nil
}
