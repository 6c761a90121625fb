package query

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/j1ql"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
)

type catalogOverview struct {
	Categories []string          `json:"categories"`
	Patterns   map[string]string `json:"patterns"`
}

type categoryExamples struct {
	Category string                  `json:"category"`
	Examples map[string]j1ql.Example `json:"examples"`
}

type renderedExample struct {
	Path        string `json:"path"`
	Description string `json:"description"`
	Query       string `json:"query"`
	Condition   []any  `json:"condition,omitempty"`
}

type discoveryQueries struct {
	EntityClass   string `json:"entityClass"`
	Properties    string `json:"properties"`
	Relationships string `json:"relationships"`
}

func GetJ1QLExamplesHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetJ1QLExamples(request, deps.AnalyticsService)
	}
}

// The catalog is embedded, so no JupiterOne client is needed.
func handleGetJ1QLExamples(request mcp.CallToolRequest, asService analytics.Service) (*mcp.CallToolResult, error) {
	if asService == nil {
		errMessage := "Analytics service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}
	asService.EmitEvent(asService.NewToolsEvent("get-j1ql-examples"))

	var args GetJ1QLExamplesInput
	if err := tools.BindArgs(request, &args); err != nil {
		slog.Error("Error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	catalog, err := j1ql.DefaultCatalog()
	if err != nil {
		return tools.ErrorResult("Error loading J1QL examples", err), nil
	}

	switch {
	case args.EntityClass != "":
		return tools.JSONResult(tools.CreateLLMResponse(tools.SummaryExamples, discoveryQueries{
			EntityClass:   args.EntityClass,
			Properties:    j1ql.BuildDiscoveryQuery(args.EntityClass),
			Relationships: j1ql.BuildRelationshipQuery(args.EntityClass, args.Target),
		}, "Run the queries with execute-j1ql-query to learn the available properties and relationships"))

	case args.Example != "":
		example, ok := catalog.Example(args.Example)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("Unknown example %q. Use category.name, e.g. security.usersWithoutMFA. Categories: %s",
				args.Example, strings.Join(catalog.CategoryNames(), ", "))), nil
		}
		query := example.Render(args.Variables)
		if args.CreatedDays > 0 {
			query = j1ql.AddTimeFilter(query, args.CreatedDays)
		}
		return tools.JSONResult(tools.CreateLLMResponse(tools.SummaryExamples, renderedExample{
			Path:        args.Example,
			Description: example.Description,
			Query:       query,
			Condition:   example.Condition,
		}, tools.NextStepsAfterGeneratedQuery...))

	case args.Category != "":
		examples, ok := catalog.Category(args.Category)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("Unknown category %q. Categories: %s",
				args.Category, strings.Join(catalog.CategoryNames(), ", "))), nil
		}
		return tools.JSONResult(tools.CreateLLMResponse(tools.SummaryExamples, categoryExamples{
			Category: args.Category,
			Examples: examples,
		}))
	}

	return tools.JSONResult(tools.CreateLLMResponse(tools.SummaryExamples, catalogOverview{
		Categories: catalog.CategoryNames(),
		Patterns:   catalog.Patterns,
	}))
}
