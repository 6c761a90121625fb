package query

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetJ1QLExamplesInput struct {
	Category    string            `json:"category,omitempty" jsonschema_description:"Return every example of this category, e.g. discovery, security, unified"`
	Example     string            `json:"example,omitempty" jsonschema_description:"Return one example by category.name path, e.g. security.usersWithoutMFA"`
	Variables   map[string]string `json:"variables,omitempty" jsonschema_description:"Values substituted into {{placeholders}} of the example query"`
	CreatedDays int               `json:"createdDays,omitempty" validate:"omitempty,min=1,max=3650" jsonschema:"minimum=1,maximum=3650" jsonschema_description:"Restrict the example query to entities created in the last N days"`
	EntityClass string            `json:"entityClass,omitempty" jsonschema_description:"Build discovery queries for this entity class, e.g. User"`
	Target      string            `json:"target,omitempty" jsonschema_description:"With entityClass, the class at the other end of the relationships to discover"`
}

func GetJ1QLExamplesSpec() mcp.Tool {
	return mcp.NewTool("get-j1ql-examples",
		mcp.WithDescription("Look up documented J1QL example queries and syntax notes. Without arguments it lists the categories and the syntax patterns. "+
			"Pass category for its examples, example (category.name) for one query rendered with variables, or entityClass to get discovery queries for its properties and relationships."),
		mcp.WithInputSchema[GetJ1QLExamplesInput](),
		mcp.WithTitleAnnotation("Get J1QL Examples"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}
