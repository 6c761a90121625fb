package account

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func TestConnectionSpec() mcp.Tool {
	return mcp.NewTool("test-connection",
		mcp.WithDescription("Test the connection to the JupiterOne API and verify the authentication credentials. Returns whether the API is reachable and, when it is, the account the credentials belong to."),
		mcp.WithTitleAnnotation("Test Connection"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
