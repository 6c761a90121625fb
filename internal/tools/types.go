package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/auth"
	"github.com/jupiterone/jupiterone-mcp/internal/config"
	"github.com/jupiterone/jupiterone-mcp/internal/j1ql"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/logger"
	"github.com/jupiterone/jupiterone-mcp/internal/metrics"
)

// Handler is the signature of every MCP tool handler.
type Handler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ToolDependencies contains all dependencies needed by tools
type ToolDependencies struct {
	Config           *config.Config
	Client           jupiterone.Service
	AnalyticsService analytics.Service
	Metrics          *metrics.Metrics
	Log              *logger.Service
}

// ClientFor returns the API client for the caller. Credentials carried by ctx
// (HTTP transport) replace the configured ones.
func (d *ToolDependencies) ClientFor(ctx context.Context) jupiterone.Service {
	if d == nil || d.Client == nil {
		return nil
	}
	token, _ := auth.GetBearerToken(ctx)
	accountID, _ := auth.GetAccountID(ctx)
	if token == "" && accountID == "" {
		return d.Client
	}
	return d.Client.WithCredentials(token, accountID)
}

// Validator returns a query validator executing through client.
func (d *ToolDependencies) Validator(client jupiterone.Service) *j1ql.Validator {
	if d == nil || d.Metrics == nil {
		return j1ql.NewValidator(client)
	}
	return j1ql.NewValidator(client, j1ql.WithRecorder(d.Metrics))
}

// BaseURL is the configured GraphQL endpoint, used to build web app links.
func (d *ToolDependencies) BaseURL() string {
	if d == nil || d.Config == nil || d.Config.BaseURL == "" {
		return config.DefaultBaseURL
	}
	return d.Config.BaseURL
}
