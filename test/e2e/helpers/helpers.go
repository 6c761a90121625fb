package helpers

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/stretchr/testify/require"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/config"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/logger"
	"github.com/jupiterone/jupiterone-mcp/internal/metrics"
	"github.com/jupiterone/jupiterone-mcp/internal/server"
	"github.com/jupiterone/jupiterone-mcp/internal/testutil"
)

const (
	TestAPIKey    = "e2e-api-key"
	TestAccountID = "e2e-account"
	TestSubdomain = "acme"
)

// NewFakeJupiterOne starts a GraphQL endpoint that already answers the account lookup.
func NewFakeJupiterOne(t *testing.T) *testutil.GraphQLServer {
	t.Helper()

	fake := testutil.NewGraphQLServer(t)
	fake.Respond("account", map[string]any{
		"iamGetAccount": map[string]any{
			"accountId":        TestAccountID,
			"accountSubdomain": TestSubdomain,
			"accountName":      "Acme",
		},
	})
	return fake
}

// Session is an initialized in-process MCP client talking to a real server,
// which in turn talks to the fake GraphQL endpoint.
type Session struct {
	Client  *client.Client
	Server  *server.JupiterOneMCPServer
	Metrics *metrics.Metrics
}

// NewSession builds the server the way main does and connects an in-process client.
// configure may adjust the configuration before the server is created.
func NewSession(t *testing.T, fake *testutil.GraphQLServer, configure func(*config.Config)) *Session {
	t.Helper()

	cfg := &config.Config{
		APIKey:         TestAPIKey,
		AccountID:      TestAccountID,
		BaseURL:        fake.URL,
		RequestTimeout: 10 * time.Second,
		TransportMode:  config.TransportModeStdio,
		LogLevel:       "info",
		LogFormat:      "text",
	}
	if configure != nil {
		configure(cfg)
	}

	m, err := metrics.NewMetrics("e2e")
	require.NoError(t, err)

	j1Client := jupiterone.NewClient(jupiterone.Options{
		BaseURL:    cfg.BaseURL,
		Token:      cfg.Credential(),
		AccountID:  cfg.AccountID,
		Version:    "e2e",
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
	})

	s := server.NewJupiterOneMCPServer("e2e", cfg, j1Client, analytics.NewDisabled(), m, logger.New(cfg.LogLevel, cfg.LogFormat, io.Discard))
	require.NoError(t, s.RegisterTools())

	c, err := client.NewInProcessClient(s.MCPServer)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()
	require.NoError(t, c.Start(ctx))
	_, err = c.Initialize(ctx, BuildInitializeRequest())
	require.NoError(t, err, "failed to initialize MCP server")

	return &Session{Client: c, Server: s, Metrics: m}
}
