// Package jupiterone is the GraphQL client for the JupiterOne platform API.
package jupiterone

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/machinebox/graphql"
)

const (
	// DefaultBaseURL is the GraphQL endpoint of the US region.
	DefaultBaseURL = "https://graphql.us.jupiterone.io"

	defaultTimeout = 60 * time.Second
	// pageSize is used when walking every page of a paginated listing.
	pageSize = 100

	accountHeader = "LifeOmic-Account"
)

// Options configures a Client.
type Options struct {
	BaseURL    string
	Token      string // API key or OAuth token, sent as a bearer credential
	AccountID  string
	Version    string // reported in the User-Agent header
	HTTPClient *http.Client
}

// Client talks to the JupiterOne GraphQL API on behalf of one account.
type Client struct {
	opts Options
	gql  *graphql.Client
}

// NewClient creates a client for the given options.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	gql := graphql.NewClient(opts.BaseURL, graphql.WithHTTPClient(opts.HTTPClient))
	gql.Log = func(s string) {
		slog.Debug("graphql transport", "message", s)
	}

	return &Client{opts: opts, gql: gql}
}

// WithCredentials returns a client that shares this client's transport but
// authenticates with the given token and account. Empty values keep the current ones.
func (c *Client) WithCredentials(token, accountID string) Service {
	opts := c.opts
	if token != "" {
		opts.Token = token
	}
	if accountID != "" {
		opts.AccountID = accountID
	}
	return &Client{opts: opts, gql: c.gql}
}

// BaseURL returns the GraphQL endpoint the client sends requests to.
func (c *Client) BaseURL() string {
	return c.opts.BaseURL
}

// run sends one GraphQL operation and decodes its data into resp.
func (c *Client) run(ctx context.Context, operation, query string, vars map[string]any, resp any) error {
	req := graphql.NewRequest(query)
	for k, v := range vars {
		req.Var(k, v)
	}

	req.Header.Set("Authorization", "Bearer "+c.opts.Token)
	req.Header.Set("User-Agent", "jupiterone-mcp/"+c.opts.Version)
	if c.opts.AccountID != "" {
		req.Header.Set(accountHeader, c.opts.AccountID)
	}

	start := time.Now()
	err := c.gql.Run(ctx, req, resp)
	slog.Debug("graphql operation finished", "operation", operation, "duration", time.Since(start), "failed", err != nil)
	if err != nil {
		return newAPIError(operation, err)
	}
	return nil
}

// setIf adds key to vars unless value is the zero value of its type.
func setIf[T comparable](vars map[string]any, key string, value T) {
	var zero T
	if value != zero {
		vars[key] = value
	}
}
