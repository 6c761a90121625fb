package jupiterone

import (
	"context"
	"log/slog"
)

// GetAccountInfo returns the account the client's credentials belong to.
func (c *Client) GetAccountInfo(ctx context.Context) (*AccountInfo, error) {
	var resp struct {
		IAMGetAccount AccountInfo `json:"iamGetAccount"`
	}
	if err := c.run(ctx, "account", queryAccountInfo, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.IAMGetAccount, nil
}

// TestConnection reports whether the API accepts the client's credentials.
func (c *Client) TestConnection(ctx context.Context) bool {
	if _, err := c.GetAccountInfo(ctx); err != nil {
		slog.Error("error testing connection to JupiterOne", "error", err)
		return false
	}
	return true
}
