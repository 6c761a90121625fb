package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const (
	bearerTokenKey contextKey = "bearerToken"
	accountIDKey   contextKey = "accountID"
)

// AccountHeader carries the JupiterOne account a request acts on.
const AccountHeader = "LifeOmic-Account"

// WithBearerToken adds bearer token to the context
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerTokenKey, token)
}

// GetBearerToken retrieves bearer token from the context
func GetBearerToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(bearerTokenKey).(string)
	return token, ok
}

// WithAccountID adds the JupiterOne account ID to the context
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

// GetAccountID retrieves the JupiterOne account ID from the context
func GetAccountID(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(accountIDKey).(string)
	return accountID, ok
}

// HasAuth checks if a bearer token is present in the context
func HasAuth(ctx context.Context) bool {
	_, ok := GetBearerToken(ctx)
	return ok
}

// ParseBearerToken extracts the token of an "Authorization: Bearer <token>" header.
// The scheme is case-insensitive; an empty token is reported as missing.
func ParseBearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
