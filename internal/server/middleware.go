package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jupiterone/jupiterone-mcp/internal/auth"
	"github.com/jupiterone/jupiterone-mcp/internal/config"
)

// mcpRequest represents the minimal JSON-RPC structure needed to extract the method.
// MCP uses JSON-RPC 2.0 for all protocol messages.
type mcpRequest struct {
	Method string `json:"method"`
}

// mcpMethodsRequiringAuth lists MCP methods that call the JupiterOne API.
// Protocol handshake and capability exchange are allowed without a token.
var mcpMethodsRequiringAuth = []string{
	"tools/call",
}

func isAuthRequiredForMethod(method string) bool {
	return slices.Contains(mcpMethodsRequiringAuth, method)
}

// extractMCPMethod reads the request body, extracts the JSON-RPC method,
// and restores the body for subsequent handlers.
func extractMCPMethod(r *http.Request) (string, error) {
	if r.Body == nil {
		return "", nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	if len(body) == 0 {
		return "", nil
	}

	var req mcpRequest
	if err := json.Unmarshal(body, &req); err != nil {
		// malformed requests are answered by the MCP handler
		slog.Debug("Could not parse request as JSON-RPC", "error", err)
		return "", nil
	}

	return req.Method, nil
}

const (
	corsMaxAgeSeconds = "86400" // 24 hours
	bearerChallenge   = `Bearer realm="JupiterOne MCP Server"`
)

// chainMiddleware chains together all HTTP middleware.
// Execution order: PathValidator -> CORS -> BearerAuth -> Logging -> Handler
func chainMiddleware(cfg *config.Config, allowedOrigins []string, next http.Handler) http.Handler {
	handler := next

	handler = loggingMiddleware()(handler)
	handler = bearerAuthMiddleware(cfg)(handler)
	handler = corsMiddleware(allowedOrigins)(handler)
	handler = pathValidationMiddleware(allowedPaths(cfg))(handler)

	return handler
}

func allowedPaths(cfg *config.Config) []string {
	paths := []string{mcpPath}
	if cfg != nil && cfg.MetricsEnabled {
		paths = append(paths, metricsPath)
	}
	return paths
}

// bearerAuthMiddleware requires a JupiterOne token for MCP methods that call the API (tools/call).
//
// The token comes from the request Authorization header (Bearer scheme) or, when absent,
// from the configured API key or OAuth token. The LifeOmic-Account header selects the
// account; the configured account ID is used otherwise. Both end up in the request
// context, where tools pick them up to clone the API client.
func bearerAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method, err := extractMCPMethod(r)
			if err != nil {
				slog.Warn("Failed to extract MCP method from request", "error", err)
				w.Header().Set("WWW-Authenticate", bearerChallenge)
				http.Error(w, "Unauthorized: bearer token required", http.StatusUnauthorized)
				return
			}

			token, hasToken := auth.ParseBearerToken(r)
			ctx := r.Context()
			if hasToken {
				ctx = auth.WithBearerToken(ctx, token)
			} else if cfg != nil && cfg.Credential() != "" {
				slog.Debug("Using configured credential as fallback")
				hasToken = true
			}

			if isAuthRequiredForMethod(method) && !hasToken {
				slog.Debug("Authentication required for method", "method", method)
				w.Header().Set("WWW-Authenticate", bearerChallenge)
				http.Error(w, "Unauthorized: bearer token required for JupiterOne API calls", http.StatusUnauthorized)
				return
			}

			if accountID := strings.TrimSpace(r.Header.Get(auth.AccountHeader)); accountID != "" {
				ctx = auth.WithAccountID(ctx, accountID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// corsMiddleware implements CORS (Cross-Origin Resource Sharing).
// An empty allowedOrigins disables CORS; "*" allows every origin.
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(allowedOrigins) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			origin := r.Header.Get("Origin")

			if slices.Contains(allowedOrigins, "*") {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else if origin != "" && slices.Contains(allowedOrigins, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Mcp-Session-Id, "+auth.AccountHeader)
			w.Header().Set("Access-Control-Max-Age", corsMaxAgeSeconds)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// pathValidationMiddleware answers 404 for every path outside paths,
// so stray requests do not hang on the streaming handler.
func pathValidationMiddleware(paths []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !slices.Contains(paths, r.URL.Path) {
				http.Error(w, "Not Found: This server only handles requests to "+strings.Join(paths, ", "), http.StatusNotFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// loggingMiddleware logs HTTP requests for debugging
func loggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slog.Debug("HTTP Request",
				"method", r.Method,
				"url", r.URL.Path,
				"remote_addr", r.RemoteAddr,
				"user_agent", r.UserAgent(),
				"content_length", r.ContentLength,
				"has_account_header", r.Header.Get(auth.AccountHeader) != "",
			)
			next.ServeHTTP(w, r)
		})
	}
}
