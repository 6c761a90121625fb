package server

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jupiterone/jupiterone-mcp/internal/auth"
	"github.com/jupiterone/jupiterone-mcp/internal/config"
)

const toolsCallBody = `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"list-rules"}}`

// mockHandler is a simple handler that returns 200 OK
func mockHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}

// authCheckHandler verifies which credentials reached the request context
func authCheckHandler(t *testing.T, expectedToken, expectedAccount string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _ := auth.GetBearerToken(r.Context())
		if token != expectedToken {
			t.Errorf("Expected token %q, got %q", expectedToken, token)
		}
		account, _ := auth.GetAccountID(r.Context())
		if account != expectedAccount {
			t.Errorf("Expected account %q, got %q", expectedAccount, account)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestBearerAuthMiddleware_WithToken(t *testing.T) {
	handler := bearerAuthMiddleware(&config.Config{})(authCheckHandler(t, "secret-token", ""))

	req := httptest.NewRequest("POST", "/mcp", bytes.NewBufferString(toolsCallBody))
	req.Header.Set("Authorization", "Bearer secret-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
}

func TestBearerAuthMiddleware_WithAccountHeader(t *testing.T) {
	handler := bearerAuthMiddleware(&config.Config{})(authCheckHandler(t, "secret-token", "acct-1"))

	req := httptest.NewRequest("POST", "/mcp", bytes.NewBufferString(toolsCallBody))
	req.Header.Set("Authorization", "Bearer secret-token")
	req.Header.Set(auth.AccountHeader, " acct-1 ")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
}

func TestBearerAuthMiddleware_WithoutToken_ToolsCall(t *testing.T) {
	handler := bearerAuthMiddleware(&config.Config{})(mockHandler())

	req := httptest.NewRequest("POST", "/mcp", bytes.NewBufferString(toolsCallBody))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
	if got := rec.Header().Get("WWW-Authenticate"); !strings.HasPrefix(got, "Bearer") {
		t.Errorf("Expected Bearer WWW-Authenticate header, got %q", got)
	}
}

func TestBearerAuthMiddleware_BasicSchemeIsNotAToken(t *testing.T) {
	handler := bearerAuthMiddleware(&config.Config{})(mockHandler())

	req := httptest.NewRequest("POST", "/mcp", bytes.NewBufferString(toolsCallBody))
	req.SetBasicAuth("user", "pass")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestBearerAuthMiddleware_ConfigCredentialFallback(t *testing.T) {
	cfg := &config.Config{APIKey: "configured-key"}
	// the configured key is not copied into the context; the client already carries it
	handler := bearerAuthMiddleware(cfg)(authCheckHandler(t, "", ""))

	req := httptest.NewRequest("POST", "/mcp", bytes.NewBufferString(toolsCallBody))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200 with configured credential, got %d", rec.Code)
	}
}

func TestBearerAuthMiddleware_ProtocolMethodsAllowedWithoutAuth(t *testing.T) {
	methods := []string{"initialize", "notifications/initialized", "tools/list", "ping", "logging/setLevel"}

	for _, method := range methods {
		t.Run(method, func(t *testing.T) {
			handler := bearerAuthMiddleware(&config.Config{})(mockHandler())

			body := `{"jsonrpc":"2.0","id":1,"method":"` + method + `"}`
			req := httptest.NewRequest("POST", "/mcp", bytes.NewBufferString(body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("Expected status 200 for %s, got %d", method, rec.Code)
			}
		})
	}
}

func TestBearerAuthMiddleware_BodyIsRestored(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		seen = string(b)
		w.WriteHeader(http.StatusOK)
	})
	handler := bearerAuthMiddleware(&config.Config{APIKey: "k"})(next)

	req := httptest.NewRequest("POST", "/mcp", bytes.NewBufferString(toolsCallBody))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen != toolsCallBody {
		t.Errorf("Expected body to be restored, got %q", seen)
	}
}

func TestIsAuthRequiredForMethod(t *testing.T) {
	tests := []struct {
		method string
		want   bool
	}{
		{"tools/call", true},
		{"tools/list", false},
		{"initialize", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isAuthRequiredForMethod(tt.method); got != tt.want {
			t.Errorf("isAuthRequiredForMethod(%q) = %v, want %v", tt.method, got, tt.want)
		}
	}
}

func TestExtractMCPMethod(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "tools/call", body: toolsCallBody, want: "tools/call"},
		{name: "empty body", body: "", want: ""},
		{name: "invalid json", body: "{not json", want: ""},
		{name: "no method", body: `{"jsonrpc":"2.0","id":1}`, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/mcp", bytes.NewBufferString(tt.body))
			got, err := extractMCPMethod(req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected method %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCORSMiddleware_NoConfiguration(t *testing.T) {
	handler := corsMiddleware(nil)(mockHandler())

	req := httptest.NewRequest("GET", "/mcp", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("Expected no CORS headers when CORS is not configured")
	}
}

func TestCORSMiddleware_WildcardOrigin(t *testing.T) {
	handler := corsMiddleware([]string{"*"})(mockHandler())

	req := httptest.NewRequest("GET", "/mcp", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected Access-Control-Allow-Origin '*', got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, auth.AccountHeader) {
		t.Errorf("Expected %s in Access-Control-Allow-Headers, got %q", auth.AccountHeader, got)
	}
}

func TestCORSMiddleware_SpecificOrigins(t *testing.T) {
	allowed := []string{"http://localhost:3000", "https://apps.us.jupiterone.io"}
	handler := corsMiddleware(allowed)(mockHandler())

	tests := []struct {
		origin string
		want   string
	}{
		{"http://localhost:3000", "http://localhost:3000"},
		{"https://apps.us.jupiterone.io", "https://apps.us.jupiterone.io"},
		{"http://evil.example.com", ""},
		{"", ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest("GET", "/mcp", nil)
		if tt.origin != "" {
			req.Header.Set("Origin", tt.origin)
		}
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
			t.Errorf("origin %q: expected Access-Control-Allow-Origin %q, got %q", tt.origin, tt.want, got)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("origin %q: expected status 200, got %d", tt.origin, rec.Code)
		}
	}
}

func TestCORSMiddleware_PreflightRequest(t *testing.T) {
	handler := corsMiddleware([]string{"http://localhost:3000"})(mockHandler())

	req := httptest.NewRequest("OPTIONS", "/mcp", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected status 204 for preflight, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Max-Age"); got != corsMaxAgeSeconds {
		t.Errorf("Expected Access-Control-Max-Age %q, got %q", corsMaxAgeSeconds, got)
	}
}

func TestPathValidationMiddleware(t *testing.T) {
	handler := pathValidationMiddleware([]string{"/mcp"})(mockHandler())

	tests := []struct {
		path string
		want int
	}{
		{"/mcp", http.StatusOK},
		{"/", http.StatusNotFound},
		{"/mcp/", http.StatusNotFound},
		{"/metrics", http.StatusNotFound},
		{"/favicon.ico", http.StatusNotFound},
	}
	for _, tt := range tests {
		req := httptest.NewRequest("GET", tt.path, nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != tt.want {
			t.Errorf("path %q: expected status %d, got %d", tt.path, tt.want, rec.Code)
		}
	}
}

func TestAllowedPaths(t *testing.T) {
	if got := allowedPaths(&config.Config{}); len(got) != 1 || got[0] != mcpPath {
		t.Errorf("Expected only %s, got %v", mcpPath, got)
	}
	if got := allowedPaths(&config.Config{MetricsEnabled: true}); len(got) != 2 || got[1] != metricsPath {
		t.Errorf("Expected %s and %s, got %v", mcpPath, metricsPath, got)
	}
}

func TestLoggingMiddleware(t *testing.T) {
	handler := loggingMiddleware()(mockHandler())

	req := httptest.NewRequest("GET", "/mcp", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
}

func TestChainMiddleware(t *testing.T) {
	t.Run("tools/call without token is rejected", func(t *testing.T) {
		handler := chainMiddleware(&config.Config{}, []string{"*"}, mockHandler())

		req := httptest.NewRequest("POST", "/mcp", bytes.NewBufferString(toolsCallBody))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", rec.Code)
		}
		if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected CORS headers on the rejection")
		}
	})

	t.Run("unknown path is rejected before auth", func(t *testing.T) {
		handler := chainMiddleware(&config.Config{}, nil, mockHandler())

		req := httptest.NewRequest("POST", "/other", bytes.NewBufferString(toolsCallBody))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rec.Code)
		}
	})

	t.Run("metrics path is reachable without token when enabled", func(t *testing.T) {
		handler := chainMiddleware(&config.Config{MetricsEnabled: true}, nil, mockHandler())

		req := httptest.NewRequest("GET", "/metrics", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", rec.Code)
		}
	})

	t.Run("token and account reach the handler", func(t *testing.T) {
		handler := chainMiddleware(&config.Config{}, nil, authCheckHandler(t, "tok", "acct-2"))

		req := httptest.NewRequest("POST", "/mcp", bytes.NewBufferString(toolsCallBody))
		req.Header.Set("Authorization", "Bearer tok")
		req.Header.Set(auth.AccountHeader, "acct-2")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", rec.Code)
		}
	})
}
