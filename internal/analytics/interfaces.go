package analytics

import (
	"io"
	"net/http"
)

//go:generate mockgen -destination=mocks/mock_analytics.go -package=analytics_mocks github.com/jupiterone/jupiterone-mcp/internal/analytics Service
//go:generate mockgen -destination=mocks/mock_http_client.go -package=analytics_mocks github.com/jupiterone/jupiterone-mcp/internal/analytics HTTPClient

// Service emits usage events.
type Service interface {
	Disable()
	Enable()
	IsEnabled() bool
	EmitEvent(event TrackEvent)
	NewStartupEvent() TrackEvent
	NewOSInfoEvent(baseURL string) TrackEvent
	NewToolsEvent(toolsUsed string) TrackEvent
	NewQueriesRejectedEvent(toolName string, failures int) TrackEvent
}

// HTTPClient is the subset of *http.Client used to post events.
type HTTPClient interface {
	Post(url, contentType string, body io.Reader) (*http.Response, error)
}
