// Package analytics sends opt-in usage events to a Mixpanel compatible /track endpoint.
package analytics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const requestTimeout = 5 * time.Second

type analyticsConfig struct {
	token       string
	endpoint    string
	distinctID  string
	startupTime int64
}

// Analytics is the default Service implementation. Events are dropped while disabled.
type Analytics struct {
	cfg      analyticsConfig
	client   HTTPClient
	disabled atomic.Bool
}

// NewAnalytics returns an enabled service posting to endpoint.
// A nil client selects an http.Client with a short timeout.
func NewAnalytics(token, endpoint string, client HTTPClient) (*Analytics, error) {
	distinctID, err := uuid.NewV6()
	if err != nil {
		return nil, fmt.Errorf("error while generating distinct id for analytics purpose: %w", err)
	}
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	return &Analytics{
		cfg: analyticsConfig{
			token:       token,
			endpoint:    endpoint,
			distinctID:  distinctID.String(),
			startupTime: time.Now().Unix(),
		},
		client: client,
	}, nil
}

// NewDisabled returns a service that never sends anything until enabled.
func NewDisabled() *Analytics {
	a := &Analytics{cfg: analyticsConfig{startupTime: time.Now().Unix()}}
	a.disabled.Store(true)
	return a
}

func (a *Analytics) Disable() {
	a.disabled.Store(true)
}

// Enable turns event delivery back on. It is a no-op without an endpoint.
func (a *Analytics) Enable() {
	if a.cfg.endpoint == "" || a.client == nil {
		return
	}
	a.disabled.Store(false)
}

func (a *Analytics) IsEnabled() bool {
	return !a.disabled.Load()
}

// EmitEvent sends a single event. Failures are logged and never surfaced to callers.
func (a *Analytics) EmitEvent(event TrackEvent) {
	if !a.IsEnabled() {
		return
	}

	slog.Debug("Sending analytics event", "event", event.Event)
	if err := a.sendTrackEvent([]TrackEvent{event}); err != nil {
		slog.Debug("Analytics error", "error", err)
	}
}

func (a *Analytics) sendTrackEvent(events []TrackEvent) error {
	b, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("error appear while marshalling track event: %w", err)
	}
	url := strings.TrimRight(a.cfg.endpoint, "/") + "/track"

	resp, err := a.client.Post(url, "application/json; charset=utf-8", bytes.NewBuffer(b))
	if err != nil {
		return fmt.Errorf("error while emitting analytics: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("analytics endpoint returned %s: %s", resp.Status, string(bodyBytes))
	}

	// Mixpanel answers 1 on success and 0 on rejection.
	var data int32
	_ = json.Unmarshal(bodyBytes, &data)

	slog.Debug("Analytics response", "status", resp.Status, "data", data)
	return nil
}
