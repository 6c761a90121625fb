package analytics

import (
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
)

const eventNamePrefix = "JUPITERONE_MCP"

// baseProperties are the base properties attached to a Mixpanel "track" event.
// DistinctID identifies a process run, not a user.
// InsertID deduplicates retried messages.
type baseProperties struct {
	Token      string `json:"token"`
	Time       int64  `json:"time"`
	DistinctID string `json:"distinct_id"`
	InsertID   string `json:"$insert_id"`
	Uptime     int64  `json:"uptime"`
}

type osInfoProperties struct {
	baseProperties
	OS          string `json:"os"`
	OSArch      string `json:"os_arch"`
	Environment string `json:"environment"`
}

type toolsProperties struct {
	baseProperties
	ToolUsed string `json:"tools_used"`
}

type queriesRejectedProperties struct {
	baseProperties
	ToolUsed string `json:"tools_used"`
	Failures int    `json:"failures"`
}

type TrackEvent struct {
	Event      string `json:"event"`
	Properties any    `json:"properties"`
}

func eventName(name string) string {
	return strings.Join([]string{eventNamePrefix, name}, "_")
}

func (a *Analytics) NewStartupEvent() TrackEvent {
	return TrackEvent{
		Event:      eventName("MCP_STARTUP"),
		Properties: a.getBaseProperties(),
	}
}

// NewOSInfoEvent reports the platform and the JupiterOne region derived from baseURL.
func (a *Analytics) NewOSInfoEvent(baseURL string) TrackEvent {
	return TrackEvent{
		Event: eventName("OS_INFO"),
		Properties: osInfoProperties{
			baseProperties: a.getBaseProperties(),
			OS:             runtime.GOOS,
			OSArch:         runtime.GOARCH,
			Environment:    jupiterone.Environment(baseURL),
		},
	}
}

func (a *Analytics) NewToolsEvent(toolsUsed string) TrackEvent {
	return TrackEvent{
		Event: eventName("TOOL_USED"),
		Properties: toolsProperties{
			baseProperties: a.getBaseProperties(),
			ToolUsed:       toolsUsed,
		},
	}
}

// NewQueriesRejectedEvent records a mutation refused because its queries did not validate.
func (a *Analytics) NewQueriesRejectedEvent(toolName string, failures int) TrackEvent {
	return TrackEvent{
		Event: eventName("QUERIES_REJECTED"),
		Properties: queriesRejectedProperties{
			baseProperties: a.getBaseProperties(),
			ToolUsed:       toolName,
			Failures:       failures,
		},
	}
}

func (a *Analytics) getBaseProperties() baseProperties {
	now := time.Now()
	return baseProperties{
		Token:      a.cfg.token,
		DistinctID: a.cfg.distinctID,
		Time:       now.UnixMilli(),
		InsertID:   newInsertID(),
		Uptime:     now.Unix() - a.cfg.startupTime,
	}
}

func newInsertID() string {
	insertID, err := uuid.NewV6()
	if err != nil {
		slog.Debug("error while generating insert id for analytics events", "error", err)
		return ""
	}
	return insertID.String()
}
