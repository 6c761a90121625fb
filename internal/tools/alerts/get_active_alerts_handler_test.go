package alerts_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	analytics "github.com/jupiterone/jupiterone-mcp/internal/analytics/mocks"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	j1 "github.com/jupiterone/jupiterone-mcp/internal/jupiterone/mocks"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
	"github.com/jupiterone/jupiterone-mcp/internal/tools/alerts"
)

func alertFixtures() []jupiterone.AlertInstance {
	return []jupiterone.AlertInstance{
		{
			ID:     "alert-1",
			RuleID: "rule-1",
			Level:  "HIGH",
			Status: jupiterone.AlertStatusActive,
			QuestionRuleInstance: &jupiterone.AlertRuleSummary{
				Name:        "Unencrypted data stores",
				Description: "Data stores without encryption",
				Tags:        []string{"security"},
			},
			LastEvaluationResult: &jupiterone.EvaluationResult{
				RawDataDescriptors: []jupiterone.RawDataDescriptor{{RecordCount: 7}},
			},
		},
		{
			ID:                 "alert-2",
			RuleID:             "rule-2",
			Level:              "LOW",
			Status:             jupiterone.AlertStatusActive,
			ReportRuleInstance: &jupiterone.AlertRuleSummary{Name: "Weekly report"},
		},
		{ID: "alert-3", RuleID: "rule-3", Status: jupiterone.AlertStatusActive},
	}
}

func TestGetActiveAlertsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := analytics.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolsEvent("get-active-alerts").AnyTimes()
	analyticsService.EXPECT().EmitEvent(gomock.Any()).AnyTimes()
	defer ctrl.Finish()

	t.Run("returns every active alert", func(t *testing.T) {
		client := j1.NewMockService(ctrl)
		client.EXPECT().GetAllAlertInstances(gomock.Any(), jupiterone.AlertStatusActive).Return(alertFixtures(), nil)

		handler := alerts.GetActiveAlertsHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), mcp.CallToolRequest{})

		require.NoError(t, err)
		require.False(t, result.IsError)

		var got struct {
			Total        int              `json:"total"`
			Returned     int              `json:"returned"`
			ActiveAlerts []map[string]any `json:"activeAlerts"`
		}
		require.NoError(t, json.Unmarshal([]byte(result.Content[0].(mcp.TextContent).Text), &got))
		assert.Equal(t, 3, got.Total)
		assert.Equal(t, 3, got.Returned)
		assert.Equal(t, "Unencrypted data stores", got.ActiveAlerts[0]["name"])
		assert.Equal(t, float64(7), got.ActiveAlerts[0]["recordCount"])
		assert.Equal(t, []any{"security"}, got.ActiveAlerts[0]["tags"])
		assert.Equal(t, "Weekly report", got.ActiveAlerts[1]["name"])
		assert.Equal(t, "Unknown", got.ActiveAlerts[2]["name"])
		assert.Equal(t, float64(0), got.ActiveAlerts[2]["recordCount"])
		assert.Equal(t, []any{}, got.ActiveAlerts[2]["outputs"])
	})

	t.Run("limit truncates but keeps total", func(t *testing.T) {
		client := j1.NewMockService(ctrl)
		client.EXPECT().GetAllAlertInstances(gomock.Any(), jupiterone.AlertStatusActive).Return(alertFixtures(), nil)

		handler := alerts.GetActiveAlertsHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: map[string]any{"limit": 1}},
		})

		require.NoError(t, err)
		require.False(t, result.IsError)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(result.Content[0].(mcp.TextContent).Text), &got))
		assert.Equal(t, float64(3), got["total"])
		assert.Equal(t, float64(1), got["returned"])
	})

	t.Run("limit out of range", func(t *testing.T) {
		client := j1.NewMockService(ctrl)

		handler := alerts.GetActiveAlertsHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: map[string]any{"limit": 0.5}},
		})

		require.NoError(t, err)
		if result == nil || !result.IsError {
			t.Error("Expected error result for invalid limit")
		}
	})

	t.Run("api failure", func(t *testing.T) {
		client := j1.NewMockService(ctrl)
		client.EXPECT().GetAllAlertInstances(gomock.Any(), jupiterone.AlertStatusActive).Return(nil, errors.New("unauthorized"))

		handler := alerts.GetActiveAlertsHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), mcp.CallToolRequest{})

		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Equal(t,
			"Error getting active alerts: unauthorized. Please check your JupiterOne API credentials and connection.",
			result.Content[0].(mcp.TextContent).Text)
	})

	t.Run("invalid arguments binding", func(t *testing.T) {
		client := j1.NewMockService(ctrl)

		handler := alerts.GetActiveAlertsHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: "invalid string instead of map"},
		})

		require.NoError(t, err)
		if result == nil || !result.IsError {
			t.Error("Expected error result for invalid arguments")
		}
	})
}
