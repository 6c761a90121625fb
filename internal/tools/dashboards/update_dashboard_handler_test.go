package dashboards_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	j1 "github.com/jupiterone/jupiterone-mcp/internal/jupiterone/mocks"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
	"github.com/jupiterone/jupiterone-mcp/internal/tools/dashboards"
)

func layoutItem(id string, x, y, w, h int) map[string]any {
	return map[string]any{"i": id, "x": x, "y": y, "w": w, "h": h, "moved": false, "static": false}
}

func TestUpdateDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := newAnalytics(ctrl, "update-dashboard")
	defer ctrl.Finish()

	t.Run("patches the layout", func(t *testing.T) {
		client := j1.NewMockService(ctrl)
		want := jupiterone.DashboardLayouts{
			XS: []jupiterone.LayoutItem{},
			SM: []jupiterone.LayoutItem{},
			MD: []jupiterone.LayoutItem{{I: "w1", W: 2, H: 1}, {I: "w2", X: 2, W: 4, H: 2}},
			LG: []jupiterone.LayoutItem{},
			XL: []jupiterone.LayoutItem{},
		}
		client.EXPECT().PatchDashboardLayouts(gomock.Any(), "d1", want).
			Return(&jupiterone.DashboardDetails{Dashboard: jupiterone.Dashboard{ID: "d1", Name: "Security"}, Layouts: want}, nil)
		client.EXPECT().GetAccountInfo(gomock.Any()).Return(&jupiterone.AccountInfo{AccountSubdomain: "acme"}, nil)

		handler := dashboards.UpdateDashboardHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), callRequest(map[string]any{
			"dashboardId": "d1",
			"layouts": map[string]any{
				"md": []any{layoutItem("w1", 0, 0, 2, 1), layoutItem("w2", 2, 0, 4, 2)},
			},
		}))

		require.NoError(t, err)
		require.False(t, result.IsError, text(t, result))

		got := decode(t, result)
		assert.Equal(t, "Security", got["name"])
		assert.Len(t, got["layouts"].(map[string]any)["md"], 2)
		assert.Equal(t, "https://acme.apps.us.jupiterone.io/insights/dashboards/d1", got["url"])
	})

	t.Run("widget without size", func(t *testing.T) {
		client := j1.NewMockService(ctrl)

		handler := dashboards.UpdateDashboardHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), callRequest(map[string]any{
			"dashboardId": "d1",
			"layouts":     map[string]any{"md": []any{map[string]any{"i": "w1"}}},
		}))

		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Contains(t, text(t, result), "w must be 1 or greater")
	})

	t.Run("duplicate widget in a breakpoint", func(t *testing.T) {
		client := j1.NewMockService(ctrl)

		handler := dashboards.UpdateDashboardHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), callRequest(map[string]any{
			"dashboardId": "d1",
			"layouts":     map[string]any{"lg": []any{layoutItem("w1", 0, 0, 1, 1), layoutItem("w1", 1, 0, 1, 1)}},
		}))

		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Equal(t, "invalid arguments: widget w1 appears more than once in the lg layout", text(t, result))
	})

	t.Run("api failure", func(t *testing.T) {
		client := j1.NewMockService(ctrl)
		client.EXPECT().PatchDashboardLayouts(gomock.Any(), "d1", gomock.Any()).Return(nil, errors.New("not found"))

		handler := dashboards.UpdateDashboardHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), callRequest(map[string]any{"dashboardId": "d1"}))

		require.NoError(t, err)
		assert.Equal(t, "Error updating dashboard: not found", text(t, result))
	})
}
