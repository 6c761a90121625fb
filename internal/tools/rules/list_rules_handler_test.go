package rules_test

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
	"github.com/jupiterone/jupiterone-mcp/internal/tools/rules"
)

func TestListRulesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := newAnalytics(ctrl, "list-rules")
	defer ctrl.Finish()

	page := &jupiterone.RuleInstancePage{
		QuestionInstances: []jupiterone.QuestionRuleInstance{
			{ID: "rule-1", Name: "New admin users", PollingInterval: "ONE_DAY", Tags: []string{"iam"}, LatestAlertIsActive: ptr(true)},
			{ID: "rule-2", Name: "Public buckets", PollingInterval: "ONE_HOUR"},
		},
		PageInfo: jupiterone.PageInfo{EndCursor: "next", HasNextPage: true},
	}

	t.Run("default page size", func(t *testing.T) {
		client := j1.NewMockService(ctrl)
		client.EXPECT().ListRuleInstances(gomock.Any(), 100, "").Return(page, nil)

		handler := rules.ListRulesHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), callRequest(map[string]any{}))

		require.NoError(t, err)
		require.False(t, result.IsError)

		got := decode(t, result)
		assert.Equal(t, float64(2), got["returned"])
		assert.Equal(t, map[string]any{"endCursor": "next", "hasNextPage": true}, got["pageInfo"])
		first := got["rules"].([]any)[0].(map[string]any)
		assert.Equal(t, "rule-1", first["id"])
		assert.Equal(t, true, first["latestAlertIsActive"])
	})

	t.Run("limit and cursor are forwarded", func(t *testing.T) {
		client := j1.NewMockService(ctrl)
		client.EXPECT().ListRuleInstances(gomock.Any(), 25, "abc").Return(&jupiterone.RuleInstancePage{}, nil)

		handler := rules.ListRulesHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), callRequest(map[string]any{"limit": 25, "cursor": "abc"}))

		require.NoError(t, err)
		require.False(t, result.IsError)
		assert.Equal(t, []any{}, decode(t, result)["rules"])
	})

	t.Run("limit above maximum", func(t *testing.T) {
		client := j1.NewMockService(ctrl)

		handler := rules.ListRulesHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), callRequest(map[string]any{"limit": 1001}))

		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Contains(t, text(t, result), "limit must be 1,000 or less")
	})

	t.Run("api failure", func(t *testing.T) {
		client := j1.NewMockService(ctrl)
		client.EXPECT().ListRuleInstances(gomock.Any(), 100, "").Return(nil, errors.New("unauthorized"))

		handler := rules.ListRulesHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), callRequest(nil))

		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Equal(t, "Error listing rules: unauthorized", text(t, result))
	})

	t.Run("nil analytics service", func(t *testing.T) {
		client := j1.NewMockService(ctrl)

		handler := rules.ListRulesHandler(&tools.ToolDependencies{Client: client})
		result, err := handler(context.Background(), callRequest(nil))

		require.NoError(t, err)
		if result == nil || !result.IsError {
			t.Error("Expected error result for missing analytics service")
		}
	})
}

func TestGetRuleDetailsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := newAnalytics(ctrl, "get-rule-details")
	defer ctrl.Finish()

	instances := []jupiterone.QuestionRuleInstance{
		{ID: "rule-1", Name: "First"},
		{ID: "rule-2", Name: "Second", Question: &jupiterone.Question{Queries: []jupiterone.QuestionQuery{{Name: "query0", Query: "FIND Host"}}}},
	}

	t.Run("found", func(t *testing.T) {
		client := j1.NewMockService(ctrl)
		client.EXPECT().GetAllRuleInstances(gomock.Any()).Return(instances, nil)

		handler := rules.GetRuleDetailsHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), callRequest(map[string]any{"ruleId": "rule-2"}))

		require.NoError(t, err)
		require.False(t, result.IsError)
		got := decode(t, result)
		assert.Equal(t, "Second", got["name"])
		assert.NotNil(t, got["question"])
	})

	t.Run("not found", func(t *testing.T) {
		client := j1.NewMockService(ctrl)
		client.EXPECT().GetAllRuleInstances(gomock.Any()).Return(instances, nil)

		handler := rules.GetRuleDetailsHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), callRequest(map[string]any{"ruleId": "missing"}))

		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Equal(t, "Rule with ID missing not found", text(t, result))
	})

	t.Run("missing rule id", func(t *testing.T) {
		client := j1.NewMockService(ctrl)

		handler := rules.GetRuleDetailsHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), callRequest(map[string]any{}))

		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Contains(t, text(t, result), "ruleId is a required field")
	})

	t.Run("api failure", func(t *testing.T) {
		client := j1.NewMockService(ctrl)
		client.EXPECT().GetAllRuleInstances(gomock.Any()).Return(nil, errors.New("boom"))

		handler := rules.GetRuleDetailsHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), callRequest(map[string]any{"ruleId": "rule-1"}))

		require.NoError(t, err)
		assert.Equal(t, "Error getting rule details: boom", text(t, result))
	})
}
