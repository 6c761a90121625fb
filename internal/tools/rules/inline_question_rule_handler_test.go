package rules_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	analytics "github.com/jupiterone/jupiterone-mcp/internal/analytics/mocks"
	"github.com/jupiterone/jupiterone-mcp/internal/config"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	j1 "github.com/jupiterone/jupiterone-mcp/internal/jupiterone/mocks"
	"github.com/jupiterone/jupiterone-mcp/internal/tools"
	"github.com/jupiterone/jupiterone-mcp/internal/tools/rules"
)

func ruleArgs(query string) map[string]any {
	return map[string]any{
		"name":                            "New admin users",
		"description":                     "Alert on new admin users",
		"pollingInterval":                 "ONE_DAY",
		"outputs":                         []any{"alertLevel"},
		"triggerActionsOnNewEntitiesOnly": true,
		"queries": []any{
			map[string]any{"name": "admins", "query": query},
		},
		"operations": []any{
			map[string]any{
				"when": map[string]any{
					"type":      "FILTER",
					"condition": []any{"AND", []any{"queries.admins.total", ">", 0}},
				},
				"actions": []any{
					map[string]any{"type": "SET_PROPERTY", "targetProperty": "alertLevel", "targetValue": "HIGH"},
					map[string]any{"type": "CREATE_ALERT"},
				},
			},
		},
	}
}

func validQuery(client *j1.MockService, query string) {
	client.EXPECT().
		ExecuteJ1QLQuery(gomock.Any(), jupiterone.QueryRequest{Query: query}).
		Return(&jupiterone.QueryResponse{Type: "list", Data: []any{map[string]any{"id": "u1"}}}, nil)
}

func TestCreateInlineQuestionRuleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := newAnalytics(ctrl, "create-inline-question-rule")
	defer ctrl.Finish()

	cfg := &config.Config{BaseURL: "https://graphql.us.jupiterone.io"}

	t.Run("creates the rule after validating its queries", func(t *testing.T) {
		client := j1.NewMockService(ctrl)
		validQuery(client, "FIND User WITH admin = true LIMIT 5")
		client.EXPECT().
			CreateInlineQuestionRuleInstance(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input jupiterone.InlineQuestionRuleInput) (*jupiterone.QuestionRuleInstance, error) {
				assert.Empty(t, input.ID)
				assert.Equal(t, "ONE_DAY", input.PollingInterval)
				assert.Equal(t, "FIND User WITH admin = true", input.Question.Queries[0].Query)
				assert.Equal(t, []any{"queries.admins.total", ">", int64(0)}, input.Operations[0].When.Condition[1])
				require.NotNil(t, input.TriggerActionsOnNewEntitiesOnly)
				assert.True(t, *input.TriggerActionsOnNewEntitiesOnly)
				return &jupiterone.QuestionRuleInstance{ID: "rule-9", Name: input.Name, PollingInterval: input.PollingInterval}, nil
			})
		client.EXPECT().GetAccountInfo(gomock.Any()).Return(&jupiterone.AccountInfo{AccountSubdomain: "acme"}, nil)

		handler := rules.CreateInlineQuestionRuleHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService, Config: cfg})
		result, err := handler(context.Background(), callRequest(ruleArgs("FIND User WITH admin = true")))

		require.NoError(t, err)
		require.False(t, result.IsError, text(t, result))

		got := decode(t, result)
		assert.Equal(t, true, got["success"])
		assert.Equal(t, "rule-9", got["rule"].(map[string]any)["id"])
		assert.Equal(t, "https://acme.apps.us.jupiterone.io/alerts/rules/rule-9", got["url"])
	})

	t.Run("invalid query rejects the rule", func(t *testing.T) {
		client := j1.NewMockService(ctrl)
		client.EXPECT().
			ExecuteJ1QLQuery(gomock.Any(), jupiterone.QueryRequest{Query: "FIND user WITH admin = yes LIMIT 5"}).
			Return(nil, errors.New("graphql: J1QL Query is invalid. Please check the syntax"))

		asService := analytics.NewMockService(ctrl)
		asService.EXPECT().NewToolsEvent("create-inline-question-rule").AnyTimes()
		asService.EXPECT().NewQueriesRejectedEvent("create-inline-question-rule", 1)
		asService.EXPECT().EmitEvent(gomock.Any()).Times(2)

		handler := rules.CreateInlineQuestionRuleHandler(&tools.ToolDependencies{Client: client, AnalyticsService: asService, Config: cfg})
		result, err := handler(context.Background(), callRequest(ruleArgs("FIND user WITH admin = yes")))

		require.NoError(t, err)
		require.True(t, result.IsError)
		msg := text(t, result)
		assert.Contains(t, msg, `Query "admins"`)
		assert.Contains(t, msg, `Use "true" or "false" for boolean values`)
	})

	t.Run("invalid polling interval", func(t *testing.T) {
		client := j1.NewMockService(ctrl)

		args := ruleArgs("FIND User")
		args["pollingInterval"] = "EVERY_MINUTE"

		handler := rules.CreateInlineQuestionRuleHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService, Config: cfg})
		result, err := handler(context.Background(), callRequest(args))

		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Contains(t, text(t, result), "pollingInterval must be one of")
	})

	t.Run("missing queries", func(t *testing.T) {
		client := j1.NewMockService(ctrl)

		args := ruleArgs("FIND User")
		delete(args, "queries")

		handler := rules.CreateInlineQuestionRuleHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService, Config: cfg})
		result, err := handler(context.Background(), callRequest(args))

		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Contains(t, text(t, result), "queries is a required field")
	})

	t.Run("when block must be a filter", func(t *testing.T) {
		client := j1.NewMockService(ctrl)

		args := ruleArgs("FIND User")
		args["operations"].([]any)[0].(map[string]any)["when"].(map[string]any)["type"] = "SCHEDULE"

		handler := rules.CreateInlineQuestionRuleHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService, Config: cfg})
		result, err := handler(context.Background(), callRequest(args))

		require.NoError(t, err)
		require.True(t, result.IsError)
	})

	t.Run("api failure", func(t *testing.T) {
		client := j1.NewMockService(ctrl)
		validQuery(client, "FIND User LIMIT 5")
		client.EXPECT().CreateInlineQuestionRuleInstance(gomock.Any(), gomock.Any()).Return(nil, errors.New("Invalid conjunction operator"))

		handler := rules.CreateInlineQuestionRuleHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService, Config: cfg})
		result, err := handler(context.Background(), callRequest(ruleArgs("FIND User")))

		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Equal(t, "Error creating inline question rule: Invalid conjunction operator", text(t, result))
	})
}

func TestUpdateInlineQuestionRuleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := newAnalytics(ctrl, "update-inline-question-rule")
	defer ctrl.Finish()

	t.Run("updates the rule by id", func(t *testing.T) {
		client := j1.NewMockService(ctrl)
		validQuery(client, "FIND User LIMIT 5")
		client.EXPECT().
			UpdateInlineQuestionRuleInstance(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input jupiterone.InlineQuestionRuleInput) (*jupiterone.QuestionRuleInstance, error) {
				assert.Equal(t, "rule-1", input.ID)
				return &jupiterone.QuestionRuleInstance{ID: input.ID, Name: input.Name}, nil
			})
		client.EXPECT().GetAccountInfo(gomock.Any()).Return(nil, errors.New("no account"))

		args := ruleArgs("FIND User")
		args["id"] = "rule-1"

		handler := rules.UpdateInlineQuestionRuleHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), callRequest(args))

		require.NoError(t, err)
		require.False(t, result.IsError, text(t, result))
		assert.Equal(t, "https://j1.apps.us.jupiterone.io/alerts/rules/rule-1", decode(t, result)["url"])
	})

	t.Run("missing id", func(t *testing.T) {
		client := j1.NewMockService(ctrl)

		handler := rules.UpdateInlineQuestionRuleHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), callRequest(ruleArgs("FIND User")))

		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Contains(t, text(t, result), "id is a required field")
	})

	t.Run("api failure", func(t *testing.T) {
		client := j1.NewMockService(ctrl)
		validQuery(client, "FIND User LIMIT 5")
		client.EXPECT().UpdateInlineQuestionRuleInstance(gomock.Any(), gomock.Any()).Return(nil, errors.New("not found"))

		args := ruleArgs("FIND User")
		args["id"] = "rule-1"

		handler := rules.UpdateInlineQuestionRuleHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), callRequest(args))

		require.NoError(t, err)
		assert.Equal(t, "Error updating inline question rule: not found", text(t, result))
	})
}
