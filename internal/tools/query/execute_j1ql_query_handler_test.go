package query_test

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
	"github.com/jupiterone/jupiterone-mcp/internal/tools/query"
)

func TestExecuteJ1QLQueryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := newAnalytics(ctrl, "execute-j1ql-query")
	defer ctrl.Finish()

	t.Run("returns results with metadata", func(t *testing.T) {
		client := j1.NewMockService(ctrl)
		client.EXPECT().ExecuteJ1QLQuery(gomock.Any(), jupiterone.QueryRequest{Query: "FIND User THAT HAS Device LIMIT 10"}).
			Return(&jupiterone.QueryResponse{Type: "list", Data: []any{map[string]any{"id": "u1"}}, Cursor: "next"}, nil)

		handler := query.ExecuteJ1QLQueryHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), callRequest(map[string]any{"query": "FIND User THAT HAS Device LIMIT 10"}))

		require.NoError(t, err)
		require.False(t, result.IsError, text(t, result))

		got := decode(t, result)
		assert.Equal(t, tools.SummaryQueryExecuted, got["summary"])
		data := got["data"].(map[string]any)
		assert.Equal(t, "next", data["results"].(map[string]any)["cursor"])
		metadata := data["metadata"].(map[string]any)
		assert.Equal(t, true, metadata["hasLimit"])
		assert.Equal(t, []any{"User"}, metadata["entityClasses"])
		assert.Equal(t, []any{"HAS"}, metadata["relationships"])
		assert.NotEmpty(t, got["next_steps"])
	})

	t.Run("passes paging, variables and flags", func(t *testing.T) {
		includeDeleted := true
		client := j1.NewMockService(ctrl)
		client.EXPECT().ExecuteJ1QLQuery(gomock.Any(), jupiterone.QueryRequest{
			Query:        "FIND User WITH name = $name",
			Variables:    map[string]any{"name": "alice", "minAge": int64(3)},
			Cursor:       "c1",
			ScopeFilters: []map[string]any{{"_type": "okta_user"}},
			Flags:        &jupiterone.QueryFlags{IncludeDeleted: &includeDeleted, DeferredResponse: "DISABLED"},
		}).Return(&jupiterone.QueryResponse{Type: "list", Data: []any{}}, nil)

		handler := query.ExecuteJ1QLQueryHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), callRequest(map[string]any{
			"query":            "FIND User WITH name = $name",
			"variables":        map[string]any{"name": "alice", "minAge": 3},
			"cursor":           "c1",
			"scopeFilters":     []any{map[string]any{"_type": "okta_user"}},
			"includeDeleted":   true,
			"deferredResponse": "DISABLED",
		}))

		require.NoError(t, err)
		require.False(t, result.IsError, text(t, result))
	})

	t.Run("engine error carries a suggestion", func(t *testing.T) {
		client := j1.NewMockService(ctrl)
		client.EXPECT().ExecuteJ1QLQuery(gomock.Any(), gomock.Any()).
			Return(nil, errors.New(`graphql: Error parsing query. Unexpected token "count" at line 1 column 14`))

		handler := query.ExecuteJ1QLQueryHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), callRequest(map[string]any{"query": "FIND User AS count"}))

		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Equal(t,
			"Error executing query: Error parsing query. Unexpected token \"count\" at line 1 column 14\n\n"+
				"Suggestion: Cannot use reserved keyword \"count\" as an alias. Choose a different name.",
			text(t, result))
	})

	t.Run("invalid deferred response", func(t *testing.T) {
		client := j1.NewMockService(ctrl)

		handler := query.ExecuteJ1QLQueryHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), callRequest(map[string]any{"query": "FIND User", "deferredResponse": "LATER"}))

		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Contains(t, text(t, result), "deferredResponse must be one of [DISABLED FORCE]")
	})

	t.Run("missing query", func(t *testing.T) {
		client := j1.NewMockService(ctrl)

		handler := query.ExecuteJ1QLQueryHandler(&tools.ToolDependencies{Client: client, AnalyticsService: analyticsService})
		result, err := handler(context.Background(), callRequest(nil))

		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Contains(t, text(t, result), "query is a required field")
	})
}
