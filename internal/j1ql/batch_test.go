package j1ql_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jupiterone/jupiterone-mcp/internal/j1ql"
	"github.com/jupiterone/jupiterone-mcp/internal/j1ql/mocks"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// byQuery answers every query from a fixed table keyed by the executed text.
func byQuery(answers map[string]error) func(context.Context, jupiterone.QueryRequest) (*jupiterone.QueryResponse, error) {
	return func(_ context.Context, req jupiterone.QueryRequest) (*jupiterone.QueryResponse, error) {
		if err := answers[req.Query]; err != nil {
			return nil, err
		}
		return &jupiterone.QueryResponse{Type: "list", Data: []any{map[string]any{"id": 1}}}, nil
	}
}

func TestValidateNamedQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("all valid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exec := j1ql_mocks.NewMockExecutor(ctrl)
		exec.EXPECT().ExecuteJ1QLQuery(gomock.Any(), gomock.Any()).DoAndReturn(byQuery(nil)).Times(3)

		failures := j1ql.NewValidator(exec).ValidateNamedQueries(ctx, []j1ql.NamedQuery{
			{Name: "query0", Query: "FIND User"},
			{Name: "query1", Query: "FIND Host"},
			{Name: "query2", Query: "FIND Device"},
		})
		assert.Empty(t, failures)
	})

	t.Run("failures keep input order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exec := j1ql_mocks.NewMockExecutor(ctrl)
		exec.EXPECT().ExecuteJ1QLQuery(gomock.Any(), gomock.Any()).DoAndReturn(byQuery(map[string]error{
			"FIND Host AS count LIMIT 5": errors.New(`graphql: Error parsing query. Unexpected token "count" at line 1 column 14`),
			"FIND Bogus LIMIT 5":         errors.New("Unknown property: bogus"),
		})).Times(4)

		failures := j1ql.NewValidator(exec, j1ql.WithConcurrency(2)).ValidateNamedQueries(ctx, []j1ql.NamedQuery{
			{Name: "users", Query: "FIND User"},
			{Name: "hosts", Query: "FIND Host AS count"},
			{Name: "devices", Query: "FIND Device"},
			{Name: "bogus", Query: "FIND Bogus"},
		})

		require.Len(t, failures, 2)
		assert.Equal(t, "hosts", failures[0].QueryName)
		assert.Equal(t, reservedCountSuggestion, failures[0].Suggestion)
		assert.Equal(t, "bogus", failures[1].QueryName)
		assert.Equal(t, "Unknown property: bogus", failures[1].Error)
	})

	t.Run("empty query is reported without execution", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exec := j1ql_mocks.NewMockExecutor(ctrl)

		failures := j1ql.NewValidator(exec).ValidateNamedQueries(ctx, []j1ql.NamedQuery{{Name: "query0", Query: "  "}})
		require.Len(t, failures, 1)
		assert.Equal(t, "Query is empty", failures[0].Error)
	})

	t.Run("concurrency is bounded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exec := j1ql_mocks.NewMockExecutor(ctrl)

		var inFlight, peak atomic.Int32
		exec.EXPECT().ExecuteJ1QLQuery(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ jupiterone.QueryRequest) (*jupiterone.QueryResponse, error) {
				n := inFlight.Add(1)
				defer inFlight.Add(-1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				return &jupiterone.QueryResponse{Data: []any{1}}, nil
			}).Times(8)

		queries := make([]j1ql.NamedQuery, 8)
		for i := range queries {
			queries[i] = j1ql.NamedQuery{Name: "q", Query: "FIND User"}
		}
		assert.Empty(t, j1ql.NewValidator(exec, j1ql.WithConcurrency(2)).ValidateNamedQueries(ctx, queries))
		assert.LessOrEqual(t, peak.Load(), int32(2))
	})

	t.Run("zero value validator does not block", func(t *testing.T) {
		var v j1ql.Validator
		failures := v.ValidateNamedQueries(ctx, []j1ql.NamedQuery{{Name: "query0", Query: "FIND User"}})
		require.Len(t, failures, 1)
		assert.Equal(t, "query executor is not configured", failures[0].Error)
	})
}

func TestFormatFailures(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		got := j1ql.FormatFailures([]j1ql.QueryFailure{{QueryName: "query0", Error: "Unknown property: x", Suggestion: "Run discovery"}})
		want := "Query validation failed for 1 query. Fix the following before retrying:\n" +
			"\nQuery \"query0\":\n" +
			"  Error: Unknown property: x\n" +
			"  Suggestion: Run discovery"
		assert.Equal(t, want, got)
	})

	t.Run("multiline suggestions are indented", func(t *testing.T) {
		got := j1ql.FormatFailures([]j1ql.QueryFailure{
			{QueryName: "a", Error: "e1", Suggestion: "s1"},
			{QueryName: "b", Error: "e2", Suggestion: "line one\nline two"},
		})
		newGoldie(t).Assert(t, "format_failures", []byte(got))
		assert.True(t, strings.HasPrefix(got, "Query validation failed for 2 queries."))
	})
}
