package jupiterone_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*jupiterone.Client, *testutil.GraphQLServer) {
	t.Helper()
	srv := testutil.NewGraphQLServer(t)
	client := jupiterone.NewClient(jupiterone.Options{
		BaseURL:   srv.URL,
		Token:     "test-api-key",
		AccountID: "test-account-id",
		Version:   "1.2.3",
	})
	return client, srv
}

func TestClientHeaders(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Respond("account", map[string]any{"iamGetAccount": map[string]any{"accountId": "test-account-id"}})

	_, err := client.GetAccountInfo(t.Context())
	require.NoError(t, err)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "Bearer test-api-key", reqs[0].Header.Get("Authorization"))
	assert.Equal(t, "test-account-id", reqs[0].Header.Get("LifeOmic-Account"))
	assert.Equal(t, "jupiterone-mcp/1.2.3", reqs[0].Header.Get("User-Agent"))
	assert.Contains(t, reqs[0].Header.Get("Content-Type"), "application/json")
}

func TestWithCredentials(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Respond("account", map[string]any{"iamGetAccount": map[string]any{"accountId": "other"}})

	t.Run("overrides token and account", func(t *testing.T) {
		_, err := client.WithCredentials("per-request-token", "other").GetAccountInfo(t.Context())
		require.NoError(t, err)

		reqs := srv.Requests()
		last := reqs[len(reqs)-1]
		assert.Equal(t, "Bearer per-request-token", last.Header.Get("Authorization"))
		assert.Equal(t, "other", last.Header.Get("LifeOmic-Account"))
	})

	t.Run("empty values keep the original credentials", func(t *testing.T) {
		_, err := client.WithCredentials("", "").GetAccountInfo(t.Context())
		require.NoError(t, err)

		reqs := srv.Requests()
		last := reqs[len(reqs)-1]
		assert.Equal(t, "Bearer test-api-key", last.Header.Get("Authorization"))
		assert.Equal(t, "test-account-id", last.Header.Get("LifeOmic-Account"))
	})

	t.Run("original client is unchanged", func(t *testing.T) {
		_ = client.WithCredentials("x", "y")
		_, err := client.GetAccountInfo(t.Context())
		require.NoError(t, err)

		reqs := srv.Requests()
		assert.Equal(t, "Bearer test-api-key", reqs[len(reqs)-1].Header.Get("Authorization"))
	})
}

func TestTestConnection(t *testing.T) {
	t.Run("returns true when the account query succeeds", func(t *testing.T) {
		client, srv := newTestClient(t)
		srv.Respond("account", map[string]any{"iamGetAccount": map[string]any{"accountId": "test-account-id", "accountName": "Test Account"}})

		assert.True(t, client.TestConnection(t.Context()))

		info, err := client.GetAccountInfo(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "Test Account", info.AccountName)
	})

	t.Run("returns false when the account query fails", func(t *testing.T) {
		client, srv := newTestClient(t)
		srv.Fail("account", "Unauthorized")

		assert.False(t, client.TestConnection(t.Context()))
	})
}

func TestAPIError(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Fail("J1QL", `Unexpected token "count"`)

	_, err := client.ExecuteJ1QLQuery(t.Context(), jupiterone.QueryRequest{Query: "FIND User AS count"})
	require.Error(t, err)
	assert.True(t, jupiterone.IsAPIError(err))
	assert.Equal(t, `Unexpected token "count"`, err.Error())

	var apiErr *jupiterone.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "queryV1", apiErr.Operation)
}

func TestGetAllAlertInstances(t *testing.T) {
	client, srv := newTestClient(t)

	srv.Handle("listAlertInstances", func(req testutil.GraphQLRequest) (any, string) {
		assert.Equal(t, "ACTIVE", req.Variables["alertStatus"])
		assert.EqualValues(t, 100, req.Variables["limit"])

		if req.Variables["cursor"] == nil {
			return map[string]any{"listAlertInstances": map[string]any{
				"instances": []map[string]any{{"id": "a1", "status": "ACTIVE"}},
				"pageInfo":  map[string]any{"endCursor": "c1", "hasNextPage": true},
			}}, ""
		}
		assert.Equal(t, "c1", req.Variables["cursor"])
		return map[string]any{"listAlertInstances": map[string]any{
			"instances": []map[string]any{{"id": "a2", "status": "ACTIVE"}},
			"pageInfo":  map[string]any{"endCursor": "", "hasNextPage": false},
		}}, ""
	})

	alerts, err := client.GetAllAlertInstances(t.Context(), jupiterone.AlertStatusActive)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "a1", alerts[0].ID)
	assert.Equal(t, "a2", alerts[1].ID)
	assert.Len(t, srv.Requests(), 2)
}

func TestGetAllRuleInstances(t *testing.T) {
	t.Run("stops when the cursor is empty", func(t *testing.T) {
		client, srv := newTestClient(t)
		srv.Respond("listRuleInstances", map[string]any{"listRuleInstances": map[string]any{
			"questionInstances": []map[string]any{{"id": "r1", "name": "rule"}},
			"pageInfo":          map[string]any{"endCursor": "", "hasNextPage": true},
		}})

		rules, err := client.GetAllRuleInstances(t.Context())
		require.NoError(t, err)
		assert.Len(t, rules, 1)
		assert.Len(t, srv.Requests(), 1)
	})

	t.Run("missing payload is an error", func(t *testing.T) {
		client, srv := newTestClient(t)
		srv.Respond("listRuleInstances", map[string]any{"listRuleInstances": nil})

		_, err := client.GetAllRuleInstances(t.Context())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid response structure")
	})
}

func TestRuleMutations(t *testing.T) {
	client, srv := newTestClient(t)

	srv.Handle("createInlineQuestionRuleInstance", func(req testutil.GraphQLRequest) (any, string) {
		instance := req.Variables["instance"].(map[string]any)
		assert.NotContains(t, instance, "id")
		assert.Equal(t, "ONE_DAY", instance["pollingInterval"])
		return map[string]any{"createInlineQuestionRuleInstance": map[string]any{"id": "new-rule", "name": instance["name"]}}, ""
	})
	srv.Handle("UpdateInlineQuestionRuleInstance", func(req testutil.GraphQLRequest) (any, string) {
		instance := req.Variables["instance"].(map[string]any)
		assert.Equal(t, "rule-1", instance["id"])
		return map[string]any{"updateInlineQuestionRuleInstance": map[string]any{"id": "rule-1", "name": instance["name"]}}, ""
	})
	srv.Respond("DeleteRuleInstance", map[string]any{"deleteRuleInstance": map[string]any{"id": "rule-1"}})
	srv.Respond("evaluateRuleInstance", map[string]any{"evaluateRuleInstance": map[string]any{"id": "eval-1", "__typename": "RuleEvaluation"}})

	input := jupiterone.InlineQuestionRuleInput{
		Name:            "Users without MFA",
		PollingInterval: "ONE_DAY",
		Question:        jupiterone.Question{Queries: []jupiterone.QuestionQuery{{Name: "users", Query: "FIND User WITH mfaEnabled = false"}}},
	}

	created, err := client.CreateInlineQuestionRuleInstance(t.Context(), input)
	require.NoError(t, err)
	assert.Equal(t, "new-rule", created.ID)

	_, err = client.UpdateInlineQuestionRuleInstance(t.Context(), input)
	require.Error(t, err, "update without id")

	input.ID = "rule-1"
	updated, err := client.UpdateInlineQuestionRuleInstance(t.Context(), input)
	require.NoError(t, err)
	assert.Equal(t, "Users without MFA", updated.Name)

	deleted, err := client.DeleteRuleInstance(t.Context(), "rule-1")
	require.NoError(t, err)
	assert.Equal(t, "rule-1", deleted)

	trigger, err := client.EvaluateRuleInstance(t.Context(), "rule-1")
	require.NoError(t, err)
	assert.Equal(t, "RuleEvaluation", trigger.TypeName)
}

func TestListRuleEvaluations(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Handle("listCollectionResults", func(req testutil.GraphQLRequest) (any, string) {
		assert.Equal(t, "RULE_EVALUATION", req.Variables["collectionType"])
		assert.Equal(t, "rule-1", req.Variables["collectionOwnerId"])
		assert.EqualValues(t, 1000, req.Variables["beginTimestamp"])
		assert.EqualValues(t, 2000, req.Variables["endTimestamp"])
		assert.NotContains(t, req.Variables, "tag")
		return map[string]any{"listCollectionResults": map[string]any{
			"results": []map[string]any{{
				"collectionOwnerId":  "rule-1",
				"timestamp":          1500,
				"rawDataDescriptors": []map[string]any{{"rawDataKey": "key-1", "recordCount": 3}},
			}},
			"pageInfo": map[string]any{"hasNextPage": false},
		}}, ""
	})

	page, err := client.ListRuleEvaluations(t.Context(), jupiterone.RuleEvaluationFilters{
		RuleID:         "rule-1",
		BeginTimestamp: 1000,
		EndTimestamp:   2000,
	})
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "key-1", page.Results[0].RawDataDescriptors[0].RawDataKey)
}

func TestGetRawDataResults(t *testing.T) {
	download := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"type":"list","data":[{"id":"e1"}]}`)
	}))
	t.Cleanup(download.Close)

	client, srv := newTestClient(t)
	srv.Handle("getRawDataDownloadUrl", func(req testutil.GraphQLRequest) (any, string) {
		path := "/results"
		if req.Variables["rawDataKey"] == "missing" {
			path = "/missing"
		}
		return map[string]any{"getRawDataDownloadUrl": download.URL + path}, ""
	})

	t.Run("downloads and decodes the results", func(t *testing.T) {
		results, err := client.GetRawDataResults(t.Context(), "key-1")
		require.NoError(t, err)
		doc, ok := results.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "list", doc["type"])
	})

	t.Run("non-2xx download is an error", func(t *testing.T) {
		_, err := client.GetRawDataResults(t.Context(), "missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})
}

func TestDashboards(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Respond("GetDashboards", map[string]any{"getDashboards": []map[string]any{{"id": "d1", "name": "Security", "starred": true}}})
	srv.Respond("GetDashboard", map[string]any{"getDashboard": map[string]any{
		"id":      "d1",
		"name":    "Security",
		"widgets": []map[string]any{{"id": "w1", "type": "number", "config": map[string]any{"queries": []map[string]any{{"name": "q", "query": "FIND User"}}}}},
		"layouts": map[string]any{"xs": []map[string]any{{"i": "w1", "w": 2, "h": 2}}},
	}})
	srv.Handle("CreateDashboard", func(req testutil.GraphQLRequest) (any, string) {
		input := req.Variables["input"].(map[string]any)
		assert.Equal(t, "Ops", input["name"])
		assert.Equal(t, "Account", input["type"])
		return map[string]any{"createDashboard": map[string]any{"id": "d2"}}, ""
	})
	srv.Handle("PatchDashboard", func(req testutil.GraphQLRequest) (any, string) {
		input := req.Variables["input"].(map[string]any)
		assert.Equal(t, "d1", input["dashboardId"])
		assert.Contains(t, input, "layouts")
		return map[string]any{"patchDashboard": map[string]any{"id": "d1"}}, ""
	})

	list, err := client.GetDashboards(t.Context())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Starred)

	details, err := client.GetDashboard(t.Context(), "d1")
	require.NoError(t, err)
	require.Len(t, details.Widgets, 1)
	assert.Equal(t, "FIND User", details.Widgets[0].Config.Queries[0].Query)
	assert.Equal(t, "w1", details.Layouts.XS[0].I)

	created, err := client.CreateDashboard(t.Context(), "Ops", "Account")
	require.NoError(t, err)
	assert.Equal(t, "d2", created.ID)
	assert.Equal(t, "Ops", created.Name)

	_, err = client.PatchDashboardLayouts(t.Context(), "d1", jupiterone.DashboardLayouts{})
	require.NoError(t, err)
}

func TestIntegrations(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Handle("IntegrationJobs", func(req testutil.GraphQLRequest) (any, string) {
		assert.Equal(t, "FAILED", req.Variables["status"])
		assert.Equal(t, []any{"i1", "i2"}, req.Variables["integrationInstanceIds"])
		return map[string]any{"integrationJobs": map[string]any{"jobs": []map[string]any{{"id": "j1"}}, "pageInfo": map[string]any{}}}, ""
	})
	srv.Handle("IntegrationJob", func(req testutil.GraphQLRequest) (any, string) {
		assert.Equal(t, "j1", req.Variables["integrationJobId"])
		assert.Equal(t, "i1", req.Variables["integrationInstanceId"])
		return map[string]any{"integrationJob": map[string]any{"id": "j1", "status": "FAILED"}}, ""
	})
	srv.Respond("ListEvents", map[string]any{"integrationEvents": map[string]any{
		"events":   []map[string]any{{"id": "e1", "name": "step_failed", "level": "error"}},
		"pageInfo": map[string]any{"endCursor": "next", "hasNextPage": true},
	}})

	jobs, err := client.GetIntegrationJobs(t.Context(), jupiterone.IntegrationJobFilters{Status: "FAILED", IntegrationInstanceIDs: []string{"i1", "i2"}})
	require.NoError(t, err)
	assert.Len(t, jobs.Jobs, 1)

	job, err := client.GetIntegrationJob(t.Context(), "j1", "i1")
	require.NoError(t, err)
	assert.Equal(t, "FAILED", job["status"])

	events, err := client.GetIntegrationEvents(t.Context(), "j1", "i1", "", 10)
	require.NoError(t, err)
	assert.Equal(t, "next", events.PageInfo.EndCursor)
	assert.Equal(t, "error", events.Events[0].Level)
}

func TestExecuteJ1QLQuery(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Handle("J1QL", func(req testutil.GraphQLRequest) (any, string) {
		assert.Equal(t, "FIND User LIMIT 5", req.Variables["query"])
		flags := req.Variables["flags"].(map[string]any)
		assert.Equal(t, "DISABLED", flags["deferredResponse"])
		assert.NotContains(t, req.Variables, "cursor")
		return map[string]any{"queryV1": map[string]any{"type": "list", "data": []any{}}}, ""
	})

	resp, err := client.ExecuteJ1QLQuery(t.Context(), jupiterone.QueryRequest{
		Query: "FIND User LIMIT 5",
		Flags: &jupiterone.QueryFlags{DeferredResponse: "DISABLED"},
	})
	require.NoError(t, err)
	assert.Equal(t, "list", resp.Type)
	assert.True(t, resp.HasData(), "empty list is still a payload")
}

func TestQueryResponseHasData(t *testing.T) {
	tests := []struct {
		name string
		resp *jupiterone.QueryResponse
		want bool
	}{
		{"nil response", nil, false},
		{"nil data", &jupiterone.QueryResponse{}, false},
		{"empty string", &jupiterone.QueryResponse{Data: ""}, false},
		{"false", &jupiterone.QueryResponse{Data: false}, false},
		{"zero", &jupiterone.QueryResponse{Data: float64(0)}, false},
		{"empty list", &jupiterone.QueryResponse{Data: []any{}}, true},
		{"empty object", &jupiterone.QueryResponse{Data: map[string]any{}}, true},
		{"count", &jupiterone.QueryResponse{Data: float64(3)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.resp.HasData())
		})
	}
}

func TestCreateJ1QLFromNaturalLanguage(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Respond("createJ1qlFromNaturalLanguage", map[string]any{"createJ1qlFromNaturalLanguage": map[string]any{
		"uuid": "u1", "question": "all users", "query": "FIND User",
	}})

	res, err := client.CreateJ1QLFromNaturalLanguage(t.Context(), "all users")
	require.NoError(t, err)
	assert.Equal(t, "FIND User", res.Query)
}
