package jupiterone

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const collectionTypeRuleEvaluation = "RULE_EVALUATION"

// ListRuleInstances returns one page of question rules.
func (c *Client) ListRuleInstances(ctx context.Context, limit int, cursor string) (*RuleInstancePage, error) {
	vars := map[string]any{}
	setIf(vars, "limit", limit)
	setIf(vars, "cursor", cursor)

	var resp struct {
		ListRuleInstances *RuleInstancePage `json:"listRuleInstances"`
	}
	if err := c.run(ctx, "listRuleInstances", queryListRuleInstances, vars, &resp); err != nil {
		return nil, err
	}
	if resp.ListRuleInstances == nil {
		return nil, errInvalidResponse("listRuleInstances")
	}
	return resp.ListRuleInstances, nil
}

// GetAllRuleInstances walks every page of question rules.
func (c *Client) GetAllRuleInstances(ctx context.Context) ([]QuestionRuleInstance, error) {
	var all []QuestionRuleInstance
	cursor := ""
	for {
		page, err := c.ListRuleInstances(ctx, pageSize, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, page.QuestionInstances...)
		if !page.PageInfo.HasNextPage || page.PageInfo.EndCursor == "" {
			return all, nil
		}
		cursor = page.PageInfo.EndCursor
	}
}

func (c *Client) CreateInlineQuestionRuleInstance(ctx context.Context, input InlineQuestionRuleInput) (*QuestionRuleInstance, error) {
	input.ID = ""
	var resp struct {
		Rule *QuestionRuleInstance `json:"createInlineQuestionRuleInstance"`
	}
	if err := c.run(ctx, "createInlineQuestionRuleInstance", mutationCreateInlineQuestionRule, map[string]any{"instance": input}, &resp); err != nil {
		return nil, err
	}
	if resp.Rule == nil {
		return nil, errInvalidResponse("createInlineQuestionRuleInstance")
	}
	return resp.Rule, nil
}

func (c *Client) UpdateInlineQuestionRuleInstance(ctx context.Context, input InlineQuestionRuleInput) (*QuestionRuleInstance, error) {
	if input.ID == "" {
		return nil, fmt.Errorf("rule id is required to update a rule")
	}
	var resp struct {
		Rule *QuestionRuleInstance `json:"updateInlineQuestionRuleInstance"`
	}
	if err := c.run(ctx, "updateInlineQuestionRuleInstance", mutationUpdateInlineQuestionRule, map[string]any{"instance": input}, &resp); err != nil {
		return nil, err
	}
	if resp.Rule == nil {
		return nil, errInvalidResponse("updateInlineQuestionRuleInstance")
	}
	return resp.Rule, nil
}

// DeleteRuleInstance deletes a rule and returns the deleted rule's ID.
func (c *Client) DeleteRuleInstance(ctx context.Context, id string) (string, error) {
	var resp struct {
		DeleteRuleInstance struct {
			ID string `json:"id"`
		} `json:"deleteRuleInstance"`
	}
	if err := c.run(ctx, "deleteRuleInstance", mutationDeleteRule, map[string]any{"id": id}, &resp); err != nil {
		return "", err
	}
	return resp.DeleteRuleInstance.ID, nil
}

// EvaluateRuleInstance triggers an on-demand evaluation of a rule.
func (c *Client) EvaluateRuleInstance(ctx context.Context, id string) (*RuleEvaluationTrigger, error) {
	var resp struct {
		EvaluateRuleInstance *RuleEvaluationTrigger `json:"evaluateRuleInstance"`
	}
	if err := c.run(ctx, "evaluateRuleInstance", mutationEvaluateRule, map[string]any{"id": id}, &resp); err != nil {
		return nil, err
	}
	if resp.EvaluateRuleInstance == nil {
		return nil, errInvalidResponse("evaluateRuleInstance")
	}
	return resp.EvaluateRuleInstance, nil
}

// ListRuleEvaluations returns one page of a rule's evaluation history.
func (c *Client) ListRuleEvaluations(ctx context.Context, filters RuleEvaluationFilters) (*RuleEvaluationPage, error) {
	vars := map[string]any{
		"collectionType":    collectionTypeRuleEvaluation,
		"collectionOwnerId": filters.RuleID,
		"beginTimestamp":    filters.BeginTimestamp,
		"endTimestamp":      filters.EndTimestamp,
	}
	setIf(vars, "limit", filters.Limit)
	setIf(vars, "tag", filters.Tag)
	setIf(vars, "cursor", filters.Cursor)

	var resp struct {
		ListCollectionResults *RuleEvaluationPage `json:"listCollectionResults"`
	}
	if err := c.run(ctx, "listCollectionResults", queryListRuleEvaluations, vars, &resp); err != nil {
		return nil, err
	}
	if resp.ListCollectionResults == nil {
		return nil, errInvalidResponse("listCollectionResults")
	}
	return resp.ListCollectionResults, nil
}

// GetRuleEvaluationDetails returns the per-step breakdown of one evaluation.
func (c *Client) GetRuleEvaluationDetails(ctx context.Context, ruleID string, timestamp int64) (map[string]any, error) {
	vars := map[string]any{
		"ruleEvaluationDetailsInput": map[string]any{
			"ruleId":    ruleID,
			"timestamp": timestamp,
		},
	}
	var resp struct {
		RuleEvaluationDetails map[string]any `json:"ruleEvaluationDetails"`
	}
	if err := c.run(ctx, "ruleEvaluationDetails", queryRuleEvaluationDetails, vars, &resp); err != nil {
		return nil, err
	}
	return resp.RuleEvaluationDetails, nil
}

// GetRawDataDownloadURL returns a signed URL for a raw data descriptor key.
func (c *Client) GetRawDataDownloadURL(ctx context.Context, rawDataKey string) (string, error) {
	var resp struct {
		URL string `json:"getRawDataDownloadUrl"`
	}
	if err := c.run(ctx, "getRawDataDownloadUrl", queryRawDataDownloadURL, map[string]any{"rawDataKey": rawDataKey}, &resp); err != nil {
		return "", err
	}
	if resp.URL == "" {
		return "", errInvalidResponse("getRawDataDownloadUrl")
	}
	return resp.URL, nil
}

// GetRawDataResults downloads and decodes the JSON document behind a raw data key.
func (c *Client) GetRawDataResults(ctx context.Context, rawDataKey string) (any, error) {
	downloadURL, err := c.GetRawDataDownloadURL(ctx, rawDataKey)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build raw data request: %w", err)
	}
	resp, err := c.opts.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch query results: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to fetch query results: %s", resp.Status)
	}

	var results any
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode query results: %w", err)
	}
	return results, nil
}
