package jupiterone

import "context"

// ExecuteJ1QLQuery runs a J1QL query through the query engine.
func (c *Client) ExecuteJ1QLQuery(ctx context.Context, req QueryRequest) (*QueryResponse, error) {
	vars := map[string]any{"query": req.Query}
	if len(req.Variables) > 0 {
		vars["variables"] = req.Variables
	}
	setIf(vars, "cursor", req.Cursor)
	if len(req.ScopeFilters) > 0 {
		vars["scopeFilters"] = req.ScopeFilters
	}
	if req.Flags != nil {
		vars["flags"] = req.Flags
	}

	var resp struct {
		QueryV1 *QueryResponse `json:"queryV1"`
	}
	if err := c.run(ctx, "queryV1", queryJ1QL, vars, &resp); err != nil {
		return nil, err
	}
	return resp.QueryV1, nil
}

// CreateJ1QLFromNaturalLanguage asks the platform to translate a question into J1QL.
func (c *Client) CreateJ1QLFromNaturalLanguage(ctx context.Context, question string) (*NaturalLanguageQuery, error) {
	var resp struct {
		Result *NaturalLanguageQuery `json:"createJ1qlFromNaturalLanguage"`
	}
	if err := c.run(ctx, "createJ1qlFromNaturalLanguage", mutationJ1QLFromNaturalLanguage, map[string]any{"naturalLanguage": question}, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, errInvalidResponse("createJ1qlFromNaturalLanguage")
	}
	return resp.Result, nil
}
