package jupiterone

import "context"

func (c *Client) GetIntegrationDefinitions(ctx context.Context, cursor string, includeConfig bool) (*IntegrationDefinitionPage, error) {
	vars := map[string]any{"includeConfig": includeConfig}
	setIf(vars, "cursor", cursor)

	var resp struct {
		IntegrationDefinitions *IntegrationDefinitionPage `json:"integrationDefinitions"`
	}
	if err := c.run(ctx, "integrationDefinitions", queryIntegrationDefinitions, vars, &resp); err != nil {
		return nil, err
	}
	if resp.IntegrationDefinitions == nil {
		return nil, errInvalidResponse("integrationDefinitions")
	}
	return resp.IntegrationDefinitions, nil
}

func (c *Client) GetIntegrationInstances(ctx context.Context, filters IntegrationInstanceFilters) (*IntegrationInstancePage, error) {
	vars := map[string]any{}
	setIf(vars, "definitionId", filters.DefinitionID)
	setIf(vars, "cursor", filters.Cursor)
	setIf(vars, "limit", filters.Limit)

	var resp struct {
		IntegrationInstances *IntegrationInstancePage `json:"integrationInstancesV2"`
	}
	if err := c.run(ctx, "integrationInstancesV2", queryIntegrationInstances, vars, &resp); err != nil {
		return nil, err
	}
	if resp.IntegrationInstances == nil {
		return nil, errInvalidResponse("integrationInstancesV2")
	}
	return resp.IntegrationInstances, nil
}

func (c *Client) GetIntegrationJobs(ctx context.Context, filters IntegrationJobFilters) (*IntegrationJobPage, error) {
	vars := map[string]any{}
	setIf(vars, "status", filters.Status)
	setIf(vars, "integrationInstanceId", filters.IntegrationInstanceID)
	setIf(vars, "integrationDefinitionId", filters.IntegrationDefinitionID)
	setIf(vars, "cursor", filters.Cursor)
	setIf(vars, "size", filters.Size)
	if len(filters.IntegrationInstanceIDs) > 0 {
		vars["integrationInstanceIds"] = filters.IntegrationInstanceIDs
	}

	var resp struct {
		IntegrationJobs *IntegrationJobPage `json:"integrationJobs"`
	}
	if err := c.run(ctx, "integrationJobs", queryIntegrationJobs, vars, &resp); err != nil {
		return nil, err
	}
	if resp.IntegrationJobs == nil {
		return nil, errInvalidResponse("integrationJobs")
	}
	return resp.IntegrationJobs, nil
}

func (c *Client) GetIntegrationJob(ctx context.Context, jobID, instanceID string) (map[string]any, error) {
	vars := map[string]any{
		"integrationJobId":      jobID,
		"integrationInstanceId": instanceID,
	}
	var resp struct {
		IntegrationJob map[string]any `json:"integrationJob"`
	}
	if err := c.run(ctx, "integrationJob", queryIntegrationJob, vars, &resp); err != nil {
		return nil, err
	}
	if resp.IntegrationJob == nil {
		return nil, &APIError{Operation: "integrationJob", Message: "Integration job " + jobID + " not found"}
	}
	return resp.IntegrationJob, nil
}

func (c *Client) GetIntegrationEvents(ctx context.Context, jobID, instanceID, cursor string, size int) (*IntegrationEventPage, error) {
	vars := map[string]any{
		"jobId":                 jobID,
		"integrationInstanceId": instanceID,
	}
	setIf(vars, "cursor", cursor)
	setIf(vars, "size", size)

	var resp struct {
		IntegrationEvents *IntegrationEventPage `json:"integrationEvents"`
	}
	if err := c.run(ctx, "integrationEvents", queryIntegrationEvents, vars, &resp); err != nil {
		return nil, err
	}
	if resp.IntegrationEvents == nil {
		return nil, errInvalidResponse("integrationEvents")
	}
	return resp.IntegrationEvents, nil
}
