package jupiterone

import "context"

// ListAlertInstances returns one page of alerts. An empty status lists every status.
func (c *Client) ListAlertInstances(ctx context.Context, status AlertStatus, limit int, cursor string) (*AlertInstancePage, error) {
	vars := map[string]any{}
	setIf(vars, "alertStatus", status)
	setIf(vars, "limit", limit)
	setIf(vars, "cursor", cursor)

	var resp struct {
		ListAlertInstances *AlertInstancePage `json:"listAlertInstances"`
	}
	if err := c.run(ctx, "listAlertInstances", queryListAlertInstances, vars, &resp); err != nil {
		return nil, err
	}
	if resp.ListAlertInstances == nil {
		return nil, errInvalidResponse("listAlertInstances")
	}
	return resp.ListAlertInstances, nil
}

// GetAllAlertInstances walks every page of alerts with the given status.
func (c *Client) GetAllAlertInstances(ctx context.Context, status AlertStatus) ([]AlertInstance, error) {
	var all []AlertInstance
	cursor := ""
	for {
		page, err := c.ListAlertInstances(ctx, status, pageSize, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Instances...)
		if !page.PageInfo.HasNextPage || page.PageInfo.EndCursor == "" {
			return all, nil
		}
		cursor = page.PageInfo.EndCursor
	}
}
