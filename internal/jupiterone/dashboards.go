package jupiterone

import "context"

func (c *Client) GetDashboards(ctx context.Context) ([]Dashboard, error) {
	var resp struct {
		GetDashboards []Dashboard `json:"getDashboards"`
	}
	if err := c.run(ctx, "getDashboards", queryDashboards, nil, &resp); err != nil {
		return nil, err
	}
	return resp.GetDashboards, nil
}

func (c *Client) GetDashboard(ctx context.Context, dashboardID string) (*DashboardDetails, error) {
	var resp struct {
		GetDashboard *DashboardDetails `json:"getDashboard"`
	}
	if err := c.run(ctx, "getDashboard", queryDashboardDetails, map[string]any{"dashboardId": dashboardID}, &resp); err != nil {
		return nil, err
	}
	if resp.GetDashboard == nil {
		return nil, &APIError{Operation: "getDashboard", Message: "Dashboard " + dashboardID + " not found"}
	}
	return resp.GetDashboard, nil
}

// CreateDashboard creates an empty dashboard. The platform only echoes the new ID.
func (c *Client) CreateDashboard(ctx context.Context, name, dashboardType string) (*Dashboard, error) {
	vars := map[string]any{
		"input": map[string]any{"name": name, "type": dashboardType},
	}
	var resp struct {
		CreateDashboard *Dashboard `json:"createDashboard"`
	}
	if err := c.run(ctx, "createDashboard", mutationCreateDashboard, vars, &resp); err != nil {
		return nil, err
	}
	if resp.CreateDashboard == nil {
		return nil, errInvalidResponse("createDashboard")
	}
	resp.CreateDashboard.Name = name
	return resp.CreateDashboard, nil
}

func (c *Client) CreateDashboardWidget(ctx context.Context, dashboardID string, input WidgetInput) (*Widget, error) {
	vars := map[string]any{
		"dashboardId": dashboardID,
		"input":       input,
	}
	var resp struct {
		CreateWidget *Widget `json:"createWidget"`
	}
	if err := c.run(ctx, "createWidget", mutationCreateDashboardWidget, vars, &resp); err != nil {
		return nil, err
	}
	if resp.CreateWidget == nil {
		return nil, errInvalidResponse("createWidget")
	}
	return resp.CreateWidget, nil
}

// PatchDashboardLayouts replaces the widget grid of a dashboard.
func (c *Client) PatchDashboardLayouts(ctx context.Context, dashboardID string, layouts DashboardLayouts) (*DashboardDetails, error) {
	vars := map[string]any{
		"input": map[string]any{
			"dashboardId": dashboardID,
			"layouts":     layouts,
		},
	}
	var resp struct {
		PatchDashboard *DashboardDetails `json:"patchDashboard"`
	}
	if err := c.run(ctx, "patchDashboard", mutationPatchDashboard, vars, &resp); err != nil {
		return nil, err
	}
	if resp.PatchDashboard == nil {
		return nil, errInvalidResponse("patchDashboard")
	}
	return resp.PatchDashboard, nil
}
