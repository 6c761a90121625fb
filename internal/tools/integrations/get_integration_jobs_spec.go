package integrations

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetIntegrationJobsInput struct {
	Status                  string   `json:"status,omitempty" validate:"omitempty,job_status" jsonschema:"enum=PENDING,enum=RUNNING,enum=COMPLETED,enum=FAILED,enum=CANCELLED" jsonschema_description:"Only return jobs in this state"`
	IntegrationInstanceID   string   `json:"integrationInstanceId,omitempty" jsonschema_description:"Only return jobs of this instance"`
	IntegrationDefinitionID string   `json:"integrationDefinitionId,omitempty" jsonschema_description:"Only return jobs of instances of this definition"`
	IntegrationInstanceIDs  []string `json:"integrationInstanceIds,omitempty" validate:"omitempty,dive,required" jsonschema_description:"Only return jobs of these instances"`
	Cursor                  string   `json:"cursor,omitempty" jsonschema_description:"Pagination cursor from a previous response's pageInfo.endCursor"`
	Size                    int      `json:"size,omitempty" validate:"omitempty,min=1,max=1000" jsonschema:"minimum=1,maximum=1000" jsonschema_description:"Maximum number of jobs to return (1-1000)"`
}

func GetIntegrationJobsSpec() mcp.Tool {
	return mcp.NewTool("get-integration-jobs",
		mcp.WithDescription("List integration job runs with their status, timing and results. Filter by instance, definition or status, e.g. FAILED jobs of one instance. Use get-integration-events with a job ID to read its log."),
		mcp.WithInputSchema[GetIntegrationJobsInput](),
		mcp.WithTitleAnnotation("Get Integration Jobs"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
