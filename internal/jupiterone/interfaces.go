package jupiterone

import "context"

//go:generate mockgen -destination=mocks/mock_service.go -package=jupiterone_mocks github.com/jupiterone/jupiterone-mcp/internal/jupiterone Service

// Service is the JupiterOne API surface used by the MCP tools.
type Service interface {
	WithCredentials(token, accountID string) Service

	GetAccountInfo(ctx context.Context) (*AccountInfo, error)
	TestConnection(ctx context.Context) bool

	ListAlertInstances(ctx context.Context, status AlertStatus, limit int, cursor string) (*AlertInstancePage, error)
	GetAllAlertInstances(ctx context.Context, status AlertStatus) ([]AlertInstance, error)

	ListRuleInstances(ctx context.Context, limit int, cursor string) (*RuleInstancePage, error)
	GetAllRuleInstances(ctx context.Context) ([]QuestionRuleInstance, error)
	CreateInlineQuestionRuleInstance(ctx context.Context, input InlineQuestionRuleInput) (*QuestionRuleInstance, error)
	UpdateInlineQuestionRuleInstance(ctx context.Context, input InlineQuestionRuleInput) (*QuestionRuleInstance, error)
	DeleteRuleInstance(ctx context.Context, id string) (string, error)
	EvaluateRuleInstance(ctx context.Context, id string) (*RuleEvaluationTrigger, error)
	ListRuleEvaluations(ctx context.Context, filters RuleEvaluationFilters) (*RuleEvaluationPage, error)
	GetRuleEvaluationDetails(ctx context.Context, ruleID string, timestamp int64) (map[string]any, error)
	GetRawDataDownloadURL(ctx context.Context, rawDataKey string) (string, error)
	GetRawDataResults(ctx context.Context, rawDataKey string) (any, error)

	GetDashboards(ctx context.Context) ([]Dashboard, error)
	GetDashboard(ctx context.Context, dashboardID string) (*DashboardDetails, error)
	CreateDashboard(ctx context.Context, name, dashboardType string) (*Dashboard, error)
	CreateDashboardWidget(ctx context.Context, dashboardID string, input WidgetInput) (*Widget, error)
	PatchDashboardLayouts(ctx context.Context, dashboardID string, layouts DashboardLayouts) (*DashboardDetails, error)

	GetIntegrationDefinitions(ctx context.Context, cursor string, includeConfig bool) (*IntegrationDefinitionPage, error)
	GetIntegrationInstances(ctx context.Context, filters IntegrationInstanceFilters) (*IntegrationInstancePage, error)
	GetIntegrationJobs(ctx context.Context, filters IntegrationJobFilters) (*IntegrationJobPage, error)
	GetIntegrationJob(ctx context.Context, jobID, instanceID string) (map[string]any, error)
	GetIntegrationEvents(ctx context.Context, jobID, instanceID, cursor string, size int) (*IntegrationEventPage, error)

	ExecuteJ1QLQuery(ctx context.Context, req QueryRequest) (*QueryResponse, error)
	CreateJ1QLFromNaturalLanguage(ctx context.Context, question string) (*NaturalLanguageQuery, error)
}

var _ Service = (*Client)(nil)
