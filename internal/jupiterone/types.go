package jupiterone

// PageInfo is the cursor block returned by every paginated listing.
type PageInfo struct {
	EndCursor   string `json:"endCursor"`
	HasNextPage bool   `json:"hasNextPage"`
}

type AccountInfo struct {
	AccountID        string `json:"accountId"`
	AccountSubdomain string `json:"accountSubdomain,omitempty"`
	AccountName      string `json:"accountName,omitempty"`
	AccountOwner     string `json:"accountOwner,omitempty"`
	Status           string `json:"status,omitempty"`
	AccountType      string `json:"accountType,omitempty"`
}

type AlertStatus string

const (
	AlertStatusActive    AlertStatus = "ACTIVE"
	AlertStatusInactive  AlertStatus = "INACTIVE"
	AlertStatusDismissed AlertStatus = "DISMISSED"
)

type Label struct {
	LabelName  string `json:"labelName"`
	LabelValue string `json:"labelValue"`
}

type NamedValue struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

type RawDataDescriptor struct {
	Name                string `json:"name,omitempty"`
	PersistedResultType string `json:"persistedResultType,omitempty"`
	RawDataKey          string `json:"rawDataKey,omitempty"`
	RecordCount         int    `json:"recordCount"`
}

type EvaluationResult struct {
	AnswerText         string              `json:"answerText,omitempty"`
	EvaluationEndOn    any                 `json:"evaluationEndOn,omitempty"`
	Outputs            []NamedValue        `json:"outputs"`
	RawDataDescriptors []RawDataDescriptor `json:"rawDataDescriptors"`
}

type AlertRuleSummary struct {
	ID              string   `json:"id,omitempty"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	PollingInterval string   `json:"pollingInterval,omitempty"`
	Labels          []Label  `json:"labels,omitempty"`
}

type AlertInstance struct {
	ID                    string            `json:"id"`
	AccountID             string            `json:"accountId"`
	ResourceGroupID       string            `json:"resourceGroupId,omitempty"`
	RuleID                string            `json:"ruleId"`
	RuleVersion           any               `json:"ruleVersion,omitempty"`
	Level                 string            `json:"level"`
	Status                AlertStatus       `json:"status"`
	CreatedOn             any               `json:"createdOn"`
	DismissedOn           any               `json:"dismissedOn,omitempty"`
	EndReason             string            `json:"endReason,omitempty"`
	LastUpdatedOn         any               `json:"lastUpdatedOn"`
	LastEvaluationBeginOn any               `json:"lastEvaluationBeginOn,omitempty"`
	LastEvaluationEndOn   any               `json:"lastEvaluationEndOn,omitempty"`
	LastEvaluationResult  *EvaluationResult `json:"lastEvaluationResult,omitempty"`
	QuestionRuleInstance  *AlertRuleSummary `json:"questionRuleInstance,omitempty"`
	ReportRuleInstance    *AlertRuleSummary `json:"reportRuleInstance,omitempty"`
	Users                 []string          `json:"users,omitempty"`
}

// RuleName is the name of the rule that raised the alert.
func (a AlertInstance) RuleName() string {
	if a.QuestionRuleInstance != nil && a.QuestionRuleInstance.Name != "" {
		return a.QuestionRuleInstance.Name
	}
	if a.ReportRuleInstance != nil && a.ReportRuleInstance.Name != "" {
		return a.ReportRuleInstance.Name
	}
	return "Unknown"
}

// RecordCount is the number of records matched by the last evaluation.
func (a AlertInstance) RecordCount() int {
	if a.LastEvaluationResult == nil || len(a.LastEvaluationResult.RawDataDescriptors) == 0 {
		return 0
	}
	return a.LastEvaluationResult.RawDataDescriptors[0].RecordCount
}

type AlertInstancePage struct {
	Instances []AlertInstance `json:"instances"`
	PageInfo  PageInfo        `json:"pageInfo"`
}

// PollingIntervals lists the evaluation frequencies a rule accepts.
var PollingIntervals = []string{
	"DISABLED", "THIRTY_MINUTES", "ONE_HOUR", "FOUR_HOURS",
	"EIGHT_HOURS", "TWELVE_HOURS", "ONE_DAY", "ONE_WEEK",
}

// QuestionQuery is one named J1QL query of a rule question.
type QuestionQuery struct {
	Query          string `json:"query" validate:"required" jsonschema_description:"J1QL query string"`
	Name           string `json:"name" validate:"required" jsonschema_description:"Name identifier for the query. Conditions reference it as queries.<name>.total"`
	Version        string `json:"version,omitempty" jsonschema_description:"Version of the query"`
	IncludeDeleted *bool  `json:"includeDeleted,omitempty" jsonschema_description:"Whether to include deleted entities"`
}

type Question struct {
	Queries []QuestionQuery `json:"queries"`
}

// RuleCondition is the "when" block of a rule operation, e.g.
// {"type": "FILTER", "condition": ["AND", ["queries.users.total", ">", 0]]}.
type RuleCondition struct {
	Type      string `json:"type" validate:"required,eq=FILTER" jsonschema:"enum=FILTER" jsonschema_description:"Always FILTER"`
	Version   *int   `json:"version,omitempty" jsonschema_description:"Version of the filter condition"`
	Condition []any  `json:"condition" validate:"required,min=1" jsonschema_description:"Condition array: [\"AND\" or \"OR\", [left, operator, right], ...]"`
}

type RuleOperationInput struct {
	When    RuleCondition    `json:"when" validate:"required"`
	Actions []map[string]any `json:"actions" validate:"required,min=1" jsonschema_description:"Actions to run when the condition is met (CREATE_ALERT, SET_PROPERTY, SEND_EMAIL, SEND_SLACK_MESSAGE, TAG_ENTITIES, CREATE_JIRA_TICKET...)"`
}

// RuleOperation is an operation as stored by the platform; its blocks are opaque JSON.
type RuleOperation struct {
	When    any   `json:"when"`
	Actions []any `json:"actions"`
}

type RuleState struct {
	Actions []any `json:"actions"`
}

type QuestionRuleInstance struct {
	ID                              string          `json:"id"`
	ResourceGroupID                 *string         `json:"resourceGroupId"`
	AccountID                       string          `json:"accountId"`
	Name                            string          `json:"name"`
	Description                     string          `json:"description"`
	Version                         any             `json:"version"`
	LastEvaluationStartOn           any             `json:"lastEvaluationStartOn"`
	LastEvaluationEndOn             any             `json:"lastEvaluationEndOn"`
	EvaluationStep                  any             `json:"evaluationStep"`
	SpecVersion                     any             `json:"specVersion"`
	NotifyOnFailure                 *bool           `json:"notifyOnFailure"`
	TriggerActionsOnNewEntitiesOnly *bool           `json:"triggerActionsOnNewEntitiesOnly"`
	IgnorePreviousResults           *bool           `json:"ignorePreviousResults"`
	PollingInterval                 string          `json:"pollingInterval"`
	Templates                       any             `json:"templates"`
	Outputs                         []string        `json:"outputs"`
	Labels                          []Label         `json:"labels"`
	Question                        *Question       `json:"question"`
	QuestionID                      *string         `json:"questionId"`
	Latest                          *bool           `json:"latest"`
	Deleted                         *bool           `json:"deleted"`
	Type                            string          `json:"type"`
	Operations                      []RuleOperation `json:"operations"`
	LatestAlertID                   *string         `json:"latestAlertId"`
	LatestAlertIsActive             *bool           `json:"latestAlertIsActive"`
	State                           *RuleState      `json:"state"`
	Tags                            []string        `json:"tags"`
	RemediationSteps                *string         `json:"remediationSteps"`
}

type RuleInstancePage struct {
	QuestionInstances []QuestionRuleInstance `json:"questionInstances"`
	PageInfo          PageInfo               `json:"pageInfo"`
}

// InlineQuestionRuleInput creates (ID empty) or updates an inline question rule.
type InlineQuestionRuleInput struct {
	ID                              string               `json:"id,omitempty"`
	Name                            string               `json:"name"`
	Description                     string               `json:"description"`
	NotifyOnFailure                 *bool                `json:"notifyOnFailure,omitempty"`
	TriggerActionsOnNewEntitiesOnly *bool                `json:"triggerActionsOnNewEntitiesOnly,omitempty"`
	IgnorePreviousResults           *bool                `json:"ignorePreviousResults,omitempty"`
	PollingInterval                 string               `json:"pollingInterval"`
	Outputs                         []string             `json:"outputs"`
	SpecVersion                     *int                 `json:"specVersion,omitempty"`
	Tags                            []string             `json:"tags,omitempty"`
	Templates                       map[string]any       `json:"templates,omitempty"`
	Labels                          []Label              `json:"labels,omitempty"`
	RemediationSteps                string               `json:"remediationSteps,omitempty"`
	Question                        Question             `json:"question"`
	Operations                      []RuleOperationInput `json:"operations"`
}

type RuleEvaluationTrigger struct {
	ID       string `json:"id"`
	TypeName string `json:"__typename,omitempty"`
}

// RuleEvaluationFilters selects the evaluation history of one rule. Timestamps are epoch milliseconds.
type RuleEvaluationFilters struct {
	RuleID         string
	BeginTimestamp int64
	EndTimestamp   int64
	Limit          int
	Tag            string
	Cursor         string
}

type RuleEvaluation struct {
	AccountID              string              `json:"accountId"`
	CollectionOwnerID      string              `json:"collectionOwnerId"`
	CollectionOwnerVersion any                 `json:"collectionOwnerVersion,omitempty"`
	CollectionType         string              `json:"collectionType"`
	Outputs                []NamedValue        `json:"outputs"`
	RawDataDescriptors     []RawDataDescriptor `json:"rawDataDescriptors"`
	Tag                    string              `json:"tag,omitempty"`
	Timestamp              any                 `json:"timestamp"`
}

type RuleEvaluationPage struct {
	Results  []RuleEvaluation `json:"results"`
	PageInfo PageInfo         `json:"pageInfo"`
}

type Prerequisites struct {
	PrerequisitesMet             *bool `json:"prerequisitesMet"`
	PreRequisitesGroupsFulfilled any   `json:"preRequisitesGroupsFulfilled"`
	PreRequisitesGroupsRequired  any   `json:"preRequisitesGroupsRequired"`
}

type Dashboard struct {
	ID               string         `json:"id"`
	Name             string         `json:"name,omitempty"`
	UserID           string         `json:"userId,omitempty"`
	Category         string         `json:"category,omitempty"`
	SupportedUseCase string         `json:"supportedUseCase,omitempty"`
	Prerequisites    *Prerequisites `json:"prerequisites,omitempty"`
	IsJ1ManagedBoard bool           `json:"isJ1ManagedBoard"`
	ResourceGroupID  string         `json:"resourceGroupId,omitempty"`
	Starred          bool           `json:"starred"`
	TimeUpdated      any            `json:"_timeUpdated,omitempty"`
	CreatedAt        any            `json:"_createdAt,omitempty"`
}

type DashboardParameter struct {
	ID                 string `json:"id"`
	Label              string `json:"label"`
	Name               string `json:"name"`
	Type               string `json:"type"`
	ValueType          string `json:"valueType"`
	Default            any    `json:"default"`
	Options            any    `json:"options"`
	RequireValue       *bool  `json:"requireValue"`
	DisableCustomInput *bool  `json:"disableCustomInput"`
}

// ChartTypes lists the widget types a dashboard accepts.
var ChartTypes = []string{"area", "bar", "graph", "line", "matrix", "number", "pie", "table", "status", "markdown"}

type WidgetQuery struct {
	ID    string `json:"id,omitempty" jsonschema_description:"Optional ID for the query"`
	Name  string `json:"name" validate:"required" jsonschema_description:"Name for the query"`
	Query string `json:"query" validate:"required" jsonschema_description:"J1QL query string"`
}

type WidgetConfig struct {
	Queries                   []WidgetQuery  `json:"queries" validate:"required,min=1,dive"`
	Settings                  map[string]any `json:"settings,omitempty" jsonschema_description:"Chart specific settings keyed by chart type"`
	PostQueryFilters          map[string]any `json:"postQueryFilters,omitempty"`
	DisableQueryPolicyFilters *bool          `json:"disableQueryPolicyFilters,omitempty"`
}

type Widget struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description,omitempty"`
	Type            string       `json:"type"`
	QuestionID      string       `json:"questionId,omitempty"`
	NoResultMessage string       `json:"noResultMessage,omitempty"`
	IncludeDeleted  *bool        `json:"includeDeleted,omitempty"`
	Config          WidgetConfig `json:"config"`
}

// WidgetInput is the payload of a new dashboard widget.
type WidgetInput struct {
	Title           string       `json:"title" validate:"required" jsonschema_description:"Widget title"`
	Description     string       `json:"description,omitempty" jsonschema_description:"Widget description"`
	Type            string       `json:"type" validate:"required,chart_type" jsonschema:"enum=area,enum=bar,enum=graph,enum=line,enum=matrix,enum=number,enum=pie,enum=table,enum=status,enum=markdown" jsonschema_description:"Type of chart"`
	NoResultMessage string       `json:"noResultMessage,omitempty" jsonschema_description:"Message to display when no results"`
	IncludeDeleted  *bool        `json:"includeDeleted,omitempty"`
	QuestionID      string       `json:"questionId,omitempty" jsonschema_description:"ID of an existing question to use"`
	Config          WidgetConfig `json:"config" validate:"required"`
}

type LayoutItem struct {
	I      string `json:"i" validate:"required" jsonschema_description:"Widget ID"`
	X      int    `json:"x" validate:"min=0" jsonschema_description:"Horizontal grid position"`
	Y      int    `json:"y" validate:"min=0" jsonschema_description:"Vertical grid position"`
	W      int    `json:"w" validate:"min=1" jsonschema_description:"Width in grid units"`
	H      int    `json:"h" validate:"min=1" jsonschema_description:"Height in grid units"`
	Static bool   `json:"static" jsonschema_description:"Always false"`
	Moved  bool   `json:"moved" jsonschema_description:"Always false"`
}

// DashboardLayouts holds the widget grid per responsive breakpoint.
type DashboardLayouts struct {
	XS []LayoutItem `json:"xs" validate:"dive"`
	SM []LayoutItem `json:"sm" validate:"dive"`
	MD []LayoutItem `json:"md" validate:"dive"`
	LG []LayoutItem `json:"lg" validate:"dive"`
	XL []LayoutItem `json:"xl" validate:"dive"`
}

type DashboardDetails struct {
	Dashboard
	Published           *bool                `json:"published,omitempty"`
	PublishedToUserIDs  []string             `json:"publishedToUserIds,omitempty"`
	PublishedToGroupIDs []string             `json:"publishedToGroupIds,omitempty"`
	GroupIDs            []string             `json:"groupIds,omitempty"`
	UserIDs             []string             `json:"userIds,omitempty"`
	ScopeFilters        any                  `json:"scopeFilters,omitempty"`
	Parameters          []DashboardParameter `json:"parameters"`
	Widgets             []Widget             `json:"widgets"`
	Layouts             DashboardLayouts     `json:"layouts"`
}

type IntegrationDefinitionPage struct {
	Definitions []map[string]any `json:"definitions"`
	PageInfo    PageInfo         `json:"pageInfo"`
}

type IntegrationInstanceFilters struct {
	DefinitionID string
	Cursor       string
	Limit        int
}

type IntegrationInstancePage struct {
	Instances []map[string]any `json:"instances"`
	PageInfo  PageInfo         `json:"pageInfo"`
}

// IntegrationJobStatuses lists the job states accepted as a filter.
var IntegrationJobStatuses = []string{"PENDING", "RUNNING", "COMPLETED", "FAILED", "CANCELLED"}

type IntegrationJobFilters struct {
	Status                  string
	IntegrationInstanceID   string
	IntegrationDefinitionID string
	IntegrationInstanceIDs  []string
	Cursor                  string
	Size                    int
}

type IntegrationJobPage struct {
	Jobs     []map[string]any `json:"jobs"`
	PageInfo PageInfo         `json:"pageInfo"`
}

type IntegrationEvent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreateDate  any    `json:"createDate"`
	JobID       string `json:"jobId"`
	Level       string `json:"level"`
	EventCode   string `json:"eventCode,omitempty"`
}

type IntegrationEventPage struct {
	Events   []IntegrationEvent `json:"events"`
	PageInfo PageInfo           `json:"pageInfo"`
}

// QueryFlags tune how the query engine executes a J1QL query.
type QueryFlags struct {
	IncludeDeleted           *bool  `json:"includeDeleted,omitempty"`
	DeferredResponse         string `json:"deferredResponse,omitempty"`
	ReturnRowMetadata        *bool  `json:"returnRowMetadata,omitempty"`
	ReturnComputedProperties *bool  `json:"returnComputedProperties,omitempty"`
}

type QueryRequest struct {
	Query        string
	Variables    map[string]any
	Cursor       string
	ScopeFilters []map[string]any
	Flags        *QueryFlags
}

// QueryResponse is the payload of a J1QL execution.
type QueryResponse struct {
	Type   string `json:"type"`
	Data   any    `json:"data"`
	Cursor string `json:"cursor,omitempty"`
}

// HasData reports whether the engine returned a payload. An empty list counts
// as a payload; a missing, null, empty-string, false or zero value does not.
func (r *QueryResponse) HasData() bool {
	if r == nil {
		return false
	}
	switch v := r.Data.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0
	default:
		return true
	}
}

type NaturalLanguageQuery struct {
	UUID     string `json:"uuid"`
	Question string `json:"question"`
	Query    string `json:"query"`
}
