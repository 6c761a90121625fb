package rules

import (
	"context"

	"github.com/jupiterone/jupiterone-mcp/internal/j1ql"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
)

// RuleFields are the arguments shared by rule creation and update.
type RuleFields struct {
	Name                            string                          `json:"name" validate:"required" jsonschema_description:"Name of the rule"`
	Description                     string                          `json:"description" jsonschema_description:"Description of the rule"`
	NotifyOnFailure                 *bool                           `json:"notifyOnFailure,omitempty" jsonschema_description:"Whether to notify when the rule evaluation fails"`
	TriggerActionsOnNewEntitiesOnly *bool                           `json:"triggerActionsOnNewEntitiesOnly,omitempty" jsonschema_description:"Only trigger actions for entities not seen by the previous evaluation"`
	IgnorePreviousResults           *bool                           `json:"ignorePreviousResults,omitempty" jsonschema_description:"Whether to ignore previous results"`
	PollingInterval                 string                          `json:"pollingInterval" validate:"required,polling_interval" jsonschema:"enum=DISABLED,enum=THIRTY_MINUTES,enum=ONE_HOUR,enum=FOUR_HOURS,enum=EIGHT_HOURS,enum=TWELVE_HOURS,enum=ONE_DAY,enum=ONE_WEEK" jsonschema_description:"How frequently to evaluate the rule"`
	Outputs                         []string                        `json:"outputs" validate:"required" jsonschema_description:"Output fields of the rule evaluation, e.g. alertLevel"`
	SpecVersion                     *int                            `json:"specVersion,omitempty" jsonschema_description:"Rule specification version"`
	Tags                            []string                        `json:"tags,omitempty" jsonschema_description:"Tags for categorizing the rule"`
	Templates                       map[string]any                  `json:"templates,omitempty" jsonschema_description:"Template variables"`
	Labels                          []jupiterone.Label              `json:"labels,omitempty" jsonschema_description:"Labels as labelName/labelValue pairs"`
	RemediationSteps                string                          `json:"remediationSteps,omitempty" jsonschema_description:"Remediation guidance shown with the alert"`
	Queries                         []jupiterone.QuestionQuery      `json:"queries" validate:"required,min=1,dive" jsonschema_description:"J1QL queries that define what entities to match. Conditions reference them as queries.<name>.total"`
	Operations                      []jupiterone.RuleOperationInput `json:"operations" validate:"required,min=1,dive" jsonschema_description:"Operations that define when and what actions to take"`
}

func (f RuleFields) namedQueries() []j1ql.NamedQuery {
	queries := make([]j1ql.NamedQuery, 0, len(f.Queries))
	for _, q := range f.Queries {
		queries = append(queries, j1ql.NamedQuery{Name: q.Name, Query: q.Query})
	}
	return queries
}

func (f RuleFields) input(id string) jupiterone.InlineQuestionRuleInput {
	return jupiterone.InlineQuestionRuleInput{
		ID:                              id,
		Name:                            f.Name,
		Description:                     f.Description,
		NotifyOnFailure:                 f.NotifyOnFailure,
		TriggerActionsOnNewEntitiesOnly: f.TriggerActionsOnNewEntitiesOnly,
		IgnorePreviousResults:           f.IgnorePreviousResults,
		PollingInterval:                 f.PollingInterval,
		Outputs:                         f.Outputs,
		SpecVersion:                     f.SpecVersion,
		Tags:                            f.Tags,
		Templates:                       f.Templates,
		Labels:                          f.Labels,
		RemediationSteps:                f.RemediationSteps,
		Question:                        jupiterone.Question{Queries: f.Queries},
		Operations:                      f.Operations,
	}
}

type savedRule struct {
	ID                              string                     `json:"id"`
	Name                            string                     `json:"name"`
	Description                     string                     `json:"description"`
	Version                         any                        `json:"version"`
	PollingInterval                 string                     `json:"pollingInterval"`
	Outputs                         []string                   `json:"outputs"`
	SpecVersion                     any                        `json:"specVersion"`
	NotifyOnFailure                 *bool                      `json:"notifyOnFailure"`
	TriggerActionsOnNewEntitiesOnly *bool                      `json:"triggerActionsOnNewEntitiesOnly"`
	IgnorePreviousResults           *bool                      `json:"ignorePreviousResults"`
	Tags                            []string                   `json:"tags"`
	Question                        *jupiterone.Question       `json:"question"`
	Operations                      []jupiterone.RuleOperation `json:"operations"`
	LatestAlertID                   *string                    `json:"latestAlertId"`
	LatestAlertIsActive             *bool                      `json:"latestAlertIsActive"`
}

type saveRuleResponse struct {
	Success bool      `json:"success"`
	Rule    savedRule `json:"rule"`
	URL     string    `json:"url"`
}

func newSaveRuleResponse(r *jupiterone.QuestionRuleInstance, url string) saveRuleResponse {
	return saveRuleResponse{
		Success: true,
		Rule: savedRule{
			ID:                              r.ID,
			Name:                            r.Name,
			Description:                     r.Description,
			Version:                         r.Version,
			PollingInterval:                 r.PollingInterval,
			Outputs:                         r.Outputs,
			SpecVersion:                     r.SpecVersion,
			NotifyOnFailure:                 r.NotifyOnFailure,
			TriggerActionsOnNewEntitiesOnly: r.TriggerActionsOnNewEntitiesOnly,
			IgnorePreviousResults:           r.IgnorePreviousResults,
			Tags:                            r.Tags,
			Question:                        r.Question,
			Operations:                      r.Operations,
			LatestAlertID:                   r.LatestAlertID,
			LatestAlertIsActive:             r.LatestAlertIsActive,
		},
		URL: url,
	}
}

// ruleURL links to the rule in the web app. The account subdomain is looked up
// best-effort; the default subdomain is used when it is unavailable.
func ruleURL(ctx context.Context, client jupiterone.Service, baseURL, ruleID string) string {
	var subdomain string
	if info, err := client.GetAccountInfo(ctx); err == nil && info != nil {
		subdomain = info.AccountSubdomain
	}
	return jupiterone.RuleURL(baseURL, ruleID, subdomain)
}
