package jupiterone

const mutationCreateInlineQuestionRule = `
mutation createInlineQuestionRuleInstance($instance: CreateInlineQuestionRuleInstanceInput!) {
  createInlineQuestionRuleInstance(instance: $instance) { ...RuleInstanceFields }
}
` + ruleInstanceFragment

const mutationUpdateInlineQuestionRule = `
mutation UpdateInlineQuestionRuleInstance($instance: UpdateInlineQuestionRuleInstanceInput!) {
  updateInlineQuestionRuleInstance(instance: $instance) { ...RuleInstanceFields }
}
` + ruleInstanceFragment

const mutationDeleteRule = `
mutation DeleteRuleInstance($id: ID!) {
  deleteRuleInstance(id: $id) { id }
}
`

const mutationEvaluateRule = `
mutation evaluateRuleInstance($id: ID!) {
  evaluateRuleInstance(id: $id) {
    id
    __typename
  }
}
`

const mutationCreateDashboard = `
mutation CreateDashboard($input: CreateInsightsDashboardInput!) {
  createDashboard(input: $input) { id }
}
`

const mutationCreateDashboardWidget = `
mutation CreateWidget($dashboardId: String!, $input: CreateInsightsWidgetInput!) {
  createWidget(dashboardId: $dashboardId, input: $input) { ...InsightsWidget }
}
` + widgetFragment

const mutationPatchDashboard = `
mutation PatchDashboard($input: PatchInsightsDashboardInput!) {
  patchDashboard(input: $input) {` + dashboardFields + `}
}
` + widgetFragment

const mutationJ1QLFromNaturalLanguage = `
mutation createJ1qlFromNaturalLanguage($naturalLanguage: String!) {
  createJ1qlFromNaturalLanguage(naturalLanguage: $naturalLanguage) {
    uuid
    question
    query
  }
}
`
