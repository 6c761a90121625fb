package jupiterone

const alertInstanceFragment = `
fragment AlertInstanceFragment on AlertInstance {
  accountId
  resourceGroupId
  createdOn
  dismissedOn
  endReason
  id
  lastEvaluationBeginOn
  lastEvaluationEndOn
  lastEvaluationResult {
    answerText
    evaluationEndOn
    outputs { name value }
    rawDataDescriptors { name recordCount }
  }
  lastUpdatedOn
  level
  questionRuleInstance {
    id
    name
    description
    tags
    pollingInterval
    labels { labelName labelValue }
  }
  reportRuleInstance { name description }
  ruleId
  ruleVersion
  status
  users
}
`

const ruleInstanceFragment = `
fragment RuleInstanceFields on QuestionRuleInstance {
  id
  resourceGroupId
  accountId
  name
  description
  version
  lastEvaluationStartOn
  lastEvaluationEndOn
  evaluationStep
  specVersion
  notifyOnFailure
  triggerActionsOnNewEntitiesOnly
  ignorePreviousResults
  pollingInterval
  templates
  outputs
  labels { labelName labelValue }
  question {
    queries { query name version includeDeleted }
  }
  questionId
  latest
  deleted
  type
  operations { when actions }
  latestAlertId
  latestAlertIsActive
  state { actions }
  tags
  remediationSteps
}
`

const layoutItemFields = `{ static moved w h x y i }`

const widgetFragment = `
fragment InsightsWidget on InsightsWidget {
  id
  title
  description
  type
  questionId
  noResultMessage
  includeDeleted
  config {
    queries { id name query }
    settings
    postQueryFilters
    disableQueryPolicyFilters
  }
}
`

const dashboardFields = `
  id
  name
  category
  userId
  supportedUseCase
  isJ1ManagedBoard
  published
  publishedToUserIds
  publishedToGroupIds
  groupIds
  userIds
  scopeFilters
  resourceGroupId
  starred
  _timeUpdated
  _createdAt
  prerequisites {
    prerequisitesMet
    preRequisitesGroupsFulfilled
    preRequisitesGroupsRequired
  }
  parameters {
    id
    label
    name
    options
    valueType
    type
    default
    disableCustomInput
    requireValue
  }
  widgets { ...InsightsWidget }
  layouts {
    xs ` + layoutItemFields + `
    sm ` + layoutItemFields + `
    md ` + layoutItemFields + `
    lg ` + layoutItemFields + `
    xl ` + layoutItemFields + `
  }
`

const queryListAlertInstances = `
query listAlertInstances($alertStatus: AlertStatus, $limit: Int, $cursor: String) {
  listAlertInstances(alertStatus: $alertStatus, limit: $limit, cursor: $cursor) {
    instances { ...AlertInstanceFragment }
    pageInfo { endCursor hasNextPage }
  }
}
` + alertInstanceFragment

const queryListRuleInstances = `
query listRuleInstances($limit: Int, $cursor: String) {
  listRuleInstances(limit: $limit, cursor: $cursor) {
    questionInstances { ...RuleInstanceFields }
    pageInfo { hasNextPage endCursor }
  }
}
` + ruleInstanceFragment

const queryAccountInfo = `
query account {
  iamGetAccount {
    accountId
    accountSubdomain
    accountName
    accountOwner
    status
    accountType
  }
}
`

const queryDashboards = `
query GetDashboards {
  getDashboards(options: {includeAllJ1ManagedDashboards: true}) {
    id
    name
    userId
    category
    supportedUseCase
    prerequisites {
      prerequisitesMet
      preRequisitesGroupsFulfilled
      preRequisitesGroupsRequired
    }
    isJ1ManagedBoard
    resourceGroupId
    starred
    _timeUpdated
    _createdAt
  }
}
`

const queryDashboardDetails = `
query GetDashboard($dashboardId: String!) {
  getDashboard(dashboardId: $dashboardId) {` + dashboardFields + `}
}
` + widgetFragment

const queryListRuleEvaluations = `
query listCollectionResults(
  $collectionType: CollectionType!
  $collectionOwnerId: String!
  $beginTimestamp: Long!
  $endTimestamp: Long!
  $limit: Int
  $cursor: String
  $tag: String
) {
  listCollectionResults(
    collectionType: $collectionType
    collectionOwnerId: $collectionOwnerId
    beginTimestamp: $beginTimestamp
    endTimestamp: $endTimestamp
    limit: $limit
    cursor: $cursor
    tag: $tag
  ) {
    results {
      accountId
      collectionOwnerId
      collectionOwnerVersion
      collectionType
      outputs { name value }
      rawDataDescriptors { name persistedResultType rawDataKey recordCount }
      tag
      timestamp
    }
    pageInfo { endCursor hasNextPage }
  }
}
`

const queryRuleEvaluationDetails = `
query ruleEvaluationDetails($ruleEvaluationDetailsInput: RuleEvaluationDetailsInput!) {
  ruleEvaluationDetails(ruleEvaluationDetailsInput: $ruleEvaluationDetailsInput) {
    accountRuleId
    startedOn
    question {
      totalDuration
      queries {
        name
        status
        duration
        error
      }
    }
    conditions {
      status
      duration
      error
    }
    actions {
      actionId
      status
      duration
      error
      type
    }
  }
}
`

const queryRawDataDownloadURL = `
query getRawDataDownloadUrl($rawDataKey: String!) {
  getRawDataDownloadUrl(rawDataKey: $rawDataKey)
}
`

const queryIntegrationDefinitions = `
query IntegrationDefinitions($cursor: String, $includeConfig: Boolean = false) {
  integrationDefinitions(cursor: $cursor) {
    definitions {
      id
      name
      type
      title
      displayMode
      oAuth { oAuthUrlGeneratorPath }
      offsiteUrl
      offsiteButtonTitle
      offsiteStatusQuery
      integrationType
      integrationClass
      beta
      docsWebLink
      repoWebLink
      invocationPaused
      managedExecutionDisabled
      managedCreateDisabled
      managedDeleteDisabled
      configFields @include(if: $includeConfig) {
        key
        displayName
        description
        type
        format
        defaultValue
        helperText
        inputAdornment
        mask
        optional
        immutable
        readonly
      }
      authSections @include(if: $includeConfig) {
        id
        description
        displayName
      }
      totalInstanceCount
    }
    pageInfo { endCursor hasNextPage }
  }
}
`

const queryIntegrationInstances = `
query IntegrationInstances($definitionId: String, $cursor: String, $limit: Int, $filter: ListIntegrationInstancesSearchFilter) {
  integrationInstancesV2(definitionId: $definitionId, cursor: $cursor, limit: $limit, filter: $filter) {
    instances {
      id
      name
      accountId
      sourceIntegrationInstanceId
      pollingInterval
      pollingIntervalCronExpression { hour dayOfWeek }
      integrationDefinition {
        id
        name
        title
        integrationType
        integrationClass
        offsiteUrl
      }
      description
      config
      instanceRelationship
      lastJob {
        status
        createDate
        endDate
        hasSkippedSteps
      }
      mostRecentJob {
        status
        createDate
        endDate
        hasSkippedSteps
      }
    }
    pageInfo { endCursor hasNextPage }
  }
}
`

const queryIntegrationJobs = `
query IntegrationJobs(
  $status: IntegrationJobStatus
  $integrationInstanceId: String
  $integrationDefinitionId: String
  $integrationInstanceIds: [String]
  $cursor: String
  $size: Int
) {
  integrationJobs(
    status: $status
    integrationInstanceId: $integrationInstanceId
    integrationDefinitionId: $integrationDefinitionId
    integrationInstanceIds: $integrationInstanceIds
    cursor: $cursor
    size: $size
  ) {
    jobs {
      id
      status
      integrationInstanceId
      createDate
      endDate
      hasSkippedSteps
      integrationInstance { id name }
      integrationDefinition { id title integrationType }
    }
    pageInfo { endCursor hasNextPage }
  }
}
`

const queryIntegrationJob = `
query IntegrationJob($integrationJobId: String!, $integrationInstanceId: String!) {
  integrationJob(id: $integrationJobId, integrationInstanceId: $integrationInstanceId) {
    id
    status
    integrationInstanceId
    createDate
    endDate
    hasSkippedSteps
    integrationInstance { id name }
    integrationDefinition { id title integrationType }
  }
}
`

const queryIntegrationEvents = `
query ListEvents($jobId: String!, $integrationInstanceId: String!, $cursor: String, $size: Int) {
  integrationEvents(size: $size, cursor: $cursor, jobId: $jobId, integrationInstanceId: $integrationInstanceId) {
    events {
      id
      name
      description
      createDate
      jobId
      level
      eventCode
    }
    pageInfo { endCursor hasNextPage }
  }
}
`

const queryJ1QL = `
query J1QL(
  $query: String!
  $variables: JSON
  $cursor: String
  $scopeFilters: [JSON!]
  $flags: QueryV1Flags
) {
  queryV1(
    query: $query
    variables: $variables
    cursor: $cursor
    scopeFilters: $scopeFilters
    flags: $flags
  ) {
    type
    data
    cursor
  }
}
`
