package rules

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type RawDataInput struct {
	RawDataKey string `json:"rawDataKey" validate:"required" jsonschema_description:"The rawDataKey of a raw data descriptor from a rule evaluation"`
}

func GetRawDataDownloadURLSpec() mcp.Tool {
	return mcp.NewTool("get-raw-data-download-url",
		mcp.WithDescription("Generate a short-lived signed URL for downloading the raw data of a rule evaluation. Use it for result sets too large to return inline."),
		mcp.WithInputSchema[RawDataInput](),
		mcp.WithTitleAnnotation("Get Raw Data Download URL"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

func GetRuleEvaluationQueryResultsSpec() mcp.Tool {
	return mcp.NewTool("get-rule-evaluation-query-results",
		mcp.WithDescription("Fetch the entities a rule evaluation query matched. The results are downloaded from the raw data store and returned as JSON."),
		mcp.WithInputSchema[RawDataInput](),
		mcp.WithTitleAnnotation("Get Rule Evaluation Query Results"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
