package tools

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
)

// LLMResponseWrapper provides a standardized response format for tools whose
// output benefits from guidance on what to do next.
type LLMResponseWrapper[T any] struct {
	Summary   string   `json:"summary"`
	Data      T        `json:"data"`
	NextSteps []string `json:"next_steps,omitempty"`
}

// CreateLLMResponse creates a standardized LLM response with the given data
func CreateLLMResponse[T any](summary string, data T, nextSteps ...string) LLMResponseWrapper[T] {
	return LLMResponseWrapper[T]{
		Summary:   summary,
		Data:      data,
		NextSteps: nextSteps,
	}
}

// ToJSON converts the LLMResponseWrapper to pretty JSON for LLM consumption
func (r LLMResponseWrapper[T]) ToJSON() (string, error) {
	return toJSON(r)
}

func toJSON(v any) (string, error) {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal response to JSON: %w", err)
	}
	return string(bytes), nil
}

// JSONResult renders v as indented JSON text.
func JSONResult(v any) (*mcp.CallToolResult, error) {
	text, err := toJSON(v)
	if err != nil {
		slog.Error("Error formatting tool response", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

// ErrorResult logs err and returns it as a tool error prefixed with action,
// e.g. "Error listing rules: <message>".
func ErrorResult(action string, err error) *mcp.CallToolResult {
	slog.Error(action, "error", err)
	return mcp.NewToolResultError(fmt.Sprintf("%s: %s", action, err.Error()))
}

// CheckServices returns a tool error when a required service is missing, nil otherwise.
func CheckServices(client jupiterone.Service, asService analytics.Service) *mcp.CallToolResult {
	if asService == nil {
		errMessage := "Analytics service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage)
	}
	if client == nil {
		errMessage := "JupiterOne client is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage)
	}
	return nil
}

// Common response summaries that can be reused across tools
const (
	SummaryQueryExecuted  = "J1QL query has been successfully executed and results are available."
	SummaryQueryValid     = "J1QL query is valid and returned data."
	SummaryQueryInvalid   = "J1QL query did not validate. Apply the suggestion and validate again."
	SummaryQueryGenerated = "A J1QL query has been generated from the question. Validate it before use."
	SummaryExamples       = "J1QL example queries and syntax notes."
)

// Common next steps that can be reused across tools
var (
	NextStepsAfterQuery = []string{
		"Analyze the returned data to understand the results",
		"Refine the query with WITH filters or RETURN projections if needed",
		"Use the cursor to fetch the next page when one is returned",
	}

	NextStepsAfterValidQuery = []string{
		"Use execute-j1ql-query to fetch the full result set",
		"Use the query in create-inline-question-rule or create-dashboard-widget",
	}

	NextStepsAfterInvalidQuery = []string{
		"Apply the suggestion and call validate-j1ql-query again",
		"Run discovery queries from get-j1ql-examples to confirm entity classes and properties",
	}

	NextStepsAfterGeneratedQuery = []string{
		"Validate the generated query with validate-j1ql-query",
		"Adjust entity classes and property names if validation fails",
	}
)
