// Package j1ql validates J1QL queries by executing them against the
// JupiterOne query engine and explains engine errors with actionable suggestions.
package j1ql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
)

const (
	// ValidationLimit bounds the rows fetched by a validation-only execution.
	ValidationLimit = 5

	unknownErrorMessage = "Unknown error"
	noDataMessage       = "Query returned no data"
	noDataSuggestion    = "Verify that entities matching your criteria exist. Try removing filters or using broader entity classes."
	emptyQueryMessage   = "Query is empty"

	defaultConcurrency = 4
)

// Outcome classifies a validation for metrics.
type Outcome string

const (
	OutcomeValid        Outcome = "valid"
	OutcomeEmpty        Outcome = "empty"
	OutcomeClassified   Outcome = "classified"
	OutcomeUnclassified Outcome = "unclassified"
)

// Executor runs J1QL queries. *jupiterone.Client implements it.
//
//go:generate mockgen -destination=mocks/mock_executor.go -package=j1ql_mocks github.com/jupiterone/jupiterone-mcp/internal/j1ql Executor
type Executor interface {
	ExecuteJ1QLQuery(ctx context.Context, req jupiterone.QueryRequest) (*jupiterone.QueryResponse, error)
}

// Recorder observes validation outcomes.
type Recorder interface {
	ObserveValidation(outcome string, duration time.Duration)
}

// ValidationResult is the outcome of validating one query. A valid result
// never carries Error or Suggestion; an invalid one always carries both.
type ValidationResult struct {
	IsValid    bool                      `json:"isValid"`
	Error      string                    `json:"error,omitempty"`
	Suggestion string                    `json:"suggestion,omitempty"`
	Results    *jupiterone.QueryResponse `json:"results,omitempty"`
}

// Validator checks queries by executing them through an Executor.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	exec        Executor
	recorder    Recorder
	concurrency int
}

type Option func(*Validator)

// WithRecorder reports every validation outcome to r.
func WithRecorder(r Recorder) Option {
	return func(v *Validator) {
		v.recorder = r
	}
}

// WithConcurrency bounds the number of queries ValidateNamedQueries runs at once.
func WithConcurrency(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.concurrency = n
		}
	}
}

func NewValidator(exec Executor, opts ...Option) *Validator {
	v := &Validator{exec: exec, concurrency: defaultConcurrency}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateQuery executes the query with a small LIMIT and reports whether the
// engine accepts it. It never panics and never returns an error.
func (v *Validator) ValidateQuery(ctx context.Context, query string) ValidationResult {
	start := time.Now()
	result, outcome := v.validate(ctx, query)
	if v.recorder != nil {
		v.recorder.ObserveValidation(string(outcome), time.Since(start))
	}
	return result
}

func (v *Validator) validate(ctx context.Context, query string) (ValidationResult, Outcome) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return ValidationResult{Error: emptyQueryMessage, Suggestion: GenericSuggestions(trimmed)}, OutcomeUnclassified
	}

	resp, err := v.execute(ctx, AddLimit(trimmed, ValidationLimit))
	if err != nil {
		result, classified := diagnose(ErrorMessage(err), query)
		if classified {
			return result, OutcomeClassified
		}
		return result, OutcomeUnclassified
	}

	if !resp.HasData() {
		return ValidationResult{Error: noDataMessage, Suggestion: noDataSuggestion}, OutcomeEmpty
	}
	return ValidationResult{IsValid: true, Results: resp}, OutcomeValid
}

// execute converts executor panics into errors.
func (v *Validator) execute(ctx context.Context, query string) (resp *jupiterone.QueryResponse, err error) {
	if v == nil || v.exec == nil {
		return nil, errors.New("query executor is not configured")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("query execution failed: %v", r)
		}
	}()
	return v.exec.ExecuteJ1QLQuery(ctx, jupiterone.QueryRequest{Query: query})
}

// HandleQueryError explains an engine error for the given query.
func (v *Validator) HandleQueryError(err error, query string) ValidationResult {
	return HandleQueryError(err, query)
}

// HandleQueryError classifies err against the pattern table, falling back to
// syntax analysis and then to generic suggestions. The suggestion is never empty.
func HandleQueryError(err error, query string) ValidationResult {
	result, _ := diagnose(ErrorMessage(err), query)
	return result
}

// diagnose reports whether a pattern matched the message.
func diagnose(message, query string) (ValidationResult, bool) {
	result := ValidationResult{Error: message}

	pattern, match, ok := matchPattern(message)
	if ok {
		result.Suggestion = pattern.Suggestion.resolve(match, query, message)
	}
	if result.Suggestion == "" {
		result.Suggestion = GenericSuggestions(query)
	}
	return result, ok
}

// ErrorMessage extracts the display text of an engine error.
func ErrorMessage(err error) string {
	if err == nil {
		return unknownErrorMessage
	}
	msg := strings.TrimSpace(strings.TrimPrefix(err.Error(), "graphql: "))
	if msg == "" {
		return unknownErrorMessage
	}
	return msg
}

// AddLimit appends "LIMIT n" to the trimmed query unless it already has a LIMIT clause.
func AddLimit(query string, n int) string {
	if limitRegex.MatchString(query) {
		return query
	}
	return strings.TrimSpace(query) + " LIMIT " + strconv.Itoa(n)
}
