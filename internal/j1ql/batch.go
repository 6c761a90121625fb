package j1ql

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// NamedQuery is a query referenced by name from a rule or widget.
type NamedQuery struct {
	Name  string
	Query string
}

// QueryFailure describes one query that did not validate.
type QueryFailure struct {
	QueryName  string `json:"queryName"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion"`
}

// ValidateNamedQueries validates every query concurrently and returns the
// failures in input order. An empty result means all queries are valid.
func (v *Validator) ValidateNamedQueries(ctx context.Context, queries []NamedQuery) []QueryFailure {
	results := make([]ValidationResult, len(queries))

	limit := v.concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for i, q := range queries {
		g.Go(func() error {
			results[i] = v.ValidateQuery(ctx, q.Query)
			return nil
		})
	}
	_ = g.Wait()

	var failures []QueryFailure
	for i, r := range results {
		if r.IsValid {
			continue
		}
		failures = append(failures, QueryFailure{
			QueryName:  queries[i].Name,
			Error:      r.Error,
			Suggestion: r.Suggestion,
		})
	}
	return failures
}

// FormatFailures renders failures as a single rejection message.
func FormatFailures(failures []QueryFailure) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Query validation failed for %d %s. Fix the following before retrying:\n", len(failures), plural(len(failures), "query", "queries"))
	for _, f := range failures {
		fmt.Fprintf(&b, "\nQuery %q:\n", f.QueryName)
		fmt.Fprintf(&b, "  Error: %s\n", f.Error)
		fmt.Fprintf(&b, "  Suggestion: %s\n", strings.ReplaceAll(f.Suggestion, "\n", "\n    "))
	}
	return strings.TrimRight(b.String(), "\n")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
