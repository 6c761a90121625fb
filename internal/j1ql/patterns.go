package j1ql

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ErrorPattern pairs a regular expression over the engine's error text with a suggestion.
type ErrorPattern struct {
	Pattern    *regexp.Regexp
	Suggestion Suggestion
}

// ReservedKeywords cannot be used as aliases.
var ReservedKeywords = []string{
	"count", "sum", "avg", "min", "max",
	"find", "that", "with", "where", "return", "order", "by", "limit", "skip",
	"has", "relates", "to", "from",
	"and", "or", "not",
	"true", "false", "null", "undefined",
	"as",
}

const (
	msgAliasAfterWith    = `Place alias after WITH: "WITH property = value AS alias"`
	msgDirectionArrows   = `Direction arrows must follow the relationship verb: "THAT HAS >>" not "THAT >>"`
	msgGreaterOrEqual    = `Invalid operator "=>". Use ">=" for greater than or equal`
	msgPositiveSkip      = "SKIP and LIMIT values must be positive numbers"
	msgTooMuchData       = "Query returned too much data. Add LIMIT clause to reduce result size (e.g., LIMIT 100)"
	msgEntityClassCase   = "Check entity class capitalization (e.g., User not user) and type format (e.g., aws_iam_user)."
	msgUnknownProperty   = "Property does not exist. Run discovery: FIND <EntityClass> AS e RETURN e.* LIMIT 10"
	msgComparisonOps     = "Use valid operators: =, !=, ~=, ^=, $=, !~=, !^=, !$=, >, <, >=, <="
	msgTimeout           = "Query took too long. Add LIMIT clause or simplify the query."
	msgSingleQuotes      = "Use single quotes for strings, not double quotes"
	msgWhereNeedsAlias   = `WHERE clause requires aliases. Use "FIND Entity AS e WHERE e.property = value"`
	msgBooleanYesNo      = `Use "true" or "false" for boolean values, not "yes"/"no"`
	msgRegexUnclosed     = "Invalid regex pattern - missing closing slash"
	msgLimitAtLeastOne   = "LIMIT must be at least 1"
	msgAddLimitTimeout   = "Add LIMIT clause to prevent query timeout"
	msgAddLimitGeneric   = "Add LIMIT clause to prevent large result sets"
	msgMustStartWithFind = "Query must start with FIND"
)

func reservedKeywordMessage(keyword string) string {
	return fmt.Sprintf("Cannot use reserved keyword %q as an alias. Choose a different name.", keyword)
}

func quoteValueMessage(value string) string {
	return fmt.Sprintf("String values must be quoted: %s should be '%s'", value, value)
}

// errorPatterns is consulted in order; the first match wins.
var errorPatterns = []ErrorPattern{
	{
		// The engine hints at a lowercase "with" when an alias precedes WITH.
		Pattern:    regexp.MustCompile(`(?i)Error parsing query\. Unexpected token "WITH" at line \d+ column \d+\. Did you mean "with"\?`),
		Suggestion: Static(msgAliasAfterWith),
	},
	{
		Pattern:    regexp.MustCompile(`(?i)Error parsing query\. Unexpected token "(\w+)" at line \d+ column \d+(.*)`),
		Suggestion: Computed(unexpectedWordSuggestion),
	},
	{
		Pattern:    regexp.MustCompile(`(?i)Error parsing query\. Unexpected token "(>>|<<)" at line \d+ column \d+`),
		Suggestion: Static(msgDirectionArrows),
	},
	{
		Pattern:    regexp.MustCompile(`(?i)Error parsing query\. Unexpected token ">" at line \d+ column \d+.*=>`),
		Suggestion: Static(msgGreaterOrEqual),
	},
	{
		Pattern:    regexp.MustCompile(`(?i)Error parsing query\. Unexpected token "-" at line \d+ column \d+.*LIMIT`),
		Suggestion: Static(msgPositiveSkip),
	},
	{
		Pattern: regexp.MustCompile(`(?i)Invalid return selector provided: "(\w+)", valid return selectors are: "([^"]+)"`),
		Suggestion: Computed(func(m []string) Suggestion {
			return Static(fmt.Sprintf(`Undefined alias "%s". Use one of the defined aliases "%s" or define it: FIND <EntityClass> AS %s`, m[1], m[2], m[1]))
		}),
	},
	{
		Pattern: regexp.MustCompile(`(?i)Invalid predicate filter selector provided: "(\w+)", valid predicate selectors are: "([^"]+)"`),
		Suggestion: Computed(func(m []string) Suggestion {
			return Static(fmt.Sprintf(`Undefined alias "%s" in WHERE clause. Aliases in WHERE must be defined earlier in the query. Valid selectors: %s`, m[1], m[2]))
		}),
	},
	{
		Pattern: regexp.MustCompile(`(?i)"limit" must be a value between (\d+) and (\d+)`),
		Suggestion: Computed(func(m []string) Suggestion {
			return Static(fmt.Sprintf("LIMIT must be between %s and %s. Try using COUNT for aggregation queries.", m[1], m[2]))
		}),
	},
	{
		Pattern:    regexp.MustCompile(`(?i)J1QL Query is invalid\. Please check the syntax`),
		Suggestion: AnalyzeSyntax,
	},
	{
		Pattern:    regexp.MustCompile(`(?i)exceeds maximum allowed tokens`),
		Suggestion: Static(msgTooMuchData),
	},
	{
		Pattern:    regexp.MustCompile(`(?i)Invalid entity type or class`),
		Suggestion: Static(msgEntityClassCase),
	},
	{
		Pattern:    regexp.MustCompile(`(?i)Unknown property`),
		Suggestion: Static(msgUnknownProperty),
	},
	{
		Pattern:    regexp.MustCompile(`(?i)Invalid comparison operator`),
		Suggestion: Static(msgComparisonOps),
	},
	{
		Pattern:    regexp.MustCompile(`(?i)timeout|timed out`),
		Suggestion: Static(msgTimeout),
	},
}

// unexpectedWordSuggestion handles an unexpected bare word: a reserved word
// used as an alias, or an unquoted string value after WITH ... =.
func unexpectedWordSuggestion(m []string) Suggestion {
	token := strings.ToLower(m[1])
	if slices.Contains(ReservedKeywords, token) {
		return Static(reservedKeywordMessage(token))
	}
	if strings.Contains(m[0], "WITH") && strings.Contains(m[0], "=") {
		return Static(quoteValueMessage(m[1]))
	}
	return AnalyzeSyntax
}

// Patterns returns the ordered pattern table.
func Patterns() []ErrorPattern {
	return slices.Clone(errorPatterns)
}

// matchPattern returns the first pattern matching message and its submatches.
func matchPattern(message string) (ErrorPattern, []string, bool) {
	for _, p := range errorPatterns {
		if m := p.Pattern.FindStringSubmatch(message); m != nil {
			return p, m, true
		}
	}
	return ErrorPattern{}, nil, false
}
