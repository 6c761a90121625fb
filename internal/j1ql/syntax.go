package j1ql

import (
	"regexp"
	"slices"
	"strings"
)

var (
	limitRegex         = regexp.MustCompile(`(?i)\bLIMIT\s+\d+`)
	countRegex         = regexp.MustCompile(`(?i)\bCOUNT\s*\(`)
	whereRegex         = regexp.MustCompile(`(?i)\bWHERE\b`)
	aliasBeforeWhere   = regexp.MustCompile(`(?i)\bAS\s+\w+.*WHERE`)
	aliasBeforeWith    = regexp.MustCompile(`(?i)\bAS\s+\w+\s+WITH\b`)
	bareValueRegex     = regexp.MustCompile(`=\s*([a-zA-Z]+)(?:\s|$)`)
	arrowAfterThat     = regexp.MustCompile(`(?i)THAT\s*>>`)
	lowercaseFindRegex = regexp.MustCompile(`\b(?i:find)\s+([a-z]\w*)`)
	yesNoRegex         = regexp.MustCompile(`(?i)=\s*(yes|no)\b`)
	unclosedRegex      = regexp.MustCompile(`=\s*/[^/]*$`)
	negativePagingRe   = regexp.MustCompile(`(?i)\b(SKIP|LIMIT)\s+-\d+`)
	limitZeroRegex     = regexp.MustCompile(`(?i)\bLIMIT\s+0\b`)
	reservedAliasRegex = regexp.MustCompile(`(?i)\bAS\s+(` + strings.Join(ReservedKeywords, "|") + `)\b`)
	findKeywordRegex   = regexp.MustCompile(`\b(FIND|find)\b`)
)

// literalValues may appear unquoted on the right of a comparison.
var literalValues = []string{"true", "false", "null", "undefined"}

// syntaxCheck inspects the query text and returns a line of guidance, or "".
type syntaxCheck func(query string) string

var syntaxChecks = []syntaxCheck{
	func(q string) string {
		if strings.Contains(q, `"`) {
			return msgSingleQuotes
		}
		return ""
	},
	func(q string) string {
		m := bareValueRegex.FindStringSubmatch(q)
		if m == nil || slices.Contains(literalValues, m[1]) {
			return ""
		}
		return quoteValueMessage(m[1])
	},
	func(q string) string {
		if aliasBeforeWith.MatchString(q) {
			return msgAliasAfterWith
		}
		return ""
	},
	func(q string) string {
		if whereRegex.MatchString(q) && !aliasBeforeWhere.MatchString(q) {
			return msgWhereNeedsAlias
		}
		return ""
	},
	func(q string) string {
		if strings.Contains(q, "=>") {
			return msgGreaterOrEqual
		}
		return ""
	},
	func(q string) string {
		if arrowAfterThat.MatchString(q) {
			return msgDirectionArrows
		}
		return ""
	},
	func(q string) string {
		m := lowercaseFindRegex.FindStringSubmatch(q)
		if m == nil || strings.Contains(m[1], "_") {
			return ""
		}
		class := m[1]
		return `Entity classes should be capitalized: "` + class + `" should be "` + strings.ToUpper(class[:1]) + class[1:] + `"`
	},
	func(q string) string {
		if yesNoRegex.MatchString(q) {
			return msgBooleanYesNo
		}
		return ""
	},
	func(q string) string {
		if !limitRegex.MatchString(q) && !countRegex.MatchString(q) {
			return msgAddLimitTimeout
		}
		return ""
	},
	func(q string) string {
		if unclosedRegex.MatchString(q) {
			return msgRegexUnclosed
		}
		return ""
	},
	func(q string) string {
		if negativePagingRe.MatchString(q) {
			return msgPositiveSkip
		}
		return ""
	},
	func(q string) string {
		if limitZeroRegex.MatchString(q) {
			return msgLimitAtLeastOne
		}
		return ""
	},
	func(q string) string {
		if m := reservedAliasRegex.FindStringSubmatch(q); m != nil {
			return reservedKeywordMessage(m[1])
		}
		return ""
	},
}

// AnalyzeSyntaxError runs every structural check against the query and joins
// the triggered lines. When nothing triggers it falls back to GenericSuggestions.
// The error message is accepted for context only.
func AnalyzeSyntaxError(query, _ string) string {
	var issues []string
	for _, check := range syntaxChecks {
		if msg := check(query); msg != "" {
			issues = append(issues, msg)
		}
	}
	if len(issues) == 0 {
		return GenericSuggestions(query)
	}
	return strings.Join(issues, "\n")
}

// discoveryCheatSheet is returned when no other heuristic applies.
var discoveryCheatSheet = []string{
	"Try these discovery queries first:",
	"1. FIND * AS e RETURN e._class, COUNT(e) - to see available entity classes",
	"2. FIND <EntityClass> AS e RETURN e.* LIMIT 10 - to see entity properties",
	"3. FIND Entity1 THAT RELATES TO AS rel Entity2 RETURN rel._class - to discover relationships",
}

// GenericSuggestions scans the query for common structural mistakes. It never returns "".
func GenericSuggestions(query string) string {
	var suggestions []string
	if !limitRegex.MatchString(query) && !countRegex.MatchString(query) {
		suggestions = append(suggestions, msgAddLimitGeneric)
	}
	if whereRegex.MatchString(query) && !aliasBeforeWhere.MatchString(query) {
		suggestions = append(suggestions, msgWhereNeedsAlias)
	}
	if strings.Contains(query, `"`) {
		suggestions = append(suggestions, msgSingleQuotes)
	}
	if aliasBeforeWith.MatchString(query) {
		suggestions = append(suggestions, msgAliasAfterWith)
	}
	if !findKeywordRegex.MatchString(query) {
		suggestions = append(suggestions, msgMustStartWithFind)
	}

	if len(suggestions) == 0 {
		suggestions = discoveryCheatSheet
	}
	return strings.Join(suggestions, "\n")
}
