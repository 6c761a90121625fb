package j1ql

import "regexp"

var (
	entitySelectorRegex = regexp.MustCompile(`(?i)\bFIND\s+(\w+|\*)`)
	relationshipRegex   = regexp.MustCompile(`(?i)\bTHAT\s+(\w+)`)
)

// QueryMetadata summarizes a query for logging and tool responses.
type QueryMetadata struct {
	HasLimit      bool     `json:"hasLimit"`
	HasCount      bool     `json:"hasCount"`
	EntityClasses []string `json:"entityClasses"`
	Relationships []string `json:"relationships"`
}

// GetQueryMetadata extracts QueryMetadata without executing the query.
func GetQueryMetadata(query string) QueryMetadata {
	return QueryMetadata{
		HasLimit:      limitRegex.MatchString(query),
		HasCount:      countRegex.MatchString(query),
		EntityClasses: submatches(entitySelectorRegex, query),
		Relationships: submatches(relationshipRegex, query),
	}
}

func submatches(re *regexp.Regexp, s string) []string {
	out := []string{}
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		out = append(out, m[1])
	}
	return out
}
