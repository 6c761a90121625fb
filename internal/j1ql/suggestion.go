package j1ql

type suggestionKind int

const (
	staticSuggestion suggestionKind = iota
	computedSuggestion
	syntaxAnalysisSuggestion
)

// Suggestion is the remediation attached to an ErrorPattern: fixed text, a
// function of the regex match, or a request to run the syntax analyzer on the query.
type Suggestion struct {
	kind    suggestionKind
	text    string
	compute func(match []string) Suggestion
}

// Static returns a suggestion with fixed text.
func Static(text string) Suggestion {
	return Suggestion{kind: staticSuggestion, text: text}
}

// Computed returns a suggestion derived from the match groups of the pattern.
// fn returns either a Static suggestion or AnalyzeSyntax.
func Computed(fn func(match []string) Suggestion) Suggestion {
	return Suggestion{kind: computedSuggestion, compute: fn}
}

// AnalyzeSyntax delegates the suggestion to the syntax analyzer.
var AnalyzeSyntax = Suggestion{kind: syntaxAnalysisSuggestion}

// resolve turns s into text for the given match and query.
func (s Suggestion) resolve(match []string, query, errorMessage string) string {
	switch s.kind {
	case staticSuggestion:
		return s.text
	case computedSuggestion:
		if s.compute == nil {
			return AnalyzeSyntaxError(query, errorMessage)
		}
		next := s.compute(match)
		if next.kind == computedSuggestion {
			// only one level of indirection is allowed
			return AnalyzeSyntaxError(query, errorMessage)
		}
		return next.resolve(match, query, errorMessage)
	default:
		return AnalyzeSyntaxError(query, errorMessage)
	}
}
