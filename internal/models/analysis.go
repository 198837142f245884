package models

// Limits applied to the analytic fields of a successful result.
// Display-oriented truncation, not a correctness concern.
const (
	MaxTokens  = 50
	MaxLemmas  = 20
	MaxPOSTags = 30
)

// LanguageUnknown is reported for blank input, before any analysis runs.
const LanguageUnknown = "unknown"

// LanguageFallback is reported when detection could not decide and the
// English pipeline ran as a best-effort default.
const LanguageFallback = "unknown (defaulting to English)"

// Entity is a named-entity span with its label.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// POSTag pairs a token with its part-of-speech label.
type POSTag struct {
	Token string `json:"token"`
	Label string `json:"label"`
}

// AnalysisResult is the presentation-neutral output of one analysis call.
// It is built fresh per request and never mutated after return.
//
// A result is either a success (ErrorDetails nil, all analytic fields
// populated, with empty slices where a field does not apply to the
// language) or a failure (ErrorDetails set, analytic fields undefined).
// Callers must check Failed() before trusting the analytic fields.
type AnalysisResult struct {
	Language      string   `json:"language"`
	WordCount     int      `json:"word_count"`
	SentenceCount int      `json:"sentence_count"`
	Tokens        []string `json:"tokens"`
	Lemmas        []string `json:"lemmas"`
	Entities      []Entity `json:"entities"`
	POSTags       []POSTag `json:"pos_tags"`

	ErrorDetails *string `json:"error_details,omitempty"`
}

// Failed reports whether the result is a failure result.
func (r *AnalysisResult) Failed() bool {
	return r.ErrorDetails != nil
}

// Empty reports whether the result came from blank input. Distinct from a
// failure: the caller should prompt for input rather than show an error.
func (r *AnalysisResult) Empty() bool {
	return r.ErrorDetails == nil && r.Language == LanguageUnknown
}

// FailedResult builds a failure result carrying only the error string and,
// when known, the detected language.
func FailedResult(language, details string) *AnalysisResult {
	return &AnalysisResult{
		Language:     language,
		ErrorDetails: &details,
	}
}
