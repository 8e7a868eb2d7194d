package translator

import "slices"

// Source names the strategy that produced a Result.
type Source string

const (
	SourceAlreadyLatin Source = "already_source_script"
	SourceExact        Source = "exact_term"
	SourcePartial      Source = "partial_term"
	SourcePattern      Source = "pattern_match"
	SourceSegmentation Source = "segmentation"
	SourcePhonetic     Source = "phonetic_fallback"
	SourceEmpty        Source = "empty"
)

// Confidence levels assigned by each strategy.
const (
	ConfidenceExact        = 1.0
	ConfidencePartial      = 0.7
	ConfidenceSegmentation = 0.6
	ConfidencePhonetic     = 0.3
)

// Result is the outcome of translating one phrase.
//
// Category and MatchedSpan are set only by strategies that hit the term store:
// the category of the record used and the phrase it was stored under.
type Result struct {
	Primary      string   `json:"primary"`
	Alternatives []string `json:"alternatives,omitempty"`
	Phonetic     string   `json:"phonetic"`
	Confidence   float64  `json:"confidence"`
	Source       Source   `json:"source"`
	Category     string   `json:"category,omitempty"`
	MatchedSpan  string   `json:"matched_span,omitempty"`
}

func (r Result) clone() Result {
	r.Alternatives = slices.Clone(r.Alternatives)
	return r
}

// Suggestion is one candidate name offered for a phrase.
type Suggestion struct {
	Text       string  `json:"text"`
	Source     string  `json:"source"`
	Confidence float64 `json:"confidence"`
}
