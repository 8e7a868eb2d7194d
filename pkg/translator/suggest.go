package translator

import "github.com/japaniel/namer/pkg/identifier"

const (
	alternativeScale       = 0.9
	abbreviationConfidence = 0.5
)

// Suggestions returns up to maxCount distinct candidate names for text: the
// primary translation, its alternatives, the phonetic spelling and an
// abbreviation of the primary, in that order.
func (e *Engine) Suggestions(text string, maxCount int) []Suggestion {
	if maxCount <= 0 {
		return nil
	}
	res := e.Translate(text, DefaultContext)

	out := make([]Suggestion, 0, maxCount)
	seen := make(map[string]struct{}, maxCount)
	add := func(name, source string, confidence float64) {
		if name == "" || len(out) >= maxCount {
			return
		}
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		out = append(out, Suggestion{Text: name, Source: source, Confidence: confidence})
	}

	add(res.Primary, string(res.Source), res.Confidence)
	for _, alt := range res.Alternatives {
		add(alt, "alternative", res.Confidence*alternativeScale)
	}
	add(res.Phonetic, "phonetic", ConfidencePhonetic)
	add(identifier.Abbreviate(res.Primary), "abbreviation", abbreviationConfidence)
	return out
}
