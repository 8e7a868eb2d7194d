package translator

import (
	"strings"

	"github.com/japaniel/namer/pkg/identifier"
	"github.com/japaniel/namer/pkg/pinyin"
)

// maxWindow is the longest phrase, in characters, tried at each position.
const maxWindow = 3

// segmentation is the piecewise translation of a phrase.
type segmentation struct {
	primary     string
	alternative string // "" unless every term hit had an alternative
	hits        int    // windows resolved through the term store
}

// splitTranslate walks text left to right, translating the longest window
// (3, 2, then 1 characters) found in the term store and romanizing any
// character no window covers.
func (e *Engine) splitTranslate(text string) segmentation {
	runes := []rune(text)
	primary := make([]string, 0, len(runes))
	alternative := make([]string, 0, len(runes))
	allAlt := true
	hits := 0

	for i := 0; i < len(runes); {
		step := 1
		matched := false
		for w := min(maxWindow, len(runes)-i); w >= 1; w-- {
			rec, ok := e.store.Lookup(string(runes[i : i+w]))
			if !ok || identifier.Format(rec.Primary) == "" {
				continue
			}
			primary = append(primary, rec.Primary)
			if alts := formatAll(rec.Alternatives); len(alts) > 0 {
				alternative = append(alternative, alts[0])
			} else {
				allAlt = false
			}
			step, matched = w, true
			hits++
			break
		}
		if !matched {
			latin := pinyin.CharToLatin(runes[i])
			primary = append(primary, latin)
			alternative = append(alternative, latin)
		}
		i += step
	}

	seg := segmentation{
		primary: identifier.Format(strings.Join(primary, "_")),
		hits:    hits,
	}
	if hits > 0 && allAlt {
		if alt := identifier.Format(strings.Join(alternative, "_")); alt != seg.primary {
			seg.alternative = alt
		}
	}
	return seg
}

// segment is the segmentation strategy. It reports false when no window hit
// the term store, leaving the phrase to the phonetic fallback.
func (e *Engine) segment(text string) (Result, bool) {
	seg := e.splitTranslate(text)
	if seg.hits == 0 || seg.primary == "" {
		return Result{}, false
	}
	res := Result{
		Primary:    seg.primary,
		Confidence: ConfidenceSegmentation,
		Source:     SourceSegmentation,
	}
	if seg.alternative != "" {
		res.Alternatives = []string{seg.alternative}
	}
	return res, true
}
