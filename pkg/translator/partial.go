package translator

import (
	"strings"

	"github.com/japaniel/namer/pkg/identifier"
)

// partial translates text around the longest stored phrase it contains. The
// text is split on every occurrence of that phrase; the pieces in between are
// segmented and the phrase's primary is put back between them.
func (e *Engine) partial(text string) (Result, bool) {
	term, ok := e.store.LongestContained(text)
	if !ok {
		return Result{}, false
	}
	alts := formatAll(term.Alternatives)

	pieces := strings.Split(text, term.Phrase)
	primary := make([]string, 0, 2*len(pieces))
	alternative := make([]string, 0, 2*len(pieces))
	for i, piece := range pieces {
		if i > 0 {
			primary = append(primary, term.Primary)
			if len(alts) > 0 {
				alternative = append(alternative, alts[0])
			}
		}
		if piece == "" {
			continue
		}
		seg := e.splitTranslate(piece).primary
		primary = append(primary, seg)
		alternative = append(alternative, seg)
	}

	res := Result{
		Primary:     identifier.Format(strings.Join(primary, "_")),
		Confidence:  ConfidencePartial,
		Source:      SourcePartial,
		Category:    term.Category,
		MatchedSpan: term.Phrase,
	}
	if res.Primary == "" {
		return Result{}, false
	}
	if len(alts) > 0 {
		if alt := identifier.Format(strings.Join(alternative, "_")); alt != res.Primary {
			res.Alternatives = []string{alt}
		}
	}
	return res, true
}
