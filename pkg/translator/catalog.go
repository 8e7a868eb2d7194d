package translator

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/japaniel/namer/pkg/dictionary"
)

// ErrEmptyTerm is returned by AddCustomTerm when the phrase or its primary
// translation is blank.
var ErrEmptyTerm = errors.New("translator: phrase and primary must not be empty")

// Stats summarizes the term store and the result cache.
type Stats struct {
	dictionary.Stats
	CachedResults int `json:"cached_results"`
}

// AddCustomTerm stores phrase under category (dictionary.DefaultCategory when
// empty), replacing any record the category already holds for it. Every
// cached result is dropped.
func (e *Engine) AddCustomTerm(phrase, primary, category string, alternatives ...string) error {
	phrase = e.normalize(phrase)
	primary = strings.TrimSpace(primary)
	if phrase == "" || primary == "" {
		return ErrEmptyTerm
	}
	if category == "" {
		category = dictionary.DefaultCategory
	}

	var alts []string
	for _, a := range alternatives {
		if a = strings.TrimSpace(a); a != "" {
			alts = append(alts, a)
		}
	}

	e.store.Put(category, phrase, dictionary.Record{
		Primary:      primary,
		Alternatives: alts,
		Custom:       true,
	})
	e.cache.Purge()
	e.logger.Info("custom term added",
		slog.String("phrase", phrase),
		slog.String("primary", primary),
		slog.String("category", category))
	return nil
}

// BatchTranslate translates each text in the default context. The result at
// index i belongs to texts[i].
func (e *Engine) BatchTranslate(texts []string) []Result {
	out := make([]Result, len(texts))
	for i, t := range texts {
		out[i] = e.Translate(t, DefaultContext)
	}
	return out
}

// Categories returns category names in lookup order.
func (e *Engine) Categories() []string { return e.store.Categories() }

// TermsByCategory returns a copy of the terms stored under category.
func (e *Engine) TermsByCategory(category string) map[string]dictionary.Record {
	return e.store.Terms(category)
}

// SearchTerms finds terms whose phrase, primary or an alternative contains
// keyword. Latin comparisons ignore case.
func (e *Engine) SearchTerms(keyword string) []dictionary.Match {
	return e.store.Search(strings.TrimSpace(keyword))
}

func (e *Engine) Statistics() Stats {
	return Stats{
		Stats:         e.store.Stats(),
		CachedResults: e.cache.Len(),
	}
}
