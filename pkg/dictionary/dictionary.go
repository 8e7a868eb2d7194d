// Package dictionary holds the lexical term store: known source phrases and
// the identifier tokens they translate to, grouped into ordered categories.
package dictionary

import (
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// DefaultCategory is used for terms added without an explicit category.
const DefaultCategory = "custom"

// Record is the translation stored for one phrase within one category.
type Record struct {
	Primary      string   `json:"primary"`
	Alternatives []string `json:"alternatives,omitempty"`
	Category     string   `json:"category"`
	Custom       bool     `json:"custom,omitempty"`
}

// Term pairs a phrase with its record.
type Term struct {
	Phrase string
	Record
}

// MatchKind tells which field of a term matched a search keyword.
type MatchKind string

const (
	MatchPhrase      MatchKind = "phrase"
	MatchPrimary     MatchKind = "primary"
	MatchAlternative MatchKind = "alternative"
)

// Match is a single search hit.
type Match struct {
	Phrase   string    `json:"phrase"`
	Primary  string    `json:"primary"`
	Category string    `json:"category"`
	Kind     MatchKind `json:"match_kind"`
}

// Stats summarizes the store contents.
type Stats struct {
	TotalCategories int            `json:"total_categories"`
	TotalTerms      int            `json:"total_terms"`
	PerCategory     map[string]int `json:"per_category_counts"`
}

type category struct {
	phrases []string // insertion order
	records map[string]Record
}

// Store maps category -> phrase -> Record. Categories keep the order in which
// they were first added, and so do phrases within a category; every lookup
// that can match more than one term resolves ties by that order.
type Store struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]*category
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{byName: make(map[string]*category)}
}

// AddCategory registers an empty category if it does not exist yet.
func (s *Store) AddCategory(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categoryLocked(name)
}

func (s *Store) categoryLocked(name string) *category {
	c, ok := s.byName[name]
	if !ok {
		c = &category{records: make(map[string]Record)}
		s.byName[name] = c
		s.order = append(s.order, name)
	}
	return c
}

// NormalizePhrase trims phrase and folds full-width ASCII characters to their
// half-width forms. Stored phrases are always kept in this form.
func NormalizePhrase(phrase string) string {
	return strings.TrimSpace(width.Fold.String(strings.TrimSpace(phrase)))
}

// Put inserts or overwrites the record for phrase in the given category. The
// phrase is stored normalized; an overwritten phrase keeps its first position.
func (s *Store) Put(categoryName, phrase string, rec Record) {
	phrase = NormalizePhrase(phrase)
	rec.Category = categoryName
	rec.Alternatives = slices.Clone(rec.Alternatives)

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.categoryLocked(categoryName)
	if _, exists := c.records[phrase]; !exists {
		c.phrases = append(c.phrases, phrase)
	}
	c.records[phrase] = rec
}

// Lookup returns the record for phrase from the first category (in insertion
// order) that contains it.
func (s *Store) Lookup(phrase string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, name := range s.order {
		if rec, ok := s.byName[name].records[phrase]; ok {
			return cloneRecord(rec), true
		}
	}
	return Record{}, false
}

// LongestContained finds the longest phrase of two or more characters that
// occurs inside text. Among phrases of equal length the first one seen in
// category order, then phrase order, wins.
func (s *Store) LongestContained(text string) (Term, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		best    Term
		bestLen int
	)
	for _, name := range s.order {
		c := s.byName[name]
		for _, phrase := range c.phrases {
			n := utf8.RuneCountInString(phrase)
			if n <= 1 || n <= bestLen || !strings.Contains(text, phrase) {
				continue
			}
			best = Term{Phrase: phrase, Record: cloneRecord(c.records[phrase])}
			bestLen = n
		}
	}
	return best, bestLen > 0
}

// Categories returns the category names in insertion order.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.order)
}

// Terms returns a copy of the phrase -> record mapping for a category. An
// unknown category yields an empty map.
func (s *Store) Terms(categoryName string) map[string]Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Record)
	if c, ok := s.byName[categoryName]; ok {
		for phrase, rec := range c.records {
			out[phrase] = cloneRecord(rec)
		}
	}
	return out
}

// All returns every term, ordered by category and then phrase insertion order.
func (s *Store) All() []Term {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Term
	for _, name := range s.order {
		c := s.byName[name]
		for _, phrase := range c.phrases {
			out = append(out, Term{Phrase: phrase, Record: cloneRecord(c.records[phrase])})
		}
	}
	return out
}

// Search finds terms whose phrase, primary translation or one of the
// alternatives contains keyword. Comparison is case-insensitive. Each term is
// reported once, with the first field that matched in that order.
func (s *Store) Search(keyword string) []Match {
	if keyword == "" {
		return nil
	}
	needle := strings.ToLower(keyword)

	var out []Match
	for _, t := range s.All() {
		kind, ok := matchKind(t, needle)
		if !ok {
			continue
		}
		out = append(out, Match{Phrase: t.Phrase, Primary: t.Primary, Category: t.Category, Kind: kind})
	}
	return out
}

func matchKind(t Term, needle string) (MatchKind, bool) {
	if strings.Contains(strings.ToLower(t.Phrase), needle) {
		return MatchPhrase, true
	}
	if strings.Contains(strings.ToLower(t.Primary), needle) {
		return MatchPrimary, true
	}
	for _, alt := range t.Alternatives {
		if strings.Contains(strings.ToLower(alt), needle) {
			return MatchAlternative, true
		}
	}
	return "", false
}

// Stats counts categories and terms.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Stats{
		TotalCategories: len(s.order),
		PerCategory:     make(map[string]int, len(s.order)),
	}
	for _, name := range s.order {
		n := len(s.byName[name].phrases)
		st.PerCategory[name] = n
		st.TotalTerms += n
	}
	return st
}

// Len returns the total number of terms.
func (s *Store) Len() int {
	return s.Stats().TotalTerms
}

func cloneRecord(r Record) Record {
	r.Alternatives = slices.Clone(r.Alternatives)
	return r
}
