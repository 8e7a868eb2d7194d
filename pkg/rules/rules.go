// Package rules recognizes morphological shapes in source phrases (verb +
// object, qualifier + noun, number + unit) and translates them piecewise.
//
// Rules do not translate sub-phrases themselves: a Set is built with a
// TranslateFunc that it hands to every rule, normally the owning engine's
// own entry point. Rules can therefore be tested with a stub.
package rules

import "regexp"

// TranslateFunc translates text in the given context and returns the
// formatted primary token.
type TranslateFunc func(text, context string) string

// Outcome is what a rule produces for a matching phrase.
type Outcome struct {
	Primary    string
	Confidence float64
	Rule       string
}

// Rule pairs a pattern with the handler that turns its submatches into a
// translation. Handle receives the full submatch slice from Pattern.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Handle  func(m []string, context string, tr TranslateFunc) Outcome
}

// Set is an ordered list of rules. The first rule whose pattern matches wins;
// later rules are not consulted even if its translation is poor.
type Set struct {
	rules     []Rule
	translate TranslateFunc
}

// NewSet returns a set that passes tr to every rule it runs.
func NewSet(tr TranslateFunc, rules ...Rule) *Set {
	return &Set{rules: rules, translate: tr}
}

// Match runs the rules against text in order.
func (s *Set) Match(text, context string) (Outcome, bool) {
	for _, r := range s.rules {
		m := r.Pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		out := r.Handle(m, context, s.translate)
		out.Rule = r.Name
		return out, true
	}
	return Outcome{}, false
}

// Len returns the number of rules in the set.
func (s *Set) Len() int { return len(s.rules) }
