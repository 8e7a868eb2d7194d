// Package identifier turns arbitrary text into tokens that are safe to use as
// parts of generated source-code names.
package identifier

import "strings"

// Format normalizes text into a lowercase identifier fragment.
//
// ASCII letters are lowercased, every character outside [a-z0-9_] (spaces and
// hyphens included) becomes an underscore, runs of underscores collapse to one
// and leading/trailing underscores are removed. Format never fails; an empty
// or fully non-Latin input yields "". Format(Format(s)) == Format(s).
func Format(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	pending := false // an underscore is owed before the next kept rune
	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			r += 'a' - 'A'
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		default:
			pending = true
			continue
		}
		if pending && b.Len() > 0 {
			b.WriteByte('_')
		}
		pending = false
		b.WriteRune(r)
	}
	return b.String()
}

// IsLatinRune reports whether r is an ASCII letter, digit or underscore.
func IsLatinRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// Abbreviate joins the first character of each underscore-separated segment of
// token. It returns "" when token has fewer than two segments or the result
// would be a single character.
func Abbreviate(token string) string {
	parts := strings.Split(token, "_")
	if len(parts) <= 1 {
		return ""
	}
	var b strings.Builder
	for _, p := range parts {
		if p != "" {
			b.WriteByte(p[0])
		}
	}
	if b.Len() <= 1 {
		return ""
	}
	return b.String()
}
