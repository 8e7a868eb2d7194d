// Package pinyin romanizes Chinese text character by character. It is the
// translation of last resort: no dictionary backing, just a stable Latin
// spelling for every Han character.
//
// A small override table maps frequent characters to their identifier meaning
// (温 -> temperature); every other Han character falls back to its toneless
// pinyin reading. Characters that are not Han (Latin letters, digits,
// punctuation, kana) pass through unchanged.
//
// All functions are safe for concurrent use by multiple goroutines.
package pinyin

import (
	"fmt"
	"strings"
	"unicode"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// Separator is placed between the romanizations of adjacent characters.
const Separator = "_"

// readingArgs selects toneless readings without heteronyms.
var readingArgs = gopinyin.NewArgs()

// IsHan reports whether r is a Han ideograph.
func IsHan(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

// CharToLatin returns the Latin spelling of a single character, or the
// character itself when no spelling is known.
func CharToLatin(r rune) string {
	if s, ok := overrides[r]; ok {
		return s
	}
	if IsHan(r) {
		if py := gopinyin.LazyPinyin(string(r), readingArgs); len(py) > 0 && py[0] != "" {
			return py[0]
		}
	}
	return string(r)
}

// TextToLatin maps every character of text through CharToLatin and joins the
// results with Separator. The join happens between every character position,
// not only Han ones, so "12秒" becomes "1_2_second".
func TextToLatin(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text) * 2)
	for i, r := range []rune(text) {
		if i > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(CharToLatin(r))
	}
	return b.String()
}

// CodePoints spells every character of text as "u" followed by its lowercase
// hexadecimal code point, joined with Separator. It gives a usable token for
// scripts that have no Latin spelling at all.
func CodePoints(text string) string {
	parts := make([]string, 0, len(text))
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		parts = append(parts, fmt.Sprintf("u%04x", r))
	}
	return strings.Join(parts, Separator)
}
