package rules

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/japaniel/namer/pkg/identifier"
	"github.com/japaniel/namer/pkg/pinyin"
)

const (
	prefixConfidence = 0.8
	unitConfidence   = 0.9
)

var verbWords = map[string]string{
	"读": "read", "写": "write", "发送": "send", "接收": "receive",
	"获取": "get", "设置": "set", "检测": "detect", "测量": "measure",
	"采集": "collect", "计算": "calculate",
}

var qualifierWords = map[string]string{
	"最大": "max", "最小": "min", "当前": "current", "平均": "average",
	"总": "total", "初始": "initial", "默认": "default",
}

var unitWords = map[string]string{
	"米": "meter", "秒": "second", "度": "degree",
	"次": "times", "个": "count", "位": "bit", "字节": "byte",
}

// Default returns the built-in rules in evaluation order: verb + object,
// qualifier + noun, number + unit.
func Default() []Rule {
	return []Rule{
		PrefixRule("verb_noun", verbWords, prefixConfidence),
		PrefixRule("qualifier_noun", qualifierWords, prefixConfidence),
		NumberUnitRule("number_unit", unitWords, unitConfidence),
	}
}

// PrefixRule matches text that starts with one of the words in the map. The
// word becomes its mapped token and the rest of the text is translated through
// the set's TranslateFunc; the two are joined with an underscore.
func PrefixRule(name string, words map[string]string, confidence float64) Rule {
	pattern := regexp.MustCompile(`(?s)^(` + alternation(words) + `)(.*)$`)
	return Rule{
		Name:    name,
		Pattern: pattern,
		Handle: func(m []string, context string, tr TranslateFunc) Outcome {
			return Outcome{
				Primary:    join(lexeme(words, m[1]), m[2], context, tr),
				Confidence: confidence,
			}
		},
	}
}

// NumberUnitRule matches an ASCII numeral followed by one of the unit words,
// producing "<number>_<unit>". Text after the unit is translated and appended.
func NumberUnitRule(name string, units map[string]string, confidence float64) Rule {
	pattern := regexp.MustCompile(`(?s)^(\d+)(` + alternation(units) + `)(.*)$`)
	return Rule{
		Name:    name,
		Pattern: pattern,
		Handle: func(m []string, context string, tr TranslateFunc) Outcome {
			head := m[1] + "_" + lexeme(units, m[2])
			return Outcome{
				Primary:    join(head, m[3], context, tr),
				Confidence: confidence,
			}
		},
	}
}

func join(head, rest, context string, tr TranslateFunc) string {
	if rest != "" {
		if sub := tr(rest, context); sub != "" {
			head += "_" + sub
		}
	}
	return identifier.Format(head)
}

func lexeme(words map[string]string, w string) string {
	if s, ok := words[w]; ok {
		return s
	}
	return pinyin.TextToLatin(w)
}

// alternation builds a regexp alternation of the map keys, longest first so
// that "字节" is preferred over a shorter word sharing its prefix.
func alternation(words map[string]string) string {
	keys := make([]string, 0, len(words))
	for k := range words {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(utf8.RuneCountInString(b), utf8.RuneCountInString(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	for i, k := range keys {
		keys[i] = regexp.QuoteMeta(k)
	}
	return strings.Join(keys, "|")
}
