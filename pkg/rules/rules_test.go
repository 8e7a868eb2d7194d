package rules

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTranslator records what the rules asked it to translate.
type stubTranslator struct {
	known map[string]string
	calls []string
}

func (s *stubTranslator) translate(text, context string) string {
	s.calls = append(s.calls, text+"@"+context)
	return s.known[text]
}

func newStub() *stubTranslator {
	return &stubTranslator{known: map[string]string{
		"温度":  "temperature",
		"缓冲区": "buffer",
		"钟":   "clock",
	}}
}

func TestDefaultRules(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		want       string
		confidence float64
		rule       string
	}{
		{"verb", "读温度", "read_temperature", 0.8, "verb_noun"},
		{"two char verb", "发送缓冲区", "send_buffer", 0.8, "verb_noun"},
		{"verb alone", "写", "write", 0.8, "verb_noun"},
		{"qualifier", "最大温度", "max_temperature", 0.8, "qualifier_noun"},
		{"single char qualifier", "总温度", "total_temperature", 0.8, "qualifier_noun"},
		{"number unit", "10秒", "10_second", 0.9, "number_unit"},
		{"longest unit", "4字节", "4_byte", 0.9, "number_unit"},
		{"unit with tail", "60秒钟", "60_second_clock", 0.9, "number_unit"},
		{"unknown rest", "读未知", "read", 0.8, "verb_noun"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := newStub()
			set := NewSet(stub.translate, Default()...)

			out, ok := set.Match(tt.in, "general")
			require.True(t, ok)
			assert.Equal(t, tt.want, out.Primary)
			assert.Equal(t, tt.confidence, out.Confidence)
			assert.Equal(t, tt.rule, out.Rule)
		})
	}
}

func TestNoMatch(t *testing.T) {
	set := NewSet(newStub().translate, Default()...)
	for _, in := range []string{"温度", "电机状态", "秒10", "米"} {
		_, ok := set.Match(in, "general")
		assert.False(t, ok, in)
	}
}

func TestContextIsForwarded(t *testing.T) {
	stub := newStub()
	set := NewSet(stub.translate, Default()...)

	_, ok := set.Match("读温度", "hardware")
	require.True(t, ok)
	assert.Equal(t, []string{"温度@hardware"}, stub.calls)
}

func TestFirstMatchingRuleWins(t *testing.T) {
	calls := 0
	first := Rule{
		Name:    "first",
		Pattern: regexp.MustCompile(`^读`),
		Handle: func(m []string, _ string, _ TranslateFunc) Outcome {
			calls++
			return Outcome{Primary: "", Confidence: 0.1}
		},
	}
	set := NewSet(newStub().translate, append([]Rule{first}, Default()...)...)

	out, ok := set.Match("读温度", "general")
	require.True(t, ok)
	assert.Equal(t, "first", out.Rule)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 4, set.Len())
}

func TestUnmappedWordFallsBackToPinyin(t *testing.T) {
	r := PrefixRule("custom", map[string]string{"清除": "clear"}, 0.8)
	set := NewSet(newStub().translate, r)

	out, ok := set.Match("清除温度", "general")
	require.True(t, ok)
	assert.Equal(t, "clear_temperature", out.Primary)

	assert.Equal(t, "qing_chu", lexeme(map[string]string{}, "清除"))
}
