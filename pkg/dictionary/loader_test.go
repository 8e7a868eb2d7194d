package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	content := `
{
  "general": {
    "温度": {"primary": "temperature", "alternatives": ["temp", ""]},
    "速度": "speed"
  },
  "communication": {
    "缓冲区": {"primary": "buffer", "alternatives": ["buf"], "custom": true}
  },
  "reserved": {}
}
`
	path := filepath.Join(t.TempDir(), "terms.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"general", "communication", "reserved"}, s.Categories())
	assert.Equal(t, 3, s.Len())

	rec, ok := s.Lookup("温度")
	require.True(t, ok)
	assert.Equal(t, []string{"temp"}, rec.Alternatives, "empty alternatives are dropped")

	rec, ok = s.Lookup("速度")
	require.True(t, ok)
	assert.Equal(t, "speed", rec.Primary)

	rec, ok = s.Lookup("缓冲区")
	require.True(t, ok)
	assert.True(t, rec.Custom)
}

func TestParsePreservesDocumentOrder(t *testing.T) {
	s, err := Parse([]byte(`{"z": {"乙": "b", "甲": "a"}, "a": {"丙": "c"}}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"z", "a"}, s.Categories())
	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"乙", "甲", "丙"}, []string{all[0].Phrase, all[1].Phrase, all[2].Phrase})
}

func TestParseFoldsFullWidthPhrases(t *testing.T) {
	s, err := Parse([]byte(`{"general": {"ＣＰＵ温度": "cpu_temperature"}}`))
	require.NoError(t, err)

	_, ok := s.Lookup("CPU温度")
	assert.True(t, ok)
	assert.Contains(t, s.Terms("general"), "CPU温度")
}

func TestParseArrayForm(t *testing.T) {
	s, err := Parse([]byte(`[
		{"phrase": "电机", "primary": "motor", "category": "hardware"},
		{"phrase": "状态", "primary": "status", "alternatives": ["state"]}
	]`))
	require.NoError(t, err)

	assert.Equal(t, []string{"hardware", "general"}, s.Categories())
	rec, ok := s.Lookup("状态")
	require.True(t, ok)
	assert.Equal(t, "general", rec.Category)
	assert.Equal(t, []string{"state"}, rec.Alternatives)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"malformed", `{"general": {`},
		{"scalar root", `42`},
		{"category not object", `{"general": ["温度"]}`},
		{"missing primary", `{"general": {"温度": {"alternatives": ["temp"]}}}`},
		{"array without phrase", `[{"primary": "x"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.in))
			assert.ErrorIs(t, err, ErrInvalidTermDatabase)
			assert.Nil(t, s)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuiltin(t *testing.T) {
	s := Builtin()
	assert.Greater(t, s.Len(), 50)
	assert.Equal(t, "general", s.Categories()[0])

	rec, ok := s.Lookup("温度")
	require.True(t, ok)
	assert.Equal(t, "temperature", rec.Primary)

	s.Put(DefaultCategory, "测试项", Record{Primary: "test_item"})
	_, ok = Builtin().Lookup("测试项")
	assert.False(t, ok, "each call returns an independent store")
}
