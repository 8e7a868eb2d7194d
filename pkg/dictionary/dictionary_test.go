package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStore() *Store {
	s := NewStore()
	s.Put("general", "温度", Record{Primary: "temperature", Alternatives: []string{"temp"}})
	s.Put("general", "传感器", Record{Primary: "sensor"})
	s.Put("hardware", "温度", Record{Primary: "thermal"})
	s.Put("hardware", "温度传感器", Record{Primary: "temp_sensor"})
	s.Put("hardware", "电机", Record{Primary: "motor", Alternatives: []string{"mtr"}})
	return s
}

func TestLookupFirstCategoryWins(t *testing.T) {
	s := sampleStore()

	rec, ok := s.Lookup("温度")
	require.True(t, ok)
	assert.Equal(t, "temperature", rec.Primary)
	assert.Equal(t, "general", rec.Category)
	assert.Equal(t, []string{"temp"}, rec.Alternatives)

	rec, ok = s.Lookup("电机")
	require.True(t, ok)
	assert.Equal(t, "hardware", rec.Category)

	_, ok = s.Lookup("未知")
	assert.False(t, ok)
}

func TestLookupReturnsCopy(t *testing.T) {
	s := sampleStore()
	rec, _ := s.Lookup("温度")
	rec.Alternatives[0] = "mutated"

	again, _ := s.Lookup("温度")
	assert.Equal(t, "temp", again.Alternatives[0])
}

func TestPutOverwriteKeepsPosition(t *testing.T) {
	s := sampleStore()
	s.Put("general", "温度", Record{Primary: "temp_value", Custom: true})

	all := s.All()
	require.NotEmpty(t, all)
	assert.Equal(t, "温度", all[0].Phrase)
	assert.Equal(t, "temp_value", all[0].Primary)
	assert.True(t, all[0].Custom)
	assert.Equal(t, []string{"general", "hardware"}, s.Categories())
}

func TestPutNormalizesPhrase(t *testing.T) {
	s := NewStore()
	s.Put("general", " ＣＰＵ温度 ", Record{Primary: "cpu_temperature"})

	rec, ok := s.Lookup("CPU温度")
	require.True(t, ok)
	assert.Equal(t, "cpu_temperature", rec.Primary)

	term, ok := s.LongestContained("读CPU温度")
	require.True(t, ok)
	assert.Equal(t, "CPU温度", term.Phrase)

	assert.Equal(t, "CPU1", NormalizePhrase("ＣＰＵ１"))
	assert.Equal(t, "温度", NormalizePhrase("\t温度 "))
}

func TestLongestContained(t *testing.T) {
	s := sampleStore()

	term, ok := s.LongestContained("读取温度传感器数据")
	require.True(t, ok)
	assert.Equal(t, "温度传感器", term.Phrase)
	assert.Equal(t, "temp_sensor", term.Primary)

	term, ok = s.LongestContained("当前温度")
	require.True(t, ok)
	assert.Equal(t, "temperature", term.Primary, "tie on length resolves to the first category")

	_, ok = s.LongestContained("毫无关系")
	assert.False(t, ok)
}

func TestLongestContainedIgnoresSingleCharacters(t *testing.T) {
	s := NewStore()
	s.Put("general", "值", Record{Primary: "value"})

	_, ok := s.LongestContained("当前值")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	s := sampleStore()

	hits := s.Search("温度")
	require.Len(t, hits, 3)
	for _, h := range hits {
		assert.Equal(t, MatchPhrase, h.Kind)
	}

	hits = s.Search("MOTOR")
	require.Len(t, hits, 1)
	assert.Equal(t, MatchPrimary, hits[0].Kind)
	assert.Equal(t, "电机", hits[0].Phrase)

	hits = s.Search("mtr")
	require.Len(t, hits, 1)
	assert.Equal(t, MatchAlternative, hits[0].Kind)

	assert.Empty(t, s.Search(""))
}

func TestTermsAndStats(t *testing.T) {
	s := sampleStore()
	s.AddCategory("empty")

	terms := s.Terms("hardware")
	assert.Len(t, terms, 3)
	assert.Equal(t, "motor", terms["电机"].Primary)
	assert.Empty(t, s.Terms("missing"))

	st := s.Stats()
	assert.Equal(t, 3, st.TotalCategories)
	assert.Equal(t, 5, st.TotalTerms)
	assert.Equal(t, map[string]int{"general": 2, "hardware": 3, "empty": 0}, st.PerCategory)
	assert.Equal(t, 5, s.Len())
}
