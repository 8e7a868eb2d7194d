package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/japaniel/namer/pkg/config"
	"github.com/japaniel/namer/pkg/dictionary"
	"github.com/japaniel/namer/pkg/identifier"
	"github.com/japaniel/namer/pkg/translator"
)

func newGenerator() *Generator {
	s := dictionary.NewStore()
	s.Put("general", "温度", dictionary.Record{Primary: "temperature"})
	s.Put("general", "传感器", dictionary.Record{Primary: "sensor"})
	s.Put("general", "状态", dictionary.Record{Primary: "status"})
	s.Put("hardware", "电机", dictionary.Record{Primary: "motor"})
	return NewGenerator(translator.New(s), DefaultPrefixes())
}

func TestVariableName(t *testing.T) {
	g := newGenerator()

	tests := []struct {
		name string
		v    Variable
		want string
	}{
		{"global scalar", Variable{Modifier: Global, Type: "uint16_t", Module: "温度", Purpose: "传感器"}, "g_u16_temperature_sensor"},
		{"local array", Variable{Modifier: Local, Type: "float", Module: "电机", Purpose: "状态", Array: true}, "af_motor_status"},
		{"static pointer", Variable{Modifier: Static, Type: "uint8_t", Purpose: "状态", Pointer: true}, "s_p_u8_status"},
		{"unknown type", Variable{Modifier: Local, Type: "motor_ctx", Module: "电机"}, "motor"},
		{"unknown type array", Variable{Type: "motor_ctx", Module: "电机", Array: true}, "a_motor"},
		{"latin module", Variable{Modifier: Volatile, Type: "bool", Module: "Ready Flag"}, "v_b_ready_flag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := g.VariableName(tt.v)
			assert.Equal(t, tt.want, n.Name)
			assert.NoError(t, n.Err)
		})
	}
}

func TestVariableNameBreakdown(t *testing.T) {
	n := newGenerator().VariableName(Variable{Modifier: Global, Type: "uint16_t", Module: "温度", Purpose: "传感器"})

	assert.Equal(t, []string{"g", "u16", "temperature", "sensor"}, n.Parts)
	require.Len(t, n.Breakdown, 4)
	assert.Equal(t, Part{Token: "g", Description: "global variable"}, n.Breakdown[0])
	assert.Equal(t, Part{Token: "u16", Description: "uint16_t"}, n.Breakdown[1])
	assert.Equal(t, Part{Token: "temperature", Description: "module: 温度"}, n.Breakdown[2])
	assert.Equal(t, Part{Token: "sensor", Description: "purpose: 传感器"}, n.Breakdown[3])
}

func TestVariableNameValidation(t *testing.T) {
	g := newGenerator()

	n := g.VariableName(Variable{})
	assert.ErrorIs(t, n.Err, identifier.ErrEmpty)

	n = g.VariableName(Variable{Module: "int"})
	assert.Equal(t, "int", n.Name)
	assert.ErrorIs(t, n.Err, identifier.ErrReserved)

	n = g.VariableName(Variable{Module: "10秒"})
	assert.Equal(t, "10_second", n.Name)
	assert.ErrorIs(t, n.Err, identifier.ErrLeadingChar)
}

func TestTypeNames(t *testing.T) {
	g := newGenerator()

	n := g.StructTypeName("电机")
	assert.Equal(t, "motor_t", n.Name)
	assert.Equal(t, []string{"motor", "t"}, n.Parts)
	assert.NoError(t, n.Err)

	assert.Equal(t, "status_e", g.EnumTypeName("状态").Name)
	assert.Equal(t, "sensor_u", g.UnionTypeName("传感器").Name)
}

func TestCompositeVariableNames(t *testing.T) {
	g := newGenerator()

	assert.Equal(t, "g_st_motor_status", g.StructVariableName(Global, "电机", "", "状态").Name)
	assert.Equal(t, "g_st_temperature_status", g.StructVariableName(Global, "电机", "温度", "状态").Name)
	assert.Equal(t, "un_sensor", g.UnionVariableName(Local, "传感器", "", "").Name)
	assert.Equal(t, "s_e_status", g.EnumVariableName(Static, "状态", "", "").Name)
}

type stubTranslator map[string]string

func (s stubTranslator) Translate(text, _ string) translator.Result {
	return translator.Result{Primary: s[text]}
}

func TestCustomPrefixes(t *testing.T) {
	p := PrefixesFromConfig(config.NamingConfig{
		Separator:    "__",
		GlobalPrefix: "glb",
		StructPrefix: "s",
	})
	g := NewGenerator(stubTranslator{"电机": "motor"}, p)

	assert.Equal(t, "glb__u8__motor", g.VariableName(Variable{Modifier: Global, Type: "uint8_t", Module: "电机"}).Name)
	assert.Equal(t, "s__motor", g.StructVariableName(Local, "电机", "", "").Name)

	g = NewGenerator(stubTranslator{"电机": "motor"}, Prefixes{})
	assert.Equal(t, "u8_motor", g.VariableName(Variable{Modifier: Global, Type: "uint8_t", Module: "电机"}).Name,
		"empty prefixes are skipped and the separator defaults to an underscore")
}

func TestTypePrefix(t *testing.T) {
	assert.Equal(t, "u32", TypePrefix("uint32_t", false))
	assert.Equal(t, "au32", TypePrefix("uint32_t", true))
	assert.Equal(t, "", TypePrefix("struct foo", false))
	assert.Equal(t, "a", TypePrefix("struct foo", true))
}
