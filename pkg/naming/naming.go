// Package naming assembles C identifiers (variables, struct, enum and union
// type names) from translated Chinese descriptions.
package naming

import (
	"strings"

	"github.com/japaniel/namer/pkg/config"
	"github.com/japaniel/namer/pkg/identifier"
	"github.com/japaniel/namer/pkg/translator"
)

// Translator is the part of translator.Engine the generator needs.
type Translator interface {
	Translate(text, context string) translator.Result
}

// Modifier is the storage class or qualifier of a variable.
type Modifier string

const (
	Local    Modifier = "local"
	Global   Modifier = "global"
	Static   Modifier = "static"
	Const    Modifier = "const"
	Volatile Modifier = "volatile"
)

// Type-name suffixes.
const (
	StructSuffix = "_t"
	EnumSuffix   = "_e"
	UnionSuffix  = "_u"
)

// Prefixes holds the tokens prepended to generated names.
type Prefixes struct {
	Separator string
	Modifiers map[Modifier]string
	Struct    string
	Union     string
	Enum      string
	Pointer   string
}

// DefaultPrefixes returns g/s/c/v modifier prefixes, "st", "un" and "e" type
// prefixes, "p" for pointers and "_" as separator.
func DefaultPrefixes() Prefixes {
	return Prefixes{
		Separator: "_",
		Modifiers: map[Modifier]string{Global: "g", Static: "s", Const: "c", Volatile: "v"},
		Struct:    "st",
		Union:     "un",
		Enum:      "e",
		Pointer:   "p",
	}
}

// PrefixesFromConfig converts the naming section of the configuration.
func PrefixesFromConfig(cfg config.NamingConfig) Prefixes {
	return Prefixes{
		Separator: cfg.Separator,
		Modifiers: map[Modifier]string{
			Global:   cfg.GlobalPrefix,
			Static:   cfg.StaticPrefix,
			Const:    cfg.ConstPrefix,
			Volatile: cfg.VolatilePrefix,
		},
		Struct:  cfg.StructPrefix,
		Union:   cfg.UnionPrefix,
		Enum:    cfg.EnumPrefix,
		Pointer: cfg.PointerPrefix,
	}
}

// Part explains one token of a generated name.
type Part struct {
	Token       string `json:"token"`
	Description string `json:"description"`
}

// Name is a generated identifier. Err holds the identifier.Validate result and
// is nil for a valid C name.
type Name struct {
	Name      string   `json:"name"`
	Parts     []string `json:"parts"`
	Breakdown []Part   `json:"breakdown,omitempty"`
	Err       error    `json:"-"`
}

// Generator builds names over a translator.
type Generator struct {
	tr      Translator
	p       Prefixes
	context string
}

// NewGenerator returns a generator that translates in the default context.
func NewGenerator(tr Translator, p Prefixes) *Generator {
	if p.Separator == "" {
		p.Separator = "_"
	}
	return &Generator{tr: tr, p: p, context: translator.DefaultContext}
}

// Variable describes a variable to be named.
type Variable struct {
	Modifier Modifier
	Type     string // C type, e.g. "uint16_t"
	Module   string
	Purpose  string
	Array    bool
	Pointer  bool
}

// VariableName joins modifier prefix, type prefix, the translated module and
// the translated purpose. Empty pieces are skipped.
func (g *Generator) VariableName(v Variable) Name {
	b := g.builder()
	if mp := g.p.Modifiers[v.Modifier]; mp != "" {
		b.add(mp, string(v.Modifier)+" variable")
	}
	if v.Pointer && g.p.Pointer != "" {
		b.add(g.p.Pointer, "pointer")
	}
	if tp := TypePrefix(v.Type, v.Array); tp != "" {
		desc := v.Type
		if v.Array {
			desc += " array"
		}
		b.add(tp, desc)
	}
	b.translated(v.Module, "module")
	b.translated(v.Purpose, "purpose")
	return b.name()
}

// StructVariableName names a variable of a struct type: modifier prefix,
// struct prefix, then the translated module (or the struct type name when no
// module is given) and the translated purpose.
func (g *Generator) StructVariableName(mod Modifier, structType, module, purpose string) Name {
	return g.compositeVariable(mod, g.p.Struct, "struct", structType, module, purpose)
}

// UnionVariableName is StructVariableName for union types.
func (g *Generator) UnionVariableName(mod Modifier, unionType, module, purpose string) Name {
	return g.compositeVariable(mod, g.p.Union, "union", unionType, module, purpose)
}

// EnumVariableName is StructVariableName for enum types.
func (g *Generator) EnumVariableName(mod Modifier, enumType, module, purpose string) Name {
	return g.compositeVariable(mod, g.p.Enum, "enum", enumType, module, purpose)
}

func (g *Generator) compositeVariable(mod Modifier, prefix, kind, typeName, module, purpose string) Name {
	b := g.builder()
	if mp := g.p.Modifiers[mod]; mp != "" {
		b.add(mp, string(mod)+" variable")
	}
	if prefix != "" {
		b.add(prefix, kind)
	}
	if strings.TrimSpace(module) != "" {
		b.translated(module, "module")
	} else {
		b.translated(typeName, kind+" type")
	}
	b.translated(purpose, "purpose")
	return b.name()
}

// StructTypeName returns the translation of name with StructSuffix.
func (g *Generator) StructTypeName(name string) Name {
	return g.typeName(name, StructSuffix)
}

// EnumTypeName returns the translation of name with EnumSuffix.
func (g *Generator) EnumTypeName(name string) Name {
	return g.typeName(name, EnumSuffix)
}

// UnionTypeName returns the translation of name with UnionSuffix.
func (g *Generator) UnionTypeName(name string) Name {
	return g.typeName(name, UnionSuffix)
}

func (g *Generator) typeName(name, suffix string) Name {
	primary := g.tr.Translate(name, g.context).Primary
	n := Name{
		Name:      primary + suffix,
		Parts:     []string{primary, strings.TrimPrefix(suffix, "_")},
		Breakdown: []Part{{Token: primary, Description: "name: " + name}},
	}
	n.Err = identifier.Validate(n.Name)
	return n
}

type nameBuilder struct {
	g     *Generator
	parts []string
	info  []Part
}

func (g *Generator) builder() *nameBuilder { return &nameBuilder{g: g} }

func (b *nameBuilder) add(token, desc string) {
	b.parts = append(b.parts, token)
	b.info = append(b.info, Part{Token: token, Description: desc})
}

func (b *nameBuilder) translated(text, label string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	if primary := b.g.tr.Translate(text, b.g.context).Primary; primary != "" {
		b.add(primary, label+": "+text)
	}
}

func (b *nameBuilder) name() Name {
	n := Name{
		Name:      strings.Join(b.parts, b.g.p.Separator),
		Parts:     b.parts,
		Breakdown: b.info,
	}
	n.Err = identifier.Validate(n.Name)
	return n
}
