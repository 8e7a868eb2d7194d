// Package config loads namer settings from a YAML file and the environment.
package config

// Config is the root configuration.
type Config struct {
	Terms      TermsConfig      `yaml:"terms"`
	Translator TranslatorConfig `yaml:"translator"`
	Naming     NamingConfig     `yaml:"naming"`
	Log        LogConfig        `yaml:"log"`
}

// TermsConfig selects where the term database comes from. A SQLite database
// takes precedence over a JSON file; with neither set the embedded built-in
// terms are used.
type TermsConfig struct {
	File       string `yaml:"file"        env:"NAMER_TERMS_FILE"`
	Database   string `yaml:"database"    env:"NAMER_TERMS_DB"`
	ImportSize int    `yaml:"import_size" env:"NAMER_TERMS_IMPORT_SIZE" env-default:"500"`
}

// TranslatorConfig holds engine settings.
//
// Boolean switches are off by default; cleanenv fills env-default into any
// zero value, so a true default could not be switched off from YAML.
type TranslatorConfig struct {
	CacheSize      int    `yaml:"cache_size"       env:"NAMER_CACHE_SIZE"       env-default:"4096"`
	NoWidthFolding bool   `yaml:"no_width_folding" env:"NAMER_NO_WIDTH_FOLDING"`
	Suggestions    int    `yaml:"suggestions"      env:"NAMER_SUGGESTIONS"      env-default:"5"`
	Context        string `yaml:"context"          env:"NAMER_CONTEXT"          env-default:"general"`
}

// NamingConfig holds the prefixes and separator used to assemble C names.
type NamingConfig struct {
	Separator      string `yaml:"separator"       env:"NAMER_SEPARATOR"       env-default:"_"`
	GlobalPrefix   string `yaml:"global_prefix"   env:"NAMER_GLOBAL_PREFIX"   env-default:"g"`
	StaticPrefix   string `yaml:"static_prefix"   env:"NAMER_STATIC_PREFIX"   env-default:"s"`
	ConstPrefix    string `yaml:"const_prefix"    env:"NAMER_CONST_PREFIX"    env-default:"c"`
	VolatilePrefix string `yaml:"volatile_prefix" env:"NAMER_VOLATILE_PREFIX" env-default:"v"`
	StructPrefix   string `yaml:"struct_prefix"   env:"NAMER_STRUCT_PREFIX"   env-default:"st"`
	UnionPrefix    string `yaml:"union_prefix"    env:"NAMER_UNION_PREFIX"    env-default:"un"`
	EnumPrefix     string `yaml:"enum_prefix"     env:"NAMER_ENUM_PREFIX"     env-default:"e"`
	PointerPrefix  string `yaml:"pointer_prefix"  env:"NAMER_POINTER_PREFIX"  env-default:"p"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"NAMER_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"NAMER_LOG_FORMAT" env-default:"text"`
}
