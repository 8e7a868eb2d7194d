package config

import (
	"fmt"
	"strings"
)

// MaxSuggestions caps translator.suggestions.
const MaxSuggestions = 20

// Validate checks value ranges. Load calls it automatically.
func (c *Config) Validate() error {
	if c.Translator.CacheSize <= 0 {
		return fmt.Errorf("translator.cache_size must be > 0 (got %d)", c.Translator.CacheSize)
	}
	if c.Translator.Suggestions < 1 || c.Translator.Suggestions > MaxSuggestions {
		return fmt.Errorf("translator.suggestions must be in 1..%d (got %d)", MaxSuggestions, c.Translator.Suggestions)
	}
	if c.Terms.ImportSize <= 0 {
		return fmt.Errorf("terms.import_size must be > 0 (got %d)", c.Terms.ImportSize)
	}
	if c.Naming.Separator == "" {
		return fmt.Errorf("naming.separator must not be empty")
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}
	return nil
}
