package dictionary

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// ErrInvalidTermDatabase is returned when term database content cannot be parsed.
var ErrInvalidTermDatabase = errors.New("invalid term database")

//go:embed builtin_terms.json
var builtinTerms []byte

// Builtin returns a fresh store filled from the term database compiled into
// the binary. Each call parses it again, so callers may mutate the result.
func Builtin() *Store {
	s, err := Parse(builtinTerms)
	if err != nil {
		panic("dictionary: embedded term database: " + err.Error())
	}
	return s
}

// LoadFile reads a term database from a JSON file. See Parse for the format.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read term database: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse builds a store from JSON term database content.
//
// The usual form is an object of categories, each an object of phrases:
//
//	{"general": {"温度": {"primary": "temperature", "alternatives": ["temp"]}}}
//
// A phrase may map directly to a string as shorthand for its primary
// translation. Alternatively the document may be a flat array of records
// {"category", "phrase", "primary", "alternatives"}; category defaults to
// "general". Category and phrase order follow the document.
func Parse(data []byte) (*Store, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidTermDatabase)
	}

	root := gjson.ParseBytes(data)
	s := NewStore()
	var err error
	switch {
	case root.IsObject():
		err = parseCategories(s, root)
	case root.IsArray():
		err = parseRecords(s, root)
	default:
		err = fmt.Errorf("%w: expected object or array, got %s", ErrInvalidTermDatabase, root.Type)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func parseCategories(s *Store, root gjson.Result) error {
	var err error
	root.ForEach(func(name, terms gjson.Result) bool {
		if !terms.IsObject() {
			err = fmt.Errorf("%w: category %q is not an object", ErrInvalidTermDatabase, name.String())
			return false
		}
		s.AddCategory(name.String())
		terms.ForEach(func(phrase, value gjson.Result) bool {
			rec, ok := recordFrom(value)
			if !ok {
				err = fmt.Errorf("%w: term %q in %q has no primary translation",
					ErrInvalidTermDatabase, phrase.String(), name.String())
				return false
			}
			s.Put(name.String(), phrase.String(), rec)
			return true
		})
		return err == nil
	})
	return err
}

func parseRecords(s *Store, root gjson.Result) error {
	var err error
	i := 0
	root.ForEach(func(_, value gjson.Result) bool {
		phrase := value.Get("phrase").String()
		rec, ok := recordFrom(value)
		if !value.IsObject() || phrase == "" || !ok {
			err = fmt.Errorf("%w: record %d needs phrase and primary", ErrInvalidTermDatabase, i)
			return false
		}
		name := value.Get("category").String()
		if name == "" {
			name = "general"
		}
		s.Put(name, phrase, rec)
		i++
		return true
	})
	return err
}

func recordFrom(v gjson.Result) (Record, bool) {
	if v.Type == gjson.String {
		return Record{Primary: v.String()}, v.String() != ""
	}
	if !v.IsObject() {
		return Record{}, false
	}
	rec := Record{
		Primary: v.Get("primary").String(),
		Custom:  v.Get("custom").Bool(),
	}
	v.Get("alternatives").ForEach(func(_, alt gjson.Result) bool {
		if a := alt.String(); a != "" {
			rec.Alternatives = append(rec.Alternatives, a)
		}
		return true
	})
	return rec, rec.Primary != ""
}
