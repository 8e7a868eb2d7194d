package identifier

import (
	"errors"
	"fmt"
	"strings"
)

// MaxLength is the longest identifier Validate accepts. C only guarantees 63
// significant characters for internal identifiers.
const MaxLength = 63

var (
	ErrEmpty        = errors.New("identifier is empty")
	ErrLeadingChar  = errors.New("identifier must start with a letter or underscore")
	ErrInvalidChars = errors.New("identifier may only contain letters, digits and underscores")
	ErrReserved     = errors.New("identifier is a reserved keyword")
	ErrTooLong      = fmt.Errorf("identifier is longer than %d characters", MaxLength)
)

var cKeywords = map[string]struct{}{
	"auto": {}, "break": {}, "case": {}, "char": {}, "const": {}, "continue": {},
	"default": {}, "do": {}, "double": {}, "else": {}, "enum": {}, "extern": {},
	"float": {}, "for": {}, "goto": {}, "if": {}, "int": {}, "long": {},
	"register": {}, "return": {}, "short": {}, "signed": {}, "sizeof": {},
	"static": {}, "struct": {}, "switch": {}, "typedef": {}, "union": {},
	"unsigned": {}, "void": {}, "volatile": {}, "while": {},
}

// IsKeyword reports whether name (case-insensitively) is a C keyword.
func IsKeyword(name string) bool {
	_, ok := cKeywords[strings.ToLower(name)]
	return ok
}

// Validate checks name against C naming rules. All violations are reported
// together; use errors.Is to test for a specific one.
func Validate(name string) error {
	if name == "" {
		return ErrEmpty
	}

	var errs []error
	if first := rune(name[0]); first != '_' && !(IsLatinRune(first) && (first < '0' || first > '9')) {
		errs = append(errs, ErrLeadingChar)
	}
	for _, r := range name {
		if !IsLatinRune(r) {
			errs = append(errs, ErrInvalidChars)
			break
		}
	}
	if IsKeyword(name) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrReserved, name))
	}
	if len(name) > MaxLength {
		errs = append(errs, ErrTooLong)
	}
	return errors.Join(errs...)
}
