// Package identifier turns free-form directory names into valid source
// identifiers for generated code.
package identifier

import (
	"strings"
	"unicode"
)

// Fallback is returned for an empty name
const Fallback = "_"

// Mangle converts name into an identifier made only of letters, digits and
// underscores that does not start with a digit. Every other rune becomes an
// underscore, so the result keeps the length (in runes) of the input, plus one
// when a leading digit needs an underscore prefix.
func Mangle(name string) string {
	if name == "" {
		return Fallback
	}

	var b strings.Builder
	b.Grow(len(name) + 1)
	for i, r := range []rune(name) {
		if i == 0 && unicode.IsDigit(r) {
			b.WriteByte('_')
		}
		if IsIdentifierRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// IsIdentifierRune reports whether r may appear in a mangled identifier
func IsIdentifierRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsValid reports whether s is already a valid identifier
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && unicode.IsDigit(r) {
			return false
		}
		if !IsIdentifierRune(r) {
			return false
		}
	}
	return true
}
