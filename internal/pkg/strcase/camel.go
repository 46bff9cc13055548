package strcase

import (
	"strings"
	"unicode"
)

// ToLowerCamel converts an exported Go identifier to lowerCamelCase
// (initialism-safe).
//
//	FullName  -> fullName
//	IELTS     -> ielts
//	URLPath   -> urlPath
func ToLowerCamel(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)

	// length of the leading upper-case run
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}

	switch {
	case n == 0:
		return s
	case n == 1, n == len(runes):
		// FullName -> fullName, IELTS -> ielts
	default:
		// URLPath: keep the last upper rune as start of the next word
		if unicode.IsLower(runes[n]) {
			n--
		}
	}

	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		if i < n {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}

	return b.String()
}
