package helper

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// GenerateSlug turns a training name into its URL slug:
// lower-case, diacritics stripped, "&" becomes "and", spaces become
// hyphens, everything outside [a-z0-9-] is dropped.
// Duplicate slugs are allowed; the slug is a display key, not an identifier.
func GenerateSlug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "&", "and")

	// Strip diacritics (é → e, etc.)
	var runes []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		runes = append(runes, r)
	}

	var b strings.Builder
	for _, r := range runes {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	return b.String()
}
