package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics decomposes to NFD, drops combining marks, and recomposes.
// "está" and "esta" normalize identically; learners frequently omit accents
// and must not be penalized for it.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize prepares a string for similarity comparison: lowercase, strip
// diacritics, trim outer whitespace, and collapse inner whitespace runs to
// single spaces.
func Normalize(s string) string {
	folded, _, err := transform.String(foldDiacritics, s)
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the raw
		// input so scoring still proceeds case-insensitively.
		folded = s
	}

	lowered := strings.ToLower(folded)
	return strings.Join(strings.Fields(lowered), " ")
}
