// Package textutil provides the text normalization used when matching
// Portuguese-language labels: header synonyms, filename markers and form
// field names are compared accent- and case-insensitively.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripAccents removes diacritical marks so "Descrição" becomes "Descricao".
// The input is returned unchanged when the transform fails.
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// Canonical returns the comparison form of a label or cell: accents
// stripped, lowercased, surrounding whitespace trimmed.
func Canonical(s string) string {
	return strings.TrimSpace(strings.ToLower(StripAccents(s)))
}
