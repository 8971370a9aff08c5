// Package lexicon holds the static keyword dictionaries shared by the intent
// classifier and the scoring factors, plus the text normalization they rely on.
package lexicon

import (
	"strings"
	"unicode"
)

// Normalize lowercases text, replaces punctuation with spaces and collapses
// whitespace. Currency markers survive, as do commas and dots sitting between
// two digits, so amounts like "$1,299.99" keep their shape.
func Normalize(text string) string {
	runes := []rune(strings.ToLower(text))

	var b strings.Builder
	b.Grow(len(text))

	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case isCurrency(r):
			b.WriteRune(r)
		case (r == ',' || r == '.') && betweenDigits(runes, i):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokens splits normalized text on spaces.
func Tokens(text string) []string {
	return strings.Fields(text)
}

func isCurrency(r rune) bool {
	return r == '$' || r == '€' || r == '£'
}

func betweenDigits(runes []rune, i int) bool {
	return i > 0 && i < len(runes)-1 && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1])
}
