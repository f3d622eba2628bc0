package text

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrBadLength indicates a non-positive piece length or piece count.
var ErrBadLength = errors.New("text: length must be positive")

// Alphafy returns s with every non-letter removed, except characters that
// appear in others, which are kept. Order is preserved.
func Alphafy(s, others string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || strings.ContainsRune(others, r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Normalize uppercases s and removes combining diacritics, so "Éte" becomes
// "ETE". Characters other than letters pass through unchanged.
func Normalize(s string) string {
	// Transformers and casers carry state; build fresh ones per call.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, s)
	if err != nil {
		folded = s
	}

	return cases.Upper(language.Und).String(folded)
}

// Letters returns the letters Alphafy keeps from Normalize(s), restricted
// to A–Z. Letters outside the Latin alphabet, such as Greek, are dropped.
func Letters(s string) string {
	kept := Alphafy(Normalize(s), "")

	return strings.Map(func(r rune) rune {
		if r < 'A' || r > 'Z' {
			return -1
		}
		return r
	}, kept)
}
