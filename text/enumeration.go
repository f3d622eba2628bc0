package text

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// wordRuns splits text into alternating runs of word and non-word characters.
var wordRuns = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+|[^\p{L}\p{M}\p{N}_]+`)

type enumConfig struct {
	capitals bool
}

// EnumOption configures Enumeration.
type EnumOption func(*enumConfig)

// WithCapitals marks every word starting with an uppercase letter with "*".
func WithCapitals() EnumOption {
	return func(cfg *enumConfig) { cfg.capitals = true }
}

// Enumeration replaces each alphabetic word of answer by its length and keeps
// spacing, punctuation and digits as they are:
//
//	Enumeration("Mr. and Mrs. Smith")                 → "2. 3 3. 5"
//	Enumeration("Mr. and Mrs. Smith", WithCapitals()) → "*2. 3 *3. *5"
//
// Only the first letter counts as a capital: "NASA" gives "*4" and
// "McMillan" gives "*8".
func Enumeration(answer string, opts ...EnumOption) string {
	var cfg enumConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var b strings.Builder
	for _, piece := range wordRuns.FindAllString(answer, -1) {
		if !isAlpha(piece) {
			b.WriteString(piece)
			continue
		}
		letters := []rune(piece)
		if cfg.capitals && unicode.IsUpper(letters[0]) {
			b.WriteByte('*')
		}
		b.WriteString(strconv.Itoa(len(letters)))
	}

	return b.String()
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return s != ""
}
