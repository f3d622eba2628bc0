package encodings

import (
	"strings"
	"unicode"

	"github.com/katalvlaran/puzzlekit/text"
)

// unknown is what an undecodable token or unencodable character becomes.
const unknown = '?'

// table is a bidirectional character↔token code.
type table struct {
	decode map[string]rune
	encode map[rune]string
}

// newTable builds both directions of a code from its encoding half.
func newTable(codes map[rune]string) *table {
	t := &table{
		decode: make(map[string]rune, len(codes)),
		encode: make(map[rune]string, len(codes)),
	}
	for r, code := range codes {
		t.encode[r] = code
		t.decode[code] = r
	}

	return t
}

// decodeTokens maps each token through the table, key normalizing tokens
// first when non-nil.
func (t *table) decodeTokens(tokens []string, key func(string) string) string {
	var b strings.Builder
	for _, tok := range tokens {
		if key != nil {
			tok = key(tok)
		}
		r, ok := t.decode[tok]
		if !ok {
			r = unknown
		}
		b.WriteRune(r)
	}

	return b.String()
}

// encodeText turns the letters and digits of s into space-separated tokens.
func (t *table) encodeText(s string) string {
	var tokens []string
	for _, r := range text.Normalize(s) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		code, ok := t.encode[r]
		if !ok {
			code = string(unknown)
		}
		tokens = append(tokens, code)
	}

	return strings.Join(tokens, " ")
}
