package cipher

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/puzzlekit/text"
)

// baconGroup is the number of symbols per Bacon letter.
const baconGroup = 5

// ABFunc classifies one ciphertext symbol as 'a' or 'b', or reports an error
// for a symbol it cannot classify.
type ABFunc func(symbol rune) (rune, error)

// Bacon reads a ciphertext five symbols at a time, each symbol classified as
// 'a' or 'b', and maps each group to a letter of the 26-letter Bacon
// alphabet (aaaaa=A, aaaab=B, …, bbaab=Z), which is binary 0–25.
//
// Concealment schemes vary (case, typeface, parity), which is why the
// classification is a function.
type Bacon struct {
	ab ABFunc
}

// NewBacon returns a Bacon reader using ab to classify symbols. A nil ab
// accepts only the literal symbols 'a' and 'b'.
func NewBacon(ab ABFunc) Bacon {
	if ab == nil {
		ab = literalAB
	}
	return Bacon{ab: ab}
}

// BinaryBacon returns a Bacon reader over '0' (a) and '1' (b).
func BinaryBacon() Bacon {
	return NewBacon(func(symbol rune) (rune, error) {
		switch symbol {
		case '0':
			return 'a', nil
		case '1':
			return 'b', nil
		}
		return 0, fmt.Errorf("%w: %q is neither 0 nor 1", ErrNotAB, symbol)
	})
}

func literalAB(symbol rune) (rune, error) {
	if symbol == 'a' || symbol == 'b' {
		return symbol, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrNotAB, symbol)
}

// Decode reads ciphertext symbol by symbol. Whitespace is skipped; every
// other rune goes through the classifier, whose error is returned as is.
// A trailing partial group, or a group beyond Z, decodes as '?'.
func (b Bacon) Decode(ciphertext string) (string, error) {
	var out strings.Builder
	value, n := 0, 0
	for _, r := range ciphertext {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		ab, err := b.ab(r)
		if err != nil {
			return "", err
		}
		value <<= 1
		if ab == 'b' {
			value |= 1
		}
		n++
		if n == baconGroup {
			out.WriteRune(baconLetter(value))
			value, n = 0, 0
		}
	}
	if n > 0 {
		out.WriteRune('?')
	}

	return out.String(), nil
}

// Encode writes the A–Z letters of s as space-separated five-symbol groups of
// 'a' and 'b'.
func (Bacon) Encode(s string) string {
	letters := text.Letters(s)
	groups := make([]string, 0, len(letters))
	for _, r := range letters {
		v := int(r - 'A')
		var g [baconGroup]byte
		for i := baconGroup - 1; i >= 0; i-- {
			g[i] = 'a' + byte(v&1)
			v >>= 1
		}
		groups = append(groups, string(g[:]))
	}

	return strings.Join(groups, " ")
}

func baconLetter(value int) rune {
	if value >= alphabetSize {
		return '?'
	}
	return 'A' + rune(value)
}
