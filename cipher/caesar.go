package cipher

import "strings"

// alphabetSize is the number of Latin letters.
const alphabetSize = 26

// Caesar rotates each Latin letter Shift places forward, keeping case.
// Shift is taken modulo 26, so negative and large shifts are fine.
type Caesar struct {
	Shift int
}

var _ Codec = Caesar{}

// Encode rotates letters forward by Shift.
func (c Caesar) Encode(s string) string {
	return rotate(s, c.Shift)
}

// Decode rotates letters back by Shift.
func (c Caesar) Decode(s string) string {
	return rotate(s, alphabetSize-normShift(c.Shift))
}

// CaesarAll returns text under every shift; index i holds shift i, so
// index 0 is text itself.
func CaesarAll(s string) [alphabetSize]string {
	var out [alphabetSize]string
	for i := range out {
		out[i] = rotate(s, i)
	}

	return out
}

func normShift(shift int) int {
	return ((shift % alphabetSize) + alphabetSize) % alphabetSize
}

func rotate(s string, shift int) string {
	k := rune(normShift(shift))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z':
			return 'A' + (r-'A'+k)%alphabetSize
		case r >= 'a' && r <= 'z':
			return 'a' + (r-'a'+k)%alphabetSize
		}
		return r
	}, s)
}
