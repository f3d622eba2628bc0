package cipher

import "strings"

// Atbash is the mirror-alphabet substitution A=Z, B=Y, …, Z=A. Case is kept
// and non-letters pass through. Encode and Decode are identical.
type Atbash struct{}

var _ Codec = Atbash{}

// Decode runs text through the Atbash substitution.
func (Atbash) Decode(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z':
			return 'Z' - (r - 'A')
		case r >= 'a' && r <= 'z':
			return 'z' - (r - 'a')
		}
		return r
	}, s)
}

// Encode is Decode: Atbash is symmetric.
func (a Atbash) Encode(s string) string {
	return a.Decode(s)
}
