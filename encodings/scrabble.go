package encodings

import "unicode"

// scrabbleValues holds the standard English tile values.
var scrabbleValues = [26]int{
	1, 3, 3, 2, 1, 4, 2, 4, 1, 8, 5, 1, 3, // A–M
	1, 1, 3, 10, 1, 1, 1, 1, 4, 4, 8, 4, 10, // N–Z
}

// Scrabble returns the point value of word in Scrabble. Case is ignored and
// anything other than A–Z scores zero.
func Scrabble(word string) int {
	total := 0
	for _, r := range word {
		r = unicode.ToUpper(r)
		if r >= 'A' && r <= 'Z' {
			total += scrabbleValues[r-'A']
		}
	}

	return total
}
