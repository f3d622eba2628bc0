package encodings

import "strings"

// brailleDots lists the raised dots of each letter.
var brailleDots = map[rune]string{
	'A': "1", 'B': "12", 'C': "14", 'D': "145", 'E': "15",
	'F': "124", 'G': "1245", 'H': "125", 'I': "24", 'J': "245",
	'K': "13", 'L': "123", 'M': "134", 'N': "1345", 'O': "135",
	'P': "1234", 'Q': "12345", 'R': "1235", 'S': "234", 'T': "2345",
	'U': "136", 'V': "1236", 'W': "2456", 'X': "1346", 'Y': "13456",
	'Z': "1356",
}

var braille = newTable(brailleCells())

// brailleCells renders brailleDots as six-character '*'/'.' cells.
func brailleCells() map[rune]string {
	cells := make(map[rune]string, len(brailleDots))
	for r, dots := range brailleDots {
		cell := []byte("......")
		for _, d := range dots {
			cell[d-'1'] = '*'
		}
		cells[r] = string(cell)
	}

	return cells
}

// DecodeBraille converts a whitespace-separated Braille message to text.
func DecodeBraille(message string) string {
	return DecodeBrailleTokens(strings.Fields(message))
}

// DecodeBrailleTokens converts Braille cells to text.
func DecodeBrailleTokens(cells []string) string {
	return braille.decodeTokens(cells, nil)
}

// EncodeBraille writes the letters of s as space-separated Braille cells.
func EncodeBraille(s string) string {
	return braille.encodeText(s)
}
