package encodings

import (
	"sort"
	"strings"
)

// Semaphore arm positions on a numeric keypad, as the reader sees them:
//
//	7 8 9
//	4 · 6
//	1 2 3
//
// Codes are stored with their digits in ascending order.
var semaphore = newTable(map[rune]string{
	'A': "12", 'B': "24", 'C': "27", 'D': "28", 'E': "29", 'F': "26", 'G': "23",
	'H': "14", 'I': "17", 'K': "18", 'L': "19", 'M': "16", 'N': "13",
	'O': "47", 'P': "48", 'Q': "49", 'R': "46", 'S': "34",
	'T': "78", 'U': "79", 'Y': "67",
	'J': "68", 'V': "38",
	'W': "69", 'X': "39",
	'Z': "36",
})

// DecodeSemaphore converts a whitespace-separated semaphore message to text.
func DecodeSemaphore(message string) string {
	return DecodeSemaphoreTokens(strings.Fields(message))
}

// DecodeSemaphoreTokens converts semaphore tokens to text. The two digits of
// a token may come in either order.
func DecodeSemaphoreTokens(tokens []string) string {
	return semaphore.decodeTokens(tokens, sortedDigits)
}

// EncodeSemaphore writes the letters of s as space-separated keypad pairs.
func EncodeSemaphore(s string) string {
	return semaphore.encodeText(s)
}

func sortedDigits(tok string) string {
	b := []byte(tok)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	return string(b)
}
