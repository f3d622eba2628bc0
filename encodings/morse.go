package encodings

import "strings"

var morse = newTable(map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
})

// DecodeMorse converts a Morse message to text. Letters may be separated by
// whitespace or by '/'.
func DecodeMorse(message string) string {
	return DecodeMorseTokens(strings.Fields(strings.ReplaceAll(message, "/", " ")))
}

// DecodeMorseTokens converts Morse tokens to text.
func DecodeMorseTokens(tokens []string) string {
	return morse.decodeTokens(tokens, nil)
}

// EncodeMorse writes the letters and digits of s as space-separated Morse.
func EncodeMorse(s string) string {
	return morse.encodeText(s)
}
