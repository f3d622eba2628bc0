package cipher

import (
	"strings"

	"github.com/katalvlaran/puzzlekit/text"
)

// squareSize is the side of the Playfair key square.
const squareSize = 5

// playfairAlphabet is A–Z without J.
const playfairAlphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

// square is a (row, column) position in the key square.
type square struct {
	row, col int
}

// Playfair holds a key square and its inverse. Both are fixed at
// construction; Encode and Decode only read them.
type Playfair struct {
	letterToCoord map[rune]square
	coordToLetter [squareSize][squareSize]rune
}

var _ Codec = (*Playfair)(nil)

// NewPlayfair builds the key square for keyword: its letters in order
// (uppercased, J read as I, repeats skipped), then the rest of the alphabet,
// filled row by row. A keyword without letters gives the plain alphabet.
func NewPlayfair(keyword string) *Playfair {
	p := &Playfair{letterToCoord: make(map[rune]square, squareSize*squareSize)}
	next := 0
	for _, r := range playfairLetters(keyword) + playfairAlphabet {
		if _, seen := p.letterToCoord[r]; seen {
			continue
		}
		sq := square{row: next / squareSize, col: next % squareSize}
		p.letterToCoord[r] = sq
		p.coordToLetter[sq.row][sq.col] = r
		next++
	}

	return p
}

// KeySquare returns the key square as five rows of five letters.
func (p *Playfair) KeySquare() []string {
	rows := make([]string, squareSize)
	for i, row := range p.coordToLetter {
		rows[i] = string(row[:])
	}

	return rows
}

// Encode enciphers text. Non-letters are dropped, J is read as I, and
// padding (X, or Q after an X) splits doubled letters and completes a
// trailing single letter. The result is uppercase and of even length.
func (p *Playfair) Encode(s string) string {
	return p.translate(s, 1)
}

// Decode deciphers text with the same normalization as Encode. Padding
// letters are not removed, so a decoded message may differ from the
// original plaintext by inserted X and Q letters.
func (p *Playfair) Decode(s string) string {
	return p.translate(s, -1)
}

// translate runs the digraph rules with the given direction: 1 to encode,
// -1 to decode.
func (p *Playfair) translate(s string, direction int) string {
	queue := []rune(playfairLetters(s))
	out := make([]rune, 0, len(queue)+len(queue)/2+2)

	for len(queue) > 0 {
		a := queue[0]
		var b rune
		switch {
		case len(queue) == 1:
			b = padding(a)
			queue = queue[1:]
		case queue[1] == a:
			// Padding the first letter realigns every later pair, so the
			// queue is rebuilt and pairing restarts from here.
			queue = append([]rune{a, padding(a)}, queue[1:]...)
			continue
		default:
			b = queue[1]
			queue = queue[2:]
		}

		sa, sb := p.letterToCoord[a], p.letterToCoord[b]
		switch {
		case sa.row == sb.row:
			sa.col = wrap(sa.col + direction)
			sb.col = wrap(sb.col + direction)
		case sa.col == sb.col:
			sa.row = wrap(sa.row + direction)
			sb.row = wrap(sb.row + direction)
		default:
			// Rectangle rule: swap columns. Same in both directions.
			sa.col, sb.col = sb.col, sa.col
		}
		out = append(out, p.coordToLetter[sa.row][sa.col], p.coordToLetter[sb.row][sb.col])
	}

	return string(out)
}

// playfairLetters reduces s to A–Z letters with J folded into I.
func playfairLetters(s string) string {
	return strings.ReplaceAll(text.Letters(s), "J", "I")
}

// padding is the filler placed after letter: X, unless letter is X itself.
func padding(letter rune) rune {
	if letter == 'X' {
		return 'Q'
	}
	return 'X'
}

// wrap reduces i modulo the square size into [0, squareSize).
func wrap(i int) int {
	return ((i % squareSize) + squareSize) % squareSize
}
