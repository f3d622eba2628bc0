package grid

import "strings"

// Placement is where a word lies in a grid: its first letter and the
// direction it reads in.
type Placement struct {
	Start Coord
	Dir   Direction
}

// Search finds every straight-line placement of word in a letter grid, the
// way a word search is solved. Lines run in the four cardinal directions, or
// all eight with diagonals. Cells compare case-insensitively, one rune of
// word per cell. A single-letter word is reported once per cell, reading
// East. Placements are ordered by start cell (row-major), then by direction
// clockwise from north.
func Search(g *Grid[string], word string, diagonals bool) []Placement {
	letters := strings.Split(word, "")
	if len(letters) == 0 {
		return nil
	}
	dirs := Cardinals[:]
	if diagonals {
		dirs = Directions[:]
	}
	if len(letters) == 1 {
		dirs = []Direction{East}
	}

	var found []Placement
	for _, start := range g.Coords() {
		if first, _ := g.Get(start); !strings.EqualFold(first, letters[0]) {
			continue
		}
		for _, d := range dirs {
			line, ok := g.Line(start, d, len(letters))
			if ok && matches(line, letters) {
				found = append(found, Placement{Start: start, Dir: d})
			}
		}
	}

	return found
}

func matches(line, letters []string) bool {
	for i, cell := range line {
		if !strings.EqualFold(cell, letters[i]) {
			return false
		}
	}

	return true
}
