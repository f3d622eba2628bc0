package grid

import (
	"fmt"
	"sort"
	"strings"
)

// New builds a Grid from an explicit coordinate→value mapping.
// The mapping is copied; Rows and Columns come from its largest indices.
// No check is made that the cells form a complete rectangle.
// Returns ErrEmptyGrid if cells is empty and ErrNegativeCoord if any
// coordinate has a negative row or column.
func New[T any](cells map[Coord]T) (*Grid[T], error) {
	if len(cells) == 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid[T]{cells: make(map[Coord]T, len(cells))}
	for c, v := range cells {
		if c.Row < 0 || c.Col < 0 {
			return nil, fmt.Errorf("%w: %v", ErrNegativeCoord, c)
		}
		g.cells[c] = v
	}
	g.Reshape()

	return g, nil
}

// FromText builds a Grid from newline-delimited rows. By default every rune
// of a line is one cell; WithSeparator splits lines on a separator instead.
// Cell (r, c) is the c-th piece of line r.
// Returns ErrEmptyGrid if the text yields no cells.
func FromText(text string, opts ...TextOption) (*Grid[string], error) {
	var cfg textConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	cells := make(map[Coord]string)
	for r, line := range splitLines(text) {
		var pieces []string
		if cfg.hasSep {
			pieces = strings.Split(line, cfg.sep)
		} else {
			pieces = strings.Split(line, "")
		}
		for c, piece := range pieces {
			cells[Coord{Row: r, Col: c}] = piece
		}
	}

	return New(cells)
}

// FromDimensions builds a rows×cols Grid with every cell set to def.
// Returns ErrEmptyGrid if either dimension is not positive.
func FromDimensions[T any](rows, cols int, def T) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make(map[Coord]T, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells[Coord{Row: r, Col: c}] = def
		}
	}

	return New(cells)
}

// Reshape recomputes Rows and Columns from the coordinates currently present.
// Set does not do this on its own. Bounds start at 0, so cells Set at
// negative coordinates never widen them.
func (g *Grid[T]) Reshape() {
	g.Rows, g.Columns = 0, 0
	for c := range g.cells {
		if c.Row+1 > g.Rows {
			g.Rows = c.Row + 1
		}
		if c.Col+1 > g.Columns {
			g.Columns = c.Col + 1
		}
	}
}

// Len reports the number of cells present.
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// Has reports whether coordinate c is present.
func (g *Grid[T]) Has(c Coord) bool {
	_, ok := g.cells[c]
	return ok
}

// Get returns the value at c and whether it is present.
func (g *Grid[T]) Get(c Coord) (T, bool) {
	v, ok := g.cells[c]
	return v, ok
}

// Set stores v at c. Rows and Columns are left as they are, even when c lies
// beyond them; see Reshape.
func (g *Grid[T]) Set(c Coord, v T) {
	g.cells[c] = v
}

// Coords returns every present coordinate in row-major order.
func (g *Grid[T]) Coords() []Coord {
	out := make([]Coord, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})

	return out
}

// Text renders the grid as newline-separated rows, joining the cells of each
// row with sep. Values are formatted with fmt.Sprint.
// Returns ErrMissingCell if any cell of the Rows×Columns rectangle is absent.
func (g *Grid[T]) Text(sep string) (string, error) {
	lines := make([]string, g.Rows)
	for r := 0; r < g.Rows; r++ {
		row, err := g.Row(r)
		if err != nil {
			return "", err
		}
		pieces := make([]string, len(row))
		for i, v := range row {
			pieces[i] = fmt.Sprint(v)
		}
		lines[r] = strings.Join(pieces, sep)
	}

	return strings.Join(lines, "\n"), nil
}

// Row returns the values of row r for columns 0..Columns-1.
// Returns ErrMissingCell if any of them is absent, which includes every r
// outside [0, Rows).
func (g *Grid[T]) Row(r int) ([]T, error) {
	out := make([]T, 0, g.Columns)
	for c := 0; c < g.Columns; c++ {
		v, ok := g.cells[Coord{Row: r, Col: c}]
		if !ok {
			return nil, missing(Coord{Row: r, Col: c})
		}
		out = append(out, v)
	}

	return out, nil
}

// Column returns the values of column c for rows 0..Rows-1.
// Returns ErrMissingCell if any of them is absent.
func (g *Grid[T]) Column(c int) ([]T, error) {
	out := make([]T, 0, g.Rows)
	for r := 0; r < g.Rows; r++ {
		v, ok := g.cells[Coord{Row: r, Col: c}]
		if !ok {
			return nil, missing(Coord{Row: r, Col: c})
		}
		out = append(out, v)
	}

	return out, nil
}

// Neighbors returns the values adjacent to c, clockwise from north.
// With diagonals the order is N, NE, E, SE, S, SW, W, NW; without it is
// N, E, S, W. Absent coordinates are skipped, so edge and corner cells
// yield fewer values.
func (g *Grid[T]) Neighbors(c Coord, diagonals bool) []T {
	dirs := Cardinals[:]
	if diagonals {
		dirs = Directions[:]
	}
	out := make([]T, 0, len(dirs))
	for _, d := range dirs {
		if v, ok := g.cells[c.Step(d)]; ok {
			out = append(out, v)
		}
	}

	return out
}

// Line returns distance values starting at c (inclusive) and stepping in
// direction d. It reports false, without reading any cell, when the final
// position is absent: the line runs off the grid. Holes before the final
// position read as the zero value of T.
func (g *Grid[T]) Line(c Coord, d Direction, distance int) ([]T, bool) {
	if _, ok := g.cells[Move(c, d, distance-1)]; !ok {
		return nil, false
	}
	var zero T

	return g.LinePastEdge(c, d, distance, zero), true
}

// LinePastEdge is Line without the edge check: every position that is not
// present yields pastEdge, and exactly distance values are returned.
func (g *Grid[T]) LinePastEdge(c Coord, d Direction, distance int, pastEdge T) []T {
	if distance <= 0 {
		return []T{}
	}
	out := make([]T, distance)
	for i := range out {
		v, ok := g.cells[Move(c, d, i)]
		if !ok {
			v = pastEdge
		}
		out[i] = v
	}

	return out
}

// splitLines mirrors line splitting on "\n", "\r\n" and "\r", dropping a
// single trailing line break.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}
