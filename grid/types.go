package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates there are no cells to derive dimensions from.
	ErrEmptyGrid = errors.New("grid: grid must have at least one cell")
	// ErrMissingCell indicates a required coordinate is absent from the grid.
	ErrMissingCell = errors.New("grid: missing cell")
	// ErrNegativeCoord indicates a coordinate with a negative row or column.
	ErrNegativeCoord = errors.New("grid: negative coordinate")
	// ErrNoPath indicates no route exists between two cells.
	ErrNoPath = errors.New("grid: no path between cells")
)

// Coord is a (row, column) grid coordinate.
type Coord struct {
	Row, Col int
}

// At is shorthand for Coord{Row: row, Col: col}.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String renders the coordinate as "(row, col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Step returns the coordinate one unit away in direction d.
func (c Coord) Step(d Direction) Coord {
	return Move(c, d, 1)
}

// Grid maps coordinates to cell values of any type.
// Rows and Columns are 1 + the largest row and column index present at the
// time of construction or of the last Reshape.
type Grid[T any] struct {
	Rows, Columns int
	cells         map[Coord]T
}

// textConfig collects FromText options.
type textConfig struct {
	sep    string
	hasSep bool
}

// TextOption configures FromText.
type TextOption func(*textConfig)

// WithSeparator splits each line on sep instead of treating every rune as
// its own cell.
func WithSeparator(sep string) TextOption {
	return func(cfg *textConfig) {
		cfg.sep = sep
		cfg.hasSep = true
	}
}

func missing(c Coord) error {
	return fmt.Errorf("%w at %v", ErrMissingCell, c)
}
