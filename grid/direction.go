package grid

import "fmt"

// Direction is a (row, column) unit step.
type Direction struct {
	DRow, DCol int
}

// Compass directions. North decreases the row, East increases the column.
var (
	North     = Direction{DRow: -1, DCol: 0}
	NorthEast = Direction{DRow: -1, DCol: 1}
	East      = Direction{DRow: 0, DCol: 1}
	SouthEast = Direction{DRow: 1, DCol: 1}
	South     = Direction{DRow: 1, DCol: 0}
	SouthWest = Direction{DRow: 1, DCol: -1}
	West      = Direction{DRow: 0, DCol: -1}
	NorthWest = Direction{DRow: -1, DCol: -1}
)

// Directions lists all eight directions clockwise from north.
var Directions = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// Cardinals lists the four orthogonal directions clockwise from north.
var Cardinals = [4]Direction{North, East, South, West}

var compassNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// String returns the compass abbreviation ("N", "SE", ...) or "(dr, dc)"
// for a non-unit step.
func (d Direction) String() string {
	for i, c := range Directions {
		if c == d {
			return compassNames[i]
		}
	}
	return fmt.Sprintf("(%d, %d)", d.DRow, d.DCol)
}

// Clockwise returns d rotated 90° clockwise: (dr, dc) → (dc, −dr).
func (d Direction) Clockwise() Direction {
	return Direction{DRow: d.DCol, DCol: -d.DRow}
}

// CounterClockwise returns d rotated 90° counterclockwise: (dr, dc) → (−dc, dr).
func (d Direction) CounterClockwise() Direction {
	return Direction{DRow: -d.DCol, DCol: d.DRow}
}

// Around returns the opposite direction: (dr, dc) → (−dr, −dc).
func (d Direction) Around() Direction {
	return Direction{DRow: -d.DRow, DCol: -d.DCol}
}

// TurnRight is an alias for Clockwise.
func (d Direction) TurnRight() Direction { return d.Clockwise() }

// TurnLeft is an alias for CounterClockwise.
func (d Direction) TurnLeft() Direction { return d.CounterClockwise() }

// Move returns the coordinate distance steps from start in direction d.
// Negative distances walk backwards; the result may lie outside any grid.
func Move(start Coord, d Direction, distance int) Coord {
	return Coord{
		Row: start.Row + d.DRow*distance,
		Col: start.Col + d.DCol*distance,
	}
}
