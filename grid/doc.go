// Package grid holds rectangular puzzle grids: mappings from (row, column)
// coordinates to cell values, plus the direction arithmetic used to walk them.
//
// What:
//
//   - Grid[T] wraps a sparse map[Coord]T; Rows and Columns are derived from
//     the largest coordinate present.
//   - Build grids from an explicit map (New), from line-delimited text
//     (FromText) or from explicit dimensions with a default value
//     (FromDimensions).
//   - Query rows, columns, neighbors (clockwise from north) and straight
//     lines in any of the eight compass directions.
//   - Find connected regions of matching cells (Regions) and shortest paths
//     through passable cells (Path).
//   - Solve word searches over letter grids (Search).
//
// Coordinates:
//
//	These are grid coordinates, not plane coordinates: (0, 0) is the upper
//	left cell and the row comes before the column.
//
//	       GRID              PLANE
//	      0 1 2 3         3
//	    0   |             2 - *
//	    1   |             1   |
//	    2 - *             0   |
//	    3                   0 1 2 3
//	  star at (2, 1)    star at (1, 2)
//
// Invariants:
//
//   - A Grid is expected to be a complete rectangle: every (r, c) with
//     0 ≤ r < Rows and 0 ≤ c < Columns is present. This is assumed, not
//     enforced. Row, Column and Text report holes as ErrMissingCell.
//   - Rows and Columns are cached. Set never grows them; call Reshape after
//     edits that change the bounds.
//
// Complexity:
//
//   - Row, Column: O(Columns), O(Rows).
//   - Neighbors: O(d), d = 4 or 8.
//   - Line, LinePastEdge: O(distance).
//   - Regions, Path: O(R×C×d), Memory: O(R×C).
//   - Search: O(R×C×d×len(word)).
//
// Errors:
//
//   - ErrEmptyGrid: no cells to derive dimensions from.
//   - ErrMissingCell: a required coordinate is absent.
//   - ErrNegativeCoord: New was given a coordinate left of or above (0, 0).
//   - ErrNoPath: no route exists between two cells.
//
// Grid provides no locking; callers sharing a Grid across goroutines must
// serialize mutation themselves.
package grid
