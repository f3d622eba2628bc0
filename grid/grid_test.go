package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlekit/grid"
)

const sampleGrid = "ABCDE\nFGHIJ\nKLMNO\nPQRST"

func mustText(t *testing.T, text string, opts ...grid.TextOption) *grid.Grid[string] {
	t.Helper()
	g, err := grid.FromText(text, opts...)
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Dimensions verifies Rows and Columns come from the largest indices.
func TestNew_Dimensions(t *testing.T) {
	small, err := grid.New(map[grid.Coord]string{grid.At(0, 0): "A", grid.At(0, 1): "B"})
	require.NoError(t, err)
	require.Equal(t, 1, small.Rows)
	require.Equal(t, 2, small.Columns)
}

// TestNew_CopiesInput ensures later edits to the source map do not leak in.
func TestNew_CopiesInput(t *testing.T) {
	src := map[grid.Coord]int{grid.At(0, 0): 1}
	g, err := grid.New(src)
	require.NoError(t, err)
	src[grid.At(0, 0)] = 9
	v, ok := g.Get(grid.At(0, 0))
	require.True(t, ok)
	require.Equal(t, 1, v)
}

// TestConstructors_Empty checks every constructor rejects inputs with no cells.
func TestConstructors_Empty(t *testing.T) {
	_, err := grid.New(map[grid.Coord]string{})
	require.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.FromText("")
	require.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.FromDimensions(0, 3, ".")
	require.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.FromDimensions(3, -1, ".")
	require.ErrorIs(t, err, grid.ErrEmptyGrid)
}

// TestNew_NegativeCoords rejects coordinates above or left of the origin,
// which would otherwise leave Rows and Columns at zero.
func TestNew_NegativeCoords(t *testing.T) {
	for _, c := range []grid.Coord{grid.At(-1, 0), grid.At(0, -2), grid.At(-3, -3)} {
		_, err := grid.New(map[grid.Coord]string{c: "#", grid.At(0, 0): "."})
		require.ErrorIs(t, err, grid.ErrNegativeCoord, "coord %v", c)
	}

	g, err := grid.New(map[grid.Coord]string{grid.At(0, 0): "."})
	require.NoError(t, err)
	g.Set(grid.At(-1, -1), "#")
	g.Reshape()
	require.Equal(t, 1, g.Rows)
	require.Equal(t, 1, g.Columns)
}

// TestFromDimensions fills the full rectangle with the default value.
func TestFromDimensions(t *testing.T) {
	g, err := grid.FromDimensions(3, 2, ".")
	require.NoError(t, err)
	require.Equal(t, 3, g.Rows)
	require.Equal(t, 2, g.Columns)
	require.Equal(t, 6, g.Len())
	for _, c := range g.Coords() {
		v, _ := g.Get(c)
		require.Equal(t, ".", v, "cell %v", c)
	}

	g.Set(grid.At(1, 1), "*")
	text, err := g.Text("")
	require.NoError(t, err)
	require.Equal(t, "..\n.*\n..", text)
}

// TestFromDimensions_Generic exercises a non-string cell type.
func TestFromDimensions_Generic(t *testing.T) {
	g, err := grid.FromDimensions(2, 3, 0)
	require.NoError(t, err)
	g.Set(grid.At(1, 2), 7)

	text, err := g.Text(",")
	require.NoError(t, err)
	require.Equal(t, "0,0,0\n0,0,7", text)
}

// TestFromText covers the default rune split and an explicit separator.
func TestFromText(t *testing.T) {
	standard := mustText(t, sampleGrid)
	require.Equal(t, 4, standard.Rows)
	require.Equal(t, 5, standard.Columns)
	v, ok := standard.Get(grid.At(1, 2))
	require.True(t, ok)
	require.Equal(t, "H", v)

	text, err := standard.Text("")
	require.NoError(t, err)
	require.Equal(t, sampleGrid, text)

	piped, err := standard.Text("|")
	require.NoError(t, err)
	require.Equal(t, "A|B|C|D|E", piped[:9])

	badlySplit := mustText(t, "A B\nC D")
	require.Equal(t, 6, badlySplit.Len())
	v, _ = badlySplit.Get(grid.At(0, 1))
	require.Equal(t, " ", v)
	v, _ = badlySplit.Get(grid.At(1, 2))
	require.Equal(t, "D", v)

	wellSplit := mustText(t, "A B\nC D", grid.WithSeparator(" "))
	require.Equal(t, 4, wellSplit.Len())
	v, _ = wellSplit.Get(grid.At(1, 1))
	require.Equal(t, "D", v)
}

// TestFromText_LineEndings accepts CRLF input and a trailing newline.
func TestFromText_LineEndings(t *testing.T) {
	g := mustText(t, "AB\r\nCD\r\n")
	require.Equal(t, 2, g.Rows)
	require.Equal(t, 2, g.Columns)
	text, err := g.Text("")
	require.NoError(t, err)
	require.Equal(t, "AB\nCD", text)
}

// TestFromText_Runes keeps multi-byte characters as single cells.
func TestFromText_Runes(t *testing.T) {
	g := mustText(t, "ÉÀ\nßØ")
	require.Equal(t, 2, g.Columns)
	v, _ := g.Get(grid.At(1, 0))
	require.Equal(t, "ß", v)
}

//----------------------------------------------------------------------------//
// Retrieval
//----------------------------------------------------------------------------//

func TestRowAndColumn(t *testing.T) {
	g := mustText(t, sampleGrid)

	row, err := g.Row(2)
	require.NoError(t, err)
	require.Equal(t, []string{"K", "L", "M", "N", "O"}, row)

	col, err := g.Column(2)
	require.NoError(t, err)
	require.Equal(t, []string{"C", "H", "M", "R"}, col)

	_, err = g.Row(6)
	require.ErrorIs(t, err, grid.ErrMissingCell)
	_, err = g.Column(-1)
	require.ErrorIs(t, err, grid.ErrMissingCell)
}

// TestText_Hole reports a missing cell inside the rectangle.
func TestText_Hole(t *testing.T) {
	g, err := grid.New(map[grid.Coord]string{grid.At(0, 0): "A", grid.At(1, 1): "D"})
	require.NoError(t, err)
	_, err = g.Text("")
	require.ErrorIs(t, err, grid.ErrMissingCell)
	require.Contains(t, err.Error(), "(0, 1)")
}

func TestNeighbors(t *testing.T) {
	g := mustText(t, sampleGrid)

	cases := []struct {
		name      string
		at        grid.Coord
		diagonals bool
		want      []string
	}{
		{"InteriorCardinals", grid.At(1, 1), false, []string{"B", "H", "L", "F"}},
		{"InteriorAll", grid.At(1, 1), true, []string{"B", "C", "H", "M", "L", "K", "F", "A"}},
		{"CornerCardinals", grid.At(3, 4), false, []string{"O", "S"}},
		{"CornerAll", grid.At(3, 4), true, []string{"O", "S", "N"}},
		{"OriginCardinals", grid.At(0, 0), false, []string{"B", "F"}},
		{"OriginAll", grid.At(0, 0), true, []string{"B", "G", "F"}},
		{"EdgeAll", grid.At(0, 2), true, []string{"D", "I", "H", "G", "B"}},
		{"OffGrid", grid.At(-1, 0), false, []string{"A"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, g.Neighbors(tc.at, tc.diagonals))
		})
	}
}

func TestLine(t *testing.T) {
	g := mustText(t, sampleGrid)

	line, ok := g.Line(grid.At(1, 1), grid.SouthEast, 3)
	require.True(t, ok)
	require.Equal(t, []string{"G", "M", "S"}, line)

	line, ok = g.Line(grid.At(1, 1), grid.SouthEast, 4)
	require.False(t, ok)
	require.Nil(t, line)

	require.Equal(t, []string{"G", "M", "S", "#"},
		g.LinePastEdge(grid.At(1, 1), grid.SouthEast, 4, "#"))

	// Exactly reaching the last cell of a row.
	line, ok = g.Line(grid.At(0, 0), grid.East, 5)
	require.True(t, ok)
	require.Equal(t, []string{"A", "B", "C", "D", "E"}, line)
	_, ok = g.Line(grid.At(0, 0), grid.East, 6)
	require.False(t, ok)

	line, ok = g.Line(grid.At(3, 4), grid.North, 4)
	require.True(t, ok)
	require.Equal(t, []string{"T", "O", "J", "E"}, line)

	require.Equal(t, []string{"#", "#"}, g.LinePastEdge(grid.At(9, 9), grid.West, 2, "#"))
	require.Empty(t, g.LinePastEdge(grid.At(0, 0), grid.East, 0, "#"))
}

// TestSet_DoesNotReshape documents that cached dimensions go stale until Reshape.
func TestSet_DoesNotReshape(t *testing.T) {
	g := mustText(t, "AB\nCD")
	g.Set(grid.At(2, 0), "E")
	require.Equal(t, 2, g.Rows)
	require.True(t, g.Has(grid.At(2, 0)))

	text, err := g.Text("")
	require.NoError(t, err)
	require.Equal(t, "AB\nCD", text)

	g.Reshape()
	require.Equal(t, 3, g.Rows)
	_, err = g.Text("")
	require.ErrorIs(t, err, grid.ErrMissingCell)

	g.Set(grid.At(2, 1), "F")
	text, err = g.Text("")
	require.NoError(t, err)
	require.Equal(t, "AB\nCD\nEF", text)
}

func TestCoords_RowMajor(t *testing.T) {
	g := mustText(t, "AB\nCD")
	require.Equal(t,
		[]grid.Coord{grid.At(0, 0), grid.At(0, 1), grid.At(1, 0), grid.At(1, 1)},
		g.Coords())
}
