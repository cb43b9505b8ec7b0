package prepare

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nurikabe/gridsolve/internal/geom"
	"github.com/nurikabe/gridsolve/internal/grid"
	"github.com/nurikabe/gridsolve/internal/puzzleerr"
)

func TestPrepareAssignsRowMajorIndices(t *testing.T) {
	g := grid.NewGrid(2, 2)
	pg, err := Prepare(g)
	require.NoError(t, err)
	require.Equal(t, 4, pg.NumSquares())
	require.Equal(t, 0, pg.Index[geom.Coordinate{I: 0, J: 0}])
	require.Equal(t, 1, pg.Index[geom.Coordinate{I: 0, J: 1}])
	require.Equal(t, 2, pg.Index[geom.Coordinate{I: 1, J: 0}])
	require.Equal(t, 3, pg.Index[geom.Coordinate{I: 1, J: 1}])
}

func TestPrepareSkipsHolesAndTheirAdjacency(t *testing.T) {
	g := grid.NewGrid(1, 3)
	g.RemoveSquare(0, 1)

	pg, err := Prepare(g)
	require.NoError(t, err)
	require.Equal(t, 2, pg.NumSquares())

	_, holeIndexed := pg.Index[geom.Coordinate{I: 0, J: 1}]
	require.False(t, holeIndexed)

	left := pg.Squares[pg.Index[geom.Coordinate{I: 0, J: 0}]]
	require.Nil(t, left.Right, "no adjacency should be recorded across a hole")
}

func TestPrepareEmitsClueAndMergeRules(t *testing.T) {
	g := grid.NewGrid(1, 2)
	g.ColorLight(0, 0)
	g.JoinRight(0, 0)

	pg, err := Prepare(g)
	require.NoError(t, err)

	var sawColor, sawMerge bool
	for _, r := range pg.Rules {
		switch rr := r.(type) {
		case SquareIsColor:
			require.Equal(t, geom.Light, rr.Color)
			sawColor = true
		case SquaresAreSameColor:
			sawMerge = true
		}
	}
	require.True(t, sawColor)
	require.True(t, sawMerge)
}

func TestPrepareOffByOneZeroAreaClueIsMalformed(t *testing.T) {
	g := grid.NewGrid(1, 1)
	g.SetAreaNumber(0, 0, 0)
	g.AddRule(grid.RegionAreaEqualsNumber{})
	g.AddRule(grid.NumbersAreOffByOne{})

	_, err := Prepare(g)
	require.Error(t, err)
	var malformed *puzzleerr.MalformedPuzzleError
	require.ErrorAs(t, err, &malformed)
}

func TestPrepareDartNumberWithColorClueSucceeds(t *testing.T) {
	// grid.SetDartNumber always sets the color clue alongside the dart
	// clue, so the "DartNumbers references an uncolored cell" error can
	// only arise from a Grid square carrying a dart clue without a color,
	// which the public Grid authoring API cannot build; this exercises
	// the normal, well-formed path.
	g := grid.NewGrid(1, 2)
	g.SetDartNumber(0, 0, geom.Right, 1, grid.Dark)
	g.AddRule(grid.DartNumbers{})

	pg, err := Prepare(g)
	require.NoError(t, err)

	var sawColorCount bool
	for _, r := range pg.Rules {
		if cc, ok := r.(ColorCountInSetRule); ok {
			require.Equal(t, geom.Light, cc.Color, "dart clue counts the opposite color")
			require.Equal(t, 1, cc.N)
			sawColorCount = true
		}
	}
	require.True(t, sawColorCount)
}

func TestPrepareRegionsHaveDifferentShapesIsUnsupported(t *testing.T) {
	g := grid.NewGrid(2, 2)
	g.AddRule(grid.RegionsHaveDifferentShapes{})

	_, err := Prepare(g)
	require.Error(t, err)
	var unsupported *puzzleerr.UnsupportedRuleError
	require.ErrorAs(t, err, &unsupported)
}

func TestSweepIndicesWalksToEdge(t *testing.T) {
	g := grid.NewGrid(1, 4)
	pg, err := Prepare(g)
	require.NoError(t, err)

	from := pg.Index[geom.Coordinate{I: 0, J: 0}]
	indices := sweepIndices(pg, from, geom.Right)
	require.Equal(t, []int{1, 2, 3}, indices)
}
