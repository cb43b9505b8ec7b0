package prepare

import (
	"github.com/nurikabe/gridsolve/internal/geom"
	"github.com/nurikabe/gridsolve/internal/grid"
	"github.com/nurikabe/gridsolve/internal/puzzleerr"
)

// Prepare compiles g into an immutable PreparedGrid, following the five
// steps of the preparation procedure: index assignment, neighbor
// resolution, the off-by-one modifier scan, rule expansion, and per-cell
// clue emission.
func Prepare(g *grid.Grid) (*PreparedGrid, error) {
	size := g.Size()
	pg := &PreparedGrid{
		Size:  size,
		Index: make(map[geom.Coordinate]int),
	}

	// Step 1: assign indices in row-major order over existing cells.
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			if !g.Square(r, c).Exists {
				continue
			}
			at := geom.Coordinate{I: r, J: c}
			pg.Index[at] = len(pg.Squares)
			pg.Squares = append(pg.Squares, PreparedSquare{Index: len(pg.Squares), At: at})
		}
	}

	// Step 2: resolve neighbor slots. A neighbor exists iff the adjacent
	// coordinate is in-bounds and that coordinate's cell exists; no
	// adjacency is ever recorded across a hole.
	for i := range pg.Squares {
		sq := &pg.Squares[i]
		for _, d := range geom.Directions {
			nb := sq.At.Add(d)
			if !nb.InBounds(size) {
				continue
			}
			idx, ok := pg.Index[nb]
			if !ok {
				continue
			}
			switch d {
			case geom.Up:
				sq.Above = intPtr(idx)
			case geom.Down:
				sq.Below = intPtr(idx)
			case geom.Left:
				sq.Left = intPtr(idx)
			case geom.Right:
				sq.Right = intPtr(idx)
			}
		}
	}

	// Step 3: the off-by-one modifier.
	for _, r := range g.Rules() {
		if _, ok := r.(grid.NumbersAreOffByOne); ok {
			pg.OffByOne = true
		}
	}

	// Step 4: expand declarative rules.
	for _, r := range g.Rules() {
		expanded, err := expandRule(g, pg, r)
		if err != nil {
			return nil, err
		}
		pg.Rules = append(pg.Rules, expanded...)
	}

	// Step 5: emit per-cell rules from clues.
	clueRules, err := emitClueRules(g, pg)
	if err != nil {
		return nil, err
	}
	pg.Rules = append(pg.Rules, clueRules...)

	return pg, nil
}

func intPtr(v int) *int { return &v }

func expandRule(g *grid.Grid, pg *PreparedGrid, r grid.Rule) ([]PreparedRule, error) {
	switch rule := r.(type) {
	case grid.BanPattern:
		var out []PreparedRule
		for _, oriented := range rule.Pattern.AllRotationsAndReflections() {
			out = append(out, BanPatternRule{Pattern: oriented})
		}
		return out, nil

	case grid.ConnectAll:
		return []PreparedRule{ConnectAllRule{Color: rule.Color}}, nil

	case grid.RegionAreaEqualsNumber:
		var out []PreparedRule
		for _, sq := range pg.Squares {
			square := g.Square(sq.At.I, sq.At.J)
			if square.AreaNumber == nil {
				continue
			}
			n := *square.AreaNumber
			if pg.OffByOne {
				if n == 0 {
					return nil, &puzzleerr.MalformedPuzzleError{
						Reason: "off-by-one area clue of 0 has no lower bound",
					}
				}
				out = append(out, RegionAreaEqualsEitherRule{Index: sq.Index, A: n - 1, B: n + 1})
			} else {
				out = append(out, RegionAreaEqualsNumberRule{Index: sq.Index, N: n})
			}
		}
		return out, nil

	case grid.RegionFixedSize:
		return []PreparedRule{RegionFixedSizeRule{Color: rule.Color, Size: rule.Size}}, nil

	case grid.ExactlyOneNumberPerRegion:
		var indices []int
		for _, sq := range pg.Squares {
			if g.Square(sq.At.I, sq.At.J).AreaNumber != nil {
				indices = append(indices, sq.Index)
			}
		}
		return []PreparedRule{ExactlyOneNumberPerRegionRule{Color: rule.Color, Indices: indices}}, nil

	case grid.VisibleCellCount:
		var out []PreparedRule
		for _, sq := range pg.Squares {
			square := g.Square(sq.At.I, sq.At.J)
			if square.VisibleCount == nil {
				continue
			}
			n := *square.VisibleCount
			if pg.OffByOne {
				if n == 0 {
					return nil, &puzzleerr.MalformedPuzzleError{
						Reason: "off-by-one visible-count clue of 0 has no lower bound",
					}
				}
				out = append(out, VisibleCellCountEitherRule{Index: sq.Index, A: n - 1, B: n + 1})
			} else {
				out = append(out, VisibleCellCountRule{Index: sq.Index, N: n})
			}
		}
		return out, nil

	case grid.NumbersAreOffByOne:
		return nil, nil

	case grid.DartNumbers:
		var out []PreparedRule
		for _, sq := range pg.Squares {
			square := g.Square(sq.At.I, sq.At.J)
			if square.DartNumber == nil {
				continue
			}
			if square.Color == nil {
				return nil, &puzzleerr.MalformedPuzzleError{
					Reason: "DartNumbers rule references a cell without a color clue at " + sq.At.String(),
				}
			}
			indices := sweepIndices(pg, sq.Index, square.DartNumber.Direction)
			out = append(out, ColorCountInSetRule{
				N:       square.DartNumber.Count,
				Color:   square.Color.Opposite(),
				Indices: indices,
			})
		}
		return out, nil

	case grid.RegionsHaveDifferentShapes:
		return nil, &puzzleerr.UnsupportedRuleError{Rule: "RegionsHaveDifferentShapes"}

	default:
		return nil, &puzzleerr.EncodingFailureError{Reason: "unknown Rule type in expandRule"}
	}
}

// sweepIndices walks from a cell in direction d until it runs off the
// board, collecting every existing cell on the way and stepping over
// non-existing cells rather than stopping at them.
func sweepIndices(pg *PreparedGrid, from int, d geom.Direction) []int {
	var out []int
	for at := pg.Squares[from].At.Add(d); at.InBounds(pg.Size); at = at.Add(d) {
		if idx, ok := pg.Index[at]; ok {
			out = append(out, idx)
		}
	}
	return out
}

func emitClueRules(g *grid.Grid, pg *PreparedGrid) ([]PreparedRule, error) {
	var out []PreparedRule
	for _, sq := range pg.Squares {
		square := g.Square(sq.At.I, sq.At.J)
		if square.Color != nil {
			out = append(out, SquareIsColor{Index: sq.Index, Color: *square.Color})
		}
		if square.MergeWithRight {
			if sq.Right != nil {
				out = append(out, SquaresAreSameColor{A: sq.Index, B: *sq.Right})
			}
		}
		if square.MergeWithBottom {
			if sq.Below != nil {
				out = append(out, SquaresAreSameColor{A: sq.Index, B: *sq.Below})
			}
		}
	}
	return out, nil
}
