// Package prepare compiles an authoring-time grid.Grid into an immutable
// PreparedGrid: dense 0..N-1 indices over existing cells, resolved
// neighbor slots, and a flat list of PreparedRules normalized from the
// Grid's declarative Rules and clues.
package prepare

import "github.com/nurikabe/gridsolve/internal/geom"

// PreparedSquare is a compact handle for one existing cell: an integer
// index plus pre-resolved optional neighbor indices. Non-existing cells
// never get a PreparedSquare and never appear as a neighbor.
type PreparedSquare struct {
	Index int
	At    geom.Coordinate

	Left, Right, Above, Below *int
}

// Neighbor returns the neighbor index in direction d, if any.
func (s PreparedSquare) Neighbor(d geom.Direction) *int {
	switch d {
	case geom.Up:
		return s.Above
	case geom.Down:
		return s.Below
	case geom.Left:
		return s.Left
	case geom.Right:
		return s.Right
	default:
		return nil
	}
}

// PreparedGrid is the immutable, indexed form of a Grid: size, the
// coordinate-to-index map, the dense square vector, and the normalized
// rule list. Once returned by Prepare it is never mutated.
type PreparedGrid struct {
	Size     geom.Size
	Index    map[geom.Coordinate]int
	Squares  []PreparedSquare
	Rules    []PreparedRule
	OffByOne bool
}

// NumSquares is the dense cell count N; valid indices are [0,N).
func (g *PreparedGrid) NumSquares() int {
	return len(g.Squares)
}
