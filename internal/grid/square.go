// Package grid is the authoring-time mutable puzzle description: the
// rectangular bounding box of Squares, their clues, and the declarative
// Rules that apply to the board. It is the only part of the system meant to
// be driven directly by a front end (see Grid's methods).
package grid

import "github.com/nurikabe/gridsolve/internal/geom"

// DartClue pairs a sweep direction with the count of opposite-colored cells
// the dart must find along that ray.
type DartClue struct {
	Direction geom.Direction
	Count     int
}

// Square is the authoring view of one cell in the rectangular bounding box.
// A Square with Exists == false is a hole: the board need not be
// rectangular, and no adjacency is ever recorded across a hole.
type Square struct {
	Exists bool

	MergeWithRight  bool
	MergeWithBottom bool

	Color        *geom.Color
	AreaNumber   *int
	VisibleCount *int
	DartNumber   *DartClue
}
