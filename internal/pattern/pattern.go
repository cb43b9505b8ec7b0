// Package pattern implements the shaped 2D patterns used by BanPattern
// rules, closed under the dihedral group D4 (the four rotations and their
// reflections) so that a puzzle author only has to describe one orientation
// of a forbidden shape.
package pattern

import (
	"sort"

	"github.com/nurikabe/gridsolve/internal/geom"
)

// Cell pairs a relative coordinate with the color a BanPattern match
// requires at that coordinate.
type Cell struct {
	At    geom.Coordinate
	Color geom.Color
}

// Pattern is a set of (coordinate, required color) pairs. The canonical
// form (see Canonicalize) sorts by coordinate and translates the minimum
// row/column to zero, so that two patterns describing the same shape in
// different positions compare equal.
type Pattern struct {
	Cells []Cell
}

// New builds a Pattern from the given cells, without canonicalizing.
func New(cells ...Cell) Pattern {
	out := make([]Cell, len(cells))
	copy(out, cells)
	return Pattern{Cells: out}
}

// Canonicalize sorts the pattern's cells by coordinate and translates the
// pattern so its minimum row and column are both zero.
func (p Pattern) Canonicalize() Pattern {
	if len(p.Cells) == 0 {
		return Pattern{}
	}
	minI, minJ := p.Cells[0].At.I, p.Cells[0].At.J
	for _, c := range p.Cells[1:] {
		if c.At.I < minI {
			minI = c.At.I
		}
		if c.At.J < minJ {
			minJ = c.At.J
		}
	}
	out := make([]Cell, len(p.Cells))
	for i, c := range p.Cells {
		out[i] = Cell{
			At:    geom.Coordinate{I: c.At.I - minI, J: c.At.J - minJ},
			Color: c.Color,
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].At != out[j].At {
			return out[i].At.Less(out[j].At)
		}
		return !bool(out[i].Color) && bool(out[j].Color) // Dark before Light, arbitrary but stable
	})
	return Pattern{Cells: out}
}

// Equal compares two patterns cell-for-cell after canonicalizing both.
func (p Pattern) Equal(o Pattern) bool {
	a, b := p.Canonicalize(), o.Canonicalize()
	if len(a.Cells) != len(b.Cells) {
		return false
	}
	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			return false
		}
	}
	return true
}

// Rotate90 rotates the pattern 90 degrees counterclockwise (rows grow
// downward): (i,j) -> (-j, i).
func (p Pattern) Rotate90() Pattern {
	out := make([]Cell, len(p.Cells))
	for i, c := range p.Cells {
		out[i] = Cell{At: geom.Coordinate{I: -c.At.J, J: c.At.I}, Color: c.Color}
	}
	return Pattern{Cells: out}.Canonicalize()
}

// ReflectHorizontal flips the pattern across the horizontal axis, swapping
// top and bottom: (i,j) -> (-i, j).
func (p Pattern) ReflectHorizontal() Pattern {
	out := make([]Cell, len(p.Cells))
	for i, c := range p.Cells {
		out[i] = Cell{At: geom.Coordinate{I: -c.At.I, J: c.At.J}, Color: c.Color}
	}
	return Pattern{Cells: out}.Canonicalize()
}

// AllRotationsAndReflections returns the closure of p under the dihedral
// group D4: at most 8 distinct patterns (fewer if p has internal symmetry),
// deduplicated by canonical-form equality.
func (p Pattern) AllRotationsAndReflections() []Pattern {
	var out []Pattern
	add := func(cand Pattern) {
		cand = cand.Canonicalize()
		for _, existing := range out {
			if existing.Equal(cand) {
				return
			}
		}
		out = append(out, cand)
	}

	cur := p.Canonicalize()
	for i := 0; i < 4; i++ {
		add(cur)
		add(cur.ReflectHorizontal())
		cur = cur.Rotate90()
	}
	return out
}

// Offset translates the pattern by `by` without canonicalizing, so the
// encoder can place a copy of the pattern at every grid position.
func (p Pattern) Offset(by geom.Coordinate) Pattern {
	out := make([]Cell, len(p.Cells))
	for i, c := range p.Cells {
		out[i] = Cell{At: geom.Coordinate{I: c.At.I + by.I, J: c.At.J + by.J}, Color: c.Color}
	}
	return Pattern{Cells: out}
}
