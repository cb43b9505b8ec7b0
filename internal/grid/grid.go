package grid

import "github.com/nurikabe/gridsolve/internal/geom"

// Grid is the mutable puzzle description built by a front end. It is built
// up with the authoring methods below; once complete it is handed to
// internal/prepare, which produces an immutable PreparedGrid.
type Grid struct {
	size    geom.Size
	squares [][]Square
	rules   []Rule
}

// NewGrid builds a fully-existing rows x cols rectangular board with no
// clues and no rules.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{size: geom.Size{Rows: rows, Cols: cols}}
	g.squares = make([][]Square, rows)
	for r := range g.squares {
		g.squares[r] = make([]Square, cols)
		for c := range g.squares[r] {
			g.squares[r][c] = Square{Exists: true}
		}
	}
	return g
}

// Size returns the grid's rectangular bounding box.
func (g *Grid) Size() geom.Size {
	return g.size
}

// Square returns the authoring-time square at (r,c). Panics if out of
// bounds: authoring errors are programmer errors, not puzzle-data errors.
func (g *Grid) Square(r, c int) Square {
	return g.squares[r][c]
}

// Rules returns the rule list in insertion order.
func (g *Grid) Rules() []Rule {
	return g.rules
}

func (g *Grid) RemoveSquare(r, c int) {
	g.squares[r][c] = Square{Exists: false}
}

func (g *Grid) ColorLight(r, c int) {
	g.SetColor(r, c, Light)
}

func (g *Grid) ColorDark(r, c int) {
	g.SetColor(r, c, Dark)
}

func (g *Grid) SetColor(r, c int, color geom.Color) {
	col := color
	g.squares[r][c].Color = &col
}

func (g *Grid) SetAreaNumber(r, c, n int) {
	g.squares[r][c].AreaNumber = &n
}

func (g *Grid) SetVisibleCount(r, c, n int) {
	g.squares[r][c].VisibleCount = &n
}

func (g *Grid) SetDartNumber(r, c int, direction geom.Direction, n int, color geom.Color) {
	g.squares[r][c].DartNumber = &DartClue{Direction: direction, Count: n}
	g.squares[r][c].Color = &color
}

func (g *Grid) JoinRight(r, c int) {
	g.squares[r][c].MergeWithRight = true
}

func (g *Grid) JoinBottom(r, c int) {
	g.squares[r][c].MergeWithBottom = true
}

func (g *Grid) AddRule(rule Rule) {
	g.rules = append(g.rules, rule)
}

// Clone returns a deep copy of g. The Deduction Loop clones the base Grid
// for every hypothesis job; no job is allowed to mutate a shared Grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{size: g.size, rules: append([]Rule(nil), g.rules...)}
	out.squares = make([][]Square, len(g.squares))
	for r, row := range g.squares {
		out.squares[r] = make([]Square, len(row))
		for c, sq := range row {
			cp := sq
			if sq.Color != nil {
				col := *sq.Color
				cp.Color = &col
			}
			if sq.AreaNumber != nil {
				n := *sq.AreaNumber
				cp.AreaNumber = &n
			}
			if sq.VisibleCount != nil {
				n := *sq.VisibleCount
				cp.VisibleCount = &n
			}
			if sq.DartNumber != nil {
				dc := *sq.DartNumber
				cp.DartNumber = &dc
			}
			out.squares[r][c] = cp
		}
	}
	return out
}
