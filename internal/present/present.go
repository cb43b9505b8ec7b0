// Package present renders a solved board from its PreparedGrid,
// ConstraintSet, and solver Model: one of five column kinds, each with a
// fixed width, with missing cells rendered as blank columns.
package present

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/nurikabe/gridsolve/internal/encode"
	"github.com/nurikabe/gridsolve/internal/geom"
	"github.com/nurikabe/gridsolve/internal/prepare"
	"github.com/nurikabe/gridsolve/internal/solve"
)

// Kind selects which per-cell attribute to render.
type Kind int

const (
	KindColor Kind = iota
	KindRegionSize
	KindRegionLeader
	KindRegionRank
	KindVisibleTotal
)

// ParseKind maps a CLI-facing name to a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "color":
		return KindColor, nil
	case "region-size":
		return KindRegionSize, nil
	case "region-leader":
		return KindRegionLeader, nil
	case "region-rank":
		return KindRegionRank, nil
	case "visible-total":
		return KindVisibleTotal, nil
	default:
		return 0, fmt.Errorf("present: unknown kind %q", name)
	}
}

// ColumnWidth returns the fixed column width for k.
func (k Kind) ColumnWidth() int {
	switch k {
	case KindColor:
		return 2
	case KindRegionSize:
		return 3
	case KindRegionLeader:
		return 4
	case KindRegionRank:
		return 3
	case KindVisibleTotal:
		return 3
	default:
		panic("present: invalid Kind")
	}
}

// PrintSolvedGrid writes pg rendered as kind columns to w, using cs and
// model to resolve the value at each existing cell. Missing cells print as
// spaces of the column width.
func PrintSolvedGrid(w io.Writer, pg *prepare.PreparedGrid, cs *encode.ConstraintSet, model *solve.Model, kind Kind) {
	width := kind.ColumnWidth()
	for i := 0; i < pg.Size.Rows; i++ {
		for j := 0; j < pg.Size.Cols; j++ {
			idx, ok := pg.Index[geom.Coordinate{I: i, J: j}]
			if !ok {
				fmt.Fprint(w, pad("", width))
				continue
			}
			fmt.Fprint(w, pad(cellText(cs.Squares[idx], model, kind), width))
		}
		fmt.Fprintln(w)
	}
}

func cellText(sv encode.SquareVars, model *solve.Model, kind Kind) string {
	switch kind {
	case KindColor:
		if model.EvalBool(sv.Color) {
			return color.HiWhiteString(string(geom.Light.Glyph()))
		}
		return color.New(color.FgHiBlack).Sprint(string(geom.Dark.Glyph()))
	case KindRegionSize:
		return strconv.FormatInt(model.EvalInt(sv.RegionSize), 10)
	case KindRegionLeader:
		return strconv.FormatInt(model.EvalInt(sv.RegionLeader), 10)
	case KindRegionRank:
		return strconv.FormatInt(model.EvalInt(sv.RegionRank), 10)
	case KindVisibleTotal:
		return strconv.FormatInt(model.EvalInt(sv.VisibleTotal), 10)
	default:
		panic("present: invalid Kind")
	}
}

func pad(s string, width int) string {
	visible := len([]rune(stripANSI(s)))
	if visible >= width {
		return s
	}
	out := s
	for i := visible; i < width; i++ {
		out += " "
	}
	return out
}

// stripANSI strips the color escape codes fatih/color adds, so padding is
// computed against the text actually rendered to a terminal rather than
// the longer raw string.
func stripANSI(s string) string {
	out := make([]rune, 0, len(s))
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
