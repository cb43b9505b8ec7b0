package encode

import (
	"github.com/nurikabe/gridsolve/internal/geom"
	"github.com/nurikabe/gridsolve/internal/prepare"
	"github.com/nurikabe/gridsolve/internal/puzzleerr"
	"github.com/nurikabe/gridsolve/internal/solve"
)

// colorToBool is the color-encoding helper from the rule-constraint
// table: v when c is Light, not(v) when c is Dark.
func colorToBool(c geom.Color, v solve.BoolExpr) solve.BoolExpr {
	if c == geom.Light {
		return v
	}
	return v.Not()
}

func (cs *ConstraintSet) addRuleConstraint(ctx *solve.Context, pg *prepare.PreparedGrid, rule prepare.PreparedRule) error {
	switch r := rule.(type) {
	case prepare.SquareIsColor:
		sv := cs.Squares[r.Index]
		cs.Rule = append(cs.Rule, colorToBool(r.Color, sv.Color))

	case prepare.SquaresAreSameColor:
		a, b := cs.Squares[r.A], cs.Squares[r.B]
		cs.Rule = append(cs.Rule, a.Color.Eq(b.Color))

	case prepare.BanPatternRule:
		cs.addBanPattern(ctx, pg, r)

	case prepare.ConnectAllRule:
		leader := cs.Aux.LightLeader
		if r.Color == geom.Dark {
			leader = cs.Aux.DarkLeader
		}
		for _, sv := range cs.Squares {
			cs.Rule = append(cs.Rule, colorToBool(r.Color, sv.Color).Implies(sv.RegionLeader.Eq(leader)))
		}

	case prepare.RegionFixedSizeRule:
		size := ctx.Int(int64(r.Size))
		for _, sv := range cs.Squares {
			cs.Rule = append(cs.Rule, colorToBool(r.Color, sv.Color).Implies(sv.RegionSize.Eq(size)))
		}

	case prepare.ExactlyOneNumberPerRegionRule:
		var leaders []solve.IntExpr
		for _, idx := range r.Indices {
			leaders = append(leaders, cs.Squares[idx].RegionLeader)
		}
		cs.Rule = append(cs.Rule, solve.Distinct(ctx, leaders...))
		for _, sv := range cs.Squares {
			var orTerms []solve.BoolExpr
			for _, idx := range r.Indices {
				orTerms = append(orTerms, sv.RegionLeader.Eq(cs.Squares[idx].RegionLeader))
			}
			cs.Rule = append(cs.Rule, colorToBool(r.Color, sv.Color).Implies(solve.Or(ctx, orTerms...)))
		}

	case prepare.RegionAreaEqualsNumberRule:
		cs.Rule = append(cs.Rule, cs.Squares[r.Index].RegionSize.Eq(ctx.Int(int64(r.N))))

	case prepare.RegionAreaEqualsEitherRule:
		sv := cs.Squares[r.Index]
		cs.Rule = append(cs.Rule, solve.Or(ctx,
			sv.RegionSize.Eq(ctx.Int(int64(r.A))),
			sv.RegionSize.Eq(ctx.Int(int64(r.B))),
		))

	case prepare.VisibleCellCountRule:
		cs.Rule = append(cs.Rule, cs.Squares[r.Index].VisibleTotal.Eq(ctx.Int(int64(r.N))))

	case prepare.VisibleCellCountEitherRule:
		sv := cs.Squares[r.Index]
		cs.Rule = append(cs.Rule, solve.Or(ctx,
			sv.VisibleTotal.Eq(ctx.Int(int64(r.A))),
			sv.VisibleTotal.Eq(ctx.Int(int64(r.B))),
		))

	case prepare.ColorCountInSetRule:
		zero, one := ctx.Int(0), ctx.Int(1)
		var components []solve.IntExpr
		for _, idx := range r.Indices {
			components = append(components, solve.IteInt(colorToBool(r.Color, cs.Squares[idx].Color), one, zero))
		}
		if len(components) == 0 {
			components = append(components, zero)
		}
		cs.Rule = append(cs.Rule, solve.Add(ctx, components...).Eq(ctx.Int(int64(r.N))))

	default:
		return &puzzleerr.EncodingFailureError{Reason: "unknown PreparedRule type in addRuleConstraint"}
	}
	return nil
}

// addBanPattern asserts, for every translation of r.Pattern whose
// footprint fits entirely within existing cells, that the conjunction of
// required colors does not hold. Translations with a missing coordinate
// are skipped, not forbidden.
func (cs *ConstraintSet) addBanPattern(ctx *solve.Context, pg *prepare.PreparedGrid, r prepare.BanPatternRule) {
	for i := 0; i < pg.Size.Rows; i++ {
		for j := 0; j < pg.Size.Cols; j++ {
			offset := r.Pattern.Offset(geom.Coordinate{I: i, J: j})

			var terms []solve.BoolExpr
			fits := true
			for _, cell := range offset.Cells {
				idx, ok := pg.Index[cell.At]
				if !ok {
					fits = false
					break
				}
				terms = append(terms, colorToBool(cell.Color, cs.Squares[idx].Color))
			}
			if !fits {
				continue
			}
			cs.Rule = append(cs.Rule, solve.And(ctx, terms...).Not())
		}
	}
}
