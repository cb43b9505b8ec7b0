package encode

import (
	"github.com/nurikabe/gridsolve/internal/geom"
	"github.com/nurikabe/gridsolve/internal/prepare"
	"github.com/nurikabe/gridsolve/internal/solve"
)

// ConstraintSet is the built, context-bound assertion set for one
// PreparedGrid. Basic and Rule carry the same assertion semantics; the
// split exists to support debugging and future incrementality.
type ConstraintSet struct {
	Squares []SquareVars
	Aux     AuxVars

	Basic []solve.BoolExpr
	Rule  []solve.BoolExpr
}

// Build constructs every logical variable and every structural and
// rule-derived constraint for pg, bound to ctx. The returned ConstraintSet
// is only valid as long as ctx is open.
func Build(ctx *solve.Context, pg *prepare.PreparedGrid) (*ConstraintSet, error) {
	cs := &ConstraintSet{
		Squares: make([]SquareVars, pg.NumSquares()),
		Aux:     newAuxVars(ctx),
	}
	for _, sq := range pg.Squares {
		cs.Squares[sq.Index] = newSquareVars(ctx, sq.Index)
	}

	cs.addBasicConstraints(ctx, pg)

	for _, rule := range pg.Rules {
		if err := cs.addRuleConstraint(ctx, pg, rule); err != nil {
			return nil, err
		}
	}

	return cs, nil
}

// Assert pushes every basic and rule constraint onto ctx's solver.
func (cs *ConstraintSet) Assert(ctx *solve.Context) {
	for _, c := range cs.Basic {
		ctx.Assert(c)
	}
	for _, c := range cs.Rule {
		ctx.Assert(c)
	}
}

func (cs *ConstraintSet) addBasicConstraints(ctx *solve.Context, pg *prepare.PreparedGrid) {
	zero := ctx.Int(0)
	one := ctx.Int(1)

	for _, sq := range pg.Squares {
		sv := cs.Squares[sq.Index]

		// 1. Rank is at least 0.
		cs.Basic = append(cs.Basic, sv.RegionRank.Ge(zero))
		// 2. is_leader <=> rank == 0.
		cs.Basic = append(cs.Basic, sv.IsLeader.Eq(sv.RegionRank.Eq(zero)))
		// 3. Leaders are least-indexed: id >= region_leader.
		cs.Basic = append(cs.Basic, sv.ID.Ge(sv.RegionLeader))

		// 4 & 5. Region equivalence and rank gradient, emitted once per
		// undirected pair via each cell's right and below neighbor.
		if sq.Right != nil {
			cs.addPairConstraints(ctx, sv, cs.Squares[*sq.Right])
		}
		if sq.Below != nil {
			cs.addPairConstraints(ctx, sv, cs.Squares[*sq.Below])
		}

		// 6. Rank grounding: leader, or a same-color neighbor one rank closer.
		rankCases := []solve.BoolExpr{sv.RegionRank.Eq(zero)}
		for _, d := range geom.Directions {
			nb := sq.Neighbor(d)
			if nb == nil {
				continue
			}
			nv := cs.Squares[*nb]
			rankCases = append(rankCases, solve.And(ctx,
				sv.Color.Eq(nv.Color),
				sv.RegionRank.Eq(solve.Add(ctx, nv.RegionRank, one)),
			))
		}
		cs.Basic = append(cs.Basic, solve.Or(ctx, rankCases...))

		// 7. Region size: count of cells sharing this cell's leader.
		var sizeComponents []solve.IntExpr
		for _, other := range pg.Squares {
			ov := cs.Squares[other.Index]
			sizeComponents = append(sizeComponents, solve.IteInt(sv.RegionLeader.Eq(ov.RegionLeader), one, zero))
		}
		cs.Basic = append(cs.Basic, sv.RegionSize.Eq(solve.Add(ctx, sizeComponents...)))

		// 8. Visibility recurrence, one direction at a time: if the
		// neighbor in d exists, visible_d(c) = ite(same color, visible_d(nd)+1, 0);
		// otherwise visible_d(c) = 0.
		if sq.Above != nil {
			nv := cs.Squares[*sq.Above]
			cs.Basic = append(cs.Basic, solve.IteInt(sv.Color.Eq(nv.Color),
				solve.Add(ctx, nv.TopVisible, one), zero).Eq(sv.TopVisible))
		} else {
			cs.Basic = append(cs.Basic, sv.TopVisible.Eq(zero))
		}
		if sq.Below != nil {
			nv := cs.Squares[*sq.Below]
			cs.Basic = append(cs.Basic, solve.IteInt(sv.Color.Eq(nv.Color),
				solve.Add(ctx, nv.BottomVisible, one), zero).Eq(sv.BottomVisible))
		} else {
			cs.Basic = append(cs.Basic, sv.BottomVisible.Eq(zero))
		}
		if sq.Left != nil {
			nv := cs.Squares[*sq.Left]
			cs.Basic = append(cs.Basic, solve.IteInt(sv.Color.Eq(nv.Color),
				solve.Add(ctx, nv.LeftVisible, one), zero).Eq(sv.LeftVisible))
		} else {
			cs.Basic = append(cs.Basic, sv.LeftVisible.Eq(zero))
		}
		if sq.Right != nil {
			nv := cs.Squares[*sq.Right]
			cs.Basic = append(cs.Basic, solve.IteInt(sv.Color.Eq(nv.Color),
				solve.Add(ctx, nv.RightVisible, one), zero).Eq(sv.RightVisible))
		} else {
			cs.Basic = append(cs.Basic, sv.RightVisible.Eq(zero))
		}
	}
}

func (cs *ConstraintSet) addPairConstraints(ctx *solve.Context, a, b SquareVars) {
	colorSame := a.Color.Eq(b.Color)
	// Region equivalence: same color iff same region leader.
	cs.Basic = append(cs.Basic, colorSame.Eq(a.RegionLeader.Eq(b.RegionLeader)))
	// Rank gradient: if same color, ranks differ by exactly one.
	one := ctx.Int(1)
	cs.Basic = append(cs.Basic, colorSame.Implies(solve.Or(ctx,
		a.RegionRank.Eq(solve.Add(ctx, b.RegionRank, one)),
		b.RegionRank.Eq(solve.Add(ctx, a.RegionRank, one)),
	)))
}
