// Package driver is the Solver Driver: it configures the SMT backend with
// a per-check timeout, asserts every constraint for a Grid, checks, and
// extracts a colored Grid clone from the model on success.
package driver

import (
	"time"

	"github.com/nurikabe/gridsolve/internal/encode"
	"github.com/nurikabe/gridsolve/internal/grid"
	"github.com/nurikabe/gridsolve/internal/prepare"
	"github.com/nurikabe/gridsolve/internal/solve"
)

// ResultKind is the three-valued outcome of a solve attempt.
type ResultKind int

const (
	ResultUnsolvable ResultKind = iota
	ResultSolved
	ResultUnknown
)

// GridSolveResult is the driver's return value. Grid is only populated
// when Kind == ResultSolved.
type GridSolveResult struct {
	Kind ResultKind
	Grid *grid.Grid
}

// Solve prepares g, builds its constraint set against a fresh solver
// context with the given timeout, and checks. On Solved, it returns a
// clone of g with every existing cell colored from the model. The solver
// context is closed before Solve returns.
func Solve(g *grid.Grid, timeout time.Duration) (GridSolveResult, error) {
	result, _, _, _, closeCtx, err := solveKeepingContext(g, timeout)
	if closeCtx != nil {
		defer closeCtx()
	}
	return result, err
}

// SolveForPresentation behaves like Solve but keeps the solver context
// open on a Solved outcome, returning the PreparedGrid, ConstraintSet, and
// Model needed to render every present.Kind. The caller must call the
// returned close function exactly once, after it is done rendering.
func SolveForPresentation(g *grid.Grid, timeout time.Duration) (GridSolveResult, *prepare.PreparedGrid, *encode.ConstraintSet, *solve.Model, func(), error) {
	return solveKeepingContext(g, timeout)
}

func solveKeepingContext(g *grid.Grid, timeout time.Duration) (GridSolveResult, *prepare.PreparedGrid, *encode.ConstraintSet, *solve.Model, func(), error) {
	pg, err := prepare.Prepare(g)
	if err != nil {
		return GridSolveResult{}, nil, nil, nil, nil, err
	}

	ctx := solve.NewContext(timeout)

	cs, err := encode.Build(ctx, pg)
	if err != nil {
		ctx.Close()
		return GridSolveResult{}, nil, nil, nil, nil, err
	}
	cs.Assert(ctx)

	outcome, model := ctx.Check()
	switch outcome {
	case solve.Unsolvable:
		ctx.Close()
		return GridSolveResult{Kind: ResultUnsolvable}, nil, nil, nil, nil, nil
	case solve.Unknown:
		ctx.Close()
		return GridSolveResult{Kind: ResultUnknown}, nil, nil, nil, nil, nil
	default:
		colored := g.Clone()
		for _, sq := range pg.Squares {
			if model.EvalBool(cs.Squares[sq.Index].Color) {
				colored.ColorLight(sq.At.I, sq.At.J)
			} else {
				colored.ColorDark(sq.At.I, sq.At.J)
			}
		}
		result := GridSolveResult{Kind: ResultSolved, Grid: colored}
		return result, pg, cs, model, ctx.Close, nil
	}
}
