// Package encode builds the SMT constraint set from a PreparedGrid: one
// set of logical variables per existing cell (color, region identity,
// region size, per-direction visibility), the structural constraints that
// make region-leader equality mean "same connected region," and one
// constraint group per PreparedRule.
package encode

import (
	"fmt"

	"github.com/nurikabe/gridsolve/internal/solve"
)

// SquareVars holds every symbolic variable (and the couple of derived
// expressions) associated with one existing cell.
type SquareVars struct {
	Index int
	ID    solve.IntExpr

	Color        solve.BoolExpr
	RegionLeader solve.IntExpr
	RegionRank   solve.IntExpr
	RegionSize   solve.IntExpr
	IsLeader     solve.BoolExpr // derived: RegionLeader == ID, not a fresh variable

	LeftVisible   solve.IntExpr
	RightVisible  solve.IntExpr
	TopVisible    solve.IntExpr
	BottomVisible solve.IntExpr
	VisibleTotal  solve.IntExpr // derived: sum of the four directional visibilities, plus one
}

// AuxVars holds the two region-pinning integers used by ConnectAll.
type AuxVars struct {
	DarkLeader  solve.IntExpr
	LightLeader solve.IntExpr
}

func newSquareVars(ctx *solve.Context, index int) SquareVars {
	id := ctx.Int(int64(index))
	regionLeader := ctx.IntVar(fmt.Sprintf("region_leader_%d", index))

	sv := SquareVars{
		Index:        index,
		ID:           id,
		Color:        ctx.BoolVar(fmt.Sprintf("color_%d", index)),
		RegionLeader: regionLeader,
		RegionRank:   ctx.IntVar(fmt.Sprintf("region_rank_%d", index)),
		RegionSize:   ctx.IntVar(fmt.Sprintf("region_size_%d", index)),
		IsLeader:     regionLeader.Eq(id),

		LeftVisible:   ctx.IntVar(fmt.Sprintf("left_visible_%d", index)),
		RightVisible:  ctx.IntVar(fmt.Sprintf("right_visible_%d", index)),
		TopVisible:    ctx.IntVar(fmt.Sprintf("top_visible_%d", index)),
		BottomVisible: ctx.IntVar(fmt.Sprintf("bottom_visible_%d", index)),
	}
	sv.VisibleTotal = solve.Add(ctx, sv.LeftVisible, sv.RightVisible, sv.TopVisible, sv.BottomVisible, ctx.Int(1))
	return sv
}

func newAuxVars(ctx *solve.Context) AuxVars {
	return AuxVars{
		DarkLeader:  ctx.IntVar("dark_leader"),
		LightLeader: ctx.IntVar("light_leader"),
	}
}
