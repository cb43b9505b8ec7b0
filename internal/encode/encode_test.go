//go:build z3integration

// Exercises the real constraint build against a live z3 context; run with
// `-tags z3integration` against a machine with libz3 installed.
package encode_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nurikabe/gridsolve/internal/encode"
	"github.com/nurikabe/gridsolve/internal/examples"
	"github.com/nurikabe/gridsolve/internal/prepare"
	"github.com/nurikabe/gridsolve/internal/solve"
)

func TestBuildSatisfiesStructuralInvariants(t *testing.T) {
	g := examples.ForcingExtended()
	pg, err := prepare.Prepare(g)
	require.NoError(t, err)

	ctx := solve.NewContext(5 * time.Second)
	defer ctx.Close()

	cs, err := encode.Build(ctx, pg)
	require.NoError(t, err)
	cs.Assert(ctx)

	outcome, model := ctx.Check()
	require.Equal(t, solve.Solved, outcome)

	for _, sq := range pg.Squares {
		sv := cs.Squares[sq.Index]
		rank := model.EvalInt(sv.RegionRank)
		require.GreaterOrEqual(t, rank, int64(0), "invariant: region rank is never negative")

		isLeader := model.EvalBool(sv.IsLeader)
		require.Equal(t, rank == 0, isLeader, "invariant: is_leader iff rank == 0")

		leader := model.EvalInt(sv.RegionLeader)
		id := model.EvalInt(sv.ID)
		require.LessOrEqual(t, leader, id, "invariant: a region's leader has the smallest index in it")
	}
}

func TestBanPatternForbidsEveryOrientation(t *testing.T) {
	g := examples.Checkerboard()
	pg, err := prepare.Prepare(g)
	require.NoError(t, err)

	var banCount int
	for _, r := range pg.Rules {
		if _, ok := r.(prepare.BanPatternRule); ok {
			banCount++
		}
	}
	// Checkerboard bans two fully symmetric 2x2 monochrome patterns, each
	// with an orbit of size 1 under the dihedral group.
	require.Equal(t, 2, banCount)
}
