//go:build z3integration

// Like internal/driver's tests, these exercise the real SMT backend
// through repeated Deduction Loop rounds and require a local libz3
// install; run with `-tags z3integration`.
package deduce_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nurikabe/gridsolve/internal/deduce"
	"github.com/nurikabe/gridsolve/internal/examples"
)

func TestForcingExtendedForcesFarCorner(t *testing.T) {
	opts := deduce.DefaultOptions()
	opts.InitialTimeout = 2 * time.Second

	result, err := deduce.Run(examples.ForcingExtended(), opts)
	require.NoError(t, err)

	// (0,0) and (1,1) are clued Light. The banned all-Light 2x2 block
	// leaves (2,2)=Light always UNSAT (it would split the remaining Dark
	// cells across the 2x2 bans with no way to satisfy ConnectAll(Dark)),
	// while (2,2)=Dark is SAT, so (2,2) is forced Dark (as are (1,2) and
	// (2,1), by the same argument).
	require.NotNil(t, result.Square(2, 2).Color)
	require.False(t, bool(*result.Square(2, 2).Color))
}

func TestRunDoesNotMutateBaseGrid(t *testing.T) {
	base := examples.ForcingExtended()
	require.Nil(t, base.Square(2, 2).Color, "precondition: (2,2) carries no clue in the fixture")

	opts := deduce.DefaultOptions()
	opts.InitialTimeout = 2 * time.Second
	_, err := deduce.Run(base, opts)
	require.NoError(t, err)

	require.Nil(t, base.Square(2, 2).Color, "Run must not mutate its base grid")
}

func TestOnRoundCallbackObservesShrinkingPendingSet(t *testing.T) {
	opts := deduce.DefaultOptions()
	opts.InitialTimeout = 2 * time.Second

	var pendingCounts []int
	opts.OnRound = func(round, pending int, timeout time.Duration) {
		pendingCounts = append(pendingCounts, pending)
	}

	_, err := deduce.Run(examples.ForcingExtended(), opts)
	require.NoError(t, err)
	require.NotEmpty(t, pendingCounts)
	require.Equal(t, 0, pendingCounts[len(pendingCounts)-1], "the loop must run until no pending cells remain")
}
