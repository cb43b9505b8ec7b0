//go:build z3integration

// These tests drive the real go-z3 cgo binding and require a local libz3
// install; they are excluded from the default build (see the build tag
// above) the same way a test suite needing an external database or
// service would be, and run explicitly with `-tags z3integration`.
package driver_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nurikabe/gridsolve/internal/driver"
	"github.com/nurikabe/gridsolve/internal/examples"
)

const timeout = 5 * time.Second

func TestAllLightConnectSolves(t *testing.T) {
	result, err := driver.Solve(examples.AllLightConnect(), timeout)
	require.NoError(t, err)
	require.Equal(t, driver.ResultSolved, result.Kind)
}

func TestCheckerboardBansBothSolidColorings(t *testing.T) {
	result, err := driver.Solve(examples.Checkerboard(), timeout)
	require.NoError(t, err)
	require.Equal(t, driver.ResultSolved, result.Kind)

	var sawLight, sawDark bool
	size := result.Grid.Size()
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			if *result.Grid.Square(r, c).Color {
				sawLight = true
			} else {
				sawDark = true
			}
		}
	}
	require.True(t, sawLight, "the all-dark 2x2 is banned, so at least one cell must be Light")
	require.True(t, sawDark, "the all-light 2x2 is banned, so at least one cell must be Dark")
}

func TestForcingExtendedKeepsCluedCornerLight(t *testing.T) {
	result, err := driver.Solve(examples.ForcingExtended(), timeout)
	require.NoError(t, err)
	require.Equal(t, driver.ResultSolved, result.Kind)
	require.True(t, bool(*result.Grid.Square(0, 0).Color), "the clued corner must stay Light")
}

func TestAreaClueProducesExactRegionSize(t *testing.T) {
	result, err := driver.Solve(examples.Area(), timeout)
	require.NoError(t, err)
	require.Equal(t, driver.ResultSolved, result.Kind)

	// The clued cell's region is the Light run starting at column 0.
	lightRun := 0
	for c := 0; c < result.Grid.Size().Cols; c++ {
		if !*result.Grid.Square(0, c).Color {
			break
		}
		lightRun++
	}
	require.Equal(t, 3, lightRun, "the area_number=3 clue must produce a Light region of exactly 3 cells")
}

func TestContradictoryCluesAreUnsolvable(t *testing.T) {
	g := examples.Checkerboard()
	// Clue every cell Dark: this contradicts the all-dark BanPattern
	// outright.
	size := g.Size()
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			g.ColorDark(r, c)
		}
	}

	result, err := driver.Solve(g, timeout)
	require.NoError(t, err)
	require.Equal(t, driver.ResultUnsolvable, result.Kind)
}
