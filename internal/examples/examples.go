// Package examples builds the canned Grids used by the CLI front ends and
// mirrored by the end-to-end test fixtures in internal/encode and
// internal/deduce: small, hand-built puzzles exercising one rule family
// each.
package examples

import (
	"github.com/nurikabe/gridsolve/internal/geom"
	"github.com/nurikabe/gridsolve/internal/grid"
	"github.com/nurikabe/gridsolve/internal/pattern"
)

// AllLightConnect builds the 2x2 "all light" scenario: ConnectAll(Light)
// with no bans or clues, so whichever cells are Light form one region.
// No cell is forced to a color; all-Light (one region of size 4) is one
// of the valid solutions, not the only one.
func AllLightConnect() *grid.Grid {
	g := grid.NewGrid(2, 2)
	g.AddRule(grid.ConnectAll{Color: grid.Light})
	return g
}

// Checkerboard builds the 2x2 "ban both solid colorings" scenario: banning
// the all-dark and all-light 2x2 block forces at least one cell of each
// color to appear.
func Checkerboard() *grid.Grid {
	g := grid.NewGrid(2, 2)
	allDark := pattern.New(
		pattern.Cell{At: geom.Coordinate{I: 0, J: 0}, Color: geom.Dark},
		pattern.Cell{At: geom.Coordinate{I: 0, J: 1}, Color: geom.Dark},
		pattern.Cell{At: geom.Coordinate{I: 1, J: 0}, Color: geom.Dark},
		pattern.Cell{At: geom.Coordinate{I: 1, J: 1}, Color: geom.Dark},
	)
	allLight := pattern.New(
		pattern.Cell{At: geom.Coordinate{I: 0, J: 0}, Color: geom.Light},
		pattern.Cell{At: geom.Coordinate{I: 0, J: 1}, Color: geom.Light},
		pattern.Cell{At: geom.Coordinate{I: 1, J: 0}, Color: geom.Light},
		pattern.Cell{At: geom.Coordinate{I: 1, J: 1}, Color: geom.Light},
	)
	g.AddRule(grid.BanPattern{Pattern: allDark})
	g.AddRule(grid.BanPattern{Pattern: allLight})
	return g
}

// Forcing builds the 3x3 "ConnectAll(Dark) with a Light center" scenario
// used as the Deduction Loop's baseline regression fixture. Adding a
// BanPattern(2x2 all Light) and a corner Light clue (see ForcingExtended)
// forces the far corner and its two edge neighbors to Dark.
func Forcing() *grid.Grid {
	g := grid.NewGrid(3, 3)
	g.AddRule(grid.ConnectAll{Color: grid.Dark})
	g.ColorLight(1, 1)
	return g
}

// ForcingExtended adds the corner clue and the 2x2-all-light ban to
// Forcing, which forces (2,2), (1,2) and (2,1) to Dark.
func ForcingExtended() *grid.Grid {
	g := Forcing()
	allLight := pattern.New(
		pattern.Cell{At: geom.Coordinate{I: 0, J: 0}, Color: geom.Light},
		pattern.Cell{At: geom.Coordinate{I: 0, J: 1}, Color: geom.Light},
		pattern.Cell{At: geom.Coordinate{I: 1, J: 0}, Color: geom.Light},
		pattern.Cell{At: geom.Coordinate{I: 1, J: 1}, Color: geom.Light},
	)
	g.AddRule(grid.BanPattern{Pattern: allLight})
	g.ColorLight(0, 0)
	return g
}

// Dart builds the 4x4 scenario with a Dark cell at (3,0) carrying a
// dart_number of (Right, 2): exactly two Light cells must lie in row 3,
// columns 1..3.
func Dart() *grid.Grid {
	g := grid.NewGrid(4, 4)
	g.SetDartNumber(3, 0, geom.Right, 2, grid.Dark)
	g.AddRule(grid.DartNumbers{})
	return g
}

// Area builds the 1x5 scenario with a Light clue and an area_number=3
// clue at column 0: every solution has columns 0..2 Light and column 3
// Dark; column 4 is not constrained.
func Area() *grid.Grid {
	g := grid.NewGrid(1, 5)
	g.ColorLight(0, 0)
	g.SetAreaNumber(0, 0, 3)
	g.AddRule(grid.RegionAreaEqualsNumber{})
	return g
}

// AreaOffByOne is Area with NumbersAreOffByOne added: every solution has a
// Light run length of 2 or 4.
func AreaOffByOne() *grid.Grid {
	g := Area()
	g.AddRule(grid.NumbersAreOffByOne{})
	return g
}

// Named is the registry the CLI front ends select from by name.
var Named = map[string]func() *grid.Grid{
	"all-light-connect": AllLightConnect,
	"checkerboard":      Checkerboard,
	"forcing":           Forcing,
	"forcing-extended":  ForcingExtended,
	"dart":              Dart,
	"area":              Area,
	"area-off-by-one":   AreaOffByOne,
}
