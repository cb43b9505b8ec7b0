// Command nurikabe-deduce runs the Deduction Loop against one of the
// canned example puzzles, prints colorized progress (pending count and
// timeout) each round, and then prints the resulting clue grid.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/nurikabe/gridsolve/internal/deduce"
	"github.com/nurikabe/gridsolve/internal/examples"
	"github.com/nurikabe/gridsolve/internal/grid"
	"github.com/nurikabe/gridsolve/pkg/config"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	build, ok := examples.Named[cfg.Puzzle]
	if !ok {
		log.Fatalf("unknown puzzle %q", cfg.Puzzle)
	}

	opts := deduce.DefaultOptions()
	opts.InitialTimeout = cfg.Timeout
	if cfg.Workers > 0 {
		opts.Workers = cfg.Workers
	}
	opts.OnRound = func(round, pending int, timeout time.Duration) {
		color.HiYellow("Deduction round %d: %d pending cell(s), timeout %s", round, pending, timeout)
	}

	g := build()
	result, err := deduce.Run(g, opts)
	if err != nil {
		log.Fatalf("deduction error: %v", err)
	}

	color.HiWhite("\nResult after deduction:")
	printClueGrid(result)
}

// printClueGrid renders every cell's color clue after deduction, without
// invoking the solver again: the clue's glyph for cells clued from the
// start or forced by the loop, a dot for cells the loop could not
// determine, and a space for holes.
func printClueGrid(g *grid.Grid) {
	size := g.Size()
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			sq := g.Square(r, c)
			switch {
			case !sq.Exists:
				fmt.Print(" ")
			case sq.Color != nil:
				fmt.Printf("%c", sq.Color.Glyph())
			default:
				fmt.Print(".")
			}
		}
		fmt.Println()
	}
}
