// Command nurikabe-solve loads one of the canned example puzzles, solves
// it with the SMT-backed driver, and renders the result.
package main

import (
	"log"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/nurikabe/gridsolve/internal/driver"
	"github.com/nurikabe/gridsolve/internal/examples"
	"github.com/nurikabe/gridsolve/internal/present"
	"github.com/nurikabe/gridsolve/pkg/config"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	build, ok := examples.Named[cfg.Puzzle]
	if !ok {
		log.Fatalf("unknown puzzle %q; known puzzles: %s", cfg.Puzzle, knownPuzzles())
	}
	kind, err := present.ParseKind(cfg.Kind)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if isTerminal(os.Stdout) {
		color.HiWhite("Solving %q with timeout %s...", cfg.Puzzle, cfg.Timeout)
	}

	g := build()
	result, pg, cs, model, closeCtx, err := driver.SolveForPresentation(g, cfg.Timeout)
	if err != nil {
		log.Fatalf("solve error: %v", err)
	}

	switch result.Kind {
	case driver.ResultUnsolvable:
		color.HiRed("Unsolvable")
	case driver.ResultUnknown:
		color.HiYellow("Unknown (solver timed out)")
	case driver.ResultSolved:
		defer closeCtx()
		present.PrintSolvedGrid(os.Stdout, pg, cs, model, kind)
	}
}

func knownPuzzles() string {
	names := make([]string, 0, len(examples.Named))
	for name := range examples.Named {
		names = append(names, name)
	}
	sort.Strings(names)
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
