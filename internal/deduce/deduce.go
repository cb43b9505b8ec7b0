// Package deduce implements the parallel dual-assumption forcing loop: for
// every cell without a color clue, hypothesize each color independently
// and ask the Solver Driver whether a solution exists. A cell whose only
// solvable hypothesis is one color is forced to that color; a cell
// solvable under both is Unfillable and skipped in later rounds.
package deduce

import (
	"runtime"
	"time"

	"github.com/nurikabe/gridsolve/internal/geom"
	"github.com/nurikabe/gridsolve/internal/grid"
	"github.com/nurikabe/gridsolve/internal/puzzleerr"
	"github.com/nurikabe/gridsolve/internal/set"
)

// Options configures a deduction run.
type Options struct {
	// InitialTimeout is the per-job solver timeout for round 1; it
	// doubles after any round that forces no cell.
	InitialTimeout time.Duration
	// Workers bounds how many hypothesis jobs run concurrently. Zero
	// means runtime.GOMAXPROCS(0).
	Workers int
	// OnRound, if set, is called at the start of every round for
	// progress reporting (round number, pending cell count, timeout).
	OnRound func(round int, pending int, timeout time.Duration)
}

// DefaultOptions returns the loop structure's defaults: a one second
// initial timeout and one worker per available core.
func DefaultOptions() Options {
	return Options{InitialTimeout: time.Second, Workers: runtime.GOMAXPROCS(0)}
}

// Run executes the Deduction Loop against base and returns a new Grid with
// every forced cell's color set as a clue. base itself is never mutated.
func Run(base *grid.Grid, opts Options) (*grid.Grid, error) {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.InitialTimeout <= 0 {
		opts.InitialTimeout = time.Second
	}

	working := base.Clone()
	unfillable := set.NewSet[geom.Coordinate]()
	timeout := opts.InitialTimeout

	for round := 1; ; round++ {
		pending := pendingCells(working, unfillable)
		if opts.OnRound != nil {
			opts.OnRound(round, len(pending), timeout)
		}
		if len(pending) == 0 {
			return working, nil
		}

		jobs := make([]job, 0, len(pending)*2)
		for _, at := range pending {
			jobs = append(jobs, job{at: at, color: geom.Light}, job{at: at, color: geom.Dark})
		}

		results, err := runJobs(working, jobs, timeout, opts.Workers)
		if err != nil {
			return nil, err
		}
		if len(results) == 0 {
			// Defensive: the aggregate produced no entries.
			return working, nil
		}

		progressed := false
		for at, v := range aggregate(results) {
			switch v.state {
			case stateDefinitely:
				working.SetColor(at.I, at.J, v.color)
				progressed = true
			case stateUnfillable:
				unfillable.Add(at)
			case stateContradiction:
				return nil, &puzzleerr.MalformedPuzzleError{
					Reason: "cell " + at.String() + " has no solution under either hypothesized color",
				}
			case stateUnknown:
				// No progress from this cell this round.
			}
		}

		if !progressed {
			timeout *= 2
		}
	}
}

func pendingCells(g *grid.Grid, unfillable *set.Set[geom.Coordinate]) []geom.Coordinate {
	size := g.Size()
	var out []geom.Coordinate
	for i := 0; i < size.Rows; i++ {
		for j := 0; j < size.Cols; j++ {
			sq := g.Square(i, j)
			if !sq.Exists || sq.Color != nil {
				continue
			}
			at := geom.Coordinate{I: i, J: j}
			if unfillable.Contains(at) {
				continue
			}
			out = append(out, at)
		}
	}
	return out
}
