package deduce

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nurikabe/gridsolve/internal/driver"
	"github.com/nurikabe/gridsolve/internal/geom"
	"github.com/nurikabe/gridsolve/internal/grid"
)

// job is one independent (cell, hypothesized color) unit of work. Every
// job clones the base Grid, applies its hypothesis, and solves from
// scratch with its own solver context — no state is shared between jobs.
type job struct {
	at    geom.Coordinate
	color geom.Color
}

type jobResult struct {
	job
	outcome driver.ResultKind
}

// runJobs dispatches every job across a bounded worker pool, following the
// same shape as a fixed-size goroutine pool over a job slice: an errgroup
// with a concurrency limit, each member solving independently and
// releasing its solver context before returning.
func runJobs(base *grid.Grid, jobs []job, timeout time.Duration, workers int) ([]jobResult, error) {
	results := make([]jobResult, len(jobs))

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			hypothesis := base.Clone()
			hypothesis.SetColor(j.at.I, j.at.J, j.color)

			res, err := driver.Solve(hypothesis, timeout)
			if err != nil {
				return err
			}
			results[i] = jobResult{job: j, outcome: res.Kind}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type aggregateState int

const (
	stateUnknown aggregateState = iota
	stateDefinitely
	stateUnfillable
	stateContradiction
)

type verdict struct {
	state aggregateState
	color geom.Color
}

// aggregate groups a round's job results by cell and applies the three-
// outcome rule from the loop structure: one Solved and one Unsolvable
// forces the Solved hypothesis's color; both Solved is Unfillable; both
// Unsolvable is a Contradiction; anything involving Unknown is Unknown.
func aggregate(results []jobResult) map[geom.Coordinate]verdict {
	type pair struct {
		light, dark *driver.ResultKind
	}
	byCell := make(map[geom.Coordinate]*pair)
	for _, r := range results {
		p, ok := byCell[r.at]
		if !ok {
			p = &pair{}
			byCell[r.at] = p
		}
		outcome := r.outcome
		if r.color == geom.Light {
			p.light = &outcome
		} else {
			p.dark = &outcome
		}
	}

	out := make(map[geom.Coordinate]verdict, len(byCell))
	for at, p := range byCell {
		if p.light == nil || p.dark == nil {
			out[at] = verdict{state: stateUnknown}
			continue
		}
		light, dark := *p.light, *p.dark
		switch {
		case light == driver.ResultUnknown || dark == driver.ResultUnknown:
			out[at] = verdict{state: stateUnknown}
		case light == driver.ResultUnsolvable && dark == driver.ResultUnsolvable:
			out[at] = verdict{state: stateContradiction}
		case light == driver.ResultUnsolvable && dark == driver.ResultSolved:
			out[at] = verdict{state: stateDefinitely, color: geom.Dark}
		case dark == driver.ResultUnsolvable && light == driver.ResultSolved:
			out[at] = verdict{state: stateDefinitely, color: geom.Light}
		case light == driver.ResultSolved && dark == driver.ResultSolved:
			out[at] = verdict{state: stateUnfillable}
		default:
			out[at] = verdict{state: stateUnknown}
		}
	}
	return out
}
