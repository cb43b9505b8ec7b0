// Package solve wraps the SMT backend (github.com/mitchellh/go-z3, a cgo
// binding over libz3) behind a small symbolic-expression API that
// internal/encode builds against and internal/deduce's isolated jobs each
// instantiate fresh. No Context, Solver, or Model is ever shared across
// goroutines: each owns exactly one z3 context for its lifetime, per the
// concurrency model.
package solve

import (
	"time"

	z3 "github.com/mitchellh/go-z3"
)

// Context owns one z3 Config/Context/Solver triple for a single check.
// Build one per solver invocation; Close it when done.
type Context struct {
	cfg    *z3.Config
	ctx    *z3.Context
	solver *z3.Solver

	intSort  *z3.Sort
	boolSort *z3.Sort
}

// NewContext configures a fresh context with the given per-check timeout.
func NewContext(timeout time.Duration) *Context {
	cfg := z3.NewConfig()
	ctx := z3.NewContext(cfg)
	solver := ctx.NewSolver()

	params := ctx.NewParams()
	params.SetUint("timeout", uint(timeout.Milliseconds()))
	solver.SetParams(params)

	return &Context{
		cfg:      cfg,
		ctx:      ctx,
		solver:   solver,
		intSort:  ctx.IntSort(),
		boolSort: ctx.BoolSort(),
	}
}

// Close releases the solver, context, and config. Must be called exactly
// once, after the last use of any expression or Model built from c.
func (c *Context) Close() {
	c.solver.Close()
	c.ctx.Close()
	c.cfg.Close()
}

// Assert adds a constraint to the context's solver.
func (c *Context) Assert(b BoolExpr) {
	c.solver.Assert(b.ast)
}

// Outcome is the three-valued result of a solver check.
type Outcome int

const (
	Unsolvable Outcome = iota
	Solved
	Unknown
)

// Check runs the solver and, on Solved, returns a Model for evaluating
// variables. The Model is only valid until c.Close is called.
func (c *Context) Check() (Outcome, *Model) {
	switch c.solver.Check() {
	case z3.False:
		return Unsolvable, nil
	case z3.Undef:
		return Unknown, nil
	case z3.True:
		return Solved, &Model{ctx: c, model: c.solver.Model()}
	default:
		return Unknown, nil
	}
}
