package solve

import z3 "github.com/mitchellh/go-z3"

// BoolExpr and IntExpr wrap a z3 AST node of the matching sort. Both are
// cheap value types; the underlying AST lives as long as the Context that
// created it.
type BoolExpr struct{ ast *z3.AST }
type IntExpr struct{ ast *z3.AST }

// BoolVar declares a fresh named boolean constant.
func (c *Context) BoolVar(name string) BoolExpr {
	return BoolExpr{c.ctx.Const(c.ctx.Symbol(name), c.boolSort)}
}

// IntVar declares a fresh named integer constant.
func (c *Context) IntVar(name string) IntExpr {
	return IntExpr{c.ctx.Const(c.ctx.Symbol(name), c.intSort)}
}

// Int builds an integer literal.
func (c *Context) Int(v int64) IntExpr {
	return IntExpr{c.ctx.Int(int(v), c.intSort)}
}

// Bool builds a boolean literal.
func (c *Context) Bool(v bool) BoolExpr {
	if v {
		return BoolExpr{c.ctx.True()}
	}
	return BoolExpr{c.ctx.False()}
}

func (a BoolExpr) Not() BoolExpr {
	return BoolExpr{a.ast.Not()}
}

func (a BoolExpr) Eq(b BoolExpr) BoolExpr {
	return BoolExpr{a.ast.Eq(b.ast)}
}

func (a BoolExpr) Implies(b BoolExpr) BoolExpr {
	return BoolExpr{a.ast.Implies(b.ast)}
}

// And combines every expression in terms with logical AND. And() with no
// terms returns the True literal of c.
func And(c *Context, terms ...BoolExpr) BoolExpr {
	if len(terms) == 0 {
		return c.Bool(true)
	}
	asts := make([]*z3.AST, len(terms))
	for i, t := range terms {
		asts[i] = t.ast
	}
	return BoolExpr{c.ctx.And(asts...)}
}

// Or combines every expression in terms with logical OR. Or() with no
// arguments returns the False literal.
func Or(c *Context, terms ...BoolExpr) BoolExpr {
	if len(terms) == 0 {
		return c.Bool(false)
	}
	asts := make([]*z3.AST, len(terms))
	for i, t := range terms {
		asts[i] = t.ast
	}
	return BoolExpr{c.ctx.Or(asts...)}
}

func (a IntExpr) Eq(b IntExpr) BoolExpr {
	return BoolExpr{a.ast.Eq(b.ast)}
}

func (a IntExpr) Ge(b IntExpr) BoolExpr {
	return BoolExpr{a.ast.Ge(b.ast)}
}

// Add sums every term; Add() with no arguments returns the zero of c.
func Add(c *Context, terms ...IntExpr) IntExpr {
	if len(terms) == 0 {
		return c.Int(0)
	}
	asts := make([]*z3.AST, len(terms))
	for i, t := range terms {
		asts[i] = t.ast
	}
	return IntExpr{c.ctx.Add(asts...)}
}

// Distinct builds the constraint that every term in xs is pairwise
// different; it does not add it to the solver.
func Distinct(c *Context, xs ...IntExpr) BoolExpr {
	asts := make([]*z3.AST, len(xs))
	for i, x := range xs {
		asts[i] = x.ast
	}
	return BoolExpr{c.ctx.Distinct(asts...)}
}

// IteInt is the integer if-then-else: cond ? then : els.
func IteInt(cond BoolExpr, then, els IntExpr) IntExpr {
	return IntExpr{cond.ast.Ite(then.ast, els.ast)}
}
