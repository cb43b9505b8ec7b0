package solve

import z3 "github.com/mitchellh/go-z3"

// Model evaluates variables from a Solved check. It is only valid for the
// lifetime of the Context that produced it.
type Model struct {
	ctx   *Context
	model *z3.Model
}

// EvalBool returns the model's valuation of a boolean expression: true
// means Light when evaluating a cell's color variable.
func (m *Model) EvalBool(b BoolExpr) bool {
	v, ok := m.model.Eval(b.ast, true).Bool()
	if !ok {
		panic("solve: model did not evaluate a boolean expression")
	}
	return v
}

// EvalInt returns the model's valuation of an integer expression.
func (m *Model) EvalInt(i IntExpr) int64 {
	v, ok := m.model.Eval(i.ast, true).Int()
	if !ok {
		panic("solve: model did not evaluate an integer expression")
	}
	return v
}
