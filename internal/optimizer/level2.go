package optimizer

import "github.com/semloom/ts2go/internal/ir"

// TypeSimplification collapses redundant type shapes produced by lowering
// (a single-arm union already collapsed by the type mapper, a tuple that
// degenerates to a fixed-size array) before the emitter sees them. The
// core ships no simplification rules yet — spec.md leaves the rule set as
// an open area for future passes — so this pass is identity at level 2
// today; it exists so ForLevel's pipeline shape doesn't change when a rule
// is added.
type TypeSimplification struct{}

func (TypeSimplification) Name() string { return "type-simplification" }

func (TypeSimplification) Run(m *ir.Module, ctx *Context) (*ir.Module, error) {
	return m, nil
}

// ControlFlowNormalization would rewrite equivalent control-flow shapes
// (e.g. `if (!x) { return a } return b` into `if x { return b } return a`)
// into a single canonical form ahead of emission. No normalization rule is
// specified yet, so this pass is identity; kept as an explicit pipeline
// stage rather than omitted so level-2 runs are reproducible once a rule
// lands here.
type ControlFlowNormalization struct{}

func (ControlFlowNormalization) Name() string { return "control-flow-normalization" }

func (ControlFlowNormalization) Run(m *ir.Module, ctx *Context) (*ir.Module, error) {
	return m, nil
}

// Inlining would substitute trivial single-expression function bodies at
// their call sites. The core leaves the profitability heuristic
// unspecified, so this pass is identity; it is wired into the level-2
// pipeline so enabling it later is a one-function change, not a pipeline
// restructuring.
type Inlining struct{}

func (Inlining) Name() string { return "inlining" }

func (Inlining) Run(m *ir.Module, ctx *Context) (*ir.Module, error) {
	return m, nil
}
