// Package optimizer runs the level-gated IR-to-IR passes of spec.md §4.2
// over a lowered Module: dead-code elimination and constant folding at
// level 1, plus type simplification, control-flow normalization, and
// inlining at level 2. The multi-pass, ordered-manager shape is grounded
// directly on the teacher's internal/semantic.Pass/PassManager — only the
// payload changes, from an untyped AST + PassContext to an *ir.Module +
// Context.
package optimizer

import (
	"github.com/semloom/ts2go/internal/config"
	"github.com/semloom/ts2go/internal/diag"
	"github.com/semloom/ts2go/internal/ir"
)

// Context is the state threaded through a run of the optimizer, shared
// read/write across all passes in a Manager.
type Context struct {
	Cfg   *config.Config
	Diags *diag.Bag
}

// NewContext builds a Context bound to cfg, with a fresh diagnostics bag.
func NewContext(cfg *config.Config) *Context {
	return &Context{Cfg: cfg, Diags: diag.NewBag(cfg.Strict)}
}

// Pass is a single optimizer transformation over one Module. A pass does
// not mutate m; it returns the Module it produced (a new one, or m itself
// when it changes nothing) so a Manager can chain them (constant folding,
// for instance, replaces BinaryExpr nodes wholesale rather than editing
// them).
type Pass interface {
	// Name identifies this pass for diagnostics and test assertions.
	Name() string

	// Run executes this pass over m and returns the resulting Module.
	// Run should not abort on a recoverable condition; instead it should
	// record a diagnostic on ctx.Diags and leave the affected subtree
	// unchanged, matching the non-aborting contract of spec.md §7.
	Run(m *ir.Module, ctx *Context) (*ir.Module, error)
}

// Manager runs an ordered list of passes over a Module.
type Manager struct {
	passes []Pass
}

// NewManager creates a Manager with the given passes, run in the order
// provided.
func NewManager(passes ...Pass) *Manager {
	return &Manager{passes: passes}
}

// AddPass appends a pass to run after all previously added passes.
func (mgr *Manager) AddPass(p Pass) {
	mgr.passes = append(mgr.passes, p)
}

// Passes returns the registered pass list.
func (mgr *Manager) Passes() []Pass {
	return mgr.passes
}

// RunAll runs every registered pass over m in order, threading the result
// of each into the next. A pass returning an error aborts the run — this
// is reserved for internal faults, never for a diagnosable source
// condition, which passes instead record on ctx.Diags and continue past.
func (mgr *Manager) RunAll(m *ir.Module, ctx *Context) (*ir.Module, error) {
	cur := m
	for _, p := range mgr.passes {
		next, err := p.Run(cur, ctx)
		if err != nil {
			return cur, err
		}
		cur = next
	}
	return cur, nil
}

// ForLevel returns the standard pass pipeline for optimization level
// cfg.OptimizationLevel: level 0 runs nothing, level 1 adds the mandatory
// DeadCodeElimination and ConstantFolding passes, level 2 additionally
// runs TypeSimplification, ControlFlowNormalization, and Inlining.
func ForLevel(cfg *config.Config) *Manager {
	mgr := NewManager()
	if cfg.OptimizationLevel < 1 {
		return mgr
	}
	mgr.AddPass(&ConstantFolding{})
	mgr.AddPass(&DeadCodeElimination{})
	if cfg.OptimizationLevel < 2 {
		return mgr
	}
	mgr.AddPass(&TypeSimplification{})
	mgr.AddPass(&ControlFlowNormalization{})
	mgr.AddPass(&Inlining{})
	return mgr
}

// Run is the package-level entry point used by cmd/ts2go: it builds the
// pass pipeline for cfg's optimization level and runs it over m.
func Run(m *ir.Module, cfg *config.Config) (*ir.Module, []diag.Diagnostic, error) {
	ctx := NewContext(cfg)
	out, err := ForLevel(cfg).RunAll(m, ctx)
	return out, ctx.Diags.All(), err
}
