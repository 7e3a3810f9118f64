package optimizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semloom/ts2go/internal/config"
	"github.com/semloom/ts2go/internal/ir"
	"github.com/semloom/ts2go/internal/optimizer"
)

func numLit(v float64) *ir.LiteralExpr {
	return &ir.LiteralExpr{Kind: ir.ExprLiteralNumber, Value: v}
}

func TestConstantFolding_FoldsArithmetic(t *testing.T) {
	answer := &ir.VariableDecl{
		Init:    &ir.BinaryExpr{Op: "+", Left: numLit(40), Right: numLit(2)},
		IsConst: true,
	}
	answer.Name = "answer"
	mod := &ir.Module{
		Declarations: []ir.Declaration{answer},
	}

	pass := optimizer.ConstantFolding{}
	out, err := pass.Run(mod, optimizer.NewContext(config.Default()))
	require.NoError(t, err)

	vd := out.Declarations[0].(*ir.VariableDecl)
	lit, ok := vd.Init.(*ir.LiteralExpr)
	require.True(t, ok, "expected folded literal, got %T", vd.Init)
	assert.Equal(t, float64(42), lit.Value)
}

func TestDeadCodeElimination_DropsUnreferencedDeclarations(t *testing.T) {
	used := &ir.FunctionDecl{}
	used.Name = "used"
	unused := &ir.FunctionDecl{}
	unused.Name = "unused"
	caller := &ir.FunctionDecl{
		Body: &ir.BlockStmt{Statements: []ir.Statement{
			&ir.ExpressionStmt{Expression: &ir.CallExpr{
				Callee: &ir.IdentifierExpr{Name: "used"},
			}},
		}},
	}
	caller.Name = "main"

	mod := &ir.Module{
		Declarations: []ir.Declaration{used, unused, caller},
		Exports:      []ir.Export{{Decl: caller}},
	}

	pass := optimizer.DeadCodeElimination{}
	out, err := pass.Run(mod, optimizer.NewContext(config.Default()))
	require.NoError(t, err)

	var names []string
	for _, d := range out.Declarations {
		names = append(names, d.DeclName())
	}
	assert.Contains(t, names, "main")
	assert.Contains(t, names, "used")
	assert.NotContains(t, names, "unused")
}

func TestForLevel_ZeroRunsNoPasses(t *testing.T) {
	cfg := config.Default()
	cfg.OptimizationLevel = 0
	mgr := optimizer.ForLevel(cfg)
	assert.Empty(t, mgr.Passes())
}

func TestForLevel_OneRunsMandatoryPasses(t *testing.T) {
	cfg := config.Default()
	cfg.OptimizationLevel = 1
	mgr := optimizer.ForLevel(cfg)
	var names []string
	for _, p := range mgr.Passes() {
		names = append(names, p.Name())
	}
	assert.Contains(t, names, "constant-folding")
	assert.Contains(t, names, "dead-code-elimination")
	assert.NotContains(t, names, "inlining")
}

func TestForLevel_TwoAddsLevelTwoPasses(t *testing.T) {
	cfg := config.Default()
	cfg.OptimizationLevel = 2
	mgr := optimizer.ForLevel(cfg)
	var names []string
	for _, p := range mgr.Passes() {
		names = append(names, p.Name())
	}
	assert.Contains(t, names, "type-simplification")
	assert.Contains(t, names, "control-flow-normalization")
	assert.Contains(t, names, "inlining")
}
