package emitter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semloom/ts2go/internal/config"
	"github.com/semloom/ts2go/internal/emitter"
	"github.com/semloom/ts2go/internal/ir"
)

func wrapInFunc(name string, stmts ...ir.Statement) *ir.Module {
	fn := &ir.FunctionDecl{
		Ret:  &ir.PrimitiveType{Kind: ir.PrimVoid},
		Body: &ir.BlockStmt{Statements: stmts},
	}
	fn.Name = name
	return &ir.Module{Declarations: []ir.Declaration{fn}}
}

func TestEmit_StrictEquality_RewritesToGoEquality(t *testing.T) {
	mod := wrapInFunc("check", &ir.ExpressionStmt{
		Expression: &ir.BinaryExpr{Op: "===", Left: ident("a"), Right: ident("b")},
	})
	src, _, _, diags := emitter.Emit(mod, config.Default())
	require.Empty(t, diags)
	assert.Contains(t, src, "a == b")
}

func TestEmit_StrictInequality_RewritesToGoInequality(t *testing.T) {
	mod := wrapInFunc("check", &ir.ExpressionStmt{
		Expression: &ir.BinaryExpr{Op: "!==", Left: ident("a"), Right: ident("b")},
	})
	src, _, _, diags := emitter.Emit(mod, config.Default())
	require.Empty(t, diags)
	assert.Contains(t, src, "a != b")
}

func TestEmit_NullishCoalescing_CallsTypedCoalesceHelper(t *testing.T) {
	mod := wrapInFunc("check", &ir.ExpressionStmt{
		Expression: &ir.BinaryExpr{Op: "??", Left: ident("a"), Right: ident("b")},
	})
	src, _, _, diags := emitter.Emit(mod, config.Default())
	require.Empty(t, diags)
	assert.Contains(t, src, "coalesce(a, b)")
}

func TestEmit_Typeof_CallsRuntimeHelper(t *testing.T) {
	mod := wrapInFunc("check", &ir.ExpressionStmt{
		Expression: &ir.UnaryExpr{Op: "typeof", Arg: ident("a")},
	})
	src, _, _, diags := emitter.Emit(mod, config.Default())
	require.Empty(t, diags)
	assert.Contains(t, src, "runtimeTypeName(a)")
}

func TestEmit_NegationOfPointerShapedIdent_RewritesToNilCheck(t *testing.T) {
	ptrIdent := &ir.IdentifierExpr{Name: "maybeThing"}
	ptrIdent.InferredType = &ir.ReferenceType{Name: "Thing"}
	mod := wrapInFunc("check", &ir.ExpressionStmt{
		Expression: &ir.UnaryExpr{Op: "!", Arg: ptrIdent},
	})
	src, _, _, diags := emitter.Emit(mod, config.Default())
	require.Empty(t, diags)
	assert.Contains(t, src, "maybeThing == nil")
}

func TestEmit_TryCatch_PanicStrategy_UsesDeferRecover(t *testing.T) {
	cfg := config.Default()
	cfg.ErrorHandling = config.ErrorPanic

	tryStmt := &ir.TryStmt{
		Block: &ir.BlockStmt{Statements: []ir.Statement{
			&ir.ExpressionStmt{Expression: &ir.CallExpr{Callee: ident("risky")}},
		}},
		Handler: &ir.CatchClause{
			Param: "err",
			Body:  &ir.BlockStmt{Statements: []ir.Statement{&ir.ExpressionStmt{Expression: ident("err")}}},
		},
	}
	mod := wrapInFunc("run", tryStmt)

	src, _, _, diags := emitter.Emit(mod, cfg)
	require.Empty(t, diags)
	assert.Contains(t, src, "defer func()")
	assert.Contains(t, src, "recover()")
}

func TestEmit_TryCatch_ReturnStrategy_EmitsUnguardedMarker(t *testing.T) {
	tryStmt := &ir.TryStmt{
		Block: &ir.BlockStmt{Statements: []ir.Statement{
			&ir.ExpressionStmt{Expression: &ir.CallExpr{Callee: ident("risky")}},
		}},
		Handler: &ir.CatchClause{
			Param: "err",
			Body:  &ir.BlockStmt{Statements: []ir.Statement{&ir.ExpressionStmt{Expression: ident("err")}}},
		},
	}
	mod := wrapInFunc("run", tryStmt)

	src, _, _, diags := emitter.Emit(mod, config.Default())
	require.Empty(t, diags)
	assert.Contains(t, src, "TODO: try/catch")
}

func TestEmit_TemplateLiteral_RendersFmtSprintf(t *testing.T) {
	mod := wrapInFunc("greet", &ir.ReturnStmt{
		Argument: &ir.TemplateLiteralExpr{
			Quasis: []string{"hi ", "!"},
			Exprs:  []ir.Expression{ident("name")},
		},
	})
	src, _, _, diags := emitter.Emit(mod, config.Default())
	require.Empty(t, diags)
	assert.Contains(t, src, "fmt.Sprintf(")
}
