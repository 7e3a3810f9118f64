package lowering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semloom/ts2go/internal/config"
	"github.com/semloom/ts2go/internal/ir"
	"github.com/semloom/ts2go/internal/lowering"
	"github.com/semloom/ts2go/pkg/tast"
)

func numberLit(v float64) *tast.Expression {
	return &tast.Expression{Kind: tast.ExprLiteral, LiteralKind: tast.LiteralNumber, LiteralValue: v}
}

func TestLower_SplitsMultiDeclaratorVariableStatement(t *testing.T) {
	file := &tast.File{
		Name: "mod", Path: "mod.ts",
		Items: []tast.TopLevelItem{{Decl: &tast.Declaration{
			Kind: tast.DeclVariable,
			Declarators: []tast.Declarator{
				{Name: "a", Init: numberLit(1)},
				{Name: "b", Init: numberLit(2)},
			},
		}}},
	}

	mod, diags := lowering.Lower(file, config.Default())
	require.Empty(t, diags)
	require.Len(t, mod.Declarations, 2)

	a := mod.Declarations[0].(*ir.VariableDecl)
	b := mod.Declarations[1].(*ir.VariableDecl)
	assert.Equal(t, "a", a.DeclName())
	assert.Equal(t, "b", b.DeclName())
}

func TestLower_ExportedFunctionCarriesExportModifier(t *testing.T) {
	file := &tast.File{
		Name: "mod", Path: "mod.ts",
		Items: []tast.TopLevelItem{{Export: &tast.Export{
			Decl: &tast.Declaration{Kind: tast.DeclFunction, Name: "greet"},
		}}},
	}

	mod, diags := lowering.Lower(file, config.Default())
	require.Empty(t, diags)
	require.Len(t, mod.Declarations, 1)
	require.Len(t, mod.Exports, 1)

	fn := mod.Declarations[0].(*ir.FunctionDecl)
	assert.True(t, fn.Modifiers().Has(ir.ModifierExport))
	assert.Same(t, fn, mod.Exports[0].Decl)
}

func TestLower_ClassConstructorParameterPropertyIsSynthesized(t *testing.T) {
	file := &tast.File{
		Name: "mod", Path: "mod.ts",
		Items: []tast.TopLevelItem{{Decl: &tast.Declaration{
			Kind: tast.DeclClass,
			Name: "Point",
			Constructor: &tast.Method{
				Name: "constructor",
				Params: []tast.Parameter{
					{Name: "x", AccessModifier: "private", ReadonlyMod: true, Type: &tast.Type{Kind: tast.TypePrimitive, Primitive: tast.PrimNumber}},
					{Name: "label", Type: &tast.Type{Kind: tast.TypePrimitive, Primitive: tast.PrimString}},
				},
			},
		}}},
	}

	mod, diags := lowering.Lower(file, config.Default())
	require.Empty(t, diags)
	require.Len(t, mod.Declarations, 1)

	cls := mod.Declarations[0].(*ir.ClassDecl)
	require.Len(t, cls.Properties, 1)
	prop := cls.Properties[0]
	assert.Equal(t, "x", prop.MemberName())
	assert.True(t, prop.IsConstructorParam)
	assert.True(t, prop.Modifiers().Has(ir.ModifierPrivate))
	assert.True(t, prop.Modifiers().Has(ir.ModifierReadonly))
}

func TestLower_InterfaceIndexSignatureBecomesIndexProperty(t *testing.T) {
	file := &tast.File{
		Name: "mod", Path: "mod.ts",
		Items: []tast.TopLevelItem{{Decl: &tast.Declaration{
			Kind: tast.DeclInterface,
			Name: "Dict",
			IndexSig: &struct {
				KeyType   tast.Type `json:"keyType"`
				ValueType tast.Type `json:"valueType"`
			}{
				KeyType:   tast.Type{Kind: tast.TypePrimitive, Primitive: tast.PrimString},
				ValueType: tast.Type{Kind: tast.TypePrimitive, Primitive: tast.PrimNumber},
			},
		}}},
	}

	mod, diags := lowering.Lower(file, config.Default())
	require.Empty(t, diags)
	iface := mod.Declarations[0].(*ir.InterfaceDecl)
	require.Len(t, iface.Props, 1)
	assert.Equal(t, ir.IndexPropertyName, iface.Props[0].Name)
	_, ok := iface.Props[0].Type.(*ir.FunctionType)
	assert.True(t, ok)
}

func TestLower_EnumLiteralInitializerResolvedImmediately(t *testing.T) {
	file := &tast.File{
		Name: "mod", Path: "mod.ts",
		Items: []tast.TopLevelItem{{Decl: &tast.Declaration{
			Kind: tast.DeclEnum,
			Name: "Color",
			Members: []tast.EnumMember{
				{Name: "Red", Value: &tast.Expression{Kind: tast.ExprLiteral, LiteralKind: tast.LiteralString, LiteralValue: "red"}},
				{Name: "Blue"},
			},
		}}},
	}

	mod, diags := lowering.Lower(file, config.Default())
	require.Empty(t, diags)
	enum := mod.Declarations[0].(*ir.EnumDecl)
	require.Len(t, enum.Members, 2)
	assert.Equal(t, "red", enum.Members[0].Value)
	assert.NotNil(t, enum.Members[0].ValueExpr)
	assert.Nil(t, enum.Members[1].Value)
	assert.True(t, enum.IsHeterogeneous)
}

func TestLower_UnsupportedDeclarationKindProducesDiagnosticAndPlaceholder(t *testing.T) {
	file := &tast.File{
		Name: "mod", Path: "mod.ts",
		Items: []tast.TopLevelItem{{Decl: &tast.Declaration{Kind: "namespace", Name: "NS"}}},
	}

	mod, diags := lowering.Lower(file, config.Default())
	require.Len(t, diags, 1)
	assert.Equal(t, "NS", mod.Declarations[0].DeclName())
}

func TestLower_BareTopLevelExpressionStatementIsDropped(t *testing.T) {
	file := &tast.File{
		Name: "mod", Path: "mod.ts",
		Items: []tast.TopLevelItem{{Stmt: &tast.Statement{
			Kind:       tast.StmtExpression,
			Expression: &tast.Expression{Kind: tast.ExprIdentifier, Name: "sideEffect"},
		}}},
	}

	mod, diags := lowering.Lower(file, config.Default())
	assert.Empty(t, diags)
	assert.Empty(t, mod.Declarations)
}

func TestLower_AbsentDeclaredTypeLowersToNil(t *testing.T) {
	file := &tast.File{
		Name: "mod", Path: "mod.ts",
		Items: []tast.TopLevelItem{{Decl: &tast.Declaration{
			Kind:        tast.DeclVariable,
			Declarators: []tast.Declarator{{Name: "untyped", Init: numberLit(1)}},
		}}},
	}

	mod, diags := lowering.Lower(file, config.Default())
	require.Empty(t, diags)
	vd := mod.Declarations[0].(*ir.VariableDecl)
	assert.Nil(t, vd.Type)
}
