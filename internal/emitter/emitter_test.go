package emitter_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semloom/ts2go/internal/config"
	"github.com/semloom/ts2go/internal/emitter"
	"github.com/semloom/ts2go/internal/ir"
)

func strLit(s string) *ir.LiteralExpr {
	return &ir.LiteralExpr{Kind: ir.ExprLiteralString, Value: s}
}

func numLit(v float64) *ir.LiteralExpr {
	return &ir.LiteralExpr{Kind: ir.ExprLiteralNumber, Value: v}
}

func ident(name string) *ir.IdentifierExpr {
	return &ir.IdentifierExpr{Name: name}
}

func TestEmit_PackageHeaderDerivesFromModuleName(t *testing.T) {
	mod := &ir.Module{Name: "Widgets"}
	src, _, _, diags := emitter.Emit(mod, config.Default())
	require.Empty(t, diags)
	assert.Contains(t, src, "package widgets")
}

func TestEmit_EmptyModuleNameFallsBackToMain(t *testing.T) {
	mod := &ir.Module{}
	src, _, _, diags := emitter.Emit(mod, config.Default())
	require.Empty(t, diags)
	assert.Contains(t, src, "package main")
}

func TestEmit_ConstVariableGetsInferredVarDecl(t *testing.T) {
	answer := &ir.VariableDecl{Init: numLit(42), IsConst: true}
	answer.Name = "answer"
	mod := &ir.Module{Declarations: []ir.Declaration{answer}}

	src, _, _, diags := emitter.Emit(mod, config.Default())
	require.Empty(t, diags)
	assert.Contains(t, src, "var answer = 42")
}

func TestEmit_AnyHintedVariableGetsExplicitInterfaceType(t *testing.T) {
	v := &ir.VariableDecl{Type: &ir.PrimitiveType{Kind: ir.PrimAny}, Init: numLit(1)}
	v.Name = "payloadAny"
	mod := &ir.Module{Declarations: []ir.Declaration{v}}

	src, _, _, diags := emitter.Emit(mod, config.Default())
	require.Empty(t, diags)
	assert.Contains(t, src, "payloadAny")
	assert.Contains(t, src, "interface{}")
}

func TestEmit_FunctionDecl_RendersParamsAndReturn(t *testing.T) {
	fn := &ir.FunctionDecl{
		Params: []ir.Parameter{{Name: "x", Type: &ir.PrimitiveType{Kind: ir.PrimNumber}}},
		Ret:    &ir.PrimitiveType{Kind: ir.PrimNumber},
		Body: &ir.BlockStmt{Statements: []ir.Statement{
			&ir.ReturnStmt{Argument: ident("x")},
		}},
	}
	fn.Name = "identity"
	mod := &ir.Module{Declarations: []ir.Declaration{fn}}

	src, _, _, diags := emitter.Emit(mod, config.Default())
	require.Empty(t, diags)
	assert.Contains(t, src, "func Identity(x float64) float64")
	assert.Contains(t, src, "return x")
}

func TestEmit_AsyncFunctionDecl_GetsContextParamAndErrorReturn(t *testing.T) {
	fn := &ir.FunctionDecl{
		Ret:     &ir.PrimitiveType{Kind: ir.PrimVoid},
		IsAsync: true,
		Body:    &ir.BlockStmt{},
	}
	fn.Name = "doWork"
	mod := &ir.Module{Declarations: []ir.Declaration{fn}}

	src, _, _, diags := emitter.Emit(mod, config.Default())
	require.Empty(t, diags)
	assert.Contains(t, src, "context.Context")
	assert.Contains(t, src, "error")
}

func TestEmit_ClassDecl_EmitsRecordFactoryAndMethod(t *testing.T) {
	greet := &ir.MethodMember{
		Ret:  &ir.PrimitiveType{Kind: ir.PrimString},
		Body: &ir.BlockStmt{Statements: []ir.Statement{&ir.ReturnStmt{Argument: strLit("hi")}}},
	}
	greet.Name = "greet"

	name := &ir.PropertyMember{Type: &ir.PrimitiveType{Kind: ir.PrimString}, IsConstructorParam: true}
	name.Name = "name"

	cls := &ir.ClassDecl{
		Properties: []*ir.PropertyMember{name},
		Methods:    []*ir.MethodMember{greet},
	}
	cls.Name = "Greeter"
	mod := &ir.Module{Declarations: []ir.Declaration{cls}}

	src, _, _, diags := emitter.Emit(mod, config.Default())
	require.Empty(t, diags)
	assert.Contains(t, src, "type Greeter struct")
	assert.Contains(t, src, "func NewGreeter(")
	assert.Contains(t, src, "func (self *Greeter) Greet() string")
}

func TestEmit_InterfaceDecl_IndexSignatureBecomesMapAlias(t *testing.T) {
	iface := &ir.InterfaceDecl{
		Props: []ir.PropertySignature{{
			Name: ir.IndexPropertyName,
			Type: &ir.FunctionType{
				Params: []ir.Parameter{{Type: &ir.PrimitiveType{Kind: ir.PrimString}}},
				Ret:    &ir.PrimitiveType{Kind: ir.PrimNumber},
			},
		}},
	}
	iface.Name = "Dictionary"
	mod := &ir.Module{Declarations: []ir.Declaration{iface}}

	src, _, _, diags := emitter.Emit(mod, config.Default())
	require.Empty(t, diags)
	assert.Contains(t, src, "type Dictionary = map[")
}

func TestEmit_InterfaceDecl_AllDataPropsBecomeStruct(t *testing.T) {
	iface := &ir.InterfaceDecl{
		Props: []ir.PropertySignature{
			{Name: "x", Type: &ir.PrimitiveType{Kind: ir.PrimNumber}},
			{Name: "y", Type: &ir.PrimitiveType{Kind: ir.PrimNumber}},
		},
	}
	iface.Name = "Point"
	mod := &ir.Module{Declarations: []ir.Declaration{iface}}

	src, _, _, diags := emitter.Emit(mod, config.Default())
	require.Empty(t, diags)
	assert.Contains(t, src, "type Point struct")
}

func TestEmit_EnumDecl_HeterogeneousBecomesStringConsts(t *testing.T) {
	e := &ir.EnumDecl{
		Members:         []ir.EnumMember{{Name: "Red", Value: "red"}, {Name: "Blue", Value: "blue"}},
		IsHeterogeneous: true,
	}
	e.Name = "Color"
	mod := &ir.Module{Declarations: []ir.Declaration{e}}

	src, _, _, diags := emitter.Emit(mod, config.Default())
	require.Empty(t, diags)
	assert.Contains(t, src, "type Color string")
	assert.Contains(t, src, `ColorRed Color = "red"`)
}

func TestEmit_EnumDecl_NumericUsesIota(t *testing.T) {
	e := &ir.EnumDecl{
		Members: []ir.EnumMember{{Name: "Low"}, {Name: "High"}},
	}
	e.Name = "Level"
	mod := &ir.Module{Declarations: []ir.Declaration{e}}

	src, _, _, diags := emitter.Emit(mod, config.Default())
	require.Empty(t, diags)
	assert.Contains(t, src, "type Level int")
	assert.Contains(t, src, "iota")
}

func TestEmit_TupleLiteral_QueuesNamedRecordDefinition(t *testing.T) {
	tupleType := &ir.TupleType{Elems: []ir.Type{
		&ir.PrimitiveType{Kind: ir.PrimString},
		&ir.PrimitiveType{Kind: ir.PrimNumber},
	}}
	arr := &ir.ArrayExpr{Elements: []ir.Expression{strLit("a"), numLit(1)}}
	arr.InferredType = tupleType

	tup := &ir.VariableDecl{Type: tupleType, Init: arr}
	tup.Name = "pair"
	mod := &ir.Module{Declarations: []ir.Declaration{tup}}

	src, _, _, diags := emitter.Emit(mod, config.Default())
	require.Empty(t, diags)
	assert.Contains(t, src, "struct")
	assert.Contains(t, src, "Item0")
	assert.Contains(t, src, "Item1")
}

func TestEmit_WholeModule_MatchesSnapshot(t *testing.T) {
	greeting := &ir.FunctionDecl{
		Params: []ir.Parameter{{Name: "who", Type: &ir.PrimitiveType{Kind: ir.PrimString}}},
		Ret:    &ir.PrimitiveType{Kind: ir.PrimString},
		Body: &ir.BlockStmt{Statements: []ir.Statement{
			&ir.ReturnStmt{Argument: &ir.TemplateLiteralExpr{
				Quasis: []string{"hello, ", "!"},
				Exprs:  []ir.Expression{ident("who")},
			}},
		}},
	}
	greeting.Name = "greeting"
	greeting.Mods = ir.NewModifierSet(ir.ModifierExport)

	mod := &ir.Module{Name: "greetings", Declarations: []ir.Declaration{greeting}}
	mod.Exports = []ir.Export{{Decl: greeting}}

	src, _, _, diags := emitter.Emit(mod, config.Default())
	require.Empty(t, diags)
	snaps.MatchSnapshot(t, "greetings_module", src)
}
