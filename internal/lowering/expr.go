package lowering

import (
	"github.com/semloom/ts2go/internal/ir"
	"github.com/semloom/ts2go/pkg/tast"
)

func (l *lowerer) lowerExpr(e *tast.Expression) ir.Expression {
	if e == nil {
		return nil
	}

	loc := convLoc(e.Loc)
	var out ir.Expression

	switch e.Kind {
	case tast.ExprIdentifier:
		out = &ir.IdentifierExpr{Name: e.Name}
	case tast.ExprLiteral:
		out = &ir.LiteralExpr{Kind: ir.ExprLiteralKind(e.LiteralKind), Value: e.LiteralValue}
	case tast.ExprArray:
		out = &ir.ArrayExpr{Elements: l.lowerExprs(e.Elements)}
	case tast.ExprObject:
		out = &ir.ObjectExpr{Properties: l.lowerObjProps(e.Properties)}
	case tast.ExprFunction:
		out = &ir.FunctionExpr{
			Name:       e.Name,
			Params:     l.lowerParams(e.Params),
			Ret:        l.lowerTypeOpt(e.Ret),
			TypeParams: l.lowerTypeParams(e.TypeParams),
			Body:       l.lowerBlockPtr(e.Body),
			IsAsync:    e.IsAsync,
		}
	case tast.ExprArrow:
		out = &ir.ArrowExpr{
			Params:   l.lowerParams(e.Params),
			Ret:      l.lowerTypeOpt(e.Ret),
			Body:     l.lowerBlockPtr(e.Body),
			ExprBody: l.lowerExpr(e.ExprBody),
			IsAsync:  e.IsAsync,
		}
	case tast.ExprCall:
		out = &ir.CallExpr{
			Callee:   l.lowerExpr(e.Callee),
			Args:     l.lowerExprs(e.Args),
			TypeArgs: l.lowerTypes(e.TypeArgs),
			Optional: e.Optional,
		}
	case tast.ExprMember:
		out = &ir.MemberExpr{
			Object:   l.lowerExpr(e.Object),
			Property: l.lowerExpr(e.Property),
			Computed: e.Computed,
			Optional: e.Optional,
		}
	case tast.ExprNew:
		out = &ir.NewExpr{Callee: l.lowerExpr(e.Callee), Args: l.lowerExprs(e.Args)}
	case tast.ExprSuper:
		out = &ir.SuperExpr{}
	case tast.ExprBinary:
		out = &ir.BinaryExpr{Op: e.Op, Left: l.lowerExpr(e.Left), Right: l.lowerExpr(e.Right)}
	case tast.ExprUnary:
		out = &ir.UnaryExpr{Op: e.Op, Arg: l.lowerExpr(e.Arg), Prefix: e.Prefix}
	case tast.ExprAssignment:
		out = &ir.AssignmentExpr{Op: e.Op, Left: l.lowerExpr(e.Left), Right: l.lowerExpr(e.Right)}
	case tast.ExprConditional:
		out = &ir.ConditionalExpr{Test: l.lowerExpr(e.Test), Cons: l.lowerExpr(e.Cons), Alt: l.lowerExpr(e.Alt)}
	case tast.ExprAwait:
		out = &ir.AwaitExpr{Arg: l.lowerExpr(e.Arg)}
	case tast.ExprSpread:
		out = &ir.SpreadExpr{Arg: l.lowerExpr(e.Arg)}
	case tast.ExprTemplateLiteral:
		out = &ir.TemplateLiteralExpr{Quasis: e.Quasis, Exprs: l.lowerExprs(e.Exprs)}
	default:
		l.unsupported(loc, "expression kind %q", string(e.Kind))
		out = l.placeholderIdent(loc)
	}

	setExprBase(out, loc, l.lowerTypeOpt(e.Type))
	return out
}

// setExprBase stamps the promoted Location/InferredType fields shared by
// every ir.Expression kind. Every concrete *ir.XExpr embeds an unexported
// exprBase, so these fields must be set by selector assignment rather than
// by naming exprBase in a composite literal from outside package ir.
func setExprBase(e ir.Expression, loc ir.SourceLocation, inferred ir.Type) {
	switch n := e.(type) {
	case *ir.IdentifierExpr:
		n.Location, n.InferredType = loc, inferred
	case *ir.LiteralExpr:
		n.Location, n.InferredType = loc, inferred
	case *ir.ArrayExpr:
		n.Location, n.InferredType = loc, inferred
	case *ir.ObjectExpr:
		n.Location, n.InferredType = loc, inferred
	case *ir.PropertyExpr:
		n.Location, n.InferredType = loc, inferred
	case *ir.FunctionExpr:
		n.Location, n.InferredType = loc, inferred
	case *ir.ArrowExpr:
		n.Location, n.InferredType = loc, inferred
	case *ir.CallExpr:
		n.Location, n.InferredType = loc, inferred
	case *ir.MemberExpr:
		n.Location, n.InferredType = loc, inferred
	case *ir.NewExpr:
		n.Location, n.InferredType = loc, inferred
	case *ir.SuperExpr:
		n.Location, n.InferredType = loc, inferred
	case *ir.BinaryExpr:
		n.Location, n.InferredType = loc, inferred
	case *ir.UnaryExpr:
		n.Location, n.InferredType = loc, inferred
	case *ir.AssignmentExpr:
		n.Location, n.InferredType = loc, inferred
	case *ir.ConditionalExpr:
		n.Location, n.InferredType = loc, inferred
	case *ir.AwaitExpr:
		n.Location, n.InferredType = loc, inferred
	case *ir.SpreadExpr:
		n.Location, n.InferredType = loc, inferred
	case *ir.TemplateLiteralExpr:
		n.Location, n.InferredType = loc, inferred
	}
}

func (l *lowerer) lowerExprs(es []tast.Expression) []ir.Expression {
	if es == nil {
		return nil
	}
	out := make([]ir.Expression, 0, len(es))
	for i := range es {
		out = append(out, l.lowerExpr(&es[i]))
	}
	return out
}

func (l *lowerer) lowerObjProps(props []tast.ObjectProperty) []ir.ObjectProperty {
	if props == nil {
		return nil
	}
	out := make([]ir.ObjectProperty, 0, len(props))
	for _, p := range props {
		out = append(out, ir.ObjectProperty{
			Key:      p.Key,
			Computed: p.Computed,
			Value:    l.lowerExpr(p.Value),
			Spread:   p.Spread,
		})
	}
	return out
}

// tryLiteralValue resolves e to a Go literal value when it is itself a
// string literal or an integer-valued number literal, for enum-member
// initializers that lowering can fold immediately without waiting on the
// optimizer's constant-folding pass. Numbers (float64 after a JSON decode)
// come back as int64; any other literal is left unresolved.
func tryLiteralValue(e *tast.Expression) (any, bool) {
	if e == nil || e.Kind != tast.ExprLiteral {
		return nil, false
	}
	switch v := e.LiteralValue.(type) {
	case string, int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		if v == float64(int64(v)) {
			return int64(v), true
		}
	}
	return nil, false
}
