package lowering

import (
	"github.com/semloom/ts2go/internal/diag"
	"github.com/semloom/ts2go/internal/ir"
	"github.com/semloom/ts2go/pkg/tast"
)

// lowerTypeOpt lowers an optional type field. A nil t is deliberately
// carried through as a nil ir.Type: per spec.md §4.1's variable-statement
// rule, an absent declared type is left absent so the emitter can infer
// it, and nil is the Go-idiomatic representation of "no declared type
// here" for an interface-typed field — it is not a partial or malformed
// value, so it does not violate the type-completeness invariant.
func (l *lowerer) lowerTypeOpt(t *tast.Type) ir.Type {
	if t == nil {
		return nil
	}
	return l.lowerType(t)
}

func (l *lowerer) lowerType(t *tast.Type) ir.Type {
	switch t.Kind {
	case tast.TypePrimitive:
		return &ir.PrimitiveType{Kind: ir.PrimitiveKind(t.Primitive)}
	case tast.TypeArray:
		return &ir.ArrayType{Elem: l.lowerTypeOpt(t.Elem)}
	case tast.TypeTuple:
		return &ir.TupleType{Elems: l.lowerTypes(t.Elems)}
	case tast.TypeObject:
		if t.IndexKey != nil && t.IndexVal != nil && len(t.Props) == 0 {
			return &ir.ObjectType{IndexSig: &ir.IndexSignature{
				KeyType:   l.lowerType(t.IndexKey),
				ValueType: l.lowerType(t.IndexVal),
			}}
		}
		obj := &ir.ObjectType{Props: l.lowerPropSigs(t.Props)}
		if t.IndexKey != nil && t.IndexVal != nil {
			obj.IndexSig = &ir.IndexSignature{
				KeyType:   l.lowerType(t.IndexKey),
				ValueType: l.lowerType(t.IndexVal),
			}
		}
		return obj
	case tast.TypeFunction:
		return &ir.FunctionType{
			Params:     l.lowerParams(t.Params),
			Ret:        l.lowerTypeOpt(t.Ret),
			TypeParams: l.lowerTypeParams(t.TypeParams),
			IsAsync:    t.IsAsync,
		}
	case tast.TypeUnion:
		return &ir.UnionType{Types: l.lowerTypes(t.Elems)}
	case tast.TypeIntersection:
		return &ir.IntersectionType{Types: l.lowerTypes(t.Elems)}
	case tast.TypeReference:
		return &ir.ReferenceType{Name: t.Name, TypeArgs: l.lowerTypes(t.TypeArgs)}
	case tast.TypeLiteral:
		return &ir.LiteralType{Kind: ir.LiteralKind(t.LiteralKind), Value: t.LiteralValue}
	default:
		l.diags.Add(diag.NewDiagnostic(diag.ETypeIncomplete, ir.SourceLocation{}, "",
			"unrecognized type kind "+string(t.Kind)))
		return &ir.PrimitiveType{Kind: ir.PrimUnknown}
	}
}

func (l *lowerer) lowerTypes(ts []tast.Type) []ir.Type {
	if ts == nil {
		return nil
	}
	out := make([]ir.Type, 0, len(ts))
	for i := range ts {
		out = append(out, l.lowerType(&ts[i]))
	}
	return out
}

func (l *lowerer) lowerPropSigs(props []tast.PropertySignature) []ir.PropertySignature {
	if props == nil {
		return nil
	}
	out := make([]ir.PropertySignature, 0, len(props))
	for _, p := range props {
		out = append(out, ir.PropertySignature{
			Name:     p.Name,
			Type:     l.lowerType(&p.Type),
			Optional: p.Optional,
			Readonly: p.Readonly,
		})
	}
	return out
}

func (l *lowerer) lowerTypeParams(tps []tast.TypeParameter) []ir.TypeParameter {
	if tps == nil {
		return nil
	}
	out := make([]ir.TypeParameter, 0, len(tps))
	for _, tp := range tps {
		out = append(out, ir.TypeParameter{
			Name:       tp.Name,
			Constraint: l.lowerTypeOpt(tp.Constraint),
			Default:    l.lowerTypeOpt(tp.Default),
		})
	}
	return out
}

func (l *lowerer) lowerParams(ps []tast.Parameter) []ir.Parameter {
	if ps == nil {
		return nil
	}
	out := make([]ir.Parameter, 0, len(ps))
	for _, p := range ps {
		out = append(out, ir.Parameter{
			Name:     p.Name,
			Type:     l.lowerTypeOpt(p.Type),
			Optional: p.Optional,
			Default:  l.lowerExpr(p.Default),
			Rest:     p.Rest,
		})
	}
	return out
}
