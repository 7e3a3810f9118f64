// Package typemap implements the pure IRType -> target-type-string mapping
// of spec.md §4.3. Nothing here has side effects or touches an import set;
// the emitter is responsible for acting on the DeferredDef values this
// package hands back (generating the tuple/union/intersection definitions
// exactly once, per spec.md §4.6's interning contract).
package typemap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/semloom/ts2go/internal/config"
	"github.com/semloom/ts2go/internal/ir"
)

// DeferredKind enumerates the composite shapes that need a named
// definition generated somewhere other than at the use site.
type DeferredKind int

const (
	DeferredTuple DeferredKind = iota
	DeferredUnionTagged
	DeferredUnionInterface
	DeferredIntersection
	DeferredNamedObject
)

// DeferredDef describes a definition the emitter must generate exactly
// once per module, keyed by Name (see internal/emitter's intern table).
type DeferredDef struct {
	Kind DeferredKind
	Name string
	// Type is the original composite type, retained so the emitter can
	// walk its constituents when synthesizing the definition body.
	Type ir.Type
}

// Mapper maps IR types to target-type strings under a fixed config.Config.
type Mapper struct {
	cfg *config.Config
}

// New builds a Mapper bound to cfg. cfg is read-only from the mapper's
// perspective; sharing one Mapper across a whole module run is safe.
func New(cfg *config.Config) *Mapper {
	return &Mapper{cfg: cfg}
}

// Map returns the target-type-string for t, plus a DeferredDef when t (or
// a type reachable only through this call, e.g. a tuple) needs a
// definition generated elsewhere before first use.
func (m *Mapper) Map(t ir.Type) (string, *DeferredDef) {
	switch x := t.(type) {
	case *ir.PrimitiveType:
		return m.mapPrimitive(x.Kind), nil

	case *ir.ArrayType:
		elemStr, def := m.Map(x.Elem)
		return "[]" + elemStr, def

	case *ir.TupleType:
		name := m.internTupleName(x)
		return name, &DeferredDef{Kind: DeferredTuple, Name: name, Type: x}

	case *ir.ObjectType:
		if x.IndexSig != nil && len(x.Props) == 0 {
			keyStr, _ := m.Map(x.IndexSig.KeyType)
			valStr, _ := m.Map(x.IndexSig.ValueType)
			return fmt.Sprintf("map[%s]%s", keyStr, valStr), nil
		}
		return m.mapAnonymousObject(x), nil

	case *ir.FunctionType:
		return m.mapFunction(x), nil

	case *ir.UnionType:
		return m.mapUnion(x)

	case *ir.IntersectionType:
		return m.mapIntersection(x)

	case *ir.ReferenceType:
		return m.mapReference(x)

	case *ir.LiteralType:
		switch x.Kind {
		case ir.LiteralKindString:
			return "string", nil
		case ir.LiteralKindNumber:
			return m.mapPrimitive(ir.PrimNumber), nil
		case ir.LiteralKindBoolean:
			return "bool", nil
		}
		return "any", nil
	}
	return "any", nil
}

func (m *Mapper) mapPrimitive(kind ir.PrimitiveKind) string {
	switch kind {
	case ir.PrimString:
		return "string"
	case ir.PrimBoolean:
		return "bool"
	case ir.PrimVoid:
		return "interface{}"
	case ir.PrimAny, ir.PrimUnknown:
		return "interface{}"
	case ir.PrimNever:
		return "struct{}"
	case ir.PrimNumber:
		switch m.cfg.NumberStrategy {
		case config.NumberInt:
			return "int"
		case config.NumberContextual:
			// Contextual resolution needs the initializer shape at the
			// declaration site; typemap has no such context for a bare
			// type, so it defaults to float64 here. NarrowNumber below
			// resolves it per declaration; neither lowering nor the
			// emitter calls it.
			return "float64"
		default:
			return "float64"
		}
	}
	return "interface{}"
}

// NarrowNumber resolves the "contextual" number strategy at a declaration
// site, where an initializer expression is available. DWScript-style
// narrowing in the teacher (constant folding on integer-shaped literals)
// grounds the same idea here: an integer literal initializer narrows to
// int, anything else stays float64.
func (m *Mapper) NarrowNumber(initIsIntegerLiteral bool) string {
	if m.cfg.NumberStrategy != config.NumberContextual {
		return m.mapPrimitive(ir.PrimNumber)
	}
	if initIsIntegerLiteral {
		return "int"
	}
	return "float64"
}

func (m *Mapper) mapAnonymousObject(o *ir.ObjectType) string {
	var sb strings.Builder
	sb.WriteString("struct {")
	for _, p := range o.Props {
		fieldType, _ := m.Map(p.Type)
		if p.Optional {
			fieldType = m.MapOptional(p.Type)
		}
		fmt.Fprintf(&sb, " %s %s;", capitalize(p.Name), fieldType)
	}
	sb.WriteString(" }")
	return sb.String()
}

func (m *Mapper) mapFunction(f *ir.FunctionType) string {
	var params []string
	if f.IsAsync {
		params = append(params, "ctx context.Context")
	}
	for _, p := range f.Params {
		t, _ := m.Map(p.Type)
		if p.Optional {
			t = m.MapOptional(p.Type)
		}
		if p.Rest {
			t = "..." + strings.TrimPrefix(t, "[]")
		}
		params = append(params, fmt.Sprintf("%s %s", p.Name, t))
	}
	retStr, _ := m.Map(f.Ret)
	if f.IsAsync {
		retStr = fmt.Sprintf("(%s, error)", retStr)
	}
	return fmt.Sprintf("func(%s) %s", strings.Join(params, ", "), retStr)
}

// mapUnion implements the three selectable union strategies. A one-arm
// union collapses to its sole arm regardless of strategy (spec.md §8
// boundary behavior).
func (m *Mapper) mapUnion(u *ir.UnionType) (string, *DeferredDef) {
	if len(u.Types) == 1 {
		return m.Map(u.Types[0])
	}
	name := unionName(u)
	switch m.cfg.UnionStrategy {
	case config.UnionInterface:
		return name, &DeferredDef{Kind: DeferredUnionInterface, Name: name, Type: u}
	case config.UnionAny:
		return "interface{}", nil
	default: // tagged
		return name, &DeferredDef{Kind: DeferredUnionTagged, Name: name, Type: u}
	}
}

func (m *Mapper) mapIntersection(x *ir.IntersectionType) (string, *DeferredDef) {
	name := intersectionName(x)
	return name, &DeferredDef{Kind: DeferredIntersection, Name: name, Type: x}
}

// mapReference implements the built-in name table of spec.md §6 plus the
// generic bare-reference fallback.
func (m *Mapper) mapReference(r *ir.ReferenceType) (string, *DeferredDef) {
	switch r.Name {
	case "Date":
		return "time.Time", nil
	case "Array":
		if len(r.TypeArgs) == 1 {
			elem, def := m.Map(r.TypeArgs[0])
			return "[]" + elem, def
		}
		return "[]interface{}", nil
	case "Map":
		if len(r.TypeArgs) == 2 {
			k, _ := m.Map(r.TypeArgs[0])
			v, def := m.Map(r.TypeArgs[1])
			return fmt.Sprintf("map[%s]%s", k, v), def
		}
		return "map[interface{}]interface{}", nil
	case "Set":
		if len(r.TypeArgs) == 1 {
			elem, def := m.Map(r.TypeArgs[0])
			return fmt.Sprintf("map[%s]bool", elem), def
		}
		return "map[interface{}]bool", nil
	case "Record":
		if len(r.TypeArgs) == 2 {
			k, _ := m.Map(r.TypeArgs[0])
			v, def := m.Map(r.TypeArgs[1])
			return fmt.Sprintf("map[%s]%s", k, v), def
		}
		return "map[string]interface{}", nil
	case "Partial", "Required", "Readonly", "Pick", "Omit":
		// Identity over T at the type-mapper level; downstream field
		// differences (optionality, subsetting) are explicit in the
		// record layout the emitter generates for T itself, not here.
		if len(r.TypeArgs) >= 1 {
			return m.Map(r.TypeArgs[0])
		}
		return "interface{}", nil
	case "Promise":
		if len(r.TypeArgs) == 1 {
			return m.Map(r.TypeArgs[0])
		}
		return "interface{}", nil
	default:
		if len(r.TypeArgs) == 0 {
			return r.Name, nil
		}
		var args []string
		for _, a := range r.TypeArgs {
			s, _ := m.Map(a)
			args = append(args, s)
		}
		return fmt.Sprintf("%s[%s]", r.Name, strings.Join(args, ", ")), nil
	}
}

// MapOptional maps t as it appears at an optional site (an optional
// Parameter or PropertySignature), applying the three selectable
// nullability strategies of spec.md §4.3.
func (m *Mapper) MapOptional(t ir.Type) string {
	base, _ := m.Map(t)
	switch m.cfg.NullabilityStrategy {
	case config.NullabilityZero:
		// Lossy: the target zero value stands in for absence. Documented
		// here rather than silently — callers that need to distinguish
		// "zero" from "absent" must not select this strategy.
		return base
	case config.NullabilitySQLNull:
		return fmt.Sprintf("Null[%s]", base)
	default: // pointer
		return "*" + base
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// internTupleName builds the canonical tuple name of spec.md §4.6:
// Tuple{n}_{T1}_..._{Tn}, with []/* simplified to Array/Ptr.
func (m *Mapper) internTupleName(t *ir.TupleType) string {
	parts := make([]string, 0, len(t.Elems))
	for _, e := range t.Elems {
		s, _ := m.Map(e)
		parts = append(parts, sanitizeTypeNameFragment(s))
	}
	return fmt.Sprintf("Tuple%d_%s", len(t.Elems), strings.Join(parts, "_"))
}

func sanitizeTypeNameFragment(s string) string {
	s = strings.ReplaceAll(s, "[]", "Array")
	s = strings.ReplaceAll(s, "*", "Ptr")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", "_")
	s = strings.NewReplacer("{", "", "}", "", "[", "_", "]", "_").Replace(s)
	return s
}

func unionName(u *ir.UnionType) string {
	var sb strings.Builder
	sb.WriteString("Union")
	for _, t := range u.Types {
		sb.WriteString("_")
		sb.WriteString(shortTypeTag(t))
	}
	return sb.String()
}

func intersectionName(x *ir.IntersectionType) string {
	var sb strings.Builder
	sb.WriteString("Intersection")
	for _, t := range x.Types {
		sb.WriteString("_")
		sb.WriteString(shortTypeTag(t))
	}
	return sb.String()
}

// shortTypeTag produces a short, name-safe tag for a type used only to
// build a synthetic composite-type name; it does not need to be a full
// round-trippable encoding of t.
func shortTypeTag(t ir.Type) string {
	switch x := t.(type) {
	case *ir.PrimitiveType:
		return capitalize(string(x.Kind))
	case *ir.ReferenceType:
		return x.Name
	case *ir.ArrayType:
		return "ArrayOf" + shortTypeTag(x.Elem)
	case *ir.LiteralType:
		return "Lit" + strconv.Quote(fmt.Sprint(x.Value))
	case *ir.ObjectType:
		return "Obj"
	default:
		return "Arm"
	}
}
