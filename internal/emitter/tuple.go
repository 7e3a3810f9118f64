package emitter

import (
	"fmt"
	"strings"

	"github.com/semloom/ts2go/internal/ir"
	"github.com/semloom/ts2go/internal/typemap"
)

// renderDeferred renders the named definition a DeferredDef describes.
// Per spec.md §4.6 each interned name is defined exactly once per module;
// the emitter's generated set (see typeText) enforces that before this is
// ever called twice for the same name.
func (e *Emitter) renderDeferred(def *typemap.DeferredDef) string {
	switch def.Kind {
	case typemap.DeferredTuple:
		return e.renderTupleDef(def)
	case typemap.DeferredUnionTagged:
		return e.renderUnionTaggedDef(def)
	case typemap.DeferredUnionInterface:
		return e.renderUnionInterfaceDef(def)
	case typemap.DeferredIntersection:
		return e.renderIntersectionDef(def)
	case typemap.DeferredNamedObject:
		return e.renderNamedObjectDef(def)
	default:
		return ""
	}
}

// renderTupleDef emits the fields-named-Item0..ItemN-1 record of spec.md
// §4.5's tuple-initializer rule and §4.6's interning table.
func (e *Emitter) renderTupleDef(def *typemap.DeferredDef) string {
	tup := def.Type.(*ir.TupleType)
	var sb strings.Builder
	fmt.Fprintf(&sb, "type %s struct {\n", def.Name)
	for i, t := range tup.Elems {
		fmt.Fprintf(&sb, "\tItem%d %s\n", i, e.typeText(t))
	}
	sb.WriteString("}\n")
	return sb.String()
}

// renderUnionTaggedDef emits a tagged-union wrapper: a struct carrying one
// pointer field per variant plus an IsX/AsX helper pair for each, which is
// how the lowering's union-strategy selection surfaces at the emit layer.
func (e *Emitter) renderUnionTaggedDef(def *typemap.DeferredDef) string {
	u := def.Type.(*ir.UnionType)
	var sb strings.Builder
	fmt.Fprintf(&sb, "type %s struct {\n", def.Name)
	variantTypes := make([]string, len(u.Types))
	for i, t := range u.Types {
		variantTypes[i] = e.typeText(t)
		fmt.Fprintf(&sb, "\tVariant%d *%s\n", i, variantTypes[i])
	}
	sb.WriteString("}\n\n")
	for i, tStr := range variantTypes {
		tag := capitalizeIdent(shortName(tStr))
		fmt.Fprintf(&sb, "func (u %s) Is%s() bool { return u.Variant%d != nil }\n", def.Name, tag, i)
		fmt.Fprintf(&sb, "func (u %s) As%s() %s { return *u.Variant%d }\n\n", def.Name, tag, tStr, i)
	}
	return sb.String()
}

// renderUnionInterfaceDef emits a marker interface plus one concrete
// wrapper type per variant implementing it, the alternative union
// strategy to the tagged struct above.
func (e *Emitter) renderUnionInterfaceDef(def *typemap.DeferredDef) string {
	u := def.Type.(*ir.UnionType)
	var sb strings.Builder
	fmt.Fprintf(&sb, "type %s interface {\n\tis%s()\n}\n\n", def.Name, def.Name)
	for _, t := range u.Types {
		tStr := e.typeText(t)
		wrapperName := def.Name + capitalizeIdent(shortName(tStr))
		fmt.Fprintf(&sb, "type %s struct {\n\tValue %s\n}\n\n", wrapperName, tStr)
		fmt.Fprintf(&sb, "func (%s) is%s() {}\n\n", wrapperName, def.Name)
	}
	return sb.String()
}

// renderIntersectionDef flattens every arm's fields into one struct, the
// target-language shape an intersection of object types takes since Go has
// no structural intersection operator.
func (e *Emitter) renderIntersectionDef(def *typemap.DeferredDef) string {
	x := def.Type.(*ir.IntersectionType)
	var sb strings.Builder
	fmt.Fprintf(&sb, "type %s struct {\n", def.Name)
	for _, t := range x.Types {
		if obj, ok := t.(*ir.ObjectType); ok {
			for _, p := range obj.Props {
				fieldType := e.typeText(p.Type)
				if p.Optional {
					fieldType = e.optionalTypeText(p.Type)
				}
				fmt.Fprintf(&sb, "\t%s %s\n", capitalizeIdent(p.Name), fieldType)
			}
			continue
		}
		fmt.Fprintf(&sb, "\t%s\n", e.typeText(t))
	}
	sb.WriteString("}\n")
	return sb.String()
}

func (e *Emitter) renderNamedObjectDef(def *typemap.DeferredDef) string {
	obj := def.Type.(*ir.ObjectType)
	var sb strings.Builder
	fmt.Fprintf(&sb, "type %s struct {\n", def.Name)
	for _, p := range obj.Props {
		fieldType := e.typeText(p.Type)
		if p.Optional {
			fieldType = e.optionalTypeText(p.Type)
		}
		fmt.Fprintf(&sb, "\t%s %s\n", capitalizeIdent(p.Name), fieldType)
	}
	sb.WriteString("}\n")
	return sb.String()
}

// shortName derives a name-safe tag from a rendered type string, used only
// to build per-variant helper method names on a generated union type.
func shortName(s string) string {
	s = strings.TrimPrefix(s, "*")
	s = strings.ReplaceAll(s, "[]", "Array")
	s = strings.ReplaceAll(s, ".", "")
	var sb strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return "Value"
	}
	return sb.String()
}
