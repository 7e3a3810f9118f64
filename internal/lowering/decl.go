package lowering

import (
	"github.com/semloom/ts2go/internal/ir"
	"github.com/semloom/ts2go/pkg/tast"
)

func (l *lowerer) lowerModifiers(mods []string) ir.ModifierSet {
	set := ir.NewModifierSet()
	for _, m := range mods {
		switch m {
		case "export":
			set.Add(ir.ModifierExport)
		case "default":
			set.Add(ir.ModifierDefault)
		case "public":
			set.Add(ir.ModifierPublic)
		case "private":
			set.Add(ir.ModifierPrivate)
		case "protected":
			set.Add(ir.ModifierProtected)
		case "static":
			set.Add(ir.ModifierStatic)
		case "readonly":
			set.Add(ir.ModifierReadonly)
		case "async":
			set.Add(ir.ModifierAsync)
		case "const":
			set.Add(ir.ModifierConst)
		case "abstract":
			set.Add(ir.ModifierAbstract)
		}
		// An unrecognized modifier string is silently skipped: the typed
		// AST is a trusted input boundary (see package doc), so a future
		// modifier keyword the frontend emits but this lowering doesn't
		// yet know about should not abort the whole file.
	}
	return set
}

func modifierFromAccess(access string) ir.Modifier {
	switch access {
	case "private":
		return ir.ModifierPrivate
	case "protected":
		return ir.ModifierProtected
	default:
		return ir.ModifierPublic
	}
}

func (l *lowerer) lowerVariableDecl(d *tast.Declaration) []ir.Declaration {
	out := make([]ir.Declaration, 0, len(d.Declarators))
	for _, decl := range d.Declarators {
		vd := &ir.VariableDecl{
			Type:    l.lowerTypeOpt(decl.Type),
			Init:    l.lowerExpr(decl.Init),
			IsConst: d.IsConst,
		}
		vd.Name = decl.Name
		vd.Location = convLoc(d.Loc)
		vd.Mods = l.lowerModifiers(d.Modifiers)
		out = append(out, vd)
	}
	return out
}

func (l *lowerer) lowerFunctionDecl(d *tast.Declaration) *ir.FunctionDecl {
	fd := &ir.FunctionDecl{
		Params:     l.lowerParams(d.Params),
		Ret:        l.lowerTypeOpt(d.Ret),
		TypeParams: l.lowerTypeParams(d.TypeParams),
		Body:       l.lowerBlockPtr(d.Body),
		IsAsync:    d.IsAsync,
	}
	fd.Name = d.Name
	fd.Location = convLoc(d.Loc)
	fd.Mods = l.lowerModifiers(d.Modifiers)
	return fd
}

func (l *lowerer) lowerField(f tast.Field) *ir.PropertyMember {
	pm := &ir.PropertyMember{
		Type: l.lowerTypeOpt(f.Type),
		Init: l.lowerExpr(f.Init),
	}
	pm.Name = f.Name
	pm.Mods = l.lowerModifiers(f.Modifiers)
	return pm
}

func (l *lowerer) lowerMethod(m *tast.Method) *ir.MethodMember {
	if m == nil {
		return nil
	}
	mm := &ir.MethodMember{
		Params:     l.lowerParams(m.Params),
		Ret:        l.lowerTypeOpt(m.Ret),
		TypeParams: l.lowerTypeParams(m.TypeParams),
		Body:       l.lowerBlockPtr(m.Body),
		IsAsync:    m.IsAsync,
	}
	mm.Name = m.Name
	mm.Mods = l.lowerModifiers(m.Modifiers)
	return mm
}

// lowerClassDecl lowers a class declaration. Constructor-parameter
// properties (`constructor(private x: number)`) are synthesized as
// PropertyMember entries and prepended ahead of ordinary field-declared
// properties, since the target language has no equivalent shorthand and
// the emitter needs one concrete field per backing store regardless of
// which TypeScript spelling produced it.
func (l *lowerer) lowerClassDecl(d *tast.Declaration) *ir.ClassDecl {
	cd := &ir.ClassDecl{
		Parent:      d.Parent,
		Interfaces:  d.Interfaces,
		TypeParams:  l.lowerTypeParams(d.TypeParams),
		Constructor: l.lowerMethod(d.Constructor),
		IsAbstract:  d.IsAbstract,
	}
	cd.Name = d.Name
	cd.Location = convLoc(d.Loc)
	cd.Mods = l.lowerModifiers(d.Modifiers)

	if d.Constructor != nil {
		for _, p := range d.Constructor.Params {
			if p.AccessModifier == "" {
				continue
			}
			pm := &ir.PropertyMember{
				Type:               l.lowerTypeOpt(p.Type),
				IsConstructorParam: true,
			}
			pm.Name = p.Name
			mods := ir.NewModifierSet(modifierFromAccess(p.AccessModifier))
			if p.ReadonlyMod {
				mods.Add(ir.ModifierReadonly)
			}
			pm.Mods = mods
			cd.Properties = append(cd.Properties, pm)
		}
	}
	for _, f := range d.Properties {
		cd.Properties = append(cd.Properties, l.lowerField(f))
	}

	for _, m := range d.Methods {
		method := m
		cd.Methods = append(cd.Methods, l.lowerMethod(&method))
	}

	return cd
}

// lowerInterfaceDecl lowers an interface declaration. Method signatures
// arrive as ordinary PropertySignature entries whose Type is a function
// type, uniformly handled by lowerPropSigs; a lone index signature is
// folded into a synthetic property named ir.IndexPropertyName so
// InterfaceDecl needs only one member slice.
func (l *lowerer) lowerInterfaceDecl(d *tast.Declaration) *ir.InterfaceDecl {
	id := &ir.InterfaceDecl{
		TypeParams: l.lowerTypeParams(d.TypeParams),
		Extends:    d.Extends,
		Props:      l.lowerPropSigs(d.Props),
	}
	id.Name = d.Name
	id.Location = convLoc(d.Loc)
	id.Mods = l.lowerModifiers(d.Modifiers)

	if d.IndexSig != nil {
		id.Props = append(id.Props, ir.PropertySignature{
			Name: ir.IndexPropertyName,
			Type: &ir.FunctionType{
				Params: []ir.Parameter{{Name: "key", Type: l.lowerType(&d.IndexSig.KeyType)}},
				Ret:    l.lowerType(&d.IndexSig.ValueType),
			},
		})
	}

	return id
}

func (l *lowerer) lowerTypeAliasDecl(d *tast.Declaration) *ir.TypeAliasDecl {
	ta := &ir.TypeAliasDecl{
		TypeParams: l.lowerTypeParams(d.TypeParams),
		Body:       l.lowerTypeOpt(d.AliasBody),
	}
	ta.Name = d.Name
	ta.Location = convLoc(d.Loc)
	ta.Mods = l.lowerModifiers(d.Modifiers)
	return ta
}

// lowerEnumDecl lowers an enum declaration. A member initializer that is a
// string literal or an integer-valued number literal is resolved eagerly
// into EnumMember.Value, the form the emitter consumes directly; any other
// initializer (a computed expression, or another kind of literal)
// is kept only as EnumMember.ValueExpr for a later optimizer fold pass,
// with Value left nil — the member falls back to auto-numbering until
// that pass exists. See DESIGN.md's open-questions note on this gap.
func (l *lowerer) lowerEnumDecl(d *tast.Declaration) *ir.EnumDecl {
	ed := &ir.EnumDecl{}
	ed.Name = d.Name
	ed.Location = convLoc(d.Loc)
	ed.Mods = l.lowerModifiers(d.Modifiers)

	for _, m := range d.Members {
		member := ir.EnumMember{Name: m.Name, ValueExpr: l.lowerExpr(m.Value)}
		if v, ok := tryLiteralValue(m.Value); ok {
			member.Value = v
			if _, isString := v.(string); isString {
				ed.IsHeterogeneous = true
			}
		}
		ed.Members = append(ed.Members, member)
	}

	return ed
}
