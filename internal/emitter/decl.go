package emitter

import (
	"fmt"
	"strings"

	"github.com/semloom/ts2go/internal/ir"
)

func (e *Emitter) emitDecl(d ir.Declaration, exported bool) {
	switch n := d.(type) {
	case *ir.VariableDecl:
		stmt := e.variableStatement(n)
		// `:=` is only legal inside a function body; at package level the
		// inferred form is `var name = init`.
		if short := n.DeclName() + " := "; strings.HasPrefix(stmt, short) {
			stmt = "var " + n.DeclName() + " = " + strings.TrimPrefix(stmt, short)
		}
		e.buf.WriteString(stmt)
		e.buf.WriteString("\n")
	case *ir.FunctionDecl:
		e.emitFunctionDecl(n)
	case *ir.ClassDecl:
		e.emitClassDecl(n)
	case *ir.InterfaceDecl:
		e.emitInterfaceDecl(n)
	case *ir.TypeAliasDecl:
		e.emitTypeAliasDecl(n)
	case *ir.EnumDecl:
		e.emitEnumDecl(n)
	default:
		fmt.Fprintf(&e.buf, "// unsupported declaration %q\n\n", d.DeclName())
	}
}

// variableStatement implements the type-inference rule: an absent
// declared type, or the top type paired with a literal initializer
// (unless the name itself hints an intentional top-typed variable), uses
// `:=` (rewritten to `var name = init` by emitDecl at package level);
// everything else gets an explicit `var name Type = init`.
func (e *Emitter) variableStatement(vd *ir.VariableDecl) string {
	name := vd.DeclName()

	if tup, ok := vd.Type.(*ir.TupleType); ok {
		_ = e.typeText(tup) // queues the named record definition
	} else if lit, ok := vd.Init.(*ir.LiteralExpr); ok {
		if tup, ok := lit.InferredType.(*ir.TupleType); ok {
			_ = e.typeText(tup)
		}
	}

	initText := e.emitExpr(vd.Init)

	wantsInference := vd.Type == nil
	if !wantsInference && ir.IsTopType(vd.Type) && isLiteral(vd.Init) && !nameHints(name, []string{"any", "unknown"}) {
		wantsInference = true
	}

	if wantsInference {
		if initText == "" {
			initText = "nil"
		}
		return fmt.Sprintf("%s := %s", name, initText)
	}

	typeStr := e.typeText(vd.Type)
	if initText == "" {
		return fmt.Sprintf("var %s %s", name, typeStr)
	}
	return fmt.Sprintf("var %s %s = %s", name, typeStr, initText)
}

func isLiteral(e ir.Expression) bool {
	_, ok := e.(*ir.LiteralExpr)
	return ok
}

// emitFunctionDecl implements the async context-parameter/error-wrap rule
// and default-parameter guards.
func (e *Emitter) emitFunctionDecl(fd *ir.FunctionDecl) {
	paramStr := e.paramList(fd.Params)
	if fd.IsAsync {
		if paramStr != "" {
			paramStr = "ctx context.Context, " + paramStr
		} else {
			paramStr = "ctx context.Context"
		}
		e.needImport("context")
	}

	retStr := e.typeText(fd.Ret)
	if fd.IsAsync {
		retStr = fmt.Sprintf("(%s, error)", retStr)
	}

	body := e.renderFunctionBody(fd.Params, fd.Body, fd.IsAsync)

	fmt.Fprintf(&e.buf, "func %s(%s) %s {\n%s}\n\n", capitalizeIdent(fd.DeclName()), paramStr, retStr, body)
}

// renderFunctionBody prepends default-parameter guards ahead of the
// body's own statements: a string default checks emptiness, a
// pointer-typed default checks null, and any other scalar checks zero.
func (e *Emitter) renderFunctionBody(params []ir.Parameter, body *ir.BlockStmt, async bool) string {
	var sb strings.Builder
	for _, p := range params {
		if p.Default == nil {
			continue
		}
		guard, assign := e.defaultGuard(p)
		fmt.Fprintf(&sb, "\tif %s {\n\t\t%s = %s\n\t}\n", guard, p.Name, assign)
	}
	if body != nil {
		sb.WriteString(e.renderStmts(body.Statements, 1))
	}
	if async && (body == nil || !endsInReturn(body)) {
		sb.WriteString("\treturn nil, nil\n")
	}
	return sb.String()
}

func endsInReturn(b *ir.BlockStmt) bool {
	if len(b.Statements) == 0 {
		return false
	}
	_, ok := b.Statements[len(b.Statements)-1].(*ir.ReturnStmt)
	return ok
}

func (e *Emitter) defaultGuard(p ir.Parameter) (guard, assign string) {
	assign = e.emitExpr(p.Default)
	switch t := p.Type.(type) {
	case *ir.PrimitiveType:
		if t.Kind == ir.PrimString {
			return fmt.Sprintf("%s == \"\"", p.Name), assign
		}
		return fmt.Sprintf("%s == 0", p.Name), assign
	default:
		return fmt.Sprintf("%s == nil", p.Name), assign
	}
}

// emitClassDecl emits the four artefacts spec.md §4.5 describes: the
// instance-field record, static-property module variables, the
// New{Class} factory, and the methods.
func (e *Emitter) emitClassDecl(cd *ir.ClassDecl) {
	e.className = cd.DeclName()
	e.privateFields = map[string]bool{}
	e.fieldTypes = map[string]ir.Type{}
	for _, p := range cd.Properties {
		if p.Modifiers().Has(ir.ModifierStatic) {
			continue
		}
		if p.Modifiers().Visibility() == ir.VisibilityPrivate {
			e.privateFields[p.MemberName()] = true
		}
		e.fieldTypes[p.MemberName()] = p.Type
	}
	defer func() {
		e.className = ""
		e.privateFields = nil
		e.fieldTypes = nil
	}()

	// 1. instance record
	fmt.Fprintf(&e.buf, "type %s struct {\n", capitalizeIdent(cd.DeclName()))
	if cd.Parent != "" {
		fmt.Fprintf(&e.buf, "\t%s\n", capitalizeIdent(cd.Parent))
	}
	for _, p := range cd.Properties {
		if p.Modifiers().Has(ir.ModifierStatic) {
			continue
		}
		fieldName := capitalizeIdent(p.MemberName())
		if p.Modifiers().Visibility() == ir.VisibilityPrivate {
			fieldName = lowerFirst(p.MemberName())
		}
		fmt.Fprintf(&e.buf, "\t%s %s\n", fieldName, e.typeText(p.Type))
	}
	fmt.Fprintf(&e.buf, "}\n\n")

	// 2. static properties -> module-level variables
	for _, p := range cd.Properties {
		if !p.Modifiers().Has(ir.ModifierStatic) {
			continue
		}
		varName := lowerFirst(cd.DeclName()) + capitalizeIdent(p.MemberName())
		init := e.emitExpr(p.Init)
		if init == "" {
			fmt.Fprintf(&e.buf, "var %s %s\n\n", varName, e.typeText(p.Type))
		} else {
			fmt.Fprintf(&e.buf, "var %s %s = %s\n\n", varName, e.typeText(p.Type), init)
		}
	}

	// 3. factory
	e.emitFactory(cd)

	// 4. methods
	for _, m := range cd.Methods {
		e.emitMethod(cd, m)
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func (e *Emitter) emitFactory(cd *ir.ClassDecl) {
	hasCtorParams := false
	for _, p := range cd.Properties {
		if p.IsConstructorParam {
			hasCtorParams = true
		}
	}
	hasBody := cd.Constructor != nil && cd.Constructor.Body != nil && len(cd.Constructor.Body.Statements) > 0
	if !hasCtorParams && !hasBody && cd.Parent == "" {
		return
	}

	e.superCall = nil
	e.receiver = "self"

	var ctorParams []ir.Parameter
	var ctorBodyText string
	if cd.Constructor != nil {
		ctorParams = cd.Constructor.Params
		ctorBodyText = e.renderStmts(cd.Constructor.Body.Statements, 1) // populates e.superCall as a side effect
	} else {
		for _, p := range cd.Properties {
			if p.IsConstructorParam {
				ctorParams = append(ctorParams, ir.Parameter{Name: p.MemberName(), Type: p.Type})
			}
		}
	}

	fmt.Fprintf(&e.buf, "func New%s(%s) *%s {\n", capitalizeIdent(cd.DeclName()), e.paramList(ctorParams), capitalizeIdent(cd.DeclName()))
	fmt.Fprintf(&e.buf, "\t%s := &%s{}\n", e.receiver, capitalizeIdent(cd.DeclName()))

	if cd.Parent != "" {
		if e.superCall != nil {
			args := make([]string, 0, len(e.superCall.Args))
			for _, a := range e.superCall.Args {
				if id, ok := a.(*ir.IdentifierExpr); ok {
					fmt.Fprintf(&e.buf, "\t%sPtr := &%s\n", id.Name, id.Name)
					args = append(args, id.Name+"Ptr")
					continue
				}
				args = append(args, e.emitExpr(a))
			}
			fmt.Fprintf(&e.buf, "\t%s.%s = *New%s(%s)\n", e.receiver, capitalizeIdent(cd.Parent), capitalizeIdent(cd.Parent), strings.Join(args, ", "))
		} else {
			fmt.Fprintf(&e.buf, "\t%s.%s = *New%s()\n", e.receiver, capitalizeIdent(cd.Parent), capitalizeIdent(cd.Parent))
		}
	}

	names := make([]string, 0, len(cd.Properties))
	for _, p := range cd.Properties {
		if p.Modifiers().Has(ir.ModifierStatic) {
			continue
		}
		names = append(names, p.MemberName())
	}
	width := 0
	for _, n := range names {
		if len(n) > width {
			width = len(n)
		}
	}

	for _, p := range cd.Properties {
		if p.Modifiers().Has(ir.ModifierStatic) {
			continue
		}
		field := capitalizeIdent(p.MemberName())
		if p.Modifiers().Visibility() == ir.VisibilityPrivate {
			field = lowerFirst(p.MemberName())
		}
		padded := p.MemberName() + strings.Repeat(" ", width-len(p.MemberName()))
		switch {
		case p.IsConstructorParam:
			fmt.Fprintf(&e.buf, "\t%s.%s = %s // %s\n", e.receiver, field, p.MemberName(), padded)
		case p.Init != nil:
			fmt.Fprintf(&e.buf, "\t%s.%s = %s\n", e.receiver, field, e.emitExpr(p.Init))
		default:
			if assign := findThisAssignment(ctorBodyText, p.MemberName()); assign != "" {
				fmt.Fprintf(&e.buf, "\t%s\n", assign)
			}
		}
	}

	fmt.Fprintf(&e.buf, "\treturn %s\n}\n\n", e.receiver)
	e.receiver = ""
}

// findThisAssignment is a best-effort scan of the already-rendered
// constructor body text for a `this.x = ...` assignment that was not
// otherwise captured structurally; field initialization order in the
// factory still favors the constructor-parameter and declaration-
// initializer cases above, this is only the fallback.
func findThisAssignment(body, field string) string {
	marker := "self." + capitalizeIdent(field) + " ="
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, marker) {
			return trimmed
		}
	}
	return ""
}

func (e *Emitter) emitMethod(cd *ir.ClassDecl, m *ir.MethodMember) {
	if m.IsConstructor() {
		return
	}
	recv := "self"
	e.receiver = recv
	defer func() { e.receiver = "" }()

	if m.Modifiers().Has(ir.ModifierStatic) {
		fnName := "Get" + capitalizeIdent(cd.DeclName()) + capitalizeIdent(strings.TrimPrefix(m.MemberName(), "get"))
		retStr := e.typeText(m.Ret)
		fmt.Fprintf(&e.buf, "func %s(%s) %s {\n%s}\n\n", fnName, e.paramList(m.Params), retStr, e.renderFunctionBody(m.Params, m.Body, m.IsAsync))
		return
	}

	paramStr := e.paramList(m.Params)
	if m.IsAsync {
		ctxParam := "ctx context.Context"
		if paramStr != "" {
			paramStr = ctxParam + ", " + paramStr
		} else {
			paramStr = ctxParam
		}
		e.needImport("context")
	}
	retStr := e.typeText(m.Ret)
	if m.IsAsync {
		retStr = fmt.Sprintf("(%s, error)", retStr)
	}

	methodName := capitalizeIdent(m.MemberName())
	if isGetter, isSetter := m.IsAccessor(); isGetter {
		methodName = "Get" + capitalizeIdent(strings.TrimPrefix(m.MemberName(), "get_"))
	} else if isSetter {
		methodName = "Set" + capitalizeIdent(strings.TrimPrefix(m.MemberName(), "set_"))
	}

	fmt.Fprintf(&e.buf, "func (%s *%s) %s(%s) %s {\n%s}\n\n",
		recv, capitalizeIdent(cd.DeclName()), methodName, paramStr, retStr, e.renderFunctionBody(m.Params, m.Body, m.IsAsync))
}

// emitInterfaceDecl implements the three documented interface cases.
func (e *Emitter) emitInterfaceDecl(id *ir.InterfaceDecl) {
	name := capitalizeIdent(id.DeclName())

	if len(id.Props) == 1 && id.Props[0].Name == ir.IndexPropertyName {
		ft := id.Props[0].Type.(*ir.FunctionType)
		fmt.Fprintf(&e.buf, "type %s = map[%s]%s\n\n", name, e.typeText(ft.Params[0].Type), e.typeText(ft.Ret))
		return
	}

	allData := true
	for _, p := range id.Props {
		if _, ok := p.Type.(*ir.FunctionType); ok {
			allData = false
			break
		}
	}

	if allData {
		fmt.Fprintf(&e.buf, "type %s struct {\n", name)
		for _, p := range id.Props {
			t := e.typeText(p.Type)
			if p.Optional {
				t = e.optionalTypeText(p.Type)
			}
			fmt.Fprintf(&e.buf, "\t%s %s\n", capitalizeIdent(p.Name), t)
		}
		fmt.Fprintf(&e.buf, "}\n\n")
		return
	}

	fmt.Fprintf(&e.buf, "type %s interface {\n", name)
	for _, p := range id.Props {
		ft, ok := p.Type.(*ir.FunctionType)
		if !ok {
			continue
		}
		params := make([]string, 0, len(ft.Params))
		for _, fp := range ft.Params {
			params = append(params, e.typeText(fp.Type))
		}
		fmt.Fprintf(&e.buf, "\t%s(%s) %s\n", capitalizeIdent(p.Name), strings.Join(params, ", "), e.typeText(ft.Ret))
	}
	fmt.Fprintf(&e.buf, "}\n\n")
}

func (e *Emitter) emitTypeAliasDecl(ta *ir.TypeAliasDecl) {
	fmt.Fprintf(&e.buf, "type %s = %s\n\n", capitalizeIdent(ta.DeclName()), e.typeText(ta.Body))
}

// emitEnumDecl implements the string-vs-numeric enum rule.
func (e *Emitter) emitEnumDecl(ed *ir.EnumDecl) {
	name := capitalizeIdent(ed.DeclName())
	if ed.IsHeterogeneous {
		fmt.Fprintf(&e.buf, "type %s string\n\nconst (\n", name)
		for _, m := range ed.Members {
			val, _ := m.Value.(string)
			fmt.Fprintf(&e.buf, "\t%s%s %s = %q\n", name, m.Name, name, val)
		}
		fmt.Fprintf(&e.buf, ")\n\n")
		return
	}

	fmt.Fprintf(&e.buf, "type %s int\n\nconst (\n", name)
	for i, m := range ed.Members {
		if i == 0 {
			if n, ok := m.Value.(int64); ok {
				fmt.Fprintf(&e.buf, "\t%s%s %s = %d\n", name, m.Name, name, n)
			} else {
				fmt.Fprintf(&e.buf, "\t%s%s %s = iota\n", name, m.Name, name)
			}
			continue
		}
		if n, ok := m.Value.(int64); ok {
			fmt.Fprintf(&e.buf, "\t%s%s %s = %d\n", name, m.Name, name, n)
		} else {
			fmt.Fprintf(&e.buf, "\t%s%s\n", name, m.Name)
		}
	}
	fmt.Fprintf(&e.buf, ")\n\n")
}
