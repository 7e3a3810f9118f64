package emitter

import (
	"fmt"
	"strings"

	"github.com/semloom/ts2go/internal/config"
	"github.com/semloom/ts2go/internal/ir"
)

func indentStr(n int) string { return strings.Repeat("\t", n) }

func (e *Emitter) emitBlock(b *ir.BlockStmt) string {
	if b == nil {
		return "{}"
	}
	return "{\n" + e.renderStmts(b.Statements, 1) + "}"
}

func (e *Emitter) renderStmts(stmts []ir.Statement, indent int) string {
	var sb strings.Builder
	for _, s := range stmts {
		sb.WriteString(e.renderStmt(s, indent))
	}
	return sb.String()
}

func (e *Emitter) renderStmt(s ir.Statement, indent int) string {
	pad := indentStr(indent)
	switch n := s.(type) {
	case *ir.BlockStmt:
		return pad + "{\n" + e.renderStmts(n.Statements, indent+1) + pad + "}\n"

	case *ir.ExpressionStmt:
		expr := e.emitExpr(n.Expression)
		if expr == "" {
			return ""
		}
		return pad + expr + "\n"

	case *ir.ReturnStmt:
		return e.renderReturn(n, indent)

	case *ir.IfStmt:
		return e.renderIf(n, indent)

	case *ir.WhileStmt:
		return fmt.Sprintf("%sfor %s {\n%s%s}\n", pad, e.emitExpr(n.Test), e.renderStmt(n.Body, indent+1), pad)

	case *ir.ForStmt:
		init, test, update := "", "", ""
		if n.Init != nil {
			init = strings.TrimSuffix(strings.TrimSpace(e.renderStmt(n.Init, 0)), "\n")
		}
		if n.Test != nil {
			test = e.emitExpr(n.Test)
		}
		if n.Update != nil {
			update = e.emitExpr(n.Update)
		}
		return fmt.Sprintf("%sfor %s; %s; %s {\n%s%s}\n", pad, init, test, update, e.renderStmt(n.Body, indent+1), pad)

	case *ir.ForOfStmt:
		kw := "range"
		_ = kw
		return fmt.Sprintf("%sfor _, %s := range %s {\n%s%s}\n", pad, n.VarName, e.emitExpr(n.Iterable), e.renderStmt(n.Body, indent+1), pad)

	case *ir.TryStmt:
		return e.renderTry(n, indent)

	case *ir.ThrowStmt:
		return fmt.Sprintf("%spanic(%s)\n", pad, e.emitExpr(n.Argument))

	case *ir.SwitchStmt:
		return e.renderSwitch(n, indent)

	case *ir.BreakStmt:
		return pad + "break\n"

	case *ir.ContinueStmt:
		return pad + "continue\n"

	case *ir.DeclarationStmt:
		return e.renderLocalDecl(n.Decl, indent)

	default:
		return pad + "// unsupported statement\n"
	}
}

// renderIf implements the bare-identifier truthiness rewrite: `if (x)`
// where x is a plain identifier becomes `if x != nil`.
func (e *Emitter) renderIf(n *ir.IfStmt, indent int) string {
	pad := indentStr(indent)
	test := e.emitExpr(n.Test)
	if id, ok := n.Test.(*ir.IdentifierExpr); ok {
		test = fmt.Sprintf("%s != nil", id.Name)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%sif %s {\n%s%s}", pad, test, e.renderStmt(n.Cons, indent+1), pad)
	if n.Alt != nil {
		if elseIf, ok := n.Alt.(*ir.IfStmt); ok {
			sb.WriteString(" else ")
			sb.WriteString(strings.TrimPrefix(e.renderIf(elseIf, indent), pad))
		} else {
			fmt.Fprintf(&sb, " else {\n%s%s}", e.renderStmt(n.Alt, indent+1), pad)
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// renderReturn implements the two documented return rewrites: a prefix
// `++`/`--` argument splits into a statement plus a plain return, and
// `array.includes(v)` expands into an explicit loop.
func (e *Emitter) renderReturn(n *ir.ReturnStmt, indent int) string {
	pad := indentStr(indent)

	if u, ok := n.Argument.(*ir.UnaryExpr); ok && u.Prefix && (u.Op == "++" || u.Op == "--") {
		target := e.emitExpr(u.Arg)
		return fmt.Sprintf("%s%s%s\n%sreturn %s\n", pad, target, u.Op, pad, target)
	}

	if call, ok := n.Argument.(*ir.CallExpr); ok {
		if mem, ok := call.Callee.(*ir.MemberExpr); ok {
			if prop, ok := mem.Property.(*ir.IdentifierExpr); ok && prop.Name == "includes" && len(call.Args) == 1 {
				coll := e.emitExpr(mem.Object)
				needle := e.emitExpr(call.Args[0])
				var sb strings.Builder
				fmt.Fprintf(&sb, "%sfor _, item := range %s {\n", pad, coll)
				fmt.Fprintf(&sb, "%s\tif item == %s {\n", pad, needle)
				fmt.Fprintf(&sb, "%s\t\treturn true\n", pad)
				fmt.Fprintf(&sb, "%s\t}\n", pad)
				fmt.Fprintf(&sb, "%s}\n", pad)
				fmt.Fprintf(&sb, "%sreturn false\n", pad)
				return sb.String()
			}
		}
	}

	if n.Argument == nil {
		return pad + "return\n"
	}
	return fmt.Sprintf("%sreturn %s\n", pad, e.emitExpr(n.Argument))
}

// renderTry implements the two selectable try/catch strategies.
func (e *Emitter) renderTry(n *ir.TryStmt, indent int) string {
	pad := indentStr(indent)
	if e.cfg.ErrorHandling == config.ErrorPanic {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%sfunc() {\n", pad)
		if n.Handler != nil {
			fmt.Fprintf(&sb, "%s\tdefer func() {\n", pad)
			fmt.Fprintf(&sb, "%s\t\tif %s := recover(); %s != nil {\n", pad, safeParam(n.Handler.Param), safeParam(n.Handler.Param))
			sb.WriteString(e.renderStmts(n.Handler.Body.Statements, indent+3))
			fmt.Fprintf(&sb, "%s\t\t}\n", pad)
			fmt.Fprintf(&sb, "%s\t}()\n", pad)
		}
		sb.WriteString(e.renderStmts(n.Block.Statements, indent+1))
		fmt.Fprintf(&sb, "%s}()\n", pad)
		if n.Finalizer != nil {
			fmt.Fprintf(&sb, "%sfunc() {\n", pad)
			sb.WriteString(e.renderStmts(n.Finalizer.Statements, indent+1))
			fmt.Fprintf(&sb, "%s}()\n", pad)
		}
		return sb.String()
	}

	// "return" strategy: documented limitation, see spec.md §9 — the core
	// cannot thread an error return through an arbitrary try block without
	// reshaping every call in it, so the block is emitted as-is behind a
	// marker.
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s// TODO: try/catch under the return error-handling strategy is not lowered; block below runs unguarded\n", pad)
	sb.WriteString(e.renderStmts(n.Block.Statements, indent))
	return sb.String()
}

func safeParam(name string) string {
	if name == "" {
		return "err"
	}
	return name
}

func (e *Emitter) renderSwitch(n *ir.SwitchStmt, indent int) string {
	pad := indentStr(indent)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%sswitch %s {\n", pad, e.emitExpr(n.Discriminant))
	for _, c := range n.Cases {
		if c.Test == nil {
			fmt.Fprintf(&sb, "%sdefault:\n", pad)
		} else {
			fmt.Fprintf(&sb, "%scase %s:\n", pad, e.emitExpr(c.Test))
		}
		sb.WriteString(e.renderStmts(c.Statements, indent+1))
	}
	fmt.Fprintf(&sb, "%s}\n", pad)
	return sb.String()
}

func (e *Emitter) renderLocalDecl(d ir.Declaration, indent int) string {
	pad := indentStr(indent)
	vd, ok := d.(*ir.VariableDecl)
	if !ok {
		return pad + "// unsupported local declaration\n"
	}
	return pad + e.variableStatement(vd) + "\n"
}
