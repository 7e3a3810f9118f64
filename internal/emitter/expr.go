package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/semloom/ts2go/internal/ir"
)

var stringLookalikeNames = []string{"name", "title", "string", "text", "message"}
var nullableLikeNames = []string{"age", "value", "count", "id", "amount"}

func nameHints(name string, hints []string) bool {
	lower := strings.ToLower(name)
	for _, h := range hints {
		if strings.Contains(lower, h) {
			return true
		}
	}
	return false
}

// emitExpr renders e as a Go expression.
func (e *Emitter) emitExpr(x ir.Expression) string {
	if x == nil {
		return ""
	}
	switch n := x.(type) {
	case *ir.IdentifierExpr:
		if n.Name == "undefined" {
			return "nil"
		}
		if n.Name == "this" && e.receiver != "" {
			return e.receiver
		}
		return n.Name

	case *ir.LiteralExpr:
		return e.emitLiteral(n)

	case *ir.ArrayExpr:
		elems := make([]string, 0, len(n.Elements))
		for _, el := range n.Elements {
			elems = append(elems, e.emitExpr(el))
		}
		if tup, ok := n.InferredType.(*ir.TupleType); ok {
			name := e.typeText(tup)
			return fmt.Sprintf("%s{%s}", name, strings.Join(elems, ", "))
		}
		elemType := "interface{}"
		if arr, ok := n.InferredType.(*ir.ArrayType); ok {
			elemType = e.typeText(arr.Elem)
		}
		return fmt.Sprintf("[]%s{%s}", elemType, strings.Join(elems, ", "))

	case *ir.ObjectExpr:
		var parts []string
		for _, p := range n.Properties {
			if p.Spread {
				continue
			}
			parts = append(parts, fmt.Sprintf("%q: %s", p.Key, e.emitExpr(p.Value)))
		}
		return fmt.Sprintf("map[string]interface{}{%s}", strings.Join(parts, ", "))

	case *ir.PropertyExpr:
		return fmt.Sprintf("%s: %s", n.Name, e.emitExpr(n.Value))

	case *ir.FunctionExpr:
		return e.emitFuncLiteral(n.Params, n.Ret, n.Body, n.IsAsync)

	case *ir.ArrowExpr:
		if n.Body != nil {
			return e.emitFuncLiteral(n.Params, n.Ret, n.Body, n.IsAsync)
		}
		ret := "interface{}"
		if n.Ret != nil {
			ret = e.typeText(n.Ret)
		}
		return fmt.Sprintf("func(%s) %s { return %s }", e.paramList(n.Params), ret, e.emitExpr(n.ExprBody))

	case *ir.CallExpr:
		return e.emitCall(n)

	case *ir.MemberExpr:
		return e.emitMember(n)

	case *ir.NewExpr:
		return e.emitNew(n)

	case *ir.SuperExpr:
		return e.receiver

	case *ir.BinaryExpr:
		return e.emitBinary(n)

	case *ir.UnaryExpr:
		return e.emitUnary(n)

	case *ir.AssignmentExpr:
		return fmt.Sprintf("%s %s %s", e.emitExpr(n.Left), n.Op, e.emitExpr(n.Right))

	case *ir.ConditionalExpr:
		// The target has no ternary; a conditional is only reachable here
		// as a sub-expression, so it is rendered as an immediately-invoked
		// closure to preserve expression position.
		return fmt.Sprintf("func() interface{} { if %s { return %s }; return %s }()",
			e.emitExpr(n.Test), e.emitExpr(n.Cons), e.emitExpr(n.Alt))

	case *ir.AwaitExpr:
		return e.emitExpr(n.Arg)

	case *ir.SpreadExpr:
		return e.emitExpr(n.Arg) + "..."

	case *ir.TemplateLiteralExpr:
		return e.emitTemplateLiteral(n)

	default:
		return "nil /* unsupported expression */"
	}
}

func (e *Emitter) emitLiteral(n *ir.LiteralExpr) string {
	switch n.Kind {
	case ir.ExprLiteralString:
		s, _ := n.Value.(string)
		return strconv.Quote(s)
	case ir.ExprLiteralNumber:
		return formatNumber(n.Value)
	case ir.ExprLiteralBoolean:
		b, _ := n.Value.(bool)
		if b {
			return "true"
		}
		return "false"
	case ir.ExprLiteralNull, ir.ExprLiteralUndefined:
		return "nil"
	default:
		return "nil"
	}
}

func formatNumber(v any) string {
	switch n := v.(type) {
	case float64:
		if n == float64(int64(n)) {
			return strconv.FormatInt(int64(n), 10)
		}
		return strconv.FormatFloat(n, 'g', -1, 64)
	case int64:
		return strconv.FormatInt(n, 10)
	case int:
		return strconv.Itoa(n)
	default:
		return fmt.Sprint(v)
	}
}

func (e *Emitter) paramList(params []ir.Parameter) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		t := e.typeText(p.Type)
		if p.Optional {
			t = e.optionalTypeText(p.Type)
		}
		if p.Rest {
			t = "..." + strings.TrimPrefix(t, "[]")
		}
		parts = append(parts, fmt.Sprintf("%s %s", p.Name, t))
	}
	return strings.Join(parts, ", ")
}

func (e *Emitter) emitFuncLiteral(params []ir.Parameter, ret ir.Type, body *ir.BlockStmt, async bool) string {
	paramStr := e.paramList(params)
	if async {
		ctxParam := "ctx context.Context"
		if paramStr != "" {
			paramStr = ctxParam + ", " + paramStr
		} else {
			paramStr = ctxParam
		}
		e.needImport("context")
	}
	retStr := "interface{}"
	if ret != nil {
		retStr = e.typeText(ret)
	}
	if async {
		retStr = fmt.Sprintf("(%s, error)", retStr)
	}
	return fmt.Sprintf("func(%s) %s %s", paramStr, retStr, e.emitBlock(body))
}

func (e *Emitter) emitCall(n *ir.CallExpr) string {
	// `super(...)` inside a constructor body is recorded, not emitted
	// directly; the class emitter consumes it when building the factory.
	if _, ok := n.Callee.(*ir.SuperExpr); ok {
		e.superCall = n
		return ""
	}

	if mem, ok := n.Callee.(*ir.MemberExpr); ok {
		if prop, ok := mem.Property.(*ir.IdentifierExpr); ok && prop.Name == "includes" && len(n.Args) == 1 {
			// Bare `.includes(...)` used outside return position renders
			// as an immediately-invoked helper; the return-position form
			// is expanded into a loop by emitReturn instead.
			return fmt.Sprintf("containsValue(%s, %s)", e.emitExpr(mem.Object), e.emitExpr(n.Args[0]))
		}
	}

	args := make([]string, 0, len(n.Args))
	for _, a := range n.Args {
		args = append(args, e.emitExpr(a))
	}
	return fmt.Sprintf("%s(%s)", e.emitExpr(n.Callee), strings.Join(args, ", "))
}

func (e *Emitter) emitMember(n *ir.MemberExpr) string {
	if n.Computed {
		return fmt.Sprintf("%s[%s]", e.emitExpr(n.Object), e.emitExpr(n.Property))
	}
	prop, ok := n.Property.(*ir.IdentifierExpr)
	if !ok {
		return fmt.Sprintf("%s.%s", e.emitExpr(n.Object), e.emitExpr(n.Property))
	}

	name := prop.Name
	if e.privateFields != nil && e.privateFields[name] {
		// Private field: left lowercase, and readable only from within the
		// same receiver — this is only reachable from `this.x`.
	} else {
		name = capitalizeIdent(name)
	}

	access := fmt.Sprintf("%s.%s", e.emitExpr(n.Object), name)
	if n.Optional {
		return fmt.Sprintf("safeDeref(%s)", access)
	}
	return access
}

func (e *Emitter) emitNew(n *ir.NewExpr) string {
	name, ok := n.Callee.(*ir.IdentifierExpr)
	if !ok {
		return fmt.Sprintf("%s{}", e.emitExpr(n.Callee))
	}
	if name.Name == "Date" {
		e.needImport("time")
		return "time.Now()"
	}
	args := make([]string, 0, len(n.Args))
	for _, a := range n.Args {
		args = append(args, e.emitExpr(a))
	}
	return fmt.Sprintf("New%s(%s)", name.Name, strings.Join(args, ", "))
}

func (e *Emitter) emitBinary(n *ir.BinaryExpr) string {
	switch n.Op {
	case "===":
		return fmt.Sprintf("%s == %s", e.emitExpr(n.Left), e.emitExpr(n.Right))
	case "!==":
		return fmt.Sprintf("%s != %s", e.emitExpr(n.Left), e.emitExpr(n.Right))
	case "??":
		return fmt.Sprintf("coalesce(%s, %s)", e.emitExpr(n.Left), e.emitExpr(n.Right))
	default:
		return fmt.Sprintf("%s %s %s", e.emitExpr(n.Left), n.Op, e.emitExpr(n.Right))
	}
}

func (e *Emitter) emitUnary(n *ir.UnaryExpr) string {
	switch n.Op {
	case "typeof":
		return fmt.Sprintf("runtimeTypeName(%s)", e.emitExpr(n.Arg))
	case "!":
		if id, ok := n.Arg.(*ir.IdentifierExpr); ok && e.looksPointerShaped(id) {
			return fmt.Sprintf("%s == nil", id.Name)
		}
		return fmt.Sprintf("!%s", e.emitExpr(n.Arg))
	case "++", "--":
		if n.Prefix {
			return fmt.Sprintf("%s%s", n.Op, e.emitExpr(n.Arg))
		}
		return fmt.Sprintf("%s%s", e.emitExpr(n.Arg), n.Op)
	default:
		if n.Prefix {
			return fmt.Sprintf("%s%s", n.Op, e.emitExpr(n.Arg))
		}
		return fmt.Sprintf("%s%s", e.emitExpr(n.Arg), n.Op)
	}
}

// looksPointerShaped decides the `!ptr` rewrite rule from the inferred
// type carried on the identifier itself: it reports true when that type
// is a ReferenceType or is absent (nil), and false for any other type.
func (e *Emitter) looksPointerShaped(id *ir.IdentifierExpr) bool {
	_, ok := id.InferredType.(*ir.ReferenceType)
	return ok || id.InferredType == nil
}

func (e *Emitter) emitTemplateLiteral(n *ir.TemplateLiteralExpr) string {
	e.needImport("fmt")
	var format strings.Builder
	args := make([]string, 0, len(n.Exprs))
	for i, q := range n.Quasis {
		format.WriteString(q)
		if i < len(n.Exprs) {
			expr := n.Exprs[i]
			verb := "%v"
			argText := e.emitExpr(expr)
			if id, ok := expr.(*ir.IdentifierExpr); ok {
				if nameHints(id.Name, stringLookalikeNames) {
					verb = "%s"
				}
				if nameHints(id.Name, nullableLikeNames) {
					argText = "*" + argText
				}
			}
			format.WriteString(verb)
			args = append(args, argText)
		}
	}
	call := fmt.Sprintf("fmt.Sprintf(%s", strconv.Quote(format.String()))
	for _, a := range args {
		call += ", " + a
	}
	return call + ")"
}

func capitalizeIdent(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
