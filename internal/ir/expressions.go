package ir

// Expression is the sum of all IR expression kinds. Every expression
// carries its own SourceLocation and an optional InferredType set by
// lowering or left nil for the emitter to infer (type completeness
// invariant applies to declarations, not every intermediate expression).
type Expression interface {
	Node
	expr()
}

// Node is implemented by every IR node — declarations, statements,
// expressions, and the module itself — so that the visitor has one
// entry point regardless of node family.
type Node interface {
	Loc() SourceLocation
	Accept(v Visitor)
}

type exprBase struct {
	Location     SourceLocation
	InferredType Type
}

func (e *exprBase) Loc() SourceLocation { return e.Location }
func (e *exprBase) expr()               {}

// IdentifierExpr references a named binding.
type IdentifierExpr struct {
	exprBase
	Name string
}

func (n *IdentifierExpr) Accept(v Visitor) { v.VisitIdentifier(n) }

// LiteralKindExpr mirrors LiteralKind plus null/undefined, which have no
// literal *type* counterpart but do have literal *expression* forms.
type ExprLiteralKind string

const (
	ExprLiteralString    ExprLiteralKind = "string"
	ExprLiteralNumber    ExprLiteralKind = "number"
	ExprLiteralBoolean   ExprLiteralKind = "boolean"
	ExprLiteralNull      ExprLiteralKind = "null"
	ExprLiteralUndefined ExprLiteralKind = "undefined"
)

// LiteralExpr is a literal value.
type LiteralExpr struct {
	exprBase
	Kind  ExprLiteralKind
	Value any
}

func (n *LiteralExpr) Accept(v Visitor) { v.VisitLiteral(n) }

// ArrayExpr is an array literal `[a, b, c]`.
type ArrayExpr struct {
	exprBase
	Elements []Expression
}

func (n *ArrayExpr) Accept(v Visitor) { v.VisitArray(n) }

// ObjectProperty is one `key: value` pair of an object literal.
type ObjectProperty struct {
	Key      string
	Computed bool
	Value    Expression
	Spread   bool
}

// ObjectExpr is an object literal `{ a: 1, b: 2 }`.
type ObjectExpr struct {
	exprBase
	Properties []ObjectProperty
}

func (n *ObjectExpr) Accept(v Visitor) { v.VisitObject(n) }

// PropertyExpr is a standalone property-shorthand expression used inside
// destructuring and object-pattern contexts.
type PropertyExpr struct {
	exprBase
	Name  string
	Value Expression
}

func (n *PropertyExpr) Accept(v Visitor) { v.VisitProperty(n) }

// FunctionExpr is a named or anonymous function expression.
type FunctionExpr struct {
	exprBase
	Name       string
	Params     []Parameter
	Ret        Type
	TypeParams []TypeParameter
	Body       *BlockStmt
	IsAsync    bool
}

func (n *FunctionExpr) Accept(v Visitor) { v.VisitFunction(n) }

// ArrowExpr is an arrow function; Body is either a *BlockStmt (braced body)
// or a single Expression (concise body) — exactly one is non-nil.
type ArrowExpr struct {
	exprBase
	Params     []Parameter
	Ret        Type
	Body       *BlockStmt
	ExprBody   Expression
	IsAsync    bool
}

func (n *ArrowExpr) Accept(v Visitor) { v.VisitArrow(n) }

// CallExpr is a function/method call `callee(args...)`.
type CallExpr struct {
	exprBase
	Callee   Expression
	Args     []Expression
	TypeArgs []Type
	Optional bool
}

func (n *CallExpr) Accept(v Visitor) { v.VisitCall(n) }

// MemberExpr is `object.property` or `object[property]` (Computed=true),
// with Optional set for `?.` chains.
type MemberExpr struct {
	exprBase
	Object   Expression
	Property Expression
	Computed bool
	Optional bool
}

func (n *MemberExpr) Accept(v Visitor) { v.VisitMember(n) }

// NewExpr is `new Callee(args...)`.
type NewExpr struct {
	exprBase
	Callee Expression
	Args   []Expression
}

func (n *NewExpr) Accept(v Visitor) { v.VisitNew(n) }

// SuperExpr is the bare `super` reference.
type SuperExpr struct {
	exprBase
}

func (n *SuperExpr) Accept(v Visitor) { v.VisitSuper(n) }

// BinaryExpr is a binary operation `left op right`.
type BinaryExpr struct {
	exprBase
	Op    string
	Left  Expression
	Right Expression
}

func (n *BinaryExpr) Accept(v Visitor) { v.VisitBinary(n) }

// UnaryExpr is a unary operation; Prefix distinguishes `++x` from `x++`.
type UnaryExpr struct {
	exprBase
	Op     string
	Arg    Expression
	Prefix bool
}

func (n *UnaryExpr) Accept(v Visitor) { v.VisitUnary(n) }

// AssignmentExpr is `left op= right` (Op is "=" for a plain assignment).
type AssignmentExpr struct {
	exprBase
	Op    string
	Left  Expression
	Right Expression
}

func (n *AssignmentExpr) Accept(v Visitor) { v.VisitAssignment(n) }

// ConditionalExpr is the ternary `test ? cons : alt`.
type ConditionalExpr struct {
	exprBase
	Test Expression
	Cons Expression
	Alt  Expression
}

func (n *ConditionalExpr) Accept(v Visitor) { v.VisitConditional(n) }

// AwaitExpr is `await arg`.
type AwaitExpr struct {
	exprBase
	Arg Expression
}

func (n *AwaitExpr) Accept(v Visitor) { v.VisitAwait(n) }

// SpreadExpr is `...arg`.
type SpreadExpr struct {
	exprBase
	Arg Expression
}

func (n *SpreadExpr) Accept(v Visitor) { v.VisitSpread(n) }

// TemplateLiteralExpr is a template literal with len(Quasis) == len(Exprs)+1.
type TemplateLiteralExpr struct {
	exprBase
	Quasis []string
	Exprs  []Expression
}

func (n *TemplateLiteralExpr) Accept(v Visitor) { v.VisitTemplateLiteral(n) }
