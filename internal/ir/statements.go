package ir

// Statement is the sum of all IR statement kinds.
type Statement interface {
	Node
	stmt()
}

type stmtBase struct {
	Location SourceLocation
}

func (s *stmtBase) Loc() SourceLocation { return s.Location }
func (s *stmtBase) stmt()               {}

// BlockStmt is `{ ...statements }`.
type BlockStmt struct {
	stmtBase
	Statements []Statement
}

func (n *BlockStmt) Accept(v Visitor) { v.VisitBlock(n) }

// ExpressionStmt wraps an expression used in statement position.
type ExpressionStmt struct {
	stmtBase
	Expression Expression
}

func (n *ExpressionStmt) Accept(v Visitor) { v.VisitExpressionStmt(n) }

// ReturnStmt is `return [argument];`.
type ReturnStmt struct {
	stmtBase
	Argument Expression
}

func (n *ReturnStmt) Accept(v Visitor) { v.VisitReturn(n) }

// IfStmt is `if (test) cons [else alt]`.
type IfStmt struct {
	stmtBase
	Test Expression
	Cons Statement
	Alt  Statement
}

func (n *IfStmt) Accept(v Visitor) { v.VisitIf(n) }

// WhileStmt is `while (test) body`.
type WhileStmt struct {
	stmtBase
	Test Expression
	Body Statement
}

func (n *WhileStmt) Accept(v Visitor) { v.VisitWhile(n) }

// ForStmt is a classic C-style `for (init; test; update) body`. Any of
// Init/Test/Update may be nil.
type ForStmt struct {
	stmtBase
	Init   Statement
	Test   Expression
	Update Expression
	Body   Statement
}

func (n *ForStmt) Accept(v Visitor) { v.VisitFor(n) }

// ForOfStmt is `for (const x of iterable) body` (also used to lower
// `for...in`, with IsIn set).
type ForOfStmt struct {
	stmtBase
	VarName  string
	IsConst  bool
	IsIn     bool
	Iterable Expression
	Body     Statement
}

func (n *ForOfStmt) Accept(v Visitor) { v.VisitForOf(n) }

// CatchClause is the `catch (param) { body }` part of a try statement.
type CatchClause struct {
	stmtBase
	Param string
	Body  *BlockStmt
}

func (n *CatchClause) Accept(v Visitor) { v.VisitCatch(n) }

// TryStmt is `try { block } [catch (...) { ... }] [finally { ... }]`.
type TryStmt struct {
	stmtBase
	Block     *BlockStmt
	Handler   *CatchClause
	Finalizer *BlockStmt
}

func (n *TryStmt) Accept(v Visitor) { v.VisitTry(n) }

// ThrowStmt is `throw argument;`.
type ThrowStmt struct {
	stmtBase
	Argument Expression
}

func (n *ThrowStmt) Accept(v Visitor) { v.VisitThrow(n) }

// CaseClause is one `case test:` (Test nil for `default:`) arm of a switch.
type CaseClause struct {
	stmtBase
	Test       Expression
	Statements []Statement
}

func (n *CaseClause) Accept(v Visitor) { v.VisitCase(n) }

// SwitchStmt is `switch (discriminant) { cases... }`.
type SwitchStmt struct {
	stmtBase
	Discriminant Expression
	Cases        []*CaseClause
}

func (n *SwitchStmt) Accept(v Visitor) { v.VisitSwitch(n) }

// BreakStmt is `break;`.
type BreakStmt struct {
	stmtBase
}

func (n *BreakStmt) Accept(v Visitor) { v.VisitBreak(n) }

// ContinueStmt is `continue;`.
type ContinueStmt struct {
	stmtBase
}

func (n *ContinueStmt) Accept(v Visitor) { v.VisitContinue(n) }

// DeclarationStmt wraps a Declaration appearing in statement position
// (e.g. a local class or function declaration nested in a block).
type DeclarationStmt struct {
	stmtBase
	Decl Declaration
}

func (n *DeclarationStmt) Accept(v Visitor) { v.VisitDeclarationStmt(n) }
