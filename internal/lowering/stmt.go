package lowering

import (
	"github.com/semloom/ts2go/internal/ir"
	"github.com/semloom/ts2go/pkg/tast"
)

func (l *lowerer) lowerStmt(s *tast.Statement) ir.Statement {
	if s == nil {
		return nil
	}

	loc := convLoc(s.Loc)
	var out ir.Statement

	switch s.Kind {
	case tast.StmtBlock:
		out = &ir.BlockStmt{Statements: l.lowerStmts(s.Statements)}
	case tast.StmtExpression:
		out = &ir.ExpressionStmt{Expression: l.lowerExpr(s.Expression)}
	case tast.StmtReturn:
		out = &ir.ReturnStmt{Argument: l.lowerExpr(s.Argument)}
	case tast.StmtIf:
		out = &ir.IfStmt{Test: l.lowerExpr(s.Test), Cons: l.lowerStmt(s.Cons), Alt: l.lowerStmt(s.Alt)}
	case tast.StmtWhile:
		out = &ir.WhileStmt{Test: l.lowerExpr(s.Test), Body: l.lowerStmt(s.Body)}
	case tast.StmtFor:
		out = &ir.ForStmt{
			Init:   l.lowerStmt(s.Init),
			Test:   l.lowerExpr(s.Test),
			Update: l.lowerExpr(s.Update),
			Body:   l.lowerStmt(s.Body),
		}
	case tast.StmtForOf:
		out = &ir.ForOfStmt{
			VarName:  s.VarName,
			IsConst:  s.IsConst,
			IsIn:     s.IsIn,
			Iterable: l.lowerExpr(s.Iterable),
			Body:     l.lowerStmt(s.Body),
		}
	case tast.StmtTry:
		out = &ir.TryStmt{
			Block:     l.lowerBlock(s.Block),
			Handler:   l.lowerCatch(s.Handler),
			Finalizer: l.lowerBlock(s.Finalizer),
		}
	case tast.StmtThrow:
		out = &ir.ThrowStmt{Argument: l.lowerExpr(s.Argument)}
	case tast.StmtSwitch:
		out = &ir.SwitchStmt{Discriminant: l.lowerExpr(s.Discriminant), Cases: l.lowerCases(s.Cases)}
	case tast.StmtBreak:
		out = &ir.BreakStmt{}
	case tast.StmtContinue:
		out = &ir.ContinueStmt{}
	case tast.StmtDeclaration:
		if s.Decl == nil {
			l.unsupported(loc, "declaration statement with no decl")
			out = &ir.ExpressionStmt{Expression: l.placeholderIdent(loc)}
			break
		}
		decls := l.lowerTopDecl(s.Decl)
		if len(decls) == 0 {
			out = &ir.ExpressionStmt{Expression: l.placeholderIdent(loc)}
			break
		}
		out = &ir.DeclarationStmt{Decl: decls[0]}
	default:
		l.unsupported(loc, "statement kind %q", string(s.Kind))
		out = &ir.ExpressionStmt{Expression: l.placeholderIdent(loc)}
	}

	setStmtLoc(out, loc)
	return out
}

// setStmtLoc stamps the promoted Location field every ir.XStmt carries via
// its embedded, unexported stmtBase — set by selector assignment since a
// composite literal from outside package ir cannot name stmtBase itself,
// and cross-package positional literals are equally barred once any field
// of the struct is unexported.
func setStmtLoc(s ir.Statement, loc ir.SourceLocation) {
	switch n := s.(type) {
	case *ir.BlockStmt:
		n.Location = loc
	case *ir.ExpressionStmt:
		n.Location = loc
	case *ir.ReturnStmt:
		n.Location = loc
	case *ir.IfStmt:
		n.Location = loc
	case *ir.WhileStmt:
		n.Location = loc
	case *ir.ForStmt:
		n.Location = loc
	case *ir.ForOfStmt:
		n.Location = loc
	case *ir.TryStmt:
		n.Location = loc
	case *ir.ThrowStmt:
		n.Location = loc
	case *ir.SwitchStmt:
		n.Location = loc
	case *ir.BreakStmt:
		n.Location = loc
	case *ir.ContinueStmt:
		n.Location = loc
	case *ir.DeclarationStmt:
		n.Location = loc
	}
}

// lowerStmts lowers a statement list, flattening a StmtDeclaration that
// wraps a multi-declarator variable statement (`let a = 1, b = 2;`) into
// several sibling DeclarationStmt entries rather than nesting them inside
// one synthetic block — the nested-scope generalization of the top-level
// variable-statement splitting rule.
func (l *lowerer) lowerStmts(ss []tast.Statement) []ir.Statement {
	if ss == nil {
		return nil
	}
	out := make([]ir.Statement, 0, len(ss))
	for i := range ss {
		s := &ss[i]
		if s.Kind == tast.StmtDeclaration && s.Decl != nil && s.Decl.Kind == tast.DeclVariable {
			loc := convLoc(s.Loc)
			for _, d := range l.lowerTopDecl(s.Decl) {
				ds := &ir.DeclarationStmt{Decl: d}
				ds.Location = loc
				out = append(out, ds)
			}
			continue
		}
		out = append(out, l.lowerStmt(s))
	}
	return out
}

func (l *lowerer) lowerBlock(s *tast.Statement) *ir.BlockStmt {
	if s == nil {
		return nil
	}
	b := &ir.BlockStmt{Statements: l.lowerStmts(s.Statements)}
	b.Location = convLoc(s.Loc)
	return b
}

func (l *lowerer) lowerBlockPtr(s *tast.Statement) *ir.BlockStmt {
	return l.lowerBlock(s)
}

func (l *lowerer) lowerCatch(c *tast.CatchClause) *ir.CatchClause {
	if c == nil {
		return nil
	}
	cc := &ir.CatchClause{Param: c.Param, Body: l.lowerBlock(&c.Body)}
	cc.Location = convLoc(c.Body.Loc)
	return cc
}

func (l *lowerer) lowerCases(cs []tast.CaseClause) []*ir.CaseClause {
	if cs == nil {
		return nil
	}
	out := make([]*ir.CaseClause, 0, len(cs))
	for _, c := range cs {
		out = append(out, &ir.CaseClause{Test: l.lowerExpr(c.Test), Statements: l.lowerStmts(c.Statements)})
	}
	return out
}
