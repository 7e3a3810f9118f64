// Package lowering implements tast.File -> ir.Module translation: every
// rule of spec.md §4.1 (variable-statement splitting, parameter and class
// member handling, interface property lowering, try/catch/throw and
// async/await preservation, template literal splitting, import/export
// capture). Lowering never aborts; an unrecognized shape in the input
// produces a placeholder IR node plus a diagnostic on the side channel,
// grounded on the teacher's internal/semantic passes' non-aborting,
// side-channel-collecting error model (internal/semantic/pass_context.go's
// AddError/AddStructuredError, generalized here to internal/diag.Bag).
package lowering

import (
	"fmt"

	"github.com/semloom/ts2go/internal/config"
	"github.com/semloom/ts2go/internal/diag"
	"github.com/semloom/ts2go/internal/ir"
	"github.com/semloom/ts2go/pkg/tast"
)

type lowerer struct {
	cfg   *config.Config
	diags *diag.Bag
	file  *tast.File
}

// Lower translates one typed-AST file into an IR module under cfg,
// returning every diagnostic recorded along the way.
func Lower(file *tast.File, cfg *config.Config) (*ir.Module, []diag.Diagnostic) {
	l := &lowerer{cfg: cfg, diags: diag.NewBag(cfg.Strict), file: file}

	mod := &ir.Module{Name: file.Name, Path: file.Path}
	for _, imp := range file.Imports {
		mod.Imports = append(mod.Imports, l.lowerImport(imp))
	}

	for _, item := range file.Items {
		switch {
		case item.Decl != nil:
			mod.Declarations = append(mod.Declarations, l.lowerTopDecl(item.Decl)...)
		case item.Export != nil:
			decls, exp := l.lowerExport(item.Export)
			mod.Declarations = append(mod.Declarations, decls...)
			mod.Exports = append(mod.Exports, exp)
		case item.Stmt != nil:
			// A bare top-level statement that is itself a declaration
			// (`class Foo {}` with no `export`) still reaches lowering
			// through item.Stmt when the frontend models it as a
			// declaration-statement rather than a top-level item; any
			// other bare statement (an assignment, a call) has no
			// corresponding ir.Module field and is deliberately dropped
			// here, matching the emitter's documented drop of module-level
			// expression statements in spec.md §4.4.
			if item.Stmt.Kind == tast.StmtDeclaration && item.Stmt.Decl != nil {
				mod.Declarations = append(mod.Declarations, l.lowerTopDecl(item.Stmt.Decl)...)
			}
		}
	}

	return mod, l.diags.All()
}

func (l *lowerer) lowerImport(imp tast.Import) ir.Import {
	specs := make([]ir.ImportSpec, 0, len(imp.Specifiers))
	for _, s := range imp.Specifiers {
		specs = append(specs, ir.ImportSpec{
			ImportedName: s.ImportedName,
			LocalName:    s.LocalName,
			IsDefault:    s.IsDefault,
			IsNamespace:  s.IsNamespace,
		})
	}
	return ir.Import{Location: convLoc(imp.Loc), Source: imp.Source, Specifiers: specs}
}

// lowerExport lowers one export statement. When it wraps a declaration,
// every declaration lowering produces (a variable statement with several
// declarators becomes several VariableDecls) is added to the module's
// declaration list and folded into one ir.Export; when it is a specifier
// list or re-export, only the ir.Export is produced.
func (l *lowerer) lowerExport(e *tast.Export) ([]ir.Declaration, ir.Export) {
	out := ir.Export{
		Location:  convLoc(e.Loc),
		Source:    e.Source,
		IsDefault: e.IsDefault,
	}
	for _, s := range e.Specifiers {
		out.Specifiers = append(out.Specifiers, ir.ExportSpec{
			LocalName:    s.LocalName,
			ExportedName: s.ExportedName,
		})
	}
	if e.Decl == nil {
		return nil, out
	}
	decls := l.lowerTopDecl(e.Decl)
	for _, d := range decls {
		d.Modifiers().Add(ir.ModifierExport)
	}
	if len(decls) > 0 {
		out.Decl = decls[len(decls)-1]
	}
	return decls, out
}

func (l *lowerer) lowerTopDecl(d *tast.Declaration) []ir.Declaration {
	switch d.Kind {
	case tast.DeclVariable:
		return l.lowerVariableDecl(d)
	case tast.DeclFunction:
		return []ir.Declaration{l.lowerFunctionDecl(d)}
	case tast.DeclClass:
		return []ir.Declaration{l.lowerClassDecl(d)}
	case tast.DeclInterface:
		return []ir.Declaration{l.lowerInterfaceDecl(d)}
	case tast.DeclTypeAlias:
		return []ir.Declaration{l.lowerTypeAliasDecl(d)}
	case tast.DeclEnum:
		return []ir.Declaration{l.lowerEnumDecl(d)}
	default:
		l.unsupported(convLoc(d.Loc), "declaration kind %q", string(d.Kind))
		placeholder := &ir.VariableDecl{Init: l.placeholderIdent(convLoc(d.Loc))}
		placeholder.Name = d.Name
		placeholder.Location = convLoc(d.Loc)
		return []ir.Declaration{placeholder}
	}
}

func (l *lowerer) unsupported(loc ir.SourceLocation, format string, args ...any) {
	l.diags.Add(diag.NewDiagnostic(diag.EUnsupportedConstruct, loc, "", fmt.Sprintf(format, args...)))
}

func (l *lowerer) placeholderIdent(loc ir.SourceLocation) *ir.IdentifierExpr {
	n := &ir.IdentifierExpr{Name: "unknown"}
	n.Location = loc
	return n
}

func convLoc(l tast.Location) ir.SourceLocation {
	return ir.SourceLocation{
		File:  l.File,
		Start: ir.Position{Line: l.Start.Line, Column: l.Start.Column, Offset: l.Start.Offset},
		End:   ir.Position{Line: l.End.Line, Column: l.End.Column, Offset: l.End.Offset},
	}
}

