package ir

// ImportSpec is one imported binding within an Import statement.
type ImportSpec struct {
	ImportedName string // name as exported by the source module
	LocalName    string // name bound in this module
	IsDefault    bool
	IsNamespace  bool
}

// Import is a single `import ... from "source"` statement.
type Import struct {
	Location   SourceLocation
	Source     string
	Specifiers []ImportSpec
}

// ExportSpec is one exported binding within an Export statement.
type ExportSpec struct {
	LocalName    string
	ExportedName string
}

// Export is a single `export ...` statement: either a wrapped declaration
// (Decl non-nil) or a specifier list (Specifiers non-nil), optionally a
// re-export naming a Source module.
type Export struct {
	Location   SourceLocation
	Decl       Declaration
	Specifiers []ExportSpec
	Source     string // non-empty for `export {...} from "source"`
	IsDefault  bool
}

// Module is the root IR node for one source file. Per the module
// immutability invariant, every pass (lowering, each optimizer pass,
// re-lowering) produces a new Module rather than mutating an existing one.
type Module struct {
	Name         string
	Path         string
	Declarations []Declaration
	Imports      []Import
	Exports      []Export
}

// Clone produces a shallow top-level copy of m with fresh slices, so a pass
// can append/remove/reorder declarations without aliasing the input's
// backing arrays. Declarations themselves are not deep-copied: passes that
// need to change a declaration must build the new copy directly.
func (m *Module) Clone() *Module {
	out := &Module{
		Name: m.Name,
		Path: m.Path,
	}
	out.Declarations = append(out.Declarations, m.Declarations...)
	out.Imports = append(out.Imports, m.Imports...)
	out.Exports = append(out.Exports, m.Exports...)
	return out
}
