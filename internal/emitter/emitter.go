// Package emitter implements ir.Module -> Go source translation: the
// general contract and per-construct behaviour of spec.md §4.4-4.6.
// Grounded on the retrieval pack's from-scratch Go code generators (e.g.
// a text.Builder-driven walk that defers to go/format.Source for final
// layout, the same two-stage shape used across the pack's codegen tools)
// rather than on go/ast+go/printer construction, since nothing here needs
// to represent Go syntax as a tree — only to produce it.
package emitter

import (
	"fmt"
	"go/format"
	"sort"
	"strings"

	"github.com/semloom/ts2go/internal/config"
	"github.com/semloom/ts2go/internal/diag"
	"github.com/semloom/ts2go/internal/ir"
	"github.com/semloom/ts2go/internal/sourcemap"
	"github.com/semloom/ts2go/internal/typemap"
)

// Emitter walks one ir.Module at a time, accumulating the per-module state
// spec.md §4.4 calls out: an indentation counter, an import set, a
// tuple/union/intersection intern table, the current class context, and
// the current method receiver name for `this` rewrites.
type Emitter struct {
	cfg    *config.Config
	mapper *typemap.Mapper
	diags  *diag.Bag

	buf    strings.Builder
	indent int

	imports     map[string]bool
	generated   map[string]bool
	deferred    []*typemap.DeferredDef
	sm          *sourcemap.Map

	className     string
	privateFields map[string]bool
	fieldTypes    map[string]ir.Type
	receiver      string

	superCall *ir.CallExpr // recorded by the current constructor body, if any
}

// New builds an Emitter bound to cfg. Call EmitModule once per module;
// EmitModule itself resets all per-module state, so one Emitter may be
// reused across a batch run.
func New(cfg *config.Config) *Emitter {
	return &Emitter{cfg: cfg, mapper: typemap.New(cfg)}
}

// Emit translates mod into Go source, returning the formatted source, the
// sorted list of standard-library imports it required, and a raw source
// map. It never aborts: an emission-time problem records a diagnostic on
// the bag returned alongside.
func Emit(mod *ir.Module, cfg *config.Config) (string, []string, *sourcemap.Map, []diag.Diagnostic) {
	e := New(cfg)
	src, imports, sm := e.EmitModule(mod)
	return src, imports, sm, e.diags.All()
}

// reset clears every piece of per-module state. Per spec.md §4.4's "state
// machines" note, the emitter never persists anything across modules.
func (e *Emitter) reset() {
	e.buf.Reset()
	e.indent = 0
	e.imports = map[string]bool{}
	e.generated = map[string]bool{}
	e.deferred = nil
	e.sm = sourcemap.New()
	e.className = ""
	e.privateFields = nil
	e.fieldTypes = nil
	e.receiver = ""
	e.superCall = nil
}

// EmitModule runs the full per-module pipeline: reset, body emission in
// source order with the blank-line policy applied, deferred-type
// rendering, package header assembly, then a go/format.Source pass.
func (e *Emitter) EmitModule(mod *ir.Module) (string, []string, *sourcemap.Map) {
	e.reset()
	e.diags = diag.NewBag(e.cfg.Strict)
	e.sm.AddSource(mod.Path, "")

	exported := make(map[ir.Declaration]bool, len(mod.Exports))
	for _, exp := range mod.Exports {
		if exp.Decl != nil {
			exported[exp.Decl] = true
		}
	}

	var prev ir.Declaration
	for _, d := range mod.Declarations {
		if prev != nil && e.needsBlankLine(prev, d) {
			e.buf.WriteString("\n")
		}
		e.emitDecl(d, exported[d])
		prev = d
	}

	body := e.buf.String()
	if len(e.deferred) > 0 {
		var pre strings.Builder
		// Rendering one deferred def (e.g. a tuple containing another
		// tuple) can queue further defs via typeText, so this walks by
		// index against the live slice rather than ranging over a
		// snapshot of it.
		for i := 0; i < len(e.deferred); i++ {
			pre.WriteString(e.renderDeferred(e.deferred[i]))
			pre.WriteString("\n")
		}
		body = pre.String() + body
	}

	full := e.renderHeader(mod) + body
	if formatted, err := format.Source([]byte(full)); err == nil {
		full = string(formatted)
	} else {
		e.diags.Add(diag.NewDiagnostic(diag.EUnsupportedConstruct, ir.SourceLocation{File: mod.Path}, "",
			fmt.Sprintf("generated source did not parse cleanly: %v", err)))
	}

	return full, e.sortedImports(), e.sm
}

func (e *Emitter) renderHeader(mod *ir.Module) string {
	name := mod.Name
	if name == "" {
		name = "main"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "package %s\n\n", sanitizePackageName(name))
	if imps := e.sortedImports(); len(imps) > 0 {
		sb.WriteString("import (\n")
		for _, imp := range imps {
			fmt.Fprintf(&sb, "\t%q\n", imp)
		}
		sb.WriteString(")\n\n")
	}
	return sb.String()
}

func (e *Emitter) sortedImports() []string {
	out := make([]string, 0, len(e.imports))
	for imp := range e.imports {
		out = append(out, imp)
	}
	sort.Strings(out)
	return out
}

func (e *Emitter) needImport(pkg string) {
	e.imports[pkg] = true
}

// typeText maps t to its target-language spelling, queuing any deferred
// named definition it requires exactly once, keyed by name.
func (e *Emitter) typeText(t ir.Type) string {
	if t == nil {
		return "interface{}"
	}
	s, def := e.mapper.Map(t)
	if def != nil && !e.generated[def.Name] {
		e.generated[def.Name] = true
		e.deferred = append(e.deferred, def)
	}
	return s
}

func (e *Emitter) optionalTypeText(t ir.Type) string {
	if t == nil {
		return "interface{}"
	}
	return e.mapper.MapOptional(t)
}

func (e *Emitter) writeIndent() {
	e.buf.WriteString(strings.Repeat("\t", e.indent))
}

func sanitizePackageName(name string) string {
	name = strings.ToLower(name)
	var sb strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return "main"
	}
	return sb.String()
}

// --- blank-line policy (spec.md §4.4) ---

func declCategory(d ir.Declaration) string {
	switch d.(type) {
	case *ir.VariableDecl:
		return "var"
	case *ir.FunctionDecl:
		return "func"
	default:
		return "type"
	}
}

func (e *Emitter) needsBlankLine(prev, cur ir.Declaration) bool {
	pc, cc := declCategory(prev), declCategory(cur)
	if pc != "var" || cc != "var" {
		return true
	}
	pv, okp := prev.(*ir.VariableDecl)
	cv, okc := cur.(*ir.VariableDecl)
	if !okp || !okc {
		return true
	}
	return !sameVarGroup(pv, cv)
}

func varIsAnyHinted(vd *ir.VariableDecl) bool {
	name := strings.ToLower(vd.DeclName())
	return strings.Contains(name, "any") || strings.Contains(name, "unknown")
}

func varCategory(vd *ir.VariableDecl) string {
	switch vd.Type.(type) {
	case nil:
		return "inferred"
	case *ir.ArrayType:
		return "array"
	default:
		return "scalar"
	}
}

func sameVarGroup(prev, cur *ir.VariableDecl) bool {
	if varIsAnyHinted(prev) || varIsAnyHinted(cur) {
		return false
	}
	return varCategory(prev) == varCategory(cur)
}
