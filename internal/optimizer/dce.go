package optimizer

import (
	"github.com/semloom/ts2go/internal/ir"
)

// DeadCodeElimination drops top-level declarations never reachable from an
// export or from another kept declaration. It runs to a fixed point
// (spec.md §4.2): collecting the referenced-symbol set from the
// currently-kept declarations can itself bring new declarations into the
// kept set (a kept function may reference a helper that nothing else
// does), so the pass repeats collection until a pass adds nothing.
type DeadCodeElimination struct{}

func (DeadCodeElimination) Name() string { return "dead-code-elimination" }

func (DeadCodeElimination) Run(m *ir.Module, ctx *Context) (*ir.Module, error) {
	byName := make(map[string]ir.Declaration, len(m.Declarations))
	for _, d := range m.Declarations {
		byName[d.DeclName()] = d
	}

	kept := make(map[string]bool)
	for _, exp := range m.Exports {
		if exp.Decl != nil {
			kept[exp.Decl.DeclName()] = true
		}
		for _, spec := range exp.Specifiers {
			kept[spec.LocalName] = true
		}
	}
	// A declaration can also be exported without going through an
	// ir.Export wrapper at all: lowering's item.Decl path (lowering.go's
	// bare-declaration branch) carries `export` only as a modifier on the
	// declaration itself.
	for _, d := range m.Declarations {
		if d.Modifiers().Has(ir.ModifierExport) {
			kept[d.DeclName()] = true
		}
	}

	for {
		refs := make(map[string]struct{})
		for name := range kept {
			if d, ok := byName[name]; ok {
				collectReferences(d, refs)
			}
		}
		added := false
		for name := range refs {
			if !kept[name] {
				if _, exists := byName[name]; exists {
					kept[name] = true
					added = true
				}
			}
		}
		if !added {
			break
		}
	}

	out := m.Clone()
	filtered := out.Declarations[:0]
	for _, d := range m.Declarations {
		if kept[d.DeclName()] {
			filtered = append(filtered, d)
		}
	}
	out.Declarations = filtered
	return out, nil
}

// collectReferences walks d and every node reachable from it, recording
// every identifier name encountered as a possible reference to another
// top-level declaration. Over-collection is harmless here — a local
// variable named the same as a sibling top-level declaration merely keeps
// that declaration one round early, which a fixed-point pass can't get
// wrong, only conservative.
func collectReferences(d ir.Declaration, refs map[string]struct{}) {
	c := &referenceCollector{refs: refs}
	ir.WalkDeep(c, d)
}

type referenceCollector struct {
	ir.NoOpVisitor
	refs map[string]struct{}
}

func (c *referenceCollector) VisitIdentifier(n *ir.IdentifierExpr) {
	c.refs[n.Name] = struct{}{}
}

func (c *referenceCollector) VisitClassDecl(n *ir.ClassDecl) {
	if n.Parent != "" {
		c.refs[n.Parent] = struct{}{}
	}
	for _, i := range n.Interfaces {
		c.refs[i] = struct{}{}
	}
}

func (c *referenceCollector) VisitInterfaceDecl(n *ir.InterfaceDecl) {
	for _, e := range n.Extends {
		c.refs[e] = struct{}{}
	}
}
