// Package ir defines the semantic intermediate representation that sits
// between a frontend-produced typed AST and the target-language emitter.
package ir

import "fmt"

// Position is a single point in a source file.
type Position struct {
	Line   int
	Column int
	Offset int
}

// SourceLocation spans from Start to End in File. Every IR node carries one;
// lowering synthesizes a zero-value-derived location only when composing a
// node that has no direct source counterpart (see Module invariant 1).
type SourceLocation struct {
	File  string
	Start Position
	End   Position
}

// String renders "file:line:col", the form diagnostics key off.
func (l SourceLocation) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Start.Line, l.Start.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Start.Line, l.Start.Column)
}

// Synthetic reports whether this location was fabricated by a lowering or
// optimizer pass rather than copied from a source node.
func (l SourceLocation) Synthetic() bool {
	return l.Start == Position{} && l.End == Position{}
}
