// Package diag implements the error taxonomy and formatting described in
// spec.md §7: E1xxx syntax-stage problems, E2xxx type-system problems,
// E3xxx unsupported constructs, W4xxx semantics-changing-but-supported
// warnings. Formatting is grounded on the teacher's internal/errors
// package (CompilerError.Format: a file:line:col header, a source-line
// snippet with a caret, then the message) extended with diagnostic codes
// and an optional help hint.
package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/semloom/ts2go/internal/ir"
)

// Code is a diagnostic code in one of the four taxonomy ranges.
type Code string

const (
	// E1xxx - syntax-stage problems in the input typed AST.
	ESyntaxUnparseableInitializer Code = "E1001"

	// E2xxx - type-system problems.
	ETypeUnionTooWide           Code = "E2001"
	ETypeIntersectionConflict   Code = "E2002"
	ETypeIncomplete             Code = "E2003"

	// E3xxx - unsupported constructs.
	EUnsupportedConstruct  Code = "E3001"
	EUnsupportedDecorator  Code = "E3002"
	EUnsupportedDynamic    Code = "E3003"
	EUnsupportedTryCatch   Code = "E3004"

	// W4xxx - supported but semantics-changing.
	WAnyRoundTrip       Code = "W4001"
	WNumericTruncation  Code = "W4002"
	WZeroValueAsNull    Code = "W4003"
)

// Severity distinguishes an error from a warning. Only Error severity
// triggers pipeline abort under strict mode (see §7's propagation rule).
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is one reported problem, keyed to a source location.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Message  string
	Loc      ir.SourceLocation
	Source   string // the offending file's full text, for snippet extraction
	Help     string // optional hint appended after the message
}

// NewDiagnostic builds a Diagnostic, inferring severity from the code's
// range (E-prefixed codes are errors, W-prefixed codes are warnings).
func NewDiagnostic(code Code, loc ir.SourceLocation, source, message string) Diagnostic {
	sev := SeverityError
	if strings.HasPrefix(string(code), "W") {
		sev = SeverityWarning
	}
	return Diagnostic{Code: code, Severity: sev, Message: message, Loc: loc, Source: source}
}

// WithHelp returns a copy of d with Help set.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}

// Format renders d as a one-line summary, a caret-pointed snippet, and an
// optional help hint — the layout spec.md §7 calls for. Colorized output
// uses the same inline ANSI codes the teacher's CompilerError.Format uses;
// user-facing CLI chrome around it is colorized separately by cmd/ts2go
// with github.com/fatih/color.
func (d Diagnostic) Format(color bool) string {
	var sb strings.Builder

	header := fmt.Sprintf("%s[%s]", d.Severity, d.Code)
	if d.Loc.File != "" {
		fmt.Fprintf(&sb, "%s: %s at %s:%d:%d\n", header, d.Message, d.Loc.File, d.Loc.Start.Line, d.Loc.Start.Column)
	} else {
		fmt.Fprintf(&sb, "%s: %s at %d:%d\n", header, d.Message, d.Loc.Start.Line, d.Loc.Start.Column)
	}

	if line := d.sourceLine(d.Loc.Start.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", d.Loc.Start.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+max0(d.Loc.Start.Column-1)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if d.Help != "" {
		fmt.Fprintf(&sb, "help: %s\n", d.Help)
	}

	return sb.String()
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func (d Diagnostic) sourceLine(lineNum int) string {
	if d.Source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(d.Source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// Bag accumulates diagnostics during a single pipeline run (lowering,
// optimization, emission) and is the side-channel spec.md §7 describes:
// errors never abort a single module's pipeline unless Strict is set.
// RunID stamps every bag with a UUID so a multi-module driver can join
// log lines for one run across modules — an ambient concern the core
// itself never reads back, only produces.
type Bag struct {
	RunID       string
	Strict      bool
	diagnostics []Diagnostic
}

// NewBag creates an empty diagnostic bag with a fresh run id.
func NewBag(strict bool) *Bag {
	return &Bag{RunID: uuid.NewString(), Strict: strict}
}

// Add appends d to the bag.
func (b *Bag) Add(d Diagnostic) {
	b.diagnostics = append(b.diagnostics, d)
}

// HasErrors reports whether any SeverityError diagnostic was recorded.
func (b *Bag) HasErrors() bool {
	for _, d := range b.diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ShouldAbort reports whether the pipeline should stop given Strict mode
// and the errors accumulated so far.
func (b *Bag) ShouldAbort() bool {
	return b.Strict && b.HasErrors()
}

// All returns every diagnostic recorded in the bag, in recorded order.
func (b *Bag) All() []Diagnostic {
	return b.diagnostics
}

// FormatGrouped renders every diagnostic grouped by file, per spec.md §7's
// "multi-error output is grouped by file" rule.
func FormatGrouped(diags []Diagnostic, color bool) string {
	if len(diags) == 0 {
		return ""
	}

	byFile := make(map[string][]Diagnostic)
	var files []string
	for _, d := range diags {
		f := d.Loc.File
		if _, ok := byFile[f]; !ok {
			files = append(files, f)
		}
		byFile[f] = append(byFile[f], d)
	}
	sort.Strings(files)

	var sb strings.Builder
	for _, f := range files {
		name := f
		if name == "" {
			name = "<unknown>"
		}
		fmt.Fprintf(&sb, "%s:\n", name)
		for _, d := range byFile[f] {
			sb.WriteString(d.Format(color))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
