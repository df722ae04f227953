// Package errors formats compiler diagnostics with source context,
// line/column information, and a caret pointing at the offending position,
// following the taxonomy in spec.md §7.
package errors

import (
	"fmt"
	"strings"

	"github.com/bel-learning/mila-compiler/internal/token"
)

// Kind is one of the closed set of failure modes spec.md §7 names.
type Kind string

const (
	LexError       Kind = "LexError"
	SyntaxError    Kind = "SyntaxError"
	NotAnLValue    Kind = "NotAnLValue"
	UnknownName    Kind = "UnknownName"
	Redeclaration  Kind = "Redeclaration"
	AssignToConst  Kind = "AssignToConst"
	ArityMismatch  Kind = "ArityMismatch"
	NoEnclosingLoop Kind = "NoEnclosingLoop"
	VerifyError    Kind = "VerifyError"
)

// CompilerError is a single compilation failure with enough context to
// render a source-quoting diagnostic.
type CompilerError struct {
	Kind    Kind
	Pos     token.Position
	Message string
	Source  string
	File    string
}

// New builds a CompilerError. source and file may be empty; Format then
// omits the quoted source line / filename.
func New(kind Kind, pos token.Position, message, source, file string) *CompilerError {
	return &CompilerError{Kind: kind, Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface.
func (e *CompilerError) Error() string { return e.Format(false) }

// Format renders the error with a quoted source line and a caret pointing
// at e.Pos.Column. If color is true, ANSI codes highlight the caret.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s in %s:%s: %s\n", e.Kind, e.File, e.Pos, e.Message)
	} else {
		fmt.Fprintf(&sb, "%s at %s: %s\n", e.Kind, e.Pos, e.Message)
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
	}

	return sb.String()
}

func (e *CompilerError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatErrors renders multiple errors with a blank line between each. This
// is unused by the compiler driver today — spec.md requires the first
// error to abort parsing — but shares the single-error rendering path so
// there is one formatter, not two, should error recovery ever be added.
func FormatErrors(errs []*CompilerError, color bool) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = strings.TrimSuffix(e.Format(color), "\n")
	}
	return strings.Join(parts, "\n\n")
}
