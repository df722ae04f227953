package errors

import (
	"strings"
	"testing"

	"github.com/bel-learning/mila-compiler/internal/token"
)

func TestFormatQuotesSourceLineWithCaret(t *testing.T) {
	source := "program p;\nbegin\n  writeln(x);\nend."
	pos := token.Position{Line: 3, Column: 11}
	err := New(UnknownName, pos, `undeclared name "x"`, source, "prog.mila")

	out := err.Format(false)
	if !strings.Contains(out, "UnknownName in prog.mila:3:11") {
		t.Fatalf("missing header line, got:\n%s", out)
	}
	if !strings.Contains(out, "writeln(x);") {
		t.Fatalf("missing quoted source line, got:\n%s", out)
	}
	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d:\n%s", len(lines), out)
	}
	caretLine := lines[2]
	if !strings.HasSuffix(caretLine, "^") {
		t.Fatalf("expected caret line to end in ^, got %q", caretLine)
	}
}

func TestFormatWithoutSourceOmitsQuotedLine(t *testing.T) {
	pos := token.Position{Line: 1, Column: 1}
	err := New(SyntaxError, pos, "unexpected token", "", "")

	out := err.Format(false)
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected exactly one trailing newline with no quoted source, got:\n%q", out)
	}
	if !strings.HasPrefix(out, "SyntaxError at 1:1:") {
		t.Fatalf("expected file-less header, got:\n%s", out)
	}
}

func TestErrorImplementsErrorInterface(t *testing.T) {
	var err error = New(VerifyError, token.Position{}, "boom", "", "")
	if err.Error() == "" {
		t.Fatal("expected a non-empty Error() string")
	}
}

func TestFormatErrorsJoinsWithBlankLine(t *testing.T) {
	errs := []*CompilerError{
		New(LexError, token.Position{Line: 1, Column: 1}, "bad char", "", ""),
		New(SyntaxError, token.Position{Line: 2, Column: 1}, "bad token", "", ""),
	}
	out := FormatErrors(errs, false)
	if !strings.Contains(out, "LexError") || !strings.Contains(out, "SyntaxError") {
		t.Fatalf("expected both errors rendered, got:\n%s", out)
	}
}
