package parser

import (
	"testing"

	"github.com/bel-learning/mila-compiler/internal/ast"
	"github.com/bel-learning/mila-compiler/internal/lexer"
)

func parseProgram(t *testing.T, source string) *ast.Program {
	t.Helper()
	l := lexer.New(source)
	p := New(l, source, "<test>")
	prog, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return prog
}

func TestParseMinimalProgram(t *testing.T) {
	prog := parseProgram(t, "program p; begin end.")
	if prog.Name != "p" {
		t.Fatalf("want program name %q, got %q", "p", prog.Name)
	}
	if len(prog.Main.Statements) != 0 {
		t.Fatalf("want empty main block, got %d statements", len(prog.Main.Statements))
	}
}

func TestParsePrecedenceClimbing(t *testing.T) {
	// "+" and "*" must bind tighter than "or", and "*" tighter than "+".
	prog := parseProgram(t, "program p; begin x := 1 + 2 * 3 or 4; end.")
	assign := prog.Main.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.BinaryExpr)
	or := assign.Right.(*ast.BinaryExpr)
	sum := or.Left.(*ast.BinaryExpr)
	product := sum.Right.(*ast.BinaryExpr)
	if product.Left.String() != "2" || product.Right.String() != "3" {
		t.Fatalf("expected 2 * 3 nested under +, got %s", sum.String())
	}
}

func TestParseAssignRightAssociative(t *testing.T) {
	prog := parseProgram(t, "program p; begin a := b := 1; end.")
	outer := prog.Main.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.BinaryExpr)
	if outer.Left.String() != "a" {
		t.Fatalf("want outer LHS a, got %s", outer.Left.String())
	}
	inner, ok := outer.Right.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("want nested assignment on the right, got %T", outer.Right)
	}
	if inner.Left.String() != "b" {
		t.Fatalf("want inner LHS b, got %s", inner.Left.String())
	}
}

func TestParseNotAnLValue(t *testing.T) {
	l := lexer.New("program p; begin 1 := 2; end.")
	p := New(l, "1 := 2", "<test>")
	_, err := p.ParseProgram()
	if err == nil {
		t.Fatal("expected NotAnLValue error")
	}
}

func TestParseCallExpr(t *testing.T) {
	prog := parseProgram(t, "program p; begin writeln(1, 2); end.")
	call := prog.Main.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.CallExpr)
	if call.Callee != "writeln" || len(call.Args) != 2 {
		t.Fatalf("want writeln(1, 2), got %s", call.String())
	}
}

func TestParseForDowntoAndIf(t *testing.T) {
	prog := parseProgram(t, `program p;
var i: integer;
begin
  for i := 10 downto 1 do
    if i = 5 then writeln(i) else writeln(0);
end.`)
	forStmt := prog.Main.Statements[0].(*ast.ForStmt)
	if !forStmt.Downto {
		t.Fatal("want Downto true")
	}
	if _, ok := forStmt.Body.(*ast.IfStmt); !ok {
		t.Fatalf("want if-statement body, got %T", forStmt.Body)
	}
}

func TestParseFunctionForwardThenBody(t *testing.T) {
	prog := parseProgram(t, `program p;
function f(a: integer): integer; forward;
function f(a: integer): integer;
begin
  f := a + 1;
end;
begin
end.`)
	if len(prog.Functions) != 2 {
		t.Fatalf("want 2 declarations (forward + body), got %d", len(prog.Functions))
	}
	if prog.Functions[0].Body != nil {
		t.Fatal("want first declaration to be a forward declaration")
	}
	if prog.Functions[1].Body == nil {
		t.Fatal("want second declaration to carry a body")
	}
}

func TestParseConstBlock(t *testing.T) {
	prog := parseProgram(t, "program p; const k = $10; begin end.")
	decl := prog.MainLocals[0]
	if !decl.Const || decl.Name != "k" {
		t.Fatalf("want const k, got %+v", decl)
	}
	lit := decl.Init.(*ast.IntegerLiteral)
	if lit.Value != 16 {
		t.Fatalf("want 16, got %d", lit.Value)
	}
}

func TestASTRoundTrip(t *testing.T) {
	source := "program p; var x: integer; begin x := 1 + 2; while x < 10 do x := x + 1; end."
	prog := parseProgram(t, source)
	printed := prog.String()

	reprog := parseProgram(t, printed)
	if reprog.String() != printed {
		t.Fatalf("round-trip mismatch:\nfirst:  %s\nsecond: %s", printed, reprog.String())
	}
}
