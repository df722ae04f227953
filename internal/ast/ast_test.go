package ast

import (
	"testing"

	"github.com/bel-learning/mila-compiler/internal/token"
)

func TestBinaryExprStringParenthesizes(t *testing.T) {
	left := &IntegerLiteral{Value: 1}
	right := &IntegerLiteral{Value: 2}
	expr := &BinaryExpr{Operator: token.PLUS, Left: left, Right: right}

	want := "(1 + 2)"
	if got := expr.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestUnaryExprStringWrapsOperand(t *testing.T) {
	expr := &UnaryExpr{Operator: token.NOT, Operand: &NameRef{Name: "x"}}

	want := "(not x)"
	if got := expr.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestBlockStringIndentsStatements(t *testing.T) {
	b := &Block{Statements: []Statement{
		&ExpressionStatement{Expr: &NameRef{Name: "x"}},
	}}

	want := "begin\n  x;\nend"
	if got := b.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestVarDeclStringConstVsVar(t *testing.T) {
	c := &VarDecl{Name: "k", Const: true, Init: &IntegerLiteral{Value: 5}}
	if got, want := c.String(), "const k = 5"; got != want {
		t.Fatalf("const String() = %q, want %q", got, want)
	}

	v := &VarDecl{Name: "x", Type: &TypeExpr{Name: "integer"}}
	if got, want := v.String(), "var x: integer"; got != want {
		t.Fatalf("var String() = %q, want %q", got, want)
	}
}

func TestPosPropagatesFromChildren(t *testing.T) {
	pos := token.Position{Line: 3, Column: 7}
	left := &NameRef{Token: token.Token{Pos: pos}, Name: "a"}
	expr := &BinaryExpr{Operator: token.PLUS, Left: left, Right: &IntegerLiteral{Value: 1}}

	if got := expr.Pos(); got != pos {
		t.Fatalf("Pos() = %+v, want %+v", got, pos)
	}
}
