package ast

import (
	"fmt"
	"strings"

	"github.com/bel-learning/mila-compiler/internal/token"
)

// BinaryExpr covers every binary operator the grammar defines, including
// assignment (`:=`), which is modeled as a binary operator for parser
// uniformity per spec.md §3.
type BinaryExpr struct {
	Operator token.Type
	Left     Expression
	Right    Expression
	OpPos    token.Position
}

func (n *BinaryExpr) expressionNode()     {}
func (n *BinaryExpr) Pos() token.Position { return n.Left.Pos() }
func (n *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left.String(), n.Operator.String(), n.Right.String())
}

// CallExpr is a function or procedure call, or the `dec`/`readln` intrinsics
// lowering special-cases.
type CallExpr struct {
	Token  token.Token // the callee identifier token
	Callee string
	Args   []Expression
}

func (n *CallExpr) expressionNode()     {}
func (n *CallExpr) Pos() token.Position { return n.Token.Pos }
func (n *CallExpr) String() string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", n.Callee, strings.Join(args, ", "))
}

// UnaryExpr is the prefix `not` operator. spec.md §4.2's precedence table
// pins `not` as a prefix unary at precedence 50 but its primary-expression
// bullet list does not enumerate a unary production; this node supplements
// that gap (see DESIGN.md) so the precedence entry is not dead weight.
type UnaryExpr struct {
	Token    token.Token // 'not'
	Operator token.Type
	Operand  Expression
}

func (n *UnaryExpr) expressionNode()     {}
func (n *UnaryExpr) Pos() token.Position { return n.Token.Pos }
func (n *UnaryExpr) String() string {
	return fmt.Sprintf("(%s %s)", n.Operator.String(), n.Operand.String())
}
