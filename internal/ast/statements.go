package ast

import (
	"strings"

	"github.com/bel-learning/mila-compiler/internal/token"
)

// Block is an ordered sequence of statements delimited by `begin`/`end`.
type Block struct {
	Token      token.Token // 'begin'
	Statements []Statement
}

func (n *Block) statementNode()      {}
func (n *Block) Pos() token.Position { return n.Token.Pos }
func (n *Block) String() string {
	var sb strings.Builder
	sb.WriteString("begin\n")
	for _, s := range n.Statements {
		sb.WriteString(indent(s.String(), 1))
		sb.WriteString(";\n")
	}
	sb.WriteString("end")
	return sb.String()
}

// ExpressionStatement wraps a bare expression statement — including
// assignment and call expressions, per the grammar's `statement :=
// expression` production.
type ExpressionStatement struct {
	Expr Expression
}

func (n *ExpressionStatement) statementNode()      {}
func (n *ExpressionStatement) Pos() token.Position { return n.Expr.Pos() }
func (n *ExpressionStatement) String() string      { return n.Expr.String() }

// VarDecl declares a name, either as a `var` slot (Type set, Init nil) or a
// `const` binding (Init set, Const true). Constants, once bound, cannot be
// the left-hand side of an assignment (spec.md §3 invariant).
type VarDecl struct {
	Token token.Token // the declared identifier
	Name  string
	Type  *TypeExpr // nil for const (type is always INTEGER)
	Init  Expression
	Const bool
}

func (n *VarDecl) statementNode()      {}
func (n *VarDecl) Pos() token.Position { return n.Token.Pos }
func (n *VarDecl) String() string {
	if n.Const {
		return "const " + n.Name + " = " + n.Init.String()
	}
	return "var " + n.Name + ": " + n.Type.String()
}

// ExitStmt is an early return with the function's current return-slot
// value (void return for procedures).
type ExitStmt struct {
	Token token.Token // 'exit'
}

func (n *ExitStmt) statementNode()      {}
func (n *ExitStmt) Pos() token.Position { return n.Token.Pos }
func (n *ExitStmt) String() string      { return "exit" }

// BreakStmt branches to the innermost enclosing loop's exit block.
//
// The source grammar in spec.md §4.2 has no surface syntax that produces
// this node — the statement grammar's production list does not include a
// break keyword, and the closed token set in spec.md §6 has none either.
// The node and its lowering/NoEnclosingLoop semantics (spec.md §4.4, §8)
// are still implemented in full; they are exercised by constructing this
// node directly in internal/lower tests rather than through the parser.
// See DESIGN.md's Open Questions for this decision.
type BreakStmt struct {
	BreakPos token.Position
}

func (n *BreakStmt) statementNode()      {}
func (n *BreakStmt) Pos() token.Position { return n.BreakPos }
func (n *BreakStmt) String() string      { return "break" }
