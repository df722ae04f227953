package ast

import (
	"fmt"

	"github.com/bel-learning/mila-compiler/internal/token"
)

// IfStmt is a conditional with an optional else branch.
type IfStmt struct {
	Token token.Token // 'if'
	Cond  Expression
	Then  Statement
	Else  Statement // nil if no else branch
}

func (n *IfStmt) statementNode()      {}
func (n *IfStmt) Pos() token.Position { return n.Token.Pos }
func (n *IfStmt) String() string {
	s := fmt.Sprintf("if %s then %s", n.Cond.String(), n.Then.String())
	if n.Else != nil {
		s += " else " + n.Else.String()
	}
	return s
}

// WhileStmt is a pre-condition loop.
type WhileStmt struct {
	Token token.Token // 'while'
	Cond  Expression
	Body  Statement
}

func (n *WhileStmt) statementNode()      {}
func (n *WhileStmt) Pos() token.Position { return n.Token.Pos }
func (n *WhileStmt) String() string {
	return fmt.Sprintf("while %s do %s", n.Cond.String(), n.Body.String())
}

// ForStmt is a counted loop over an induction variable that must already be
// declared in an enclosing `var` block (the for loop itself does not
// declare it, per spec.md §4.4).
type ForStmt struct {
	Token  token.Token // 'for'
	Var    string
	Start  Expression
	End    Expression
	Downto bool // true for `downto` (step -1), false for `to` (step +1)
	Body   Statement
}

func (n *ForStmt) statementNode()      {}
func (n *ForStmt) Pos() token.Position { return n.Token.Pos }
func (n *ForStmt) String() string {
	dir := "to"
	if n.Downto {
		dir = "downto"
	}
	return fmt.Sprintf("for %s := %s %s %s do %s", n.Var, n.Start.String(), dir, n.End.String(), n.Body.String())
}
