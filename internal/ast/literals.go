package ast

import (
	"fmt"

	"github.com/bel-learning/mila-compiler/internal/token"
)

// IntegerLiteral is a 32-bit signed integer constant.
type IntegerLiteral struct {
	Token token.Token
	Value int32
}

func (n *IntegerLiteral) expressionNode()      {}
func (n *IntegerLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *IntegerLiteral) String() string       { return fmt.Sprintf("%d", n.Value) }

// NameRef references a declared name (variable, parameter, or function
// return slot) by identifier.
type NameRef struct {
	Token token.Token
	Name  string
}

func (n *NameRef) expressionNode()     {}
func (n *NameRef) Pos() token.Position { return n.Token.Pos }
func (n *NameRef) String() string      { return n.Name }

// TypeExpr names a declared type. Only INTEGER is supported today; the tag
// exists so the AST shape has a place for float/array types the spec
// reserves but does not implement.
type TypeExpr struct {
	Token token.Token
	Name  string // "integer"
}

func (n *TypeExpr) Pos() token.Position { return n.Token.Pos }
func (n *TypeExpr) String() string      { return n.Name }
