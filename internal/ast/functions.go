package ast

import (
	"strings"

	"github.com/bel-learning/mila-compiler/internal/token"
)

// Prototype captures a function or procedure's name, parameter names (all
// implicitly 32-bit integers per spec.md §3), and whether it returns a
// value.
type Prototype struct {
	Token     token.Token // the function/procedure name identifier
	Name      string
	Params    []string
	HasReturn bool // false for procedures; lowering still gives a prototype named "main" an i32 result
}

func (n *Prototype) Pos() token.Position { return n.Token.Pos }
func (n *Prototype) String() string {
	kw := "procedure"
	ret := ""
	if n.HasReturn {
		kw = "function"
		ret = ": integer"
	}
	return kw + " " + n.Name + "(" + strings.Join(paramList(n.Params), ", ") + ")" + ret
}

func paramList(names []string) []string {
	out := make([]string, len(names))
	for i, p := range names {
		out[i] = p + ": integer"
	}
	return out
}

// FunctionDecl is a function or procedure definition, or — when Body is nil
// — a forward declaration.
type FunctionDecl struct {
	Proto  *Prototype
	Locals []*VarDecl // var/const declarations local to the function
	Body   *Block      // nil for a forward declaration
}

func (n *FunctionDecl) statementNode()      {}
func (n *FunctionDecl) Pos() token.Position { return n.Proto.Pos() }
func (n *FunctionDecl) String() string {
	if n.Body == nil {
		return n.Proto.String() + "; forward"
	}
	var sb strings.Builder
	sb.WriteString(n.Proto.String())
	sb.WriteString(";\n")
	for _, l := range n.Locals {
		sb.WriteString(l.String())
		sb.WriteString(";\n")
	}
	sb.WriteString(n.Body.String())
	return sb.String()
}

// Program is the root of the AST: a named module made of function/procedure
// declarations (in source order) plus the single entry-point main block
// with its own local var/const declarations.
type Program struct {
	Token      token.Token // 'program'
	Name       string
	Functions  []*FunctionDecl
	MainLocals []*VarDecl
	Main       *Block
}

func (n *Program) Pos() token.Position { return n.Token.Pos }
func (n *Program) String() string {
	var sb strings.Builder
	sb.WriteString("program ")
	sb.WriteString(n.Name)
	sb.WriteString(";\n")
	for _, f := range n.Functions {
		sb.WriteString(f.String())
		sb.WriteString(";\n")
	}
	for _, l := range n.MainLocals {
		sb.WriteString(l.String())
		sb.WriteString(";\n")
	}
	sb.WriteString(n.Main.String())
	sb.WriteString(".")
	return sb.String()
}
