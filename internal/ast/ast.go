// Package ast defines the tagged-variant node model produced by the parser
// and consumed by lowering. Every node owns its children exclusively: the
// tree is acyclic and single-rooted, and a node is destroyed exactly when
// its parent is (ordinary Go garbage collection gives this for free — there
// are no back-edges for a cycle to form along).
package ast

import (
	"strings"

	"github.com/bel-learning/mila-compiler/internal/token"
)

// Node is the root interface every AST node implements.
type Node interface {
	// Pos returns the node's source position, used for diagnostics.
	Pos() token.Position
	// String renders the node back to source-like text. Parsing String()'s
	// output must reproduce a structurally equal tree (the round-trip
	// property in spec.md §8).
	String() string
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that performs an action.
type Statement interface {
	Node
	statementNode()
}

func indent(s string, n int) string {
	pad := strings.Repeat("  ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}
