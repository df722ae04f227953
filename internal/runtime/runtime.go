// Package runtime declares the builtin prototypes the runtime library
// supplies (spec.md §6): writeln, readln, and the dec intrinsic. Lowering
// registers these in its callee-signature table at program start; no IR
// function is added to the module for them.
package runtime

import "github.com/bel-learning/mila-compiler/internal/ir"

// Signature is a builtin's name and calling convention.
type Signature struct {
	Name      string
	Arity     int
	Result    ir.Type
	Intrinsic bool // true for "dec", which the compiler lowers inline rather than calling
}

// Builtins returns the fixed set of runtime-supplied/intrinsic functions.
func Builtins() []Signature {
	return []Signature{
		{Name: "writeln", Arity: 1, Result: ir.Void},
		{Name: "readln", Arity: 1, Result: ir.I32},
		{Name: "dec", Arity: 1, Result: ir.Void, Intrinsic: true},
	}
}

// Lookup returns the signature for name, or false if name is not a builtin.
func Lookup(name string) (Signature, bool) {
	for _, s := range Builtins() {
		if s.Name == name {
			return s, true
		}
	}
	return Signature{}, false
}
