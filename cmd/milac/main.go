// Command milac is the compiler driver: it wires together the lexer,
// parser, and lowering pass and exposes them as a cobra CLI (spec.md §6
// External Interfaces).
package main

import (
	"fmt"
	"os"

	"github.com/bel-learning/mila-compiler/cmd/milac/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
