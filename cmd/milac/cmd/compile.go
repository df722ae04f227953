package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/bel-learning/mila-compiler/internal/ir"
	"github.com/bel-learning/mila-compiler/internal/lexer"
	"github.com/bel-learning/mila-compiler/internal/lower"
	"github.com/bel-learning/mila-compiler/internal/parser"
)

// readSource loads program text from args[0], or from stdin if no file
// argument was given (spec.md §6: file argument is "historically present
// but not required").
func readSource(args []string) (source, filename string, err error) {
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(content), "<stdin>", nil
}

// compile runs the full lex → parse → lower pipeline, logging progress to
// stderr when verbose is set.
func compile(source, filename string) (*ir.Module, error) {
	if verbose {
		fmt.Fprintf(os.Stderr, "compiling %s\n", filename)
	}

	l := lexer.New(source)
	p := parser.New(l, source, filename)
	program, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}
	if verbose {
		fmt.Fprintln(os.Stderr, "parsed; lowering to IR")
	}

	lw := lower.New(source, filename)
	module, err := lw.Lower(program)
	if err != nil {
		return nil, err
	}
	return module, nil
}
