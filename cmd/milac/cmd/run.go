package cmd

import (
	"fmt"
	"os"

	"github.com/bel-learning/mila-compiler/internal/ir"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Lower a Mila program and verify every function",
	Long: `Run the same front-end pipeline as "build", additionally re-running
the IR verifier across every lowered function and reporting the outcome.

This subcommand does not execute the program — there is no code
generator or interpreter here (spec.md's Non-goals) — it is the seam where
a downstream code generator would attach.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}
	module, err := compile(source, filename)
	if err != nil {
		return err
	}

	for _, fn := range module.Functions {
		if err := ir.Verify(fn); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "%d function(s) verified\n", len(module.Functions))
	}
	fmt.Print(module.String())
	return nil
}
