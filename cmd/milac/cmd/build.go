package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var buildOutput string

var buildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Lower a Mila program to its textual IR module",
	Long: `Lex, parse, and lower a program, writing the generated IR module as
text to standard output (or to --output).

Reads the source file named by the positional argument, or standard input
if none is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "write IR to this file instead of stdout")
}

func runBuild(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}
	module, err := compile(source, filename)
	if err != nil {
		return err
	}

	if buildOutput != "" {
		return os.WriteFile(buildOutput, []byte(module.String()), 0o644)
	}
	fmt.Print(module.String())
	return nil
}
