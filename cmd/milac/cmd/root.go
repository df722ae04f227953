package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "milac",
	Short: "A compiler front end for the Mila language",
	Long: `milac lexes, parses, and lowers a small Pascal-like language to a
typed static-single-assignment intermediate representation.

It reads a program from a file argument or from standard input and writes
the generated IR module to standard output, or fails with a positioned
diagnostic.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
