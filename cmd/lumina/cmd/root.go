package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version = "0.1.0-dev"

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lumina [file]",
	Short: "Lumina script interpreter",
	Long: `lumina runs programs written in the Lumina scripting language: a
line-oriented, whitespace-delimited language with reversible execution,
variable lifetimes, disableable tokens, and probabilistic booleans.`,
	Version:      Version,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runScript,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostics")
	rootCmd.Flags().BoolVar(&dumpTokens, "dump-tokens", false, "dump the head tokens of each parsed statement")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "trace statement execution to standard error")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "lumina: "+msg+"\n", args...)
}
