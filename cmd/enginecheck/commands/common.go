// Package commands implements the enginecheck CLI subcommands.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/enginecheck/enginecheck/cmd/enginecheck/output"
	"github.com/enginecheck/enginecheck/observability"
)

// projectDir resolves the project directory from positional args,
// defaulting to the working directory.
func projectDir(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return os.Getwd()
}

// setupRun applies the persistent verbosity flag to the console and builds
// the diagnostic logger for a command invocation.
func setupRun(cmd *cobra.Command, console *output.Console) observability.Logger {
	v, _ := cmd.Flags().GetString("verbosity")
	verbosity := output.ParseVerbosity(v)
	console.SetVerbosity(verbosity)

	// Diagnostics are developer-facing; surface them only at detailed
	// verbosity, and always on stderr.
	level := observability.WarnLevel
	if verbosity >= output.VerbosityDetailed {
		level = observability.DebugLevel
	}
	if verbosity == output.VerbosityQuiet {
		return observability.NewNullLogger()
	}
	return observability.NewLogger(os.Stderr, level)
}
