// Package cli wires up the enginecheck root command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/enginecheck/enginecheck/cmd/enginecheck/output"
)

var rootCmd = &cobra.Command{
	Use:   "enginecheck",
	Short: "Node.js engine range analyzer",
	Long: `enginecheck inspects the engines declared by a project's installed
dependencies and computes the Node.js and npm version ranges compatible
with all of them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		// Show help when no command is provided
		_ = cmd.Help()
	},
}

// Console is the global console for CLI commands
var Console *output.Console

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	Console = output.DefaultConsole()

	rootCmd.PersistentFlags().StringP("verbosity", "v", "normal", "Display verbosity (quiet, normal, detailed)")
}

// SetupVersion configures version information after variables are set
func SetupVersion() {
	rootCmd.SetVersionTemplate(GetFullVersion() + "\n")
	rootCmd.Version = GetVersion()
}

// AddCommand adds a command to the root command
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}
