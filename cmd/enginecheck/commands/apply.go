package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/enginecheck/enginecheck/analyze"
	"github.com/enginecheck/enginecheck/cmd/enginecheck/output"
	"github.com/enginecheck/enginecheck/manifest"
)

// NewApplyCommand creates the apply command.
func NewApplyCommand(console *output.Console) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply [<PROJECT-DIR>]",
		Short: "Write computed engine ranges into package.json",
		Long: `Runs the same analysis as 'analyze', then merges the computed ranges
into the manifest's engines section. Unrelated fields, key order, and the
file's indentation style are preserved.

Examples:
  enginecheck apply
  enginecheck apply ./my-app
  enginecheck apply --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := setupRun(cmd, console)

			dir, err := projectDir(args)
			if err != nil {
				return err
			}

			analyzer := analyze.NewDefault(log)
			result, err := analyzer.Run(cmd.Context(), dir, output.NewProgressReporter(console))
			if err != nil {
				return err
			}

			if result.Note == analyze.NoteNoDependencies {
				console.Info("%s: no dependencies found, nothing to apply", result.ManifestPath)
				return nil
			}

			node := result.Runtime.Format()
			npm := result.PackageManager.Format()

			if node == "" && npm == "" {
				console.Warning("no compatible ranges determined; manifest left unchanged")
				return nil
			}

			if dryRun {
				printApplyPlan(console, result.ManifestPath, node, npm)
				return nil
			}

			err = manifest.UpdateEngines(result.ManifestPath, node, npm)
			switch {
			case errors.Is(err, manifest.ErrAlreadyUpToDate):
				console.Info("%s already up to date", result.ManifestPath)
				return nil
			case err != nil:
				return err
			}

			console.Success("Updated %s", result.ManifestPath)
			printRanges(console, node, npm)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be written without modifying the manifest")

	return cmd
}

func printApplyPlan(console *output.Console, path, node, npm string) {
	console.Info("Would update %s", path)
	printRanges(console, node, npm)
}

func printRanges(console *output.Console, node, npm string) {
	if node != "" {
		console.Printf("  node: %s\n", node)
	}
	if npm != "" {
		console.Printf("  npm:  %s\n", npm)
	}
}
