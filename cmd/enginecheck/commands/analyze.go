package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/enginecheck/enginecheck/analyze"
	"github.com/enginecheck/enginecheck/cmd/enginecheck/output"
	"github.com/enginecheck/enginecheck/engines"
	"github.com/enginecheck/enginecheck/resolve"
)

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(console *output.Console) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze [<PROJECT-DIR>]",
		Short: "Compute compatible node and npm ranges",
		Long: `Reads the project's package.json, inspects the engines declared by each
installed dependency under node_modules, and computes the Node.js and npm
version ranges compatible with all of them.

Examples:
  enginecheck analyze
  enginecheck analyze ./my-app
  enginecheck analyze --json
  enginecheck analyze -v detailed`,
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

			if asJSON {
				return printJSON(console, result)
			}
			printResult(console, result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the result as JSON")

	return cmd
}

func printResult(console *output.Console, result *analyze.Result) {
	if result.Note == analyze.NoteNoDependencies {
		console.Info("%s: no dependencies found, nothing to analyze", result.ManifestPath)
		return
	}

	for _, kind := range []engines.Kind{engines.KindRuntime, engines.KindPackageManager} {
		rng := result.ForKind(kind)
		if rng.IsEmpty() {
			console.Printf("%-4s no compatible range determined\n", kind.String()+":")
			continue
		}
		console.Printf("%-4s %s\n", kind.String()+":", rng.Format())
	}
}

// jsonRange is the machine-readable rendering of one resolved range.
type jsonRange struct {
	Min   string `json:"min,omitempty"`
	Max   string `json:"max,omitempty"`
	Range string `json:"range,omitempty"`
}

type jsonResult struct {
	ManifestPath string    `json:"manifestPath"`
	Node         jsonRange `json:"node"`
	Npm          jsonRange `json:"npm"`
	Note         string    `json:"note,omitempty"`
}

func printJSON(console *output.Console, result *analyze.Result) error {
	out := jsonResult{
		ManifestPath: result.ManifestPath,
		Node:         toJSONRange(result.Runtime),
		Npm:          toJSONRange(result.PackageManager),
		Note:         result.Note,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	console.Println(string(data))
	return nil
}

func toJSONRange(r resolve.Range) jsonRange {
	return jsonRange{
		Min:   r.MinString(),
		Max:   r.MaxString(),
		Range: r.Format(),
	}
}
