package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/semloom/ts2go/internal/config"
	"github.com/semloom/ts2go/internal/diag"
	"github.com/semloom/ts2go/internal/lowering"
	"github.com/semloom/ts2go/pkg/tast"
)

var dumpPath string
var lowerFormat string

var lowerCmd = &cobra.Command{
	Use:   "lower [file.tast.json]",
	Short: "Lower a typed-AST JSON file to IR and print diagnostics",
	Long: `Reads a frontend-emitted typed-AST JSON document, runs it through
internal/lowering, and prints any diagnostics produced.

Examples:
  ts2go lower module.tast.json
  ts2go lower --dump-path=items.0.decl.kind module.tast.json
  ts2go lower --format=raw-json module.tast.json`,
	Args: cobra.ExactArgs(1),
	RunE: runLower,
}

func init() {
	rootCmd.AddCommand(lowerCmd)
	lowerCmd.Flags().StringVar(&dumpPath, "dump-path", "", "print one gjson path out of the raw input instead of lowering it")
	lowerCmd.Flags().StringVar(&lowerFormat, "format", "strict", `input decoding: "strict" (plain encoding/json; omitted fields decode to zero values) or "raw-json" (gjson/sjson-backfilled, tolerant of a lenient frontend)`)
}

func runLower(_ *cobra.Command, args []string) error {
	filename := args[0]
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	if dumpPath != "" {
		raw, err := tast.QueryPath(data, dumpPath)
		if err != nil {
			return err
		}
		fmt.Println(raw)
		return nil
	}

	var file *tast.File
	switch lowerFormat {
	case "raw-json":
		file, err = tast.LoadFromGJSON(data)
	case "strict", "":
		file, err = tast.ParseFile(data)
	default:
		return fmt.Errorf("unknown --format %q (want \"strict\" or \"raw-json\")", lowerFormat)
	}
	if err != nil {
		return err
	}

	cfg, err := config.Load(configDir())
	if err != nil {
		return err
	}

	mod, diags := lowering.Lower(file, cfg)

	if len(diags) > 0 {
		fmt.Fprint(os.Stderr, diag.FormatGrouped(diags, !noColor))
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "%s\n", colorize(color.New(color.FgGreen), fmt.Sprintf("lowered %d declaration(s)", len(mod.Declarations))))
	}

	for _, hasErr := range diags {
		if hasErr.Severity == diag.SeverityError {
			return fmt.Errorf("lowering failed with errors")
		}
	}

	return nil
}

func configDir() string {
	if configPath != "" {
		return configPath
	}
	return "."
}
