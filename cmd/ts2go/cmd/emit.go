package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/semloom/ts2go/internal/config"
	"github.com/semloom/ts2go/internal/diag"
	"github.com/semloom/ts2go/internal/emitter"
	"github.com/semloom/ts2go/internal/lowering"
	"github.com/semloom/ts2go/internal/optimizer"
	"github.com/semloom/ts2go/internal/runtimegen"
	"github.com/semloom/ts2go/pkg/tast"
)

var (
	emitGlob   string
	emitOutDir string
)

var emitCmd = &cobra.Command{
	Use:   "emit [file.tast.json]",
	Short: "Run the full lower -> optimize -> emit pipeline and write Go source",
	Long: `Runs a frontend-emitted typed-AST JSON document through lowering,
optimization, and emission, writing the resulting Go source next to the
input file (or under --out).

Examples:
  ts2go emit module.tast.json
  ts2go emit --glob '**/*.tast.json' --out ./gen`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEmit,
}

func init() {
	rootCmd.AddCommand(emitCmd)
	emitCmd.Flags().StringVar(&emitGlob, "glob", "", "batch mode: a doublestar glob of *.tast.json files to emit")
	emitCmd.Flags().StringVar(&emitOutDir, "out", "", "output directory (default: alongside each input file)")
}

func runEmit(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(configDir())
	if err != nil {
		return err
	}

	var files []string
	switch {
	case emitGlob != "":
		files, err = doublestar.FilepathGlob(emitGlob)
		if err != nil {
			return fmt.Errorf("failed to expand glob %q: %w", emitGlob, err)
		}
		if len(files) == 0 {
			return fmt.Errorf("glob %q matched no files", emitGlob)
		}
	case len(args) == 1:
		files = []string{args[0]}
	default:
		return fmt.Errorf("either a file argument or --glob is required")
	}

	e := emitter.New(cfg)
	var failed int
	for _, f := range files {
		if err := emitOne(e, cfg, f); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", f, err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(files))
	}
	return nil
}

func emitOne(e *emitter.Emitter, cfg *config.Config, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	file, err := tast.ParseFile(data)
	if err != nil {
		return err
	}

	mod, diags := lowering.Lower(file, cfg)
	if reportAndCheckAbort(diags) {
		return fmt.Errorf("lowering failed with errors")
	}

	mod, optDiags, err := optimizer.Run(mod, cfg)
	if err != nil {
		return fmt.Errorf("optimization failed: %w", err)
	}
	if reportAndCheckAbort(optDiags) {
		return fmt.Errorf("optimization failed with errors")
	}

	src, imports, _, emitDiags := emitter.Emit(mod, cfg)
	_ = imports
	reportAndCheckAbort(emitDiags)

	outPath := outputPathFor(filename)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(src), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outPath, err)
	}

	if cfg.GenerateRuntime {
		runtimeSrc, err := runtimegen.Generate(mod.Name)
		if err != nil {
			return err
		}
		runtimePath := filepath.Join(filepath.Dir(outPath), "ts2go_runtime.go")
		if err := os.WriteFile(runtimePath, []byte(runtimeSrc), 0o644); err != nil {
			return fmt.Errorf("failed to write runtime file %s: %w", runtimePath, err)
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "%s\n", colorize(color.New(color.FgGreen), fmt.Sprintf("%s -> %s", filename, outPath)))
	} else {
		fmt.Printf("%s -> %s\n", filename, outPath)
	}
	return nil
}

func outputPathFor(inputPath string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, ".tast.json")
	base = strings.TrimSuffix(base, ".json")
	outName := base + ".go"

	if emitOutDir != "" {
		return filepath.Join(emitOutDir, outName)
	}
	return filepath.Join(filepath.Dir(inputPath), outName)
}

func reportAndCheckAbort(diags []diag.Diagnostic) bool {
	if len(diags) > 0 {
		fmt.Fprint(os.Stderr, diag.FormatGrouped(diags, !noColor))
	}
	for _, d := range diags {
		if d.Severity == diag.SeverityError {
			return true
		}
	}
	return false
}
