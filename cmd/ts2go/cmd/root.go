package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	verbose    bool
	noColor    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "ts2go",
	Short: "TypeScript-to-Go transpiler",
	Long: `ts2go lowers a frontend-produced TypeScript typed AST into a Go-native
semantic IR and emits idiomatic Go source from it.

It does not parse or type-check TypeScript itself: the frontend boundary is
pkg/tast, a JSON-serializable typed-AST model a separate TypeScript-side
tool hands over on disk or over the wire.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostic output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "directory to discover .ts2go.yaml/.ts2go.toml in (default: current directory)")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

func colorize(c *color.Color, s string) string {
	if noColor {
		return s
	}
	return c.Sprint(s)
}
