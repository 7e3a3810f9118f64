// Command ts2go lowers a TypeScript typed-AST JSON document into Go
// source: see cmd/ts2go/cmd for the lower/emit/version subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/semloom/ts2go/cmd/ts2go/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
