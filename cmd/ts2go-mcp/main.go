// Command ts2go-mcp exposes the lower/optimize/emit pipeline as an MCP
// tool, for editor and agent integration, per spec.md's pipeline boundary
// reused verbatim from cmd/ts2go/cmd's emit path.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/semloom/ts2go/internal/config"
	"github.com/semloom/ts2go/internal/diag"
	"github.com/semloom/ts2go/internal/emitter"
	"github.com/semloom/ts2go/internal/lowering"
	"github.com/semloom/ts2go/internal/optimizer"
	"github.com/semloom/ts2go/pkg/tast"
)

func main() {
	s := server.NewMCPServer("ts2go", "0.1.0-dev")

	tool := mcp.NewTool("lower_and_emit",
		mcp.WithDescription("Lower a TypeScript typed-AST JSON document and emit Go source from it"),
		mcp.WithString("tast_json", mcp.Required(), mcp.Description("the typed-AST document, as JSON text")),
	)

	s.AddTool(tool, handleLowerAndEmit)

	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("ts2go-mcp: %v", err)
	}
}

func handleLowerAndEmit(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("tast_json")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	file, err := tast.ParseFile([]byte(raw))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("parse failed: %v", err)), nil
	}

	cfg := config.Default()

	mod, diags := lowering.Lower(file, cfg)
	if hasError(diags) {
		return mcp.NewToolResultError(formatDiags(diags)), nil
	}

	mod, optDiags, err := optimizer.Run(mod, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("optimization failed: %v", err)), nil
	}
	if hasError(optDiags) {
		return mcp.NewToolResultError(formatDiags(optDiags)), nil
	}

	src, _, _, emitDiags := emitter.Emit(mod, cfg)
	if hasError(emitDiags) {
		return mcp.NewToolResultError(formatDiags(emitDiags)), nil
	}

	return mcp.NewToolResultText(src), nil
}

func hasError(diags []diag.Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == diag.SeverityError {
			return true
		}
	}
	return false
}

func formatDiags(diags []diag.Diagnostic) string {
	return diag.FormatGrouped(diags, false)
}
