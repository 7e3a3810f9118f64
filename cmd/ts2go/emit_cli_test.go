package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestEmitCommand_GreetingFixture drives the built ts2go binary end to end
// against a small fixture typed-AST file, the way the teacher's own CLI
// tests build the binary once and shell out to it per case.
func TestEmitCommand_GreetingFixture(t *testing.T) {
	bin := filepath.Join(t.TempDir(), "ts2go")
	build := exec.Command("go", "build", "-o", bin, ".")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("failed to build ts2go: %v\n%s", err, out)
	}

	outDir := t.TempDir()
	cmd := exec.Command(bin, "emit", "testdata/greeting.tast.json", "--out", outDir)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("ts2go emit failed: %v\n%s", err, out)
	}

	generated, err := os.ReadFile(filepath.Join(outDir, "greeting.go"))
	if err != nil {
		t.Fatalf("expected output file not written: %v", err)
	}

	src := string(generated)
	for _, want := range []string{"package greeting", "func Greet(who string) string", "return who"} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q, got:\n%s", want, src)
		}
	}
}
