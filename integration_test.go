//go:build integration

package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/signalnine/solvecmp/internal/result"
)

// buildBinary compiles the CLI into a temp dir.
func buildBinary(t *testing.T) string {
	t.Helper()
	bin := filepath.Join(t.TempDir(), "solvecmp")
	c := exec.Command("go", "build", "-o", bin, ".")
	if out, err := c.CombinedOutput(); err != nil {
		t.Fatalf("%v: %s", err, out)
	}
	return bin
}

func TestAnalyzeEndToEnd(t *testing.T) {
	if os.Getenv("SOLVECMP_INTEGRATION_TESTS") == "" {
		t.Skip("set SOLVECMP_INTEGRATION_TESTS=1 to run integration tests")
	}
	bin := buildBinary(t)
	resultsDir := t.TempDir()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	c := exec.CommandContext(ctx, bin, "--config", "testdata/full.yaml", "analyze", "--results-dir", resultsDir, "--format", "json")
	if out, err := c.CombinedOutput(); err != nil {
		t.Fatalf("analyze: %v: %s", err, out)
	}

	s, err := result.ReadSummary(filepath.Join(resultsDir, "latest", "summary.json"))
	if err != nil {
		t.Fatalf("ReadSummary: %v", err)
	}
	if s.Total() != 5 {
		t.Errorf("total: got %d, want 5", s.Total())
	}
	data, _ := json.Marshal(s.Conflicts)
	if string(data) != `["bench/d.smt2"]` {
		t.Errorf("conflicts: %s", data)
	}
}

func TestExitCodes(t *testing.T) {
	if os.Getenv("SOLVECMP_INTEGRATION_TESTS") == "" {
		t.Skip("set SOLVECMP_INTEGRATION_TESTS=1 to run integration tests")
	}
	bin := buildBinary(t)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"missing config", []string{"--config", "does-not-exist.yaml", "analyze", "--no-save"}, 3},
		{"invalid config", []string{"--config", "testdata/invalid.yaml", "analyze", "--no-save"}, 2},
		{"ok", []string{"--config", "testdata/full.yaml", "merge"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := exec.Command(bin, tt.args...).Run()
			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("running %s: %v", bin, err)
			}
			if code != tt.want {
				t.Errorf("exit code: got %d, want %d", code, tt.want)
			}
		})
	}
}
