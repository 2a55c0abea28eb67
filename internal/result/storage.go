package result

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func CreateRunDir(baseDir string) (string, error) {
	runsDir := filepath.Join(baseDir, "runs")
	stamp := time.Now().UTC().Format("2006-01-02T15-04-05")
	runDir := filepath.Join(runsDir, stamp)
	runDir, err := filepath.Abs(runDir)
	if err != nil {
		return "", fmt.Errorf("resolving run dir: %w", err)
	}
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", fmt.Errorf("creating run dir: %w", err)
	}
	latest := filepath.Join(baseDir, "latest")
	os.Remove(latest)
	if err := os.Symlink(runDir, latest); err != nil {
		return "", fmt.Errorf("creating latest symlink: %w", err)
	}
	return runDir, nil
}

func MergedPath(runDir string) string {
	return filepath.Join(runDir, "merged.csv")
}

func CurvePath(runDir, tool string) string {
	return filepath.Join(runDir, "curves", safeName(tool)+".csv")
}

func RerunPath(runDir, name string) string {
	return filepath.Join(runDir, "rerun-"+safeName(name)+".txt")
}

// safeName keeps tool identifiers usable as file names.
func safeName(s string) string {
	return strings.NewReplacer("/", "_", "\\", "_").Replace(s)
}

func WriteSummary(runDir string, s *Summary) error {
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return fmt.Errorf("creating run dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	return os.WriteFile(filepath.Join(runDir, "summary.json"), data, 0o644)
}

func ReadSummary(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading summary: %w", err)
	}
	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing summary: %w", err)
	}
	return &s, nil
}

// WriteMerged exports the table as comma-separated rows: a header naming the
// tools, then one row per benchmark. Missing outcomes are written as empty
// cells so the export re-loads to the same table.
func WriteMerged(w io.Writer, t *Table, tools []string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, strings.Join(append([]string{"benchmark"}, tools...), ","))
	row := make([]string, len(tools)+1)
	for _, id := range t.IDs() {
		b := t.Benchmarks[id]
		row[0] = id
		for i, tool := range tools {
			row[i+1] = string(b.Outcomes[tool])
		}
		fmt.Fprintln(bw, strings.Join(row, ","))
	}
	return bw.Flush()
}

func WriteMergedFile(path string, t *Table, tools []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating merged file: %w", err)
	}
	defer f.Close()
	if err := WriteMerged(f, t, tools); err != nil {
		return err
	}
	return f.Close()
}

// WriteLines writes one entry per line, used for rerun lists.
func WriteLines(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	for _, l := range lines {
		fmt.Fprintln(bw, l)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// Point is one (time, cumulative solved count) sample of a cactus curve.
type Point struct {
	Time  int64
	Count int
}

func WriteCurve(w io.Writer, points []Point) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "time,count")
	for _, p := range points {
		fmt.Fprintf(bw, "%d,%d\n", p.Time, p.Count)
	}
	return bw.Flush()
}

func WriteCurveFile(path string, points []Point) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating curve dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating curve file: %w", err)
	}
	defer f.Close()
	if err := WriteCurve(f, points); err != nil {
		return fmt.Errorf("writing curve %s: %w", path, err)
	}
	return f.Close()
}
