package report

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/signalnine/solvecmp/internal/result"
	"github.com/signalnine/solvecmp/internal/stats"
)

// ToolSummary is one row of the per-tool solve table.
type ToolSummary struct {
	Name       string  `json:"name"`
	Solved     int     `json:"solved"`
	SolvedPct  float64 `json:"solved_pct"`
	Sat        int     `json:"sat"`
	SatPct     float64 `json:"sat_pct"`
	Unsat      int     `json:"unsat"`
	UnsatPct   float64 `json:"unsat_pct"`
	OnlySolver int     `json:"only_solver"`
}

type Report struct {
	Total        int               `json:"total"`
	SatTotal     int               `json:"sat_total"`
	UnsatTotal   int               `json:"unsat_total"`
	Tools        []ToolSummary     `json:"tools"`
	SolvedByAll  int               `json:"solved_by_all"`
	SolvedByNone int               `json:"solved_by_none"`
	Conflicts    []string          `json:"conflicts"`
	ExactSets    []result.SetCount `json:"exact_sets"`
}

// Generate renders a summary in the given format (table, markdown, json).
func Generate(s *result.Summary, format string, w io.Writer) error {
	r := build(s)
	switch format {
	case "markdown":
		return writeMarkdown(r, w)
	case "json":
		return writeJSON(r, w)
	default:
		return writeTable(r, w)
	}
}

// GenerateFromRun renders the summary stored in runDir.
func GenerateFromRun(runDir, format string, w io.Writer) error {
	s, err := result.ReadSummary(filepath.Join(runDir, "summary.json"))
	if err != nil {
		return err
	}
	return Generate(s, format, w)
}

func build(s *result.Summary) *Report {
	r := &Report{
		Total:        s.Total(),
		SatTotal:     s.SatSolved[result.TotalKey],
		UnsatTotal:   s.UnsatSolved[result.TotalKey],
		SolvedByAll:  s.SolvedByAll,
		SolvedByNone: s.SolvedByNone,
		Conflicts:    s.Conflicts,
		ExactSets:    s.ExactSets,
	}
	var names []string
	for name := range s.Solved {
		if name != result.TotalKey {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		r.Tools = append(r.Tools, ToolSummary{
			Name:       name,
			Solved:     s.Solved[name],
			SolvedPct:  stats.Percent(s.Solved[name], r.Total),
			Sat:        s.SatSolved[name],
			SatPct:     stats.Percent(s.SatSolved[name], r.SatTotal),
			Unsat:      s.UnsatSolved[name],
			UnsatPct:   stats.Percent(s.UnsatSolved[name], r.UnsatTotal),
			OnlySolver: s.SolvedByOnly[name],
		})
	}
	return r
}

var (
	title = cases.Title(language.English)
	upper = cases.Upper(language.English)
)

func writeTable(r *Report, w io.Writer) error {
	fmt.Fprintf(w, "Total benchmarks: %d (sat %d, unsat %d)\n\n", r.Total, r.SatTotal, r.UnsatTotal)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "TOOL\tSOLVED\t%s\t%s\tONLY SOLVER\n", upper.String(string(stats.ClassSat)), upper.String(string(stats.ClassUnsat)))
	fmt.Fprintln(tw, strings.Repeat("-", 80))
	for _, t := range r.Tools {
		fmt.Fprintf(tw, "%s\t%d (%.2f%%)\t%d (%.2f%%)\t%d (%.2f%%)\t%d\n",
			t.Name, t.Solved, t.SolvedPct, t.Sat, t.SatPct, t.Unsat, t.UnsatPct, t.OnlySolver)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nSolved by all tools: %d (%.2f%%)\n", r.SolvedByAll, stats.Percent(r.SolvedByAll, r.Total))
	fmt.Fprintf(w, "Solved by no tool: %d (%.2f%%)\n", r.SolvedByNone, stats.Percent(r.SolvedByNone, r.Total))
	writeExactSets(r, w, "\n%s\n", "  %s: %d (%.2f%%)\n")
	fmt.Fprintf(w, "\nConflicting results (sat vs unsat): %d (%.2f%%)\n", len(r.Conflicts), stats.Percent(len(r.Conflicts), r.Total))
	for _, c := range r.Conflicts {
		fmt.Fprintf(w, "  %s\n", c)
	}
	return nil
}

func writeMarkdown(r *Report, w io.Writer) error {
	fmt.Fprintf(w, "Total benchmarks: %d (sat %d, unsat %d)\n\n", r.Total, r.SatTotal, r.UnsatTotal)
	fmt.Fprintf(w, "| Tool | Solved | %s | %s | Only Solver |\n",
		title.String(string(stats.ClassSat)), title.String(string(stats.ClassUnsat)))
	fmt.Fprintln(w, "|---|---|---|---|---|")
	for _, t := range r.Tools {
		fmt.Fprintf(w, "| %s | %d (%.2f%%) | %d (%.2f%%) | %d (%.2f%%) | %d |\n",
			t.Name, t.Solved, t.SolvedPct, t.Sat, t.SatPct, t.Unsat, t.UnsatPct, t.OnlySolver)
	}
	fmt.Fprintf(w, "\n- Solved by all tools: %d\n- Solved by no tool: %d\n- Conflicts: %d\n",
		r.SolvedByAll, r.SolvedByNone, len(r.Conflicts))
	writeExactSets(r, w, "\n### %s\n\n", "- %s: %d (%.2f%%)\n")
	if len(r.Conflicts) > 0 {
		fmt.Fprintln(w, "\n### Conflicts")
		fmt.Fprintln(w)
		for _, c := range r.Conflicts {
			fmt.Fprintf(w, "- `%s`\n", c)
		}
	}
	return nil
}

func writeExactSets(r *Report, w io.Writer, headFmt, rowFmt string) {
	if len(r.ExactSets) == 0 {
		return
	}
	fmt.Fprintf(w, headFmt, "Solved by exactly")
	for _, s := range r.ExactSets {
		name := "(none)"
		if len(s.Tools) > 0 {
			name = strings.Join(s.Tools, ", ")
		}
		fmt.Fprintf(w, rowFmt, name, s.Count, stats.Percent(s.Count, r.Total))
	}
}

func writeJSON(r *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
