// Package combine derives the outcome of a portfolio of tools and adds
// synthetic tools to a result table.
//
// Every function here is pure: tables passed in are cloned, never modified,
// so loaded results stay exactly as recorded.
package combine

import (
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/signalnine/solvecmp/internal/result"
)

// Separator joins constituent tool names in a virtual tool identifier.
const Separator = "+"

// HasConflict reports whether the outcomes contain both sat and unsat.
func HasConflict(outcomes []result.Outcome) bool {
	return lo.Contains(outcomes, result.Sat) && lo.Contains(outcomes, result.Unsat)
}

// Combine returns the outcome a portfolio of the given outcomes reports.
// The conflict check looks at the whole set before any precedence applies:
// sat with unsat is a crash, then sat, unsat, crash, and timeout otherwise.
func Combine(outcomes ...result.Outcome) result.Outcome {
	switch {
	case HasConflict(outcomes):
		return result.Crash
	case lo.Contains(outcomes, result.Sat):
		return result.Sat
	case lo.Contains(outcomes, result.Unsat):
		return result.Unsat
	case lo.Contains(outcomes, result.Crash):
		return result.Crash
	default:
		return result.Timeout
	}
}

// ToolName builds the identifier of a virtual tool. Constituents are sorted
// and deduplicated so every ordering of a subset yields the same name.
func ToolName(tools []string) string {
	names := lo.Uniq(tools)
	sort.Strings(names)
	return strings.Join(names, Separator)
}

// AddVirtualTool returns a copy of table extended with the portfolio of tools
// under its ToolName.
func AddVirtualTool(table *result.Table, tools []string) (*result.Table, string) {
	name := ToolName(tools)
	return AddVirtualToolNamed(table, name, tools), name
}

// AddVirtualToolNamed is AddVirtualTool with an explicit identifier.
// Benchmarks missing an outcome for any constituent get no entry.
func AddVirtualToolNamed(table *result.Table, name string, tools []string) *result.Table {
	out := table.Clone()
	for _, b := range out.Benchmarks {
		outcomes := make([]result.Outcome, 0, len(tools))
		complete := true
		for _, tool := range tools {
			o, ok := b.Outcomes[tool]
			if !ok {
				complete = false
				break
			}
			outcomes = append(outcomes, o)
		}
		if !complete {
			continue
		}
		combined := Combine(outcomes...)
		b.Outcomes[name] = combined
		if d, ok := portfolioDuration(b, tools, combined); ok {
			b.Durations[name] = d
		}
	}
	return out
}

// portfolioDuration charges the fastest constituent that produced the
// combined answer, as if all constituents ran in parallel.
func portfolioDuration(b *result.Benchmark, tools []string, combined result.Outcome) (int64, bool) {
	if !combined.Solved() {
		return 0, false
	}
	var best int64
	found := false
	for _, tool := range tools {
		if b.Outcomes[tool] != combined {
			continue
		}
		d, ok := b.Durations[tool]
		if !ok {
			continue
		}
		if !found || d < best {
			best, found = d, true
		}
	}
	return best, found
}

// AddPipeline returns a copy of table with a tool representing stages run one
// after another. The outcome is the last stage's; the duration is the sum of
// every stage's duration and is left out when any stage lacks one.
func AddPipeline(table *result.Table, name string, stages []string) *result.Table {
	out := table.Clone()
	if len(stages) == 0 {
		return out
	}
	last := stages[len(stages)-1]
	for _, b := range out.Benchmarks {
		o, ok := b.Outcomes[last]
		if !ok {
			continue
		}
		b.Outcomes[name] = o
		var sum int64
		complete := true
		for _, s := range stages {
			d, ok := b.Durations[s]
			if !ok {
				complete = false
				break
			}
			sum += d
		}
		if complete {
			b.Durations[name] = sum
		}
	}
	return out
}

// Trivial selects benchmarks every tool finishes quickly.
type Trivial struct {
	Threshold int64
	PerTool   map[string]int64
}

func (tr Trivial) limit(tool string) int64 {
	if l, ok := tr.PerTool[tool]; ok {
		return l
	}
	return tr.Threshold
}

// DropTrivial returns a copy of table without benchmarks whose recorded
// durations are all below their tool's limit, and the number dropped.
// Benchmarks with no durations are kept.
func DropTrivial(table *result.Table, tr Trivial) (*result.Table, int) {
	out := table.Clone()
	dropped := 0
	for id, b := range out.Benchmarks {
		if len(b.Durations) == 0 {
			continue
		}
		trivial := true
		for tool, d := range b.Durations {
			if d >= tr.limit(tool) {
				trivial = false
				break
			}
		}
		if trivial {
			delete(out.Benchmarks, id)
			dropped++
		}
	}
	return out, dropped
}
