// Package stats computes solve counts, overlap partitions and conflicts over
// a result table.
package stats

import (
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/signalnine/solvecmp/internal/combine"
	"github.com/signalnine/solvecmp/internal/result"
)

// Class is the outcome a benchmark is agreed to have across all tools.
type Class string

const (
	ClassConflict Class = "conflict"
	ClassSat      Class = "sat"
	ClassUnsat    Class = "unsat"
	ClassUnknown  Class = "unknown"
)

// Classify derives the agreed class from every outcome recorded for a
// benchmark. It agrees with combine.Combine over the same set.
func Classify(outcomes []result.Outcome) Class {
	if combine.HasConflict(outcomes) {
		return ClassConflict
	}
	switch combine.Combine(outcomes...) {
	case result.Sat:
		return ClassSat
	case result.Unsat:
		return ClassUnsat
	default:
		return ClassUnknown
	}
}

// Unlogged counts benchmarks known to exist but absent from every log.
// They count as unsolved by every tool.
type Unlogged struct {
	Sat   int
	Unsat int
}

type Options struct {
	// Tools is the set partitioned by the exact-solving-set metric.
	// Empty means every tool in the table.
	Tools    []string
	Unlogged Unlogged
}

// Analyze accumulates per-tool solve counts over table. Conflicting
// benchmarks are listed and credit no tool.
func Analyze(table *result.Table, opts Options) *result.Summary {
	tools := opts.Tools
	if len(tools) == 0 {
		tools = table.Tools()
	}
	s := &result.Summary{
		Tools:        tools,
		Solved:       result.Counters{result.TotalKey: 0},
		SatSolved:    result.Counters{result.TotalKey: 0},
		UnsatSolved:  result.Counters{result.TotalKey: 0},
		Conflicts:    []string{},
		SolvedByOnly: map[string]int{},
	}
	for _, t := range table.Tools() {
		s.Solved[t], s.SatSolved[t], s.UnsatSolved[t] = 0, 0, 0
	}
	exact := map[string]int{}

	for _, id := range table.IDs() {
		b := table.Benchmarks[id]
		s.Solved[result.TotalKey]++
		class := Classify(b.OutcomeList())
		if class == ClassConflict {
			s.Conflicts = append(s.Conflicts, id)
			continue
		}
		var bucket result.Counters
		switch class {
		case ClassSat:
			bucket = s.SatSolved
		case ClassUnsat:
			bucket = s.UnsatSolved
		}
		if bucket != nil {
			bucket[result.TotalKey]++
			for tool, o := range b.Outcomes {
				if string(o) == string(class) {
					s.Solved[tool]++
					bucket[tool]++
				}
			}
		}

		solvers := solvingSet(b, tools, class)
		exact[strings.Join(solvers, "\x00")]++
		switch len(solvers) {
		case 0:
			s.SolvedByNone++
		case 1:
			s.SolvedByOnly[solvers[0]]++
		}
		if len(solvers) == len(tools) && len(tools) > 0 {
			s.SolvedByAll++
		}
	}

	if n := opts.Unlogged.Sat + opts.Unlogged.Unsat; n > 0 {
		s.Unlogged = n
		s.Solved[result.TotalKey] += n
		s.SatSolved[result.TotalKey] += opts.Unlogged.Sat
		s.UnsatSolved[result.TotalKey] += opts.Unlogged.Unsat
		s.SolvedByNone += n
		exact[""] += n
	}

	s.ExactSets = exactSets(exact)
	return s
}

// solvingSet lists, in tools order, the tools whose outcome matches class.
func solvingSet(b *result.Benchmark, tools []string, class Class) []string {
	if class != ClassSat && class != ClassUnsat {
		return nil
	}
	return lo.Filter(tools, func(t string, _ int) bool {
		return string(b.Outcomes[t]) == string(class)
	})
}

func exactSets(exact map[string]int) []result.SetCount {
	sets := make([]result.SetCount, 0, len(exact))
	for key, n := range exact {
		tools := []string{}
		if key != "" {
			tools = strings.Split(key, "\x00")
		}
		sets = append(sets, result.SetCount{Tools: tools, Count: n})
	}
	sort.Slice(sets, func(i, j int) bool {
		if len(sets[i].Tools) != len(sets[j].Tools) {
			return len(sets[i].Tools) < len(sets[j].Tools)
		}
		return strings.Join(sets[i].Tools, ",") < strings.Join(sets[j].Tools, ",")
	})
	return sets
}

// Percent returns count/total as a percentage, or 0 when total is 0.
func Percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
