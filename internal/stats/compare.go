package stats

import (
	"fmt"
	"iter"
	"sort"

	"github.com/signalnine/solvecmp/internal/result"
)

type Verdict string

const (
	Better Verdict = "better"
	Worse  Verdict = "worse"
)

// Comparison lists benchmarks whose solved status differs between two tools.
type Comparison struct {
	A, B   string
	Better []string // solved by A only
	Worse  []string // solved by B only
}

func Compare(table *result.Table, a, b string) *Comparison {
	c := &Comparison{A: a, B: b, Better: []string{}, Worse: []string{}}
	for _, id := range table.IDs() {
		bm := table.Benchmarks[id]
		sa, sb := bm.Outcomes[a].Solved(), bm.Outcomes[b].Solved()
		switch {
		case sa && !sb:
			c.Better = append(c.Better, id)
		case sb && !sa:
			c.Worse = append(c.Worse, id)
		}
	}
	return c
}

// Verdicts returns one line per differing benchmark, sorted by benchmark.
func (c *Comparison) Verdicts() []string {
	type line struct {
		id string
		v  Verdict
	}
	lines := make([]line, 0, len(c.Better)+len(c.Worse))
	for _, id := range c.Better {
		lines = append(lines, line{id, Better})
	}
	for _, id := range c.Worse {
		lines = append(lines, line{id, Worse})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].id < lines[j].id })
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = fmt.Sprintf("%s %s", l.v, l.id)
	}
	return out
}

// Rerun returns the benchmarks worth re-running, sorted.
func (c *Comparison) Rerun() []string {
	ids := make([]string, 0, len(c.Better)+len(c.Worse))
	ids = append(ids, c.Better...)
	ids = append(ids, c.Worse...)
	sort.Strings(ids)
	return ids
}

// Curve holds the solve times of one tool, ascending.
type Curve struct {
	Tool  string
	Times []int64
}

// Series collects the durations of benchmarks tool solved, clipped to
// budget when budget is positive, in ascending order. Solved benchmarks
// without a recorded duration are skipped.
func Series(table *result.Table, tool string, budget int64) Curve {
	var times []int64
	for _, b := range table.Benchmarks {
		if !b.Outcomes[tool].Solved() {
			continue
		}
		d, ok := b.Durations[tool]
		if !ok {
			continue
		}
		if budget > 0 && d > budget {
			d = budget
		}
		times = append(times, d)
	}
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
	return Curve{Tool: tool, Times: times}
}

// Points yields (time, cumulative solved count) pairs. The sequence can be
// iterated any number of times.
func (c Curve) Points() iter.Seq2[int64, int] {
	return func(yield func(int64, int) bool) {
		for i, t := range c.Times {
			if !yield(t, i+1) {
				return
			}
		}
	}
}

// Collect materializes the points for writing.
func (c Curve) Collect() []result.Point {
	pts := make([]result.Point, 0, len(c.Times))
	for t, n := range c.Points() {
		pts = append(pts, result.Point{Time: t, Count: n})
	}
	return pts
}
