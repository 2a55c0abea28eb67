package result

import (
	"sort"

	"github.com/samber/lo"
)

// Outcome is the verdict a tool reported for one benchmark.
type Outcome string

const (
	Sat     Outcome = "sat"
	Unsat   Outcome = "unsat"
	Crash   Outcome = "crash"
	Timeout Outcome = "timeout"
	Unknown Outcome = "unknown"
)

// TotalKey is the reserved counter key holding the benchmark count.
const TotalKey = "total"

// ParseOutcome maps log text to an Outcome. Matching is case-sensitive.
func ParseOutcome(s string) (Outcome, bool) {
	switch o := Outcome(s); o {
	case Sat, Unsat, Crash, Timeout, Unknown:
		return o, true
	}
	return Unknown, false
}

// Solved reports whether o is a definitive answer.
func (o Outcome) Solved() bool {
	return o == Sat || o == Unsat
}

type Benchmark struct {
	ID        string
	Outcomes  map[string]Outcome
	Durations map[string]int64
}

func newBenchmark(id string) *Benchmark {
	return &Benchmark{
		ID:        id,
		Outcomes:  map[string]Outcome{},
		Durations: map[string]int64{},
	}
}

// OutcomeList returns the recorded outcomes ordered by tool name.
func (b *Benchmark) OutcomeList() []Outcome {
	tools := lo.Keys(b.Outcomes)
	sort.Strings(tools)
	out := make([]Outcome, 0, len(tools))
	for _, t := range tools {
		out = append(out, b.Outcomes[t])
	}
	return out
}

// Table maps benchmark identifiers to their per-tool results.
type Table struct {
	Benchmarks map[string]*Benchmark
}

func NewTable() *Table {
	return &Table{Benchmarks: map[string]*Benchmark{}}
}

func (t *Table) Len() int {
	return len(t.Benchmarks)
}

func (t *Table) Get(id string) (*Benchmark, bool) {
	b, ok := t.Benchmarks[id]
	return b, ok
}

// Ensure returns the benchmark for id, creating it on first reference.
func (t *Table) Ensure(id string) *Benchmark {
	b, ok := t.Benchmarks[id]
	if !ok {
		b = newBenchmark(id)
		t.Benchmarks[id] = b
	}
	return b
}

// IDs returns all benchmark identifiers in sorted order.
func (t *Table) IDs() []string {
	ids := lo.Keys(t.Benchmarks)
	sort.Strings(ids)
	return ids
}

// Tools returns every tool with at least one recorded outcome, sorted.
func (t *Table) Tools() []string {
	seen := map[string]bool{}
	for _, b := range t.Benchmarks {
		for tool := range b.Outcomes {
			seen[tool] = true
		}
	}
	tools := lo.Keys(seen)
	sort.Strings(tools)
	return tools
}

// Clone deep-copies the table so derived tools never touch loaded entries.
func (t *Table) Clone() *Table {
	c := &Table{Benchmarks: make(map[string]*Benchmark, len(t.Benchmarks))}
	for id, b := range t.Benchmarks {
		nb := &Benchmark{
			ID:        id,
			Outcomes:  make(map[string]Outcome, len(b.Outcomes)),
			Durations: make(map[string]int64, len(b.Durations)),
		}
		for k, v := range b.Outcomes {
			nb.Outcomes[k] = v
		}
		for k, v := range b.Durations {
			nb.Durations[k] = v
		}
		c.Benchmarks[id] = nb
	}
	return c
}

// Counters maps a tool to its solved count. TotalKey holds the denominator.
type Counters map[string]int

// SetCount is one cell of the exact-solving-set partition.
type SetCount struct {
	Tools []string `json:"tools"`
	Count int      `json:"count"`
}

type Summary struct {
	Tools        []string       `json:"tools"`
	Solved       Counters       `json:"solved"`
	SatSolved    Counters       `json:"sat_solved"`
	UnsatSolved  Counters       `json:"unsat_solved"`
	Conflicts    []string       `json:"conflicts"`
	ExactSets    []SetCount     `json:"exact_sets"`
	SolvedByAll  int            `json:"solved_by_all"`
	SolvedByNone int            `json:"solved_by_none"`
	SolvedByOnly map[string]int `json:"solved_by_only"`
	Unlogged     int            `json:"unlogged,omitempty"`
}

// Total is the denominator used for overall percentages.
func (s *Summary) Total() int {
	return s.Solved[TotalKey]
}
