package combine_test

import (
	"testing"

	"github.com/signalnine/solvecmp/internal/combine"
	"github.com/signalnine/solvecmp/internal/result"
)

var (
	sat     = result.Sat
	unsat   = result.Unsat
	crash   = result.Crash
	timeout = result.Timeout
	unknown = result.Unknown
)

// permutations returns every ordering of in.
func permutations(in []result.Outcome) [][]result.Outcome {
	if len(in) <= 1 {
		return [][]result.Outcome{append([]result.Outcome(nil), in...)}
	}
	var out [][]result.Outcome
	for i := range in {
		rest := make([]result.Outcome, 0, len(in)-1)
		rest = append(rest, in[:i]...)
		rest = append(rest, in[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]result.Outcome{in[i]}, p...))
		}
	}
	return out
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name string
		in   []result.Outcome
		want result.Outcome
	}{
		{"empty", nil, timeout},
		{"single sat", []result.Outcome{sat}, sat},
		{"single unsat", []result.Outcome{unsat}, unsat},
		{"conflict", []result.Outcome{sat, unsat}, crash},
		{"conflict with extra sat", []result.Outcome{sat, unsat, sat}, crash},
		{"conflict with timeout and crash", []result.Outcome{timeout, unsat, crash, sat}, crash},
		{"sat beats crash and timeout", []result.Outcome{crash, timeout, sat}, sat},
		{"unsat beats crash", []result.Outcome{crash, unsat, unsat}, unsat},
		{"crash beats timeout", []result.Outcome{timeout, crash}, crash},
		{"only timeouts", []result.Outcome{timeout, timeout}, timeout},
		{"unknown is unsolved", []result.Outcome{unknown}, timeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, p := range permutations(tt.in) {
				if got := combine.Combine(p...); got != tt.want {
					t.Errorf("Combine(%v) = %q, want %q", p, got, tt.want)
				}
			}
		})
	}
}

func TestToolNameOrderStable(t *testing.T) {
	a := combine.ToolName([]string{"z3", "bitwuzla", "q3b"})
	b := combine.ToolName([]string{"q3b", "z3", "bitwuzla", "z3"})
	if a != b {
		t.Errorf("names differ: %q vs %q", a, b)
	}
	if a != "bitwuzla+q3b+z3" {
		t.Errorf("got %q", a)
	}
}

func newTable() *result.Table {
	tbl := result.NewTable()
	b1 := tbl.Ensure("b1")
	b1.Outcomes["A"], b1.Outcomes["B"] = sat, timeout
	b1.Durations["A"], b1.Durations["B"] = 300, 60000
	b2 := tbl.Ensure("b2")
	b2.Outcomes["B"] = unsat
	b2.Durations["B"] = 90
	b3 := tbl.Ensure("b3")
	b3.Outcomes["A"], b3.Outcomes["B"] = unsat, unsat
	b3.Durations["A"], b3.Durations["B"] = 50, 20
	return tbl
}

func TestAddVirtualTool(t *testing.T) {
	tbl := newTable()
	out, name := combine.AddVirtualTool(tbl, []string{"B", "A"})
	if name != "A+B" {
		t.Fatalf("name: got %q", name)
	}

	b1, _ := out.Get("b1")
	if b1.Outcomes[name] != sat {
		t.Errorf("b1: got %q, want sat", b1.Outcomes[name])
	}
	if b1.Durations[name] != 300 {
		t.Errorf("b1 duration: got %d, want 300", b1.Durations[name])
	}
	b2, _ := out.Get("b2")
	if _, ok := b2.Outcomes[name]; ok {
		t.Error("b2 lacks A, virtual tool must have no entry")
	}
	b3, _ := out.Get("b3")
	if b3.Durations[name] != 20 {
		t.Errorf("b3 duration: got %d, want fastest 20", b3.Durations[name])
	}

	orig, _ := tbl.Get("b1")
	if _, ok := orig.Outcomes[name]; ok {
		t.Error("input table must not be modified")
	}

	again, _ := combine.AddVirtualTool(out, []string{"A", "B"})
	a1, _ := again.Get("b1")
	if a1.Outcomes[name] != sat || len(a1.Outcomes) != 3 {
		t.Errorf("re-adding the same virtual tool should be idempotent, got %v", a1.Outcomes)
	}
}

func TestAddPipeline(t *testing.T) {
	out := combine.AddPipeline(newTable(), "A>B", []string{"A", "B"})
	b1, _ := out.Get("b1")
	if b1.Outcomes["A>B"] != timeout {
		t.Errorf("outcome comes from the last stage: got %q", b1.Outcomes["A>B"])
	}
	if b1.Durations["A>B"] != 60300 {
		t.Errorf("duration: got %d, want 60300", b1.Durations["A>B"])
	}
	b2, _ := out.Get("b2")
	if b2.Outcomes["A>B"] != unsat {
		t.Errorf("b2 outcome: got %q", b2.Outcomes["A>B"])
	}
	if _, ok := b2.Durations["A>B"]; ok {
		t.Error("missing stage duration must leave the pipeline duration absent")
	}
}

func TestDropTrivial(t *testing.T) {
	tbl := newTable()
	tbl.Ensure("no-durations").Outcomes["A"] = sat
	out, dropped := combine.DropTrivial(tbl, combine.Trivial{Threshold: 1000, PerTool: map[string]int64{"A": 100}})
	// b2: B=90 < 1000. b3: A=50 < 100, B=20 < 1000. b1: B is slow.
	if dropped != 2 {
		t.Errorf("dropped: got %d, want 2", dropped)
	}
	if _, ok := out.Get("b1"); !ok {
		t.Error("b1 should be kept")
	}
	if _, ok := out.Get("no-durations"); !ok {
		t.Error("benchmarks without durations should be kept")
	}
	if tbl.Len() != 4 {
		t.Error("input table must not be modified")
	}
}
