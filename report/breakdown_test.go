package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mwiater/benchscope/analysis"
	"github.com/mwiater/benchscope/baseline"
)

const ventScenario = `{
  "scenario": {"id": "03_vent", "name": "Vent", "mode": {"Transient": {"dt_s": 0.01, "t_end_s": 1.0}}},
  "runs": [
    {"total_time_s": 10.0, "build_time_s": 2.0, "solve_time_s": 8.0,
     "solve_residual_time_s": 0.2, "solve_thermo_time_s": 0.6,
     "solve_residual_eval_count": 150, "transient_steps": 100}
  ]
}`

func Test_RenderBreakdown_AttributionLines(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out := RenderBreakdown(breakdownFromJSON(t, ventScenario))

	for _, want := range []string{
		"Vent (03_vent)",
		"Mode: Transient (100 steps), 1 run",
		"(20.0% of total)",
		"(80.0% of total)",
		"residual evaluation",
		"(2.5% of solve)",
		"thermo construction",
		"(7.5% of solve)",
		"measured subtotal",
		"unaccounted (RHS/RK4 overhead)",
		"(90.0% of solve)",
		"Residual evals (median): 150",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "RHS hot path") {
		t.Fatalf("no fine instrumentation recorded, block should be absent:\n%s", out)
	}
}

func Test_RenderBreakdown_SteadyModeLine(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out := RenderBreakdown(breakdownFromJSON(t, `{
  "scenario": {"id": "01", "name": "One", "mode": "Steady"},
  "runs": [{"total_time_s": 1.0, "solve_time_s": 0.5}, {"total_time_s": 1.0, "solve_time_s": 0.5}]
}`))

	if !strings.Contains(out, "Mode: Steady, 2 runs") {
		t.Fatalf("missing steady mode line:\n%s", out)
	}
}

func Test_RenderBreakdown_UnknownStepCount(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out := RenderBreakdown(breakdownFromJSON(t, `{
  "scenario": {"id": "t", "name": "T", "mode": {"Transient": {"dt_s": 0.1, "t_end_s": 1.0}}},
  "runs": [{"total_time_s": 1.0, "solve_time_s": 0.5}]
}`))

	if !strings.Contains(out, "Mode: Transient (? steps), 1 run") {
		t.Fatalf("missing unknown-step marker:\n%s", out)
	}
}

func Test_RenderBreakdown_DegenerateMarkers(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out := RenderBreakdown(breakdownFromJSON(t, `{
  "scenario": {"id": "empty", "name": "Empty", "mode": "Steady"},
  "runs": []
}`))

	if !strings.Contains(out, "(n/a, total is zero)") {
		t.Fatalf("missing total degenerate marker:\n%s", out)
	}
	if !strings.Contains(out, "(n/a, solve is zero)") {
		t.Fatalf("missing solve degenerate marker:\n%s", out)
	}
}

func Test_RenderBreakdown_FineBlock(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out := RenderBreakdown(breakdownFromJSON(t, `{
  "scenario": {"id": "f", "name": "F", "mode": "Steady"},
  "runs": [
    {"total_time_s": 10.0, "build_time_s": 2.0, "solve_time_s": 8.0,
     "rhs_snapshot_time_s": 4.0, "rhs_state_reconstruct_time_s": 0.5,
     "rhs_buffer_init_time_s": 0.25, "rhs_flow_routing_time_s": 0.25,
     "rhs_cv_derivative_time_s": 1.0, "rhs_lv_derivative_time_s": 0.5,
     "rhs_assembly_time_s": 0.25, "rhs_surrogate_time_s": 3.0,
     "rk4_bookkeeping_time_s": 0.25, "rhs_calls": 400}
  ]
}`))

	for _, want := range []string{
		"RHS hot path (median 400 calls):",
		"RHS snapshot",
		"surrogate*",
		"RK4 bookkeeping",
		"* surrogate time is a subcomponent measured inside snapshot work",
		"-2.0000s",
		"(-25.0% of solve)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func Test_RenderBreakdowns_HeaderAndFilter(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var snap baseline.Snapshot
	if err := json.Unmarshal([]byte(reportSnapshot), &snap); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	snap.Path = "benchmarks/baseline.json"
	breakdowns, err := analysis.SnapshotBreakdown(snap, analysis.MedianInterpolated)
	if err != nil {
		t.Fatalf("SnapshotBreakdown error: %v", err)
	}

	all := RenderBreakdowns(snap, breakdowns, Options{})
	if !strings.Contains(all, "Steady One (01_steady)") || !strings.Contains(all, "Vent (03_vent)") {
		t.Fatalf("expected both scenarios:\n%s", all)
	}
	if !strings.Contains(all, "benchmarks/baseline.json (timestamp_1766000000), median: interpolated") {
		t.Fatalf("unexpected header:\n%s", all)
	}

	transient := RenderBreakdowns(snap, breakdowns, Options{TransientOnly: true})
	if strings.Contains(transient, "Steady One") {
		t.Fatalf("steady scenario should be filtered out:\n%s", transient)
	}
	if !strings.Contains(transient, "Vent (03_vent)") {
		t.Fatalf("transient scenario should remain:\n%s", transient)
	}
	if !strings.Contains(transient, "transient scenarios only") {
		t.Fatalf("header should note the filter:\n%s", transient)
	}
}

func Test_RenderBreakdowns_NothingToShow(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	snap := baseline.Snapshot{Path: "x.json"}
	out := RenderBreakdowns(snap, nil, Options{})
	if !strings.Contains(out, "No scenarios to report.") {
		t.Fatalf("missing empty notice:\n%s", out)
	}
}

func Test_RenderBreakdowns_LowerOfPairHeader(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	snap := baseline.Snapshot{Path: "x.json"}
	out := RenderBreakdowns(snap, nil, Options{Median: analysis.MedianLowerOfPair})
	if !strings.Contains(out, "median: lower-of-pair") {
		t.Fatalf("header should name the median mode:\n%s", out)
	}
}
