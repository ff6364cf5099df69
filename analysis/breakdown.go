// analysis/breakdown.go
package analysis

import "github.com/mwiater/benchscope/baseline"

// Category is one attributed slice of a parent duration: absolute
// seconds plus its share of that parent.
type Category struct {
	Name       string  `json:"name"`
	Seconds    float64 `json:"seconds"`
	Percent    float64 `json:"percent"`    // 0 when the parent is 0
	Degenerate bool    `json:"degenerate"` // parent was 0; Percent is a placeholder
}

// PhaseSet is one granularity of solve-time attribution: the measured
// phases, their subtotal, and the solve time they do not account for.
// Unaccounted may be negative when instrumented spans overlap; it is
// reported as-is because the overrun itself is diagnostic.
type PhaseSet struct {
	Phases      []Category `json:"phases"`
	Subtotal    Category   `json:"subtotal"`
	Unaccounted Category   `json:"unaccounted"`
}

// Breakdown attributes one scenario's aggregated wall-clock time:
// build and solve against the total, then named sub-phases against
// solve at each instrumented granularity.
type Breakdown struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Transient bool            `json:"transient"`
	Steps     baseline.Sample `json:"steps"` // first-run step count, transient only
	RunCount  int             `json:"run_count"`

	Total float64  `json:"total_s"`
	Build Category `json:"build"` // share of Total
	Solve Category `json:"solve"` // share of Total

	Coarse        PhaseSet `json:"coarse"`
	ResidualEvals float64  `json:"residual_evals"` // median residual evaluation count

	Fine     *PhaseSet `json:"fine,omitempty"` // nil when RHS instrumentation was never recorded
	RHSCalls float64   `json:"rhs_calls"`      // median RHS call count, meaningful with Fine
}

// phaseSpec pairs a recorded field with its report label.
type phaseSpec struct {
	field string
	name  string
}

// coarsePhases are attributed for every scenario; the solver has
// recorded them since its first instrumentation pass.
var coarsePhases = []phaseSpec{
	{field: "solve_residual_time_s", name: "residual evaluation"},
	{field: "solve_thermo_time_s", name: "thermo construction"},
}

// finePhases cover the RHS/RK4 hot path, in recorded order. Surrogate
// time is measured inside the snapshot span upstream, so this set can
// legitimately sum past solve and push unaccounted negative.
var finePhases = []phaseSpec{
	{field: "rhs_snapshot_time_s", name: "RHS snapshot"},
	{field: "rhs_state_reconstruct_time_s", name: "state reconstruct"},
	{field: "rhs_buffer_init_time_s", name: "buffer init"},
	{field: "rhs_flow_routing_time_s", name: "flow routing"},
	{field: "rhs_cv_derivative_time_s", name: "CV derivative"},
	{field: "rhs_lv_derivative_time_s", name: "LV derivative"},
	{field: "rhs_assembly_time_s", name: "assembly"},
	{field: "rhs_surrogate_time_s", name: "surrogate"},
	{field: "rk4_bookkeeping_time_s", name: "RK4 bookkeeping"},
}

// ScenarioBreakdown computes the attribution for one scenario. Values
// resolve through the scenario's precomputed aggregate when it carries
// them, so producer-aggregated and raw snapshots report identically.
func ScenarioBreakdown(sr baseline.ScenarioResult, mode MedianMode) (Breakdown, error) {
	total, err := MetricValue(sr, "total_time_s", mode)
	if err != nil {
		return Breakdown{}, err
	}
	build, err := MetricValue(sr, "build_time_s", mode)
	if err != nil {
		return Breakdown{}, err
	}
	solve, err := MetricValue(sr, "solve_time_s", mode)
	if err != nil {
		return Breakdown{}, err
	}

	bd := Breakdown{
		ID:        sr.Scenario.ID,
		Name:      sr.Scenario.Name,
		Transient: sr.Scenario.Mode.Kind == baseline.Transient,
		RunCount:  len(sr.Runs),
		Total:     total,
		Build:     category("build", build, total),
		Solve:     category("solve", solve, total),
	}
	if bd.Transient && len(sr.Runs) > 0 {
		steps, err := sr.Runs[0].Field("transient_steps")
		if err != nil {
			return Breakdown{}, err
		}
		bd.Steps = steps
	}

	bd.Coarse, err = phases(sr, coarsePhases, solve, mode)
	if err != nil {
		return Breakdown{}, err
	}
	bd.ResidualEvals, err = MetricValue(sr, "solve_residual_eval_count", mode)
	if err != nil {
		return Breakdown{}, err
	}

	if hasFineInstrumentation(sr) {
		fine, err := phases(sr, finePhases, solve, mode)
		if err != nil {
			return Breakdown{}, err
		}
		bd.Fine = &fine
		bd.RHSCalls, err = MetricValue(sr, "rhs_calls", mode)
		if err != nil {
			return Breakdown{}, err
		}
	}
	return bd, nil
}

// SnapshotBreakdown attributes every scenario, in recorded order.
func SnapshotBreakdown(snap baseline.Snapshot, mode MedianMode) ([]Breakdown, error) {
	out := make([]Breakdown, 0, len(snap.Results))
	for _, sr := range snap.Results {
		bd, err := ScenarioBreakdown(sr, mode)
		if err != nil {
			return nil, err
		}
		out = append(out, bd)
	}
	return out, nil
}

// phases attributes one granularity's fields against the solve time.
func phases(sr baseline.ScenarioResult, specs []phaseSpec, solve float64, mode MedianMode) (PhaseSet, error) {
	ps := PhaseSet{Phases: make([]Category, 0, len(specs))}
	var sum float64
	for _, spec := range specs {
		v, err := MetricValue(sr, spec.field, mode)
		if err != nil {
			return PhaseSet{}, err
		}
		ps.Phases = append(ps.Phases, category(spec.name, v, solve))
		sum += v
	}
	ps.Subtotal = category("measured subtotal", sum, solve)
	ps.Unaccounted = category("unaccounted", solve-sum, solve)
	return ps, nil
}

// category builds one attribution slice with the zero-denominator
// guard: a zero parent yields 0% flagged degenerate, never a fault.
func category(name string, seconds, parent float64) Category {
	c := Category{Name: name, Seconds: seconds}
	if parent == 0 {
		c.Degenerate = true
		return c
	}
	c.Percent = seconds / parent * 100
	return c
}

// hasFineInstrumentation reports whether any run or the aggregate
// recorded any RHS/RK4 sub-phase field or the call counter.
func hasFineInstrumentation(sr baseline.ScenarioResult) bool {
	if sr.Aggregate != nil {
		for _, spec := range finePhases {
			if sr.Aggregate.Has(baseline.AggregateKey(spec.field)) {
				return true
			}
		}
		if sr.Aggregate.Has(baseline.AggregateKey("rhs_calls")) {
			return true
		}
	}
	for _, run := range sr.Runs {
		for _, spec := range finePhases {
			if run.Has(spec.field) {
				return true
			}
		}
		if run.Has("rhs_calls") {
			return true
		}
	}
	return false
}
