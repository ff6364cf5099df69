// analysis/compare.go
package analysis

import "github.com/mwiater/benchscope/baseline"

// Direction qualifies a metric's movement between two snapshots.
type Direction int

const (
	// Unchanged means before and after are exactly equal.
	Unchanged Direction = iota
	// Improved means the metric shrank.
	Improved
	// Regressed means the metric grew.
	Regressed
)

// String returns the label reports display for the direction.
func (d Direction) String() string {
	switch d {
	case Improved:
		return "improved"
	case Regressed:
		return "regressed"
	}
	return "unchanged"
}

// Metric names one compared quantity.
type Metric struct {
	Field string `json:"field"` // run field name, e.g. "solve_time_s"
	Label string `json:"label"` // display label
	Count bool   `json:"count"` // counter semantics: reduction against max(before, 1)
}

// DefaultMetrics is the comparison set the CLI reports: the two
// headline timings plus the surrogate population counter.
func DefaultMetrics() []Metric {
	return []Metric{
		{Field: "total_time_s", Label: "Total time"},
		{Field: "solve_time_s", Label: "Solve time"},
		{Field: "transient_surrogate_populations", Label: "Surrogate populations", Count: true},
	}
}

// MetricDelta is one metric's movement for one scenario. PctChange is
// oriented so a positive value means improvement (a reduction).
type MetricDelta struct {
	Metric     Metric    `json:"metric"`
	Before     float64   `json:"before"`
	After      float64   `json:"after"`
	PctChange  float64   `json:"pct_change"`
	Degenerate bool      `json:"degenerate"` // before was 0; PctChange is a placeholder, not a measurement
	Direction  Direction `json:"direction"`
}

// ScenarioComparison is one scenario id matched across both snapshots.
// Name comes from the before snapshot when the two disagree.
type ScenarioComparison struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Deltas []MetricDelta `json:"deltas"`
}

// Unmatched is a scenario present in only one snapshot. It is listed,
// never compared against a fabricated zero.
type Unmatched struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Comparison is the full before/after join of two snapshots.
type Comparison struct {
	Matched         []ScenarioComparison `json:"matched"`
	UnmatchedBefore []Unmatched          `json:"unmatched_before"` // only in the before snapshot
	UnmatchedAfter  []Unmatched          `json:"unmatched_after"`  // only in the after snapshot
}

// Compare joins two snapshots on scenario id and computes each
// metric's movement. Matched scenarios follow the before snapshot's
// order; scenarios present on one side only are collected per side.
func Compare(before, after baseline.Snapshot, metrics []Metric, mode MedianMode) (Comparison, error) {
	afterByID := make(map[string]baseline.ScenarioResult, len(after.Results))
	for _, sr := range after.Results {
		afterByID[sr.Scenario.ID] = sr
	}

	var cmp Comparison
	matched := make(map[string]bool, len(before.Results))
	for _, b := range before.Results {
		a, ok := afterByID[b.Scenario.ID]
		if !ok {
			cmp.UnmatchedBefore = append(cmp.UnmatchedBefore, Unmatched{ID: b.Scenario.ID, Name: b.Scenario.Name})
			continue
		}
		matched[b.Scenario.ID] = true

		sc := ScenarioComparison{ID: b.Scenario.ID, Name: b.Scenario.Name}
		for _, metric := range metrics {
			delta, err := metricDelta(metric, b, a, mode)
			if err != nil {
				return Comparison{}, err
			}
			sc.Deltas = append(sc.Deltas, delta)
		}
		cmp.Matched = append(cmp.Matched, sc)
	}
	for _, a := range after.Results {
		if !matched[a.Scenario.ID] {
			cmp.UnmatchedAfter = append(cmp.UnmatchedAfter, Unmatched{ID: a.Scenario.ID, Name: a.Scenario.Name})
		}
	}
	return cmp, nil
}

// metricDelta computes one metric's before/after movement.
func metricDelta(metric Metric, before, after baseline.ScenarioResult, mode MedianMode) (MetricDelta, error) {
	b, err := MetricValue(before, metric.Field, mode)
	if err != nil {
		return MetricDelta{}, err
	}
	a, err := MetricValue(after, metric.Field, mode)
	if err != nil {
		return MetricDelta{}, err
	}

	d := MetricDelta{Metric: metric, Before: b, After: a}
	switch {
	case b > a:
		d.Direction = Improved
	case b < a:
		d.Direction = Regressed
	}

	switch {
	case metric.Count:
		den := b
		if den < 1 {
			den = 1
		}
		d.PctChange = (b - a) / den * 100
	case b == 0:
		d.Degenerate = true
	default:
		d.PctChange = (b - a) / b * 100
	}
	return d, nil
}
