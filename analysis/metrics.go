// analysis/metrics.go
package analysis

import (
	"fmt"
	"sort"

	"github.com/mwiater/benchscope/baseline"
)

// MedianMode selects how the median of an even-length sample set is
// taken. Both conventions exist among snapshot producers, so reports
// must be able to reproduce either.
type MedianMode int

const (
	// MedianInterpolated averages the two middle values of an even
	// set. This is the default.
	MedianInterpolated MedianMode = iota
	// MedianLowerOfPair takes the element at index n/2 of the sorted
	// values, matching the producing harness's own aggregation.
	MedianLowerOfPair
)

// String returns the flag spelling of the mode.
func (m MedianMode) String() string {
	if m == MedianLowerOfPair {
		return "lower-of-pair"
	}
	return "interpolated"
}

// ParseMedianMode maps a flag value to its MedianMode. The empty
// string selects the default.
func ParseMedianMode(s string) (MedianMode, error) {
	switch s {
	case "", "interpolated":
		return MedianInterpolated, nil
	case "lower-of-pair":
		return MedianLowerOfPair, nil
	}
	return MedianInterpolated, fmt.Errorf("unknown median mode %q (want interpolated or lower-of-pair)", s)
}

// Median returns the mode's median of values. The input is never
// reordered; an empty set is 0, not an error.
func Median(values []float64, mode MedianMode) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if mode == MedianInterpolated && len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// FieldMedian aggregates one named field across a scenario's runs.
// Runs that did not record the field contribute 0; they are never
// excluded from the sample set. A wrong-typed recording is an error.
func FieldMedian(sr baseline.ScenarioResult, field string, mode MedianMode) (float64, error) {
	values := make([]float64, 0, len(sr.Runs))
	for _, run := range sr.Runs {
		s, err := run.Field(field)
		if err != nil {
			return 0, fmt.Errorf("scenario %s: %w", sr.Scenario.ID, err)
		}
		values = append(values, s.Value)
	}
	return Median(values, mode), nil
}

// MetricValue resolves a field's aggregated value for one scenario.
// The producer's precomputed aggregate wins when it carries the
// matching median key; otherwise the median is computed from the runs.
// Resolution is per key, so a partial aggregate still serves the keys
// it has.
func MetricValue(sr baseline.ScenarioResult, field string, mode MedianMode) (float64, error) {
	if sr.Aggregate != nil {
		s, err := sr.Aggregate.Field(baseline.AggregateKey(field))
		if err != nil {
			return 0, fmt.Errorf("scenario %s aggregate: %w", sr.Scenario.ID, err)
		}
		if s.Present {
			return s.Value, nil
		}
	}
	return FieldMedian(sr, field, mode)
}
