// report/report.go
package report

import (
	"fmt"

	"github.com/mwiater/benchscope/analysis"
	"github.com/mwiater/benchscope/baseline"
)

// Options configure a report run.
type Options struct {
	Median        analysis.MedianMode
	TransientOnly bool // limit breakdown output to transient scenarios
}

// RunBreakdown loads one snapshot and prints its per-scenario
// attribution report.
func RunBreakdown(path string, opts Options) error {
	snap, err := baseline.Load(path)
	if err != nil {
		return err
	}
	breakdowns, err := analysis.SnapshotBreakdown(snap, opts.Median)
	if err != nil {
		return fmt.Errorf("could not analyze %s: %w", snap.Path, err)
	}
	fmt.Print(RenderBreakdowns(snap, breakdowns, opts))
	return nil
}

// RunCompare loads two snapshots and prints their comparison.
func RunCompare(beforePath, afterPath string, opts Options) error {
	before, err := baseline.Load(beforePath)
	if err != nil {
		return err
	}
	after, err := baseline.Load(afterPath)
	if err != nil {
		return err
	}
	comparison, err := analysis.Compare(before, after, analysis.DefaultMetrics(), opts.Median)
	if err != nil {
		return fmt.Errorf("could not compare %s with %s: %w", before.Path, after.Path, err)
	}
	fmt.Print(RenderComparison(before, after, comparison))
	return nil
}
