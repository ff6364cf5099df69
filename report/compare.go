// report/compare.go
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/benchscope/analysis"
	"github.com/mwiater/benchscope/baseline"
)

// RenderComparison renders the before/after report: per-scenario
// metric movements, then the scenarios present on only one side.
func RenderComparison(before, after baseline.Snapshot, cmp analysis.Comparison) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Benchmark Comparison") + "\n")
	b.WriteString(metaStyle.Render("  before: "+describeSnapshot(before)) + "\n")
	b.WriteString(metaStyle.Render("  after:  "+describeSnapshot(after)) + "\n\n")

	for i, sc := range cmp.Matched {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(scenarioStyle.Render(fmt.Sprintf("%s (%s)", sc.Name, sc.ID)) + "\n")
		for _, d := range sc.Deltas {
			if line, ok := deltaLine(d); ok {
				b.WriteString(line)
			}
		}
	}
	if len(cmp.Matched) == 0 {
		b.WriteString(metaStyle.Render("No scenarios matched between the snapshots.") + "\n")
	}

	b.WriteString(unmatchedBlock("Only in before snapshot:", cmp.UnmatchedBefore))
	b.WriteString(unmatchedBlock("Only in after snapshot:", cmp.UnmatchedAfter))
	return b.String()
}

func describeSnapshot(snap baseline.Snapshot) string {
	if snap.Timestamp != "" {
		return fmt.Sprintf("%s (%s)", snap.Path, snap.Timestamp)
	}
	return snap.Path
}

// deltaLine formats one metric movement. Counters that are zero on
// both sides are noise and get skipped.
func deltaLine(d analysis.MetricDelta) (string, bool) {
	label := d.Metric.Label + ":"
	if d.Metric.Count {
		if d.Before == 0 && d.After == 0 {
			return "", false
		}
		change := directionStyle(d.Direction).Render(fmt.Sprintf("%.0f%% reduction", d.PctChange))
		return fmt.Sprintf("  %-22s %9s -> %-9s %s\n", label,
			fmt.Sprintf("%.0f", d.Before), fmt.Sprintf("%.0f", d.After), change), true
	}

	change := fmt.Sprintf("%+.1f%% %s", d.PctChange, d.Direction)
	if d.Degenerate {
		change = fmt.Sprintf("n/a (before is zero) %s", d.Direction)
	}
	change = directionStyle(d.Direction).Render(change)
	return fmt.Sprintf("  %-22s %9s -> %-9s %s\n", label,
		fmt.Sprintf("%.3fs", d.Before), fmt.Sprintf("%.3fs", d.After), change), true
}

// directionStyle colors a movement by whether it helped.
func directionStyle(d analysis.Direction) lipgloss.Style {
	switch d {
	case analysis.Improved:
		return improvedStyle
	case analysis.Regressed:
		return regressedStyle
	}
	return metaStyle
}

func unmatchedBlock(heading string, list []analysis.Unmatched) string {
	if len(list) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n" + scenarioStyle.Render(heading) + "\n")
	for _, u := range list {
		b.WriteString(fmt.Sprintf("  - %s (%s)\n", u.Name, u.ID))
	}
	return b.String()
}
