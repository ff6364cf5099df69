// report/breakdown.go
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/benchscope/analysis"
	"github.com/mwiater/benchscope/baseline"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	scenarioStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	metaStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	improvedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	regressedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// RenderBreakdowns renders the whole snapshot report: a header naming
// the source, then one block per scenario in recorded order.
func RenderBreakdowns(snap baseline.Snapshot, breakdowns []analysis.Breakdown, opts Options) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Solve-Time Attribution") + "\n")
	b.WriteString(metaStyle.Render(headerLine(snap, opts)) + "\n\n")

	shown := 0
	for _, bd := range breakdowns {
		if opts.TransientOnly && !bd.Transient {
			continue
		}
		if shown > 0 {
			b.WriteString("\n")
		}
		b.WriteString(RenderBreakdown(bd))
		shown++
	}
	if shown == 0 {
		b.WriteString(metaStyle.Render("No scenarios to report.") + "\n")
	}
	return b.String()
}

// RenderBreakdown renders one scenario's attribution block.
func RenderBreakdown(bd analysis.Breakdown) string {
	var b strings.Builder

	b.WriteString(scenarioStyle.Render(fmt.Sprintf("%s (%s)", bd.Name, bd.ID)) + "\n")
	b.WriteString(metaStyle.Render("  "+modeLine(bd)) + "\n")
	b.WriteString(fmt.Sprintf("  Total: %10.4fs\n", bd.Total))
	b.WriteString(fmt.Sprintf("  Build: %10.4fs %s\n", bd.Build.Seconds, share(bd.Build, "total")))
	b.WriteString(fmt.Sprintf("  Solve: %10.4fs %s\n", bd.Solve.Seconds, share(bd.Solve, "total")))

	b.WriteString("  Solve phases:\n")
	for _, p := range bd.Coarse.Phases {
		b.WriteString(phaseLine(p))
	}
	b.WriteString(phaseLine(bd.Coarse.Subtotal))
	unacc := bd.Coarse.Unaccounted
	unacc.Name = "unaccounted (RHS/RK4 overhead)"
	b.WriteString(phaseLine(unacc))
	b.WriteString(fmt.Sprintf("  Residual evals (median): %.0f\n", bd.ResidualEvals))

	if bd.Fine != nil {
		b.WriteString(fmt.Sprintf("  RHS hot path (median %.0f calls):\n", bd.RHSCalls))
		for _, p := range bd.Fine.Phases {
			if p.Name == "surrogate" {
				p.Name = "surrogate*"
			}
			b.WriteString(phaseLine(p))
		}
		b.WriteString(phaseLine(bd.Fine.Unaccounted))
		b.WriteString(metaStyle.Render("  * surrogate time is a subcomponent measured inside snapshot work") + "\n")
	}
	return b.String()
}

// headerLine names the source file, its timestamp, and the report
// settings that change the numbers.
func headerLine(snap baseline.Snapshot, opts Options) string {
	line := snap.Path
	if snap.Timestamp != "" {
		line += " (" + snap.Timestamp + ")"
	}
	line += ", median: " + opts.Median.String()
	if opts.TransientOnly {
		line += ", transient scenarios only"
	}
	return line
}

// modeLine labels the execution mode and run count. A transient
// scenario without a recorded step count shows "?".
func modeLine(bd analysis.Breakdown) string {
	runs := fmt.Sprintf("%d runs", bd.RunCount)
	if bd.RunCount == 1 {
		runs = "1 run"
	}
	if !bd.Transient {
		return "Mode: Steady, " + runs
	}
	steps := "?"
	if bd.Steps.Present {
		steps = fmt.Sprintf("%.0f", bd.Steps.Value)
	}
	return fmt.Sprintf("Mode: Transient (%s steps), %s", steps, runs)
}

// phaseLine formats one attributed phase. A negative duration is
// highlighted since it means instrumented spans overlapped.
func phaseLine(c analysis.Category) string {
	line := fmt.Sprintf("    %-32s %10.4fs %s", c.Name, c.Seconds, share(c, "solve"))
	if c.Seconds < 0 {
		return warnStyle.Render(line) + "\n"
	}
	return line + "\n"
}

// share renders a category's percentage clause, or the degenerate
// marker when the parent duration was zero.
func share(c analysis.Category, parent string) string {
	if c.Degenerate {
		return fmt.Sprintf("(n/a, %s is zero)", parent)
	}
	return fmt.Sprintf("(%.1f%% of %s)", c.Percent, parent)
}
