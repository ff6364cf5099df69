// report/inspect.go
package report

import (
	"github.com/k0kubun/pp"
	"github.com/mwiater/benchscope/baseline"
)

// SnapshotSummary is the shape the inspect command dumps: everything a
// developer checks first when a report looks off.
type SnapshotSummary struct {
	Path      string
	Timestamp string
	Scenarios []ScenarioSummary
}

// ScenarioSummary condenses one scenario to its metadata plus an
// inventory of the fields its runs actually recorded.
type ScenarioSummary struct {
	ID           string
	Name         string
	Mode         string
	ProjectPath  string
	SystemID     string
	Supported    bool
	Notes        string
	Runs         int
	HasAggregate bool
	Fields       []baseline.FieldCount
}

// Summarize reduces a snapshot to its inspectable summary.
func Summarize(snap baseline.Snapshot) SnapshotSummary {
	sum := SnapshotSummary{Path: snap.Path, Timestamp: snap.Timestamp}
	for _, sr := range snap.Results {
		sum.Scenarios = append(sum.Scenarios, ScenarioSummary{
			ID:           sr.Scenario.ID,
			Name:         sr.Scenario.Name,
			Mode:         sr.Scenario.Mode.String(),
			ProjectPath:  sr.Scenario.ProjectPath,
			SystemID:     sr.Scenario.SystemID,
			Supported:    sr.Scenario.Supported,
			Notes:        sr.Scenario.Notes,
			Runs:         len(sr.Runs),
			HasAggregate: sr.Aggregate != nil,
			Fields:       baseline.Inventory(sr),
		})
	}
	return sum
}

// RunInspect pretty-prints the parsed structure of a snapshot. It is
// the quickest way to see which instrumentation pass produced a file.
func RunInspect(path string) error {
	snap, err := baseline.Load(path)
	if err != nil {
		return err
	}
	pp.Println(Summarize(snap))
	return nil
}
