// browse/browse_test.go
package browse

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwiater/benchscope/analysis"
)

const browseSnapshot = `{
  "timestamp": "timestamp_1766000000",
  "results": [
    {
      "scenario": {"id": "01_steady", "name": "Steady One", "mode": "Steady"},
      "runs": [{"total_time_s": 2.0, "build_time_s": 0.5, "solve_time_s": 1.5}]
    },
    {
      "scenario": {"id": "03_vent", "name": "Vent", "mode": {"Transient": {"dt_s": 0.01, "t_end_s": 1.0}}},
      "runs": [{"total_time_s": 10.0, "build_time_s": 2.0, "solve_time_s": 8.0,
                "transient_steps": 100}]
    }
  ]
}`

// writeSnapshot drops snapshot JSON into a temp dir and returns its path.
func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "baseline.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
	return path
}

func TestLoadSnapshotCmd(t *testing.T) {
	// Test case 1: Missing file
	msg := loadSnapshotCmd(filepath.Join(t.TempDir(), "nope.json"), analysis.MedianInterpolated)()
	if _, ok := msg.(snapshotLoadErr); !ok {
		t.Errorf("Expected snapshotLoadErr, got %T", msg)
	}

	// Test case 2: Valid snapshot
	path := writeSnapshot(t, browseSnapshot)
	msg = loadSnapshotCmd(path, analysis.MedianInterpolated)()
	ready, ok := msg.(snapshotReadyMsg)
	if !ok {
		t.Fatalf("Expected snapshotReadyMsg, got %T", msg)
	}
	if len(ready.items) != 2 || len(ready.breakdowns) != 2 {
		t.Errorf("Expected 2 items and breakdowns, got %d and %d", len(ready.items), len(ready.breakdowns))
	}
	first, ok := ready.items[0].(item)
	if !ok {
		t.Fatalf("Expected item, got %T", ready.items[0])
	}
	if first.Title() != "Steady One" {
		t.Errorf("Expected title 'Steady One', got %q", first.Title())
	}
	if !strings.Contains(first.Description(), "01_steady") || !strings.Contains(first.Description(), "Steady") {
		t.Errorf("Unexpected description: %q", first.Description())
	}
	second := ready.items[1].(item)
	if !strings.Contains(second.Description(), "Transient") || !strings.Contains(second.Description(), "1 run") {
		t.Errorf("Unexpected description: %q", second.Description())
	}
}

func TestUpdate(t *testing.T) {
	path := writeSnapshot(t, browseSnapshot)
	m := initialModel(path, analysis.MedianInterpolated)

	// Test case 1: Initial state
	if m.state != viewScenarioList {
		t.Errorf("Expected initial state to be viewScenarioList, got %v", m.state)
	}
	if !m.isLoading {
		t.Errorf("Expected the model to start in the loading state")
	}

	// Test case 2: Quit message
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("Expected a quit command, but got nil")
	}

	// Test case 3: Ctrl+c
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("Expected a quit command, but got nil")
	}

	// Test case 4: Window size message
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = newModel.(*model)
	if m.width != 100 || m.height != 40 {
		t.Errorf("Expected width 100 and height 40, got %d and %d", m.width, m.height)
	}

	// Test case 5: Snapshot ready populates the list
	msg := loadSnapshotCmd(path, analysis.MedianInterpolated)()
	newModel, _ = m.Update(msg)
	m = newModel.(*model)
	if m.isLoading {
		t.Errorf("Expected loading to finish")
	}
	if len(m.list.Items()) != 2 {
		t.Fatalf("Expected 2 list items, got %d", len(m.list.Items()))
	}

	// Test case 6: Enter opens the detail view for the selection
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(*model)
	if m.state != viewDetail {
		t.Errorf("Expected state to be viewDetail, got %v", m.state)
	}
	if m.selected.ID != "01_steady" {
		t.Errorf("Expected selected scenario 01_steady, got %q", m.selected.ID)
	}

	// Test case 7: Esc returns to the list
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = newModel.(*model)
	if m.state != viewScenarioList {
		t.Errorf("Expected state to be viewScenarioList, got %v", m.state)
	}

	// Test case 8: Load error is stored
	m2 := initialModel(path, analysis.MedianInterpolated)
	errMsg := loadSnapshotCmd(filepath.Join(t.TempDir(), "gone.json"), analysis.MedianInterpolated)()
	newModel, _ = m2.Update(errMsg)
	m2 = newModel.(*model)
	if m2.err == nil {
		t.Errorf("Expected load error to be stored")
	}
}

func TestView(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	path := writeSnapshot(t, browseSnapshot)
	m := initialModel(path, analysis.MedianInterpolated)

	// Test case 1: Initializing view
	view := m.View()
	if view != "Initializing..." {
		t.Errorf("Expected view to be 'Initializing...', got '%s'", view)
	}

	// Test case 2: Loading view
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = newModel.(*model)
	view = m.View()
	if !strings.Contains(view, "Loading") || !strings.Contains(view, path) {
		t.Errorf("Expected loading view to name the snapshot, got '%s'", view)
	}

	// Test case 3: Error view
	m.isLoading = false
	m.err = snapshotLoadErr(os.ErrNotExist)
	view = m.View()
	if !strings.Contains(view, "Error") {
		t.Errorf("Expected view to contain 'Error', got '%s'", view)
	}
	m.err = nil

	// Test case 4: Scenario list view
	msg := loadSnapshotCmd(path, analysis.MedianInterpolated)()
	newModel, _ = m.Update(msg)
	m = newModel.(*model)
	view = m.View()
	if !strings.Contains(view, "Steady One") {
		t.Errorf("Expected list view to show scenarios, got '%s'", view)
	}

	// Test case 5: Detail view
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(*model)
	view = m.View()
	if !strings.Contains(view, "01_steady") {
		t.Errorf("Expected detail header to name the scenario, got '%s'", view)
	}
	if !strings.Contains(view, "(75.0% of total)") {
		t.Errorf("Expected attribution content in the viewport, got '%s'", view)
	}
}
