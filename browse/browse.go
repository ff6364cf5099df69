// browse/browse.go
package browse

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/benchscope/analysis"
	"github.com/mwiater/benchscope/baseline"
	"github.com/mwiater/benchscope/report"
)

// viewState represents the current state of the browser's view.
type viewState int

const (
	// viewScenarioList is the state where the user picks a scenario.
	viewScenarioList viewState = iota
	// viewDetail is the state showing one scenario's attribution.
	viewDetail
)

// model is the Bubble Tea model for the snapshot browser.
type model struct {
	// Path of the snapshot being browsed.
	path string
	// Median convention used for the attribution numbers.
	medianMode analysis.MedianMode
	// Current view state.
	state viewState
	// Indicates the snapshot is still being loaded.
	isLoading bool
	// Stores any error encountered while loading or analyzing.
	err error

	// Loaded snapshot and its per-scenario attribution.
	snapshot   baseline.Snapshot
	breakdowns []analysis.Breakdown

	// Bubble Tea list model for scenario selection.
	list list.Model
	// Bubble Tea viewport model for the detail view.
	viewport viewport.Model
	// Bubble Tea spinner model shown while loading.
	spinner spinner.Model
	// The scenario currently shown in the detail view.
	selected analysis.Breakdown

	// Current width and height of the terminal.
	width, height int
}

// initialModel builds the browser model and its Bubble Tea components.
func initialModel(path string, mode analysis.MedianMode) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	scenarioList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	scenarioList.Title = "Scenarios in " + path

	return &model{
		path:       path,
		medianMode: mode,
		state:      viewScenarioList,
		isLoading:  true,
		spinner:    s,
		list:       scenarioList,
		viewport:   viewport.New(100, 5),
	}
}

// item represents a selectable scenario in the list.
type item struct {
	// The scenario's display name.
	title string
	// A short line with id, mode, and run count.
	desc string
	// The scenario's attribution, shown in the detail view.
	breakdown analysis.Breakdown
}

// Title returns the title of the list item.
func (i item) Title() string { return i.title }

// Description returns the description of the list item.
func (i item) Description() string { return i.desc }

// FilterValue returns the text the list filters on.
func (i item) FilterValue() string { return i.title + " " + i.breakdown.ID }

// snapshotReadyMsg is sent when the snapshot is loaded and analyzed.
type snapshotReadyMsg struct {
	snapshot   baseline.Snapshot
	breakdowns []analysis.Breakdown
	items      []list.Item
}

// snapshotLoadErr is sent when loading or analyzing the snapshot fails.
type snapshotLoadErr error

// loadSnapshotCmd loads the snapshot and computes every scenario's
// attribution off the UI goroutine.
func loadSnapshotCmd(path string, mode analysis.MedianMode) tea.Cmd {
	return func() tea.Msg {
		snap, err := baseline.Load(path)
		if err != nil {
			return snapshotLoadErr(err)
		}
		breakdowns, err := analysis.SnapshotBreakdown(snap, mode)
		if err != nil {
			return snapshotLoadErr(err)
		}

		items := make([]list.Item, len(breakdowns))
		for i, bd := range breakdowns {
			items[i] = item{title: bd.Name, desc: itemDesc(bd), breakdown: bd}
		}
		return snapshotReadyMsg{snapshot: snap, breakdowns: breakdowns, items: items}
	}
}

// itemDesc builds the one-line summary under a scenario's name.
func itemDesc(bd analysis.Breakdown) string {
	mode := "Steady"
	if bd.Transient {
		mode = "Transient"
	}
	runs := fmt.Sprintf("%d runs", bd.RunCount)
	if bd.RunCount == 1 {
		runs = "1 run"
	}
	return fmt.Sprintf("%s, %s, %s", bd.ID, mode, runs)
}

// Init starts the spinner and kicks off the snapshot load.
func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadSnapshotCmd(m.path, m.medianMode))
}

// Update is the central update function for the browser.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc", "tab":
			if m.state == viewDetail {
				m.state = viewScenarioList
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width-2, msg.Height-4)
		headerHeight := 2
		footerHeight := 2
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight

	case snapshotReadyMsg:
		m.isLoading = false
		m.snapshot = msg.snapshot
		m.breakdowns = msg.breakdowns
		m.list.SetItems(msg.items)
		return m, nil

	case snapshotLoadErr:
		m.isLoading = false
		m.err = msg
		return m, nil
	}

	switch m.state {
	case viewScenarioList:
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
			if selectedItem, ok := m.list.SelectedItem().(item); ok {
				m.selected = selectedItem.breakdown
				m.state = viewDetail
				m.viewport.GotoTop()
			}
		}

	case viewDetail:
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.isLoading {
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the browser based on its current state.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	if m.err != nil {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.isLoading {
		return fmt.Sprintf("\n  %s Loading %s...\n", m.spinner.View(), m.path)
	}

	switch m.state {
	case viewScenarioList:
		return lipgloss.NewStyle().Margin(1, 2).Render(m.list.View())

	case viewDetail:
		return m.detailView()

	default:
		return "Unknown state"
	}
}

// detailView renders one scenario's attribution inside the viewport,
// with a header naming the snapshot and a key hint underneath.
func (m *model) detailView() string {
	headerStyle := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Render(m.path),
		headerStyle.MarginLeft(1).Render(m.selected.ID),
	)
	help := lipgloss.NewStyle().Faint(true).Render(" (esc to go back, q to quit)")

	m.viewport.SetContent(report.RenderBreakdown(m.selected))

	return header + help + "\n\n" + m.viewport.View()
}

// Start opens the interactive browser for one snapshot and blocks
// until the user quits.
func Start(path string, mode analysis.MedianMode) error {
	m := initialModel(path, mode)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("could not run browser: %w", err)
	}
	return nil
}
