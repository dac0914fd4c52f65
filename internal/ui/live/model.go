// Package live previews a grading table in the terminal, either as an
// interactive Bubble Tea program or as a static lipgloss table.
package live

import (
	"demoodle/internal/report"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model renders the interactive preview using Bubble Tea.
type Model struct {
	data    report.Data
	state   State
	table   table.Model
	noColor bool
}

// Options configures the preview.
type Options struct {
	NoColor bool
}

// NewModel constructs a preview model for report data.
func NewModel(data report.Data, opts Options) Model {
	state := State{Learners: data.Table.Learners(), Degraded: map[int]bool{}}
	for _, entry := range data.Table.Degraded {
		if entry.Row >= 2 {
			state.Degraded[entry.Row-2] = true
		}
	}
	state = Reduce(state, ActionNone)

	t := table.New(
		table.WithColumns(columnsFor(data.Table.Rows)),
		table.WithRows(rowsForState(state)),
		table.WithFocused(true),
		table.WithHeight(min(max(len(state.Visible), 1), 20)),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{data: data, state: state, table: t, noColor: opts.NoColor}
}

// State returns the current view state.
func (m Model) State() State {
	return m.state
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-6, 1))
		return m, nil
	case tea.KeyMsg:
		key := typed.String()
		switch key {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		action := actionForKey(key)
		if action == ActionNone {
			return m, nil
		}
		m.state = Reduce(m.state, action)
		m.table.SetRows(rowsForState(m.state))
		m.table.SetCursor(m.state.Cursor)
		return m, nil
	}
	return m, nil
}

// View renders the preview.
func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.data, m.noColor),
		renderStats(m.data.Stats, m.noColor),
		renderReference(m.data.Table.Rows, m.noColor),
		m.table.View(),
		renderFooter(m.state, m.noColor),
	)
}
