package live

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// maxColumnWidth caps a column so long answers do not push others off screen.
const maxColumnWidth = 28

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252")).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	return styles
}

// columnsFor sizes one column per grading table column from its widest cell.
func columnsFor(rows [][]string) []table.Column {
	if len(rows) == 0 {
		return nil
	}
	columns := make([]table.Column, len(rows[0]))
	for i, title := range rows[0] {
		width := lipgloss.Width(title)
		for _, row := range rows[1:] {
			if i < len(row) {
				width = max(width, lipgloss.Width(row[i]))
			}
		}
		columns[i] = table.Column{Title: title, Width: min(width, maxColumnWidth)}
	}
	return columns
}

// rowsForState converts the visible learner rows into table rows. Degraded
// rows get a leading marker in the first column.
func rowsForState(state State) []table.Row {
	rows := make([]table.Row, 0, len(state.Visible))
	for _, index := range state.Visible {
		learner := state.Learners[index]
		row := make(table.Row, len(learner))
		copy(row, learner)
		if state.Degraded[index] && len(row) > 0 {
			row[0] = "! " + row[0]
		}
		rows = append(rows, row)
	}
	return rows
}
