package live

import (
	"strings"

	"demoodle/internal/report"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderPlain renders the whole grading table once, for non-interactive
// output. The reference row is the first body row.
func RenderPlain(data report.Data, noColor bool) string {
	rows := data.Table.Rows
	if len(rows) == 0 {
		return ""
	}
	degraded := map[int]bool{}
	for _, entry := range data.Table.Degraded {
		degraded[entry.Row] = true
	}

	headerStyle := lipgloss.NewStyle().Bold(!noColor).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	referenceStyle := cellStyle
	degradedStyle := cellStyle
	if !noColor {
		referenceStyle = cellStyle.Italic(true).Foreground(lipgloss.Color("244"))
		degradedStyle = cellStyle.Foreground(lipgloss.Color("214"))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(rows[0]...).
		Rows(rows[1:]...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == 0:
				return referenceStyle
			case degraded[row+1]:
				return degradedStyle
			default:
				return cellStyle
			}
		})

	var builder strings.Builder
	if data.Title != "" {
		builder.WriteString(renderHeader(data, noColor))
		builder.WriteString("\n")
	}
	builder.WriteString(t.Render())
	builder.WriteString("\n")
	if len(data.Stats) > 0 {
		builder.WriteString(renderStats(data.Stats, noColor))
		builder.WriteString("\n")
	}
	return builder.String()
}
