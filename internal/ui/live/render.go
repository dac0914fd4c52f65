package live

import (
	"strconv"
	"strings"

	"demoodle/internal/report"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the title and run line.
func renderHeader(data report.Data, noColor bool) string {
	line := data.Title
	if data.RunID != "" {
		line += " | Run " + data.RunID
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderStats renders the run figures on one line.
func renderStats(stats []report.Stat, noColor bool) string {
	parts := make([]string, 0, len(stats))
	for _, stat := range stats {
		parts = append(parts, stat.Label+": "+stat.Value)
	}
	return stylize(strings.Join(parts, "  "), noColor, lipgloss.Color("242"))
}

// renderReference renders the reference answers of the graded columns.
func renderReference(rows [][]string, noColor bool) string {
	if len(rows) < 2 {
		return ""
	}
	headers, references := rows[0], rows[1]
	parts := make([]string, 0, len(references))
	for i := 2; i < len(references) && i < len(headers); i++ {
		parts = append(parts, headers[i]+" = "+references[i])
	}
	return stylize(strings.Join(parts, "  "), noColor, lipgloss.Color("240"))
}

// renderFooter renders the filter state and key help.
func renderFooter(state State, noColor bool) string {
	filter := "all rows"
	if state.DegradedOnly {
		filter = "degraded rows only"
	}
	line := strconv.Itoa(len(state.Visible)) + " of " + strconv.Itoa(len(state.Learners)) + " learners (" + filter + ")" +
		" | d: toggle degraded  j/k: move  q: quit"
	return stylize(line, noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
