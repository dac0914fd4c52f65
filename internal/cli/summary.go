package cli

import (
	"fmt"
	"io"

	"demoodle/internal/runner"

	"github.com/charmbracelet/lipgloss"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	summaryLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	summaryWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// printSummary writes the run outcome and the files it produced.
func printSummary(w io.Writer, results runner.Results, outputs runner.Outputs, noColor bool) {
	styled := !noColor && runner.ShouldUseStyling(w)
	render := func(style lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return style.Render(text)
	}
	line := func(label, format string, args ...any) {
		fmt.Fprintf(w, "%s %s\n", render(summaryLabelStyle, label+":"), fmt.Sprintf(format, args...))
	}

	s := results.Summary
	fmt.Fprintln(w, render(summaryTitleStyle, fmt.Sprintf("Run %s completed", results.RunID)))
	line("Questions", "%d (%d excluded)", s.Questions, s.Excluded)
	line("Directives", "%d (%d grammar failures)", s.Directives, s.GrammarFailures)
	line("Graded columns", "%d of %d slots", s.Columns, s.Slots)
	line("Learners", "%d (%d degraded, %d dropped)", s.Learners, s.Degraded, s.Dropped)
	if len(results.Warnings) > 0 {
		fmt.Fprintln(w, render(summaryWarnStyle, fmt.Sprintf("%d warnings written to stderr", len(results.Warnings))))
	}
	line("Table", "%s", outputs.TablePath)
	if outputs.AlignmentReportPath != "" {
		line("Alignment report", "%s", outputs.AlignmentReportPath)
	}
	if outputs.DuckDBPath != "" {
		line("DuckDB", "%s", outputs.DuckDBPath)
	}
}
