package runner

import (
	"strconv"

	"demoodle/internal/report"
)

// ReportData converts results into the data shown by the HTML report and
// written by the table exporters.
func ReportData(results Results) report.Data {
	summary := results.Summary
	return report.Data{
		Title:       quizTitle(results.Inputs.QuizPath),
		RunID:       results.RunID,
		GeneratedAt: results.FinishedAt,
		Table:       results.Table,
		Stats: []report.Stat{
			{Label: "Policy", Value: results.Policy},
			{Label: "Questions", Value: strconv.Itoa(summary.Questions)},
			{Label: "Excluded questions", Value: strconv.Itoa(summary.Excluded)},
			{Label: "Directives", Value: strconv.Itoa(summary.Directives)},
			{Label: "Grammar failures", Value: strconv.Itoa(summary.GrammarFailures)},
			{Label: "Graded columns", Value: strconv.Itoa(summary.Columns) + " of " + strconv.Itoa(summary.Slots)},
			{Label: "Learners", Value: strconv.Itoa(summary.Learners)},
			{Label: "Degraded rows", Value: strconv.Itoa(summary.Degraded)},
			{Label: "Dropped rows", Value: strconv.Itoa(summary.Dropped)},
		},
		Diagnostics: results.Warnings,
	}
}
