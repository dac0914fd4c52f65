package runner

import (
	"demoodle/internal/answerkey"
	"demoodle/internal/grading"
	"demoodle/internal/quiz"
)

// summarize aggregates run artifacts into a summary.
func summarize(q quiz.Quiz, key answerkey.Key, table grading.Table) RunSummary {
	summary := RunSummary{
		Questions:        len(q.Questions),
		Excluded:         len(q.StructureErrors()),
		Directives:       q.DirectiveCount(),
		GrammarFailures:  len(q.Failures()),
		Slots:            key.Slots(),
		Columns:          key.Width(),
		Learners:         len(table.Learners()),
		Dropped:          table.Dropped,
		PartOrderNotices: len(table.Notices),
	}
	for _, entry := range table.Degraded {
		if entry.Row >= 0 {
			summary.Degraded++
		}
	}
	return summary
}
