package runner

import (
	"time"

	"demoodle/internal/answerkey"
	"demoodle/internal/grading"
	"demoodle/internal/quiz"
)

// Results is the in-memory outcome of one run.
type Results struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	Inputs     Inputs
	Policy     string
	Quiz       quiz.Quiz
	Key        answerkey.Key
	Table      grading.Table
	Summary    RunSummary
	// Warnings holds every diagnostic written during the run, in order.
	Warnings []string
}

// RunSummary counts what a run found and produced.
type RunSummary struct {
	Questions        int `json:"questions"`
	Excluded         int `json:"excluded_questions"`
	Directives       int `json:"directives"`
	GrammarFailures  int `json:"grammar_failures"`
	Slots            int `json:"slots"`
	Columns          int `json:"graded_columns"`
	Learners         int `json:"learners"`
	Degraded         int `json:"degraded_rows"`
	Dropped          int `json:"dropped_rows"`
	PartOrderNotices int `json:"part_order_notices"`
}
