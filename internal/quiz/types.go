package quiz

import "demoodle/internal/cloze"

// Question kinds that carry no learner response and never become questions.
const (
	KindCategory    = "category"
	KindDescription = "description"
)

// Question is one answerable question of a quiz export, in document order.
type Question struct {
	// Index is the zero-based position among answerable questions. It matches
	// the position of the question's response column in the results export.
	Index      int
	Name       string
	Type       string
	Body       string
	Directives []cloze.Directive
	Failures   []*cloze.GrammarError
	// Err is set when the question lacks a name or body; such a question is
	// excluded from grading but still owns its response column.
	Err *StructureError
}

// Excluded reports whether the question is left out of grading.
func (q Question) Excluded() bool {
	return q.Err != nil
}

// Quiz is the ordered list of answerable questions.
type Quiz struct {
	Questions []Question
}

// Failures returns every grammar failure across the quiz.
func (q Quiz) Failures() []*cloze.GrammarError {
	var failures []*cloze.GrammarError
	for _, question := range q.Questions {
		failures = append(failures, question.Failures...)
	}
	return failures
}

// StructureErrors returns the structure errors of excluded questions.
func (q Quiz) StructureErrors() []*StructureError {
	var errs []*StructureError
	for _, question := range q.Questions {
		if question.Err != nil {
			errs = append(errs, question.Err)
		}
	}
	return errs
}

// DirectiveCount returns the number of directive tokens found in the quiz.
func (q Quiz) DirectiveCount() int {
	total := 0
	for _, question := range q.Questions {
		total += len(question.Directives)
	}
	return total
}
