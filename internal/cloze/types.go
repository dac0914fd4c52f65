package cloze

// Scores with a fixed meaning. Anything strictly between them is partial credit.
const (
	ScoreIncorrect = 0
	ScoreCorrect   = 100
)

// Answer is one scored candidate answer of a directive.
type Answer struct {
	Text  string
	Score int
}

// Correct reports whether the answer earns full credit.
func (a Answer) Correct() bool {
	return a.Score == ScoreCorrect
}

// Partial reports whether the answer earns partial credit.
func (a Answer) Partial() bool {
	return a.Score > ScoreIncorrect && a.Score < ScoreCorrect
}

// Directive is one parsed cloze directive such as {1:SHORTANSWER:=Foo~%50%Fo}.
// A directive without answers is a placeholder left behind by a parse failure.
type Directive struct {
	ID      int
	Kind    string
	Answers []Answer
	Raw     string
}

// Placeholder reports whether the directive holds no answers.
func (d Directive) Placeholder() bool {
	return len(d.Answers) == 0
}

// CorrectTexts returns the texts of all full-credit answers in written order.
func (d Directive) CorrectTexts() []string {
	texts := make([]string, 0, len(d.Answers))
	for _, answer := range d.Answers {
		if answer.Correct() {
			texts = append(texts, answer.Text)
		}
	}
	return texts
}
