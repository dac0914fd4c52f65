package cloze

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// directiveLexer tokenizes a single isolated directive. The answer state lists
// Correct and Partial before Fallback so a leading "=" or "%NN%" is never
// swallowed by the generic text terminal. A prefix that is not followed by at
// least one text character falls through to Fallback, which makes "=~" an
// unscored answer "=" exactly as an ordered-choice grammar would.
var directiveLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Open", Pattern: `\{`},
		{Name: "Number", Pattern: `[0-9]+`},
		{Name: "Colon", Pattern: `:`},
		{Name: "Type", Pattern: `[A-Za-z]+`, Action: lexer.Push("Kind")},
	},
	"Kind": {
		{Name: "KindSep", Pattern: `:`, Action: lexer.Push("Answers")},
	},
	"Answers": {
		{Name: "Tilde", Pattern: `~`},
		{Name: "Close", Pattern: `\}`, Action: lexer.Pop()},
		{Name: "Correct", Pattern: `=[^~}]+`},
		{Name: "Partial", Pattern: `%[0-9]+%[^~}]+`},
		{Name: "Fallback", Pattern: `[^~}]+`},
	},
})

// directiveNode is the syntax tree of one directive.
type directiveNode struct {
	ID      string        `"{" @Number ":"`
	Kind    string        `@Type ":"`
	Answers []*answerNode `@@ ( "~" @@ )* "}"`
}

// answerNode is a tagged variant: exactly one text field is set.
type answerNode struct {
	Pos lexer.Position

	Correct  *string `  @Correct`
	Partial  *string `| @Partial`
	Fallback *string `| @Fallback`
}

var directiveParser = participle.MustBuild[directiveNode](
	participle.Lexer(directiveLexer),
)
