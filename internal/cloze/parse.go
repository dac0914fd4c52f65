package cloze

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// directivePattern isolates directive tokens inside a question body: a brace
// span opening with digits and a colon, without nested closing braces.
var directivePattern = regexp.MustCompile(`\{\d+:[^}]+\}`)

// headerPattern recovers the id and kind from a token that failed to parse.
var headerPattern = regexp.MustCompile(`^\{(\d+):([A-Za-z]+):`)

// Extract returns every directive token of a question body in document order.
func Extract(body string) []string {
	return directivePattern.FindAllString(body, -1)
}

// Parse parses one isolated directive token.
func Parse(token string) (Directive, error) {
	node, err := directiveParser.ParseString("", token)
	if err != nil {
		offset := len(token)
		var perr participle.Error
		if errors.As(err, &perr) {
			offset = perr.Position().Offset
			err = errors.New(perr.Message())
		}
		return Directive{}, newGrammarError(token, offset, err)
	}
	directive, offset, err := node.directive(token)
	if err != nil {
		return Directive{}, newGrammarError(token, offset, err)
	}
	return directive, nil
}

// ParseAll parses the tokens of one question. A token that fails to parse is
// replaced by a placeholder directive so it keeps its slot; the failures are
// returned alongside in token order.
func ParseAll(tokens []string) ([]Directive, []*GrammarError) {
	directives := make([]Directive, 0, len(tokens))
	var failures []*GrammarError
	for _, token := range tokens {
		directive, err := Parse(token)
		if err != nil {
			var gerr *GrammarError
			if !errors.As(err, &gerr) {
				gerr = newGrammarError(token, 0, err)
			}
			failures = append(failures, gerr)
			directives = append(directives, placeholder(token))
			continue
		}
		directives = append(directives, directive)
	}
	return directives, failures
}

// placeholder builds a zero-answer directive, keeping whatever id and kind
// can still be read from the token header.
func placeholder(token string) Directive {
	directive := Directive{Raw: token}
	match := headerPattern.FindStringSubmatch(token)
	if match == nil {
		return directive
	}
	if id, err := strconv.Atoi(match[1]); err == nil {
		directive.ID = id
	}
	directive.Kind = strings.ToLower(match[2])
	return directive
}

// directive converts the syntax tree. On failure it also returns the byte
// offset of the offending element.
func (n *directiveNode) directive(raw string) (Directive, int, error) {
	id, err := strconv.Atoi(n.ID)
	if err != nil {
		return Directive{}, 1, fmt.Errorf("directive id: %w", err)
	}
	answers := make([]Answer, 0, len(n.Answers))
	for _, node := range n.Answers {
		answer, err := node.answer()
		if err != nil {
			return Directive{}, node.Pos.Offset, err
		}
		answers = append(answers, answer)
	}
	return Directive{
		ID:      id,
		Kind:    strings.ToLower(n.Kind),
		Answers: answers,
		Raw:     raw,
	}, 0, nil
}

func (n *answerNode) answer() (Answer, error) {
	switch {
	case n.Correct != nil:
		return Answer{Text: decodeAnswerText(strings.TrimPrefix(*n.Correct, "=")), Score: ScoreCorrect}, nil
	case n.Partial != nil:
		scoreText, text, _ := strings.Cut(strings.TrimPrefix(*n.Partial, "%"), "%")
		score, err := strconv.Atoi(scoreText)
		if err != nil {
			return Answer{}, fmt.Errorf("partial score %q: %w", scoreText, err)
		}
		if score > ScoreCorrect {
			return Answer{}, fmt.Errorf("partial score %d: %w", score, ErrScoreRange)
		}
		return Answer{Text: decodeAnswerText(text), Score: score}, nil
	case n.Fallback != nil:
		return Answer{Text: decodeAnswerText(*n.Fallback), Score: ScoreIncorrect}, nil
	default:
		return Answer{}, errors.New("empty answer")
	}
}

// decodeAnswerText unescapes HTML entities twice. The first pass undoes the
// XML export's transport encoding; the second undoes Moodle's editor, which
// stores answer text already entity-encoded. Only answer text needs this.
func decodeAnswerText(text string) string {
	return html.UnescapeString(html.UnescapeString(text))
}
