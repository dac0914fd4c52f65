package cloze

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrScoreRange reports a partial score outside 0..100.
var ErrScoreRange = errors.New("score out of range")

// nearLimit caps the excerpt stored in GrammarError.Near.
const nearLimit = 24

// GrammarError reports a directive that does not match the grammar.
type GrammarError struct {
	Token  string
	Offset int
	Near   string
	Err    error
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("cloze %s: offset %d near %q: %v", e.Token, e.Offset, e.Near, e.Err)
}

func (e *GrammarError) Unwrap() error { return e.Err }

func newGrammarError(token string, offset int, err error) *GrammarError {
	if offset < 0 {
		offset = 0
	}
	if offset > len(token) {
		offset = len(token)
	}
	return &GrammarError{
		Token:  token,
		Offset: offset,
		Near:   excerpt(token[offset:], nearLimit),
		Err:    err,
	}
}

func excerpt(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "…"
}
