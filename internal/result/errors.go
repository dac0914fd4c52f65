package result

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel format problems wrapped by FormatError.
var (
	ErrNoHeader    = errors.New("missing title row")
	ErrColumnCount = errors.New("unexpected column count")
)

// FormatError reports a malformed results table. It is fatal for a run.
type FormatError struct {
	Line int
	Err  error
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("results line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("results: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// QuestionMismatch is one question whose response splits into a different
// number of parts than the quiz has slots for it.
type QuestionMismatch struct {
	Question int
	Expected int
	Got      int
}

// AlignmentError reports a row whose exploded answers do not line up with
// the quiz slots.
type AlignmentError struct {
	Line      int
	Identity  [2]string
	Expected  int
	Got       int
	Questions []QuestionMismatch
}

func (e *AlignmentError) Error() string {
	parts := make([]string, 0, len(e.Questions))
	for _, mismatch := range e.Questions {
		parts = append(parts, fmt.Sprintf("question %d expected %d got %d", mismatch.Question+1, mismatch.Expected, mismatch.Got))
	}
	return fmt.Sprintf("results line %d (%s, %s): %d answers for %d slots: %s",
		e.Line, e.Identity[0], e.Identity[1], e.Got, e.Expected, strings.Join(parts, "; "))
}

// PartOrderNotice flags a response whose part tags are not numbered 1..k in
// ascending order. Values keep their literal order regardless.
type PartOrderNotice struct {
	Line     int
	Identity [2]string
	Question int
	Tags     []int
}

func (n PartOrderNotice) String() string {
	return fmt.Sprintf("results line %d (%s, %s): question %d parts appear in order %v",
		n.Line, n.Identity[0], n.Identity[1], n.Question+1, n.Tags)
}
