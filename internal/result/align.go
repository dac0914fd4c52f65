package result

import (
	"demoodle/internal/answerkey"
)

// DefaultMisaligned fills slots that a misaligned row could not provide.
const DefaultMisaligned = "<misaligned>"

// Aligner maps result rows onto the slots of an answer key.
type Aligner struct {
	Key        answerkey.Key
	Exploder   *Exploder
	Empty      string
	Misaligned string
}

// Aligned is one row after explosion, alignment and masking.
type Aligned struct {
	Row     Row
	Values  []string
	Err     *AlignmentError
	Notices []PartOrderNotice
}

// Degraded reports whether the values are a best-effort repair.
func (a Aligned) Degraded() bool {
	return a.Err != nil
}

// Align explodes every response cell, checks each question's part count
// against its slot count and returns the kept, normalized values. When the
// counts disagree the row is repaired question by question and Err describes
// the damage: missing parts become the misaligned marker, surplus parts are
// cut, and every value kept from a mismatched question is prefixed with the
// marker. Values are never reordered.
func (a *Aligner) Align(row Row) Aligned {
	aligned := Aligned{Row: row}
	slots := make([]string, 0, a.Key.Slots())
	filled := make([]bool, 0, a.Key.Slots())
	suspect := make([]bool, 0, a.Key.Slots())
	var mismatches []QuestionMismatch
	got := 0
	for i, group := range a.Key.Groups {
		cell := ""
		if i < len(row.Cells) {
			cell = row.Cells[i]
		}
		if group.Excluded {
			continue
		}
		parts := []Part{{Value: cell}}
		if !group.Atomic {
			parts = a.Exploder.Explode(cell)
		}
		got += len(parts)
		if len(parts) > 1 && !inOrder(parts) {
			aligned.Notices = append(aligned.Notices, PartOrderNotice{
				Line:     row.Line,
				Identity: row.Identity,
				Question: group.Question,
				Tags:     tags(parts),
			})
		}
		mismatched := len(parts) != group.Len
		if mismatched {
			mismatches = append(mismatches, QuestionMismatch{Question: group.Question, Expected: group.Len, Got: len(parts)})
		}
		for j := 0; j < group.Len; j++ {
			suspect = append(suspect, mismatched)
			if j < len(parts) {
				slots = append(slots, parts[j].Value)
				filled = append(filled, true)
				continue
			}
			slots = append(slots, "")
			filled = append(filled, false)
		}
	}
	if len(mismatches) > 0 || got != a.Key.Slots() {
		aligned.Err = &AlignmentError{
			Line:      row.Line,
			Identity:  row.Identity,
			Expected:  a.Key.Slots(),
			Got:       got,
			Questions: mismatches,
		}
	}
	aligned.Values = make([]string, 0, a.Key.Width())
	for i, keep := range a.Key.Mask {
		if !keep {
			continue
		}
		if !filled[i] {
			aligned.Values = append(aligned.Values, a.misaligned())
			continue
		}
		value := Normalize(slots[i], a.empty())
		if suspect[i] {
			value = a.misaligned() + " " + value
		}
		aligned.Values = append(aligned.Values, value)
	}
	return aligned
}

func (a *Aligner) empty() string {
	if a.Empty == "" {
		return DefaultEmptyAnswer
	}
	return a.Empty
}

func (a *Aligner) misaligned() string {
	if a.Misaligned == "" {
		return DefaultMisaligned
	}
	return a.Misaligned
}
