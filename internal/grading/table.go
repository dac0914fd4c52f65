// Package grading assembles the final grading table from an answer key and
// the aligned result rows.
package grading

import (
	"cmp"
	"fmt"
	"slices"

	"demoodle/internal/answerkey"
	"demoodle/internal/result"
)

// Labels are the fixed cells in the first two columns of the header rows.
type Labels struct {
	Identity  [2]string
	Reference [2]string
}

// DefaultLabels returns English identity and reference labels.
func DefaultLabels() Labels {
	return Labels{
		Identity:  [2]string{"Last name", "First name"},
		Reference: [2]string{"Reference", "Answer key"},
	}
}

// Options controls assembly.
type Options struct {
	Labels Labels
	// DropMisaligned removes degraded rows instead of keeping their repair.
	DropMisaligned bool
}

// Degradation records a learner row that did not align with the key.
type Degradation struct {
	// Row is the table row index, or -1 when the row was dropped.
	Row int
	Err *result.AlignmentError
}

// Table is the assembled grading table. Rows[0] holds the headers, Rows[1]
// the reference answers and every later row one learner.
type Table struct {
	Rows     [][]string
	Width    int
	Degraded []Degradation
	Notices  []result.PartOrderNotice
	Dropped  int
}

// Learners returns the learner rows.
func (t Table) Learners() [][]string {
	if len(t.Rows) < 2 {
		return nil
	}
	return t.Rows[2:]
}

// ShapeError reports a row whose width differs from 2 + the kept slot count.
type ShapeError struct {
	Row  int
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("grading table row %d has %d cells, want %d", e.Row, e.Got, e.Want)
}

// Assemble builds the table. Learner rows are sorted stably by last name
// then first name; rows with equal identity keep their input order.
func Assemble(key answerkey.Key, rows []result.Aligned, opts Options) (Table, error) {
	labels := opts.Labels
	if labels == (Labels{}) {
		labels = DefaultLabels()
	}
	width := 2 + key.Width()
	table := Table{Width: width}
	table.Rows = append(table.Rows,
		prepend(labels.Identity, key.MaskedHeaders()),
		prepend(labels.Reference, key.MaskedReferences()),
	)

	kept := make([]result.Aligned, 0, len(rows))
	for _, row := range rows {
		table.Notices = append(table.Notices, row.Notices...)
		if row.Degraded() && opts.DropMisaligned {
			table.Degraded = append(table.Degraded, Degradation{Row: -1, Err: row.Err})
			table.Dropped++
			continue
		}
		kept = append(kept, row)
	}
	slices.SortStableFunc(kept, func(a, b result.Aligned) int {
		return cmp.Or(
			cmp.Compare(a.Row.Identity[0], b.Row.Identity[0]),
			cmp.Compare(a.Row.Identity[1], b.Row.Identity[1]),
		)
	})
	for _, row := range kept {
		if row.Degraded() {
			table.Degraded = append(table.Degraded, Degradation{Row: len(table.Rows), Err: row.Err})
		}
		table.Rows = append(table.Rows, prepend(row.Row.Identity, row.Values))
	}

	for i, row := range table.Rows {
		if len(row) != width {
			return Table{}, &ShapeError{Row: i, Want: width, Got: len(row)}
		}
	}
	return table, nil
}

func prepend(head [2]string, tail []string) []string {
	row := make([]string, 0, 2+len(tail))
	row = append(row, head[0], head[1])
	return append(row, tail...)
}
