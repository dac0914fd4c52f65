// Package result decodes a results export and aligns each learner row with
// the slots of an answer key.
package result

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadOptions describes the layout of a results export.
type ReadOptions struct {
	Delimiter   rune
	SkipColumns int
}

// DefaultReadOptions matches Moodle's responses download: last name, first
// name, then nine metadata columns before the first response.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{Delimiter: ',', SkipColumns: 9}
}

// Row is one learner submission. Cells holds one raw response per question.
type Row struct {
	Line     int
	Identity [2]string
	Cells    []string
}

// Export is a decoded results table.
type Export struct {
	Titles []string
	Rows   []Row
}

// ReadFile decodes a results export from disk.
func ReadFile(path string, questions int, opts ReadOptions) (Export, error) {
	file, err := os.Open(path)
	if err != nil {
		return Export{}, fmt.Errorf("open results: %w", err)
	}
	defer file.Close()
	return Read(file, questions, opts)
}

// Read decodes a results export. The title row must have exactly two
// identity columns, SkipColumns metadata columns and one column per question;
// every later row must have the same width. Any violation is a FormatError.
func Read(r io.Reader, questions int, opts ReadOptions) (Export, error) {
	reader := csv.NewReader(skipBOM(r))
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	titles, err := reader.Read()
	if err == io.EOF {
		return Export{}, &FormatError{Line: 1, Err: ErrNoHeader}
	}
	if err != nil {
		return Export{}, formatError(err)
	}
	want := 2 + opts.SkipColumns + questions
	if len(titles) != want {
		return Export{}, &FormatError{Line: 1, Err: fmt.Errorf("%w: title row has %d columns, quiz needs %d", ErrColumnCount, len(titles), want)}
	}
	export := Export{Titles: titles}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Export{}, formatError(err)
		}
		line, _ := reader.FieldPos(0)
		export.Rows = append(export.Rows, Row{
			Line:     line,
			Identity: [2]string{record[0], record[1]},
			Cells:    record[2+opts.SkipColumns:],
		})
	}
	return export, nil
}

func skipBOM(r io.Reader) io.Reader {
	buffered := bufio.NewReader(r)
	if prefix, err := buffered.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = buffered.Discard(len(utf8BOM))
	}
	return buffered
}

func formatError(err error) *FormatError {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &FormatError{Line: parseErr.StartLine, Err: parseErr.Err}
	}
	return &FormatError{Err: err}
}
