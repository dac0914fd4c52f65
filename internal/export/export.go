// Package export writes a grading table to disk in the format implied by
// the output file extension.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"demoodle/internal/report"
)

// Format is an output file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatXLSX Format = "xlsx"
	FormatHTML Format = "html"
)

// ErrUnknownFormat is returned for an output extension without a writer.
var ErrUnknownFormat = errors.New("unknown output format")

// FormatFor maps an output path to its format by extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".tsv", ".tab":
		return FormatTSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	case ".html", ".htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w %q (want .csv, .tsv, .xlsx or .html)", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Write renders data in the given format.
func Write(ctx context.Context, w io.Writer, format Format, data report.Data) error {
	switch format {
	case FormatCSV:
		return writeDelimited(w, ',', data.Table.Rows)
	case FormatTSV:
		return writeDelimited(w, '\t', data.Table.Rows)
	case FormatXLSX:
		return writeXLSX(w, data)
	case FormatHTML:
		return report.Render(ctx, w, data)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// WriteFile writes data to path. The file appears only once it is complete;
// a failed write leaves any existing file untouched.
func WriteFile(ctx context.Context, path string, data report.Data) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	return AtomicWrite(path, func(w io.Writer) error {
		return Write(ctx, w, format, data)
	})
}

// AtomicWrite streams into a temp file next to path and renames it into
// place after write succeeds.
func AtomicWrite(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename %s: %w", filepath.Base(path), err)
	}
	return nil
}
