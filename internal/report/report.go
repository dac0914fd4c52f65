// Package report renders the grading table and run diagnostics as a
// standalone HTML page.
package report

import (
	"context"
	"io"
	"strings"
	"time"

	"demoodle/internal/grading"

	"github.com/a-h/templ"
)

// Stat is one labeled figure in the report header.
type Stat struct {
	Label string
	Value string
}

// Data is everything the report page shows.
type Data struct {
	Title       string
	RunID       string
	GeneratedAt time.Time
	Table       grading.Table
	Stats       []Stat
	Diagnostics []string
}

// Render writes the full page for data.
func Render(ctx context.Context, w io.Writer, data Data) error {
	return Page(data).Render(ctx, w)
}

// RenderString renders the page into a string.
func RenderString(data Data) (string, error) {
	var builder strings.Builder
	if err := Render(context.Background(), &builder, data); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// Page wraps the report body in the document layout.
func Page(data Data) templ.Component {
	title := data.Title
	if title == "" {
		title = "Grading report"
	}
	return Layout(title, Body(data))
}
