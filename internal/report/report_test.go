package report

import (
	"strings"
	"testing"
	"time"

	"demoodle/internal/grading"
	"demoodle/internal/result"
)

func sampleData() Data {
	return Data{
		Title:       "Quiz 1",
		RunID:       "0190c2b6-7e1a-7000-8000-000000000000",
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Table: grading.Table{
			Width: 3,
			Rows: [][]string{
				{"Last name", "First name", "Question 1"},
				{"Reference", "Answer key", "<>"},
				{"Doe", "Jane", "a & b"},
				{"Roe", "Rick", "<misaligned>"},
			},
			Degraded: []grading.Degradation{{Row: 3, Err: &result.AlignmentError{Line: 5}}},
		},
		Stats:       []Stat{{Label: "Learners", Value: "2"}},
		Diagnostics: []string{"results line 5 (Roe, Rick): 2 answers for 1 slots"},
	}
}

// TestRenderEscapesCells verifies cell text is HTML-escaped.
func TestRenderEscapesCells(t *testing.T) {
	html, err := RenderString(sampleData())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"<title>Quiz 1</title>",
		"<th>&lt;&gt;</th>",
		"<td>a &amp; b</td>",
		"<td>&lt;misaligned&gt;</td>",
		"<dt>Learners</dt><dd>2</dd>",
		"2026-03-01 12:00:00Z",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in report:\n%s", want, html)
		}
	}
}

// TestRenderMarksDegradedRows verifies degraded rows are highlighted.
func TestRenderMarksDegradedRows(t *testing.T) {
	html, err := RenderString(sampleData())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Count(html, `class="degraded"`) != 1 || !strings.Contains(html, `data-row="3"`) {
		t.Fatalf("expected one degraded row marker:\n%s", html)
	}
	if !strings.Contains(html, `<ul class="diagnostics">`) {
		t.Fatalf("expected diagnostics list")
	}
}

// TestRenderDefaultTitle verifies an empty title falls back to the default.
func TestRenderDefaultTitle(t *testing.T) {
	html, err := RenderString(Data{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "<h1>Grading report</h1>") {
		t.Fatalf("unexpected page:\n%s", html)
	}
	if strings.Contains(html, "<table>") {
		t.Fatalf("empty table should not render")
	}
}
