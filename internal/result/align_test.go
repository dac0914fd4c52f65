package result

import (
	"slices"
	"testing"

	"demoodle/internal/answerkey"
	"demoodle/internal/cloze"
	"demoodle/internal/quiz"
)

func mustDirective(t *testing.T, token string) cloze.Directive {
	t.Helper()
	directive, err := cloze.Parse(token)
	if err != nil {
		t.Fatalf("parse %q: %v", token, err)
	}
	return directive
}

func testKey(t *testing.T) answerkey.Key {
	t.Helper()
	q := quiz.Quiz{Questions: []quiz.Question{
		{Index: 0, Name: "Namen", Directives: []cloze.Directive{
			mustDirective(t, "{1:SHORTANSWER:=Foo}"),
			mustDirective(t, "{1:SHORTANSWER:=Bar~%50%Ba}"),
		}},
		{Index: 1, Name: "Auswahl", Directives: []cloze.Directive{
			mustDirective(t, "{1:MULTICHOICE:=ja~nein}"),
		}},
		{Index: 2, Name: "Zuordnung"},
		{Index: 3, Err: &quiz.StructureError{Index: 3, Type: "cloze", Field: "name"}},
		{Index: 4, Name: "Einzeln", Directives: []cloze.Directive{
			mustDirective(t, "{1:SHORTANSWER:=Baz}"),
		}},
	}}
	key, err := answerkey.Build(q, answerkey.DefaultOptions())
	if err != nil {
		t.Fatalf("build key: %v", err)
	}
	return key
}

func TestAlignEndToEnd(t *testing.T) {
	aligner := &Aligner{Key: testKey(t)}
	row := Row{Line: 2, Identity: [2]string{"Doe", "Jane"}, Cells: []string{
		"Teil 1: Foo; Teil 2: Bar",
		"Teil 1: ja",
		"{Dropzone 1 -> Nu}; {Dropzone 2 -> E}",
		"ignored",
		" baz\r\n",
	}}
	aligned := aligner.Align(row)
	if aligned.Degraded() {
		t.Fatalf("unexpected alignment error: %v", aligned.Err)
	}
	if want := []string{"Foo", "Bar", "baz"}; !slices.Equal(aligned.Values, want) {
		t.Fatalf("expected %q, got %q", want, aligned.Values)
	}
	if len(aligned.Notices) != 0 {
		t.Fatalf("unexpected notices %v", aligned.Notices)
	}
}

func TestAlignEmptyParts(t *testing.T) {
	aligner := &Aligner{Key: testKey(t), Empty: "-"}
	aligned := aligner.Align(Row{Cells: []string{"Teil 1: ; Teil 2: Bar", "Teil 1: nein", "", "", ""}})
	if aligned.Degraded() {
		t.Fatalf("unexpected alignment error: %v", aligned.Err)
	}
	if want := []string{"-", "Bar", "-"}; !slices.Equal(aligned.Values, want) {
		t.Fatalf("expected %q, got %q", want, aligned.Values)
	}
}

func TestAlignMismatchDegrades(t *testing.T) {
	aligner := &Aligner{Key: testKey(t)}
	row := Row{Line: 7, Identity: [2]string{"Roe", "Rick"}, Cells: []string{
		"Teil 1: Foo",
		"Teil 1: ja; Teil 2: nein",
		"x",
		"",
		"Baz",
	}}
	aligned := aligner.Align(row)
	if !aligned.Degraded() {
		t.Fatalf("expected degraded row")
	}
	if want := []string{DefaultMisaligned + " Foo", DefaultMisaligned, "Baz"}; !slices.Equal(aligned.Values, want) {
		t.Fatalf("expected %q, got %q", want, aligned.Values)
	}
	err := aligned.Err
	if err.Line != 7 || err.Expected != 5 || err.Got != 5 {
		t.Fatalf("unexpected error %+v", err)
	}
	want := []QuestionMismatch{{Question: 0, Expected: 2, Got: 1}, {Question: 1, Expected: 1, Got: 2}}
	if !slices.Equal(err.Questions, want) {
		t.Fatalf("expected mismatches %v, got %v", want, err.Questions)
	}
}

func TestAlignTruncatesSurplusParts(t *testing.T) {
	aligner := &Aligner{Key: testKey(t), Misaligned: "?"}
	aligned := aligner.Align(Row{Cells: []string{
		"Teil 1: Foo; Teil 2: Bar; Teil 3: Extra",
		"Teil 1: ja",
		"",
		"",
		"",
	}})
	if !aligned.Degraded() {
		t.Fatalf("expected degraded row")
	}
	if want := []string{"? Foo", "? Bar", DefaultEmptyAnswer}; !slices.Equal(aligned.Values, want) {
		t.Fatalf("expected kept parts of the truncated question to be marked, got %q", aligned.Values)
	}
	if aligned.Err.Got != 6 {
		t.Fatalf("expected 6 answers, got %d", aligned.Err.Got)
	}
}

func TestAlignMissingCellsAreMisaligned(t *testing.T) {
	aligner := &Aligner{Key: testKey(t)}
	aligned := aligner.Align(Row{Cells: []string{"Teil 1: Foo; Teil 2: Bar"}})
	if want := []string{"Foo", "Bar", DefaultEmptyAnswer}; !slices.Equal(aligned.Values, want) {
		t.Fatalf("expected %q, got %q", want, aligned.Values)
	}
}

func TestAlignReportsPartOrder(t *testing.T) {
	aligner := &Aligner{Key: testKey(t), Exploder: NewExploder("Teil")}
	row := Row{Line: 3, Identity: [2]string{"Poe", "Pat"}, Cells: []string{"Teil 2: Bar; Teil 1: Foo", "", "", "", "Baz"}}
	aligned := aligner.Align(row)
	if aligned.Degraded() {
		t.Fatalf("unexpected alignment error: %v", aligned.Err)
	}
	if want := []string{"Bar", "Foo", "Baz"}; !slices.Equal(aligned.Values, want) {
		t.Fatalf("values must keep literal order, got %q", aligned.Values)
	}
	if len(aligned.Notices) != 1 {
		t.Fatalf("expected one notice, got %v", aligned.Notices)
	}
	notice := aligned.Notices[0]
	if notice.Question != 0 || !slices.Equal(notice.Tags, []int{2, 1}) || notice.Line != 3 {
		t.Fatalf("unexpected notice %+v", notice)
	}
}
