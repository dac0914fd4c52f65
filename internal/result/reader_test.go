package result

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

const moodleTitles = "\ufeffNachname,Vorname,Matrikelnummer,Institution,Abteilung,E-Mail-Adresse,Status,\"Begonnen am\",Beendet,\"Verbrauchte Zeit\",Bewertung/80.00,\"Antwort 1\",\"Antwort 2\"\n"

func TestReadMoodleExport(t *testing.T) {
	input := moodleTitles +
		`Max,Mustermann,12345,,,max@muster.ch,Beendet,"21. Januar 1999  07:18","21. Januar 2011  17:48","2 Stunden 30 Minuten",44.62,"Teil 1: Butan-1-on; Teil 2: Z; Teil 3: Piperidin","Teil 1: Benzocarboxamid; Teil 2: Nitril; Teil 3: Ethinyl"` + "\n" +
		`Muster,Erika,54321,,,erika@muster.ch,Beendet,"x","y","z",12.00,"-","` + "multi\nline" + `"` + "\n"
	export, err := Read(strings.NewReader(input), 2, DefaultReadOptions())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if export.Titles[0] != "Nachname" {
		t.Fatalf("expected BOM to be stripped, got %q", export.Titles[0])
	}
	if len(export.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(export.Rows))
	}
	first := export.Rows[0]
	if first.Identity != [2]string{"Max", "Mustermann"} || first.Line != 2 {
		t.Fatalf("unexpected first row %+v", first)
	}
	if len(first.Cells) != 2 || !strings.HasPrefix(first.Cells[1], "Teil 1: Benzocarboxamid") {
		t.Fatalf("unexpected cells %q", first.Cells)
	}
	if export.Rows[1].Line != 3 || export.Rows[1].Cells[1] != "multi\nline" {
		t.Fatalf("unexpected second row %+v", export.Rows[1])
	}
}

func TestReadFormatErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
		line  int
	}{
		{"empty", "", ErrNoHeader, 1},
		{"title width", "a,b,c\n", ErrColumnCount, 1},
		{"ragged row", "a,b,c,d\n1,2,3\n", nil, 2},
		{"unterminated quote", "a,b,c,d\n1,2,3,\"open\n", nil, 2},
	}
	opts := ReadOptions{Delimiter: ',', SkipColumns: 1}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.input), 1, opts)
			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("expected format error, got %v", err)
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if formatErr.Line != tc.line {
				t.Fatalf("expected line %d, got %d (%v)", tc.line, formatErr.Line, err)
			}
		})
	}
}

func TestReadCustomDelimiter(t *testing.T) {
	input := "last\tfirst\tanswer\nDoe\tJane\tTeil 1: x; Teil 2: y\n"
	export, err := Read(strings.NewReader(input), 1, ReadOptions{Delimiter: '\t'})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !slices.Equal(export.Rows[0].Cells, []string{"Teil 1: x; Teil 2: y"}) {
		t.Fatalf("unexpected cells %q", export.Rows[0].Cells)
	}
}
