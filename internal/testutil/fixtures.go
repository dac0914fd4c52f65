package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleQuiz is a small Moodle export: a three-part cloze question, a
// single-part cloze question, a drag-and-drop question without directives
// and a cloze question whose only directive is malformed.
const SampleQuiz = `<?xml version="1.0" encoding="UTF-8"?>
<quiz>
  <question type="category">
    <category><text>$course$/Organische Chemie</text></category>
  </question>
  <question type="cloze">
    <name><text>Aufgabe 1 Nomenklatur</text></name>
    <questiontext format="html">
      <text><![CDATA[<p>{1:SHORTANSWER:=Butan-1-on~%50%Butanon}</p><p>{1:MULTICHOICE:R~=S}</p><p>{1:SHORTANSWER:=Piperidin~=Azacyclohexan}</p>]]></text>
    </questiontext>
  </question>
  <question type="cloze">
    <name><text>Aufgabe 2 Gruppen</text></name>
    <questiontext format="html">
      <text><![CDATA[<p>Funktionelle Gruppe: {1:SHORTANSWER:=Nitril}</p>]]></text>
    </questiontext>
  </question>
  <question type="ddmarker">
    <name><text>Aufgabe 3 Zuordnung</text></name>
    <questiontext format="html">
      <text><![CDATA[<p>Markieren Sie das Nukleophil.</p>]]></text>
    </questiontext>
  </question>
  <question type="cloze">
    <name><text>Aufgabe 4 Defekt</text></name>
    <questiontext format="html">
      <text><![CDATA[<p>{1:SHORTANSWER:=a~}</p>]]></text>
    </questiontext>
  </question>
</quiz>
`

// SampleResults is a responses export for SampleQuiz. Zoe Aal answered only
// two parts of the first question.
const SampleResults = `Nachname,Vorname,Matrikelnummer,Institution,Abteilung,E-Mail-Adresse,Status,Begonnen am,Beendet,Verbrauchte Zeit,Bewertung/10.00,Frage 1,Frage 2,Frage 3,Frage 4
Muster,Max,11-111-111,,,max@example.org,Beendet,"1. März 2026 10:00","1. März 2026 10:40",40 Minuten,8.00,"Teil 1: Butan-1-on; Teil 2: S; Teil 3: Piperidin",Nitril,{Dropzone 1 -> Nu},a
Beispiel,Erika,22-222-222,,,erika@example.org,Beendet,"1. März 2026 10:00","1. März 2026 10:45",45 Minuten,5.00,"Teil 1: Butanon; Teil 2: R; Teil 3: ",Amin &amp; Nitril,-,
Aal,Zoe,33-333-333,,,zoe@example.org,Beendet,"1. März 2026 10:00","1. März 2026 10:50",50 Minuten,2.00,"Teil 1: x; Teil 2: R",Nitril,-,b
`

// SampleTable is the grading table expected for the sample inputs with the
// default configuration.
var SampleTable = [][]string{
	{"Last name", "First name", "Question 1 Part 1", "Question 1 Part 3", "Question 2", "Question 4"},
	{"Reference", "Answer key", "Butan-1-on", "Piperidin|Azacyclohexan", "Nitril", "<>"},
	{"Aal", "Zoe", "<misaligned> x", "<misaligned>", "Nitril", "b"},
	{"Beispiel", "Erika", "Butanon", "leer", "Amin & Nitril", "leer"},
	{"Muster", "Max", "Butan-1-on", "Piperidin", "Nitril", "a"},
}

// WriteFile writes content under dir and returns the full path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// WriteSampleInputs writes SampleQuiz and SampleResults into a temp dir.
func WriteSampleInputs(t testing.TB) (dir, quizPath, resultsPath string) {
	t.Helper()
	dir = t.TempDir()
	quizPath = WriteFile(t, dir, "quiz.xml", SampleQuiz)
	resultsPath = WriteFile(t, dir, "results.csv", SampleResults)
	return dir, quizPath, resultsPath
}
