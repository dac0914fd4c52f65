package quiz

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"demoodle/internal/cloze"
)

// ErrNotQuiz indicates that the document root is not <quiz>.
var ErrNotQuiz = errors.New("document root is not <quiz>")

type xmlQuiz struct {
	XMLName   xml.Name      `xml:"quiz"`
	Questions []xmlQuestion `xml:"question"`
}

type xmlQuestion struct {
	Type         string          `xml:"type,attr"`
	Name         *xmlText        `xml:"name"`
	QuestionText []xmlFormatText `xml:"questiontext"`
}

type xmlText struct {
	Text *string `xml:"text"`
}

type xmlFormatText struct {
	Format string  `xml:"format,attr"`
	Text   *string `xml:"text"`
}

// LoadFile reads and parses a Moodle XML quiz export.
func LoadFile(path string) (Quiz, error) {
	file, err := os.Open(path)
	if err != nil {
		return Quiz{}, fmt.Errorf("open quiz: %w", err)
	}
	defer file.Close()
	return Load(file)
}

// Load parses a Moodle XML quiz export. Category and description entries are
// skipped. Questions without name or HTML body are kept as excluded entries.
func Load(r io.Reader) (Quiz, error) {
	var doc xmlQuiz
	decoder := xml.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		var unexpected xml.UnmarshalError
		if errors.As(err, &unexpected) {
			return Quiz{}, fmt.Errorf("parse quiz: %w", ErrNotQuiz)
		}
		return Quiz{}, fmt.Errorf("parse quiz: %w", err)
	}
	var quiz Quiz
	for _, node := range doc.Questions {
		kind := strings.ToLower(strings.TrimSpace(node.Type))
		if kind == KindCategory || kind == KindDescription {
			continue
		}
		quiz.Questions = append(quiz.Questions, buildQuestion(len(quiz.Questions), kind, node))
	}
	return quiz, nil
}

func buildQuestion(index int, kind string, node xmlQuestion) Question {
	question := Question{Index: index, Type: kind}
	if node.Name == nil || node.Name.Text == nil || strings.TrimSpace(*node.Name.Text) == "" {
		question.Err = &StructureError{Index: index, Type: kind, Field: "name"}
		return question
	}
	question.Name = strings.TrimSpace(*node.Name.Text)
	body, ok := htmlBody(node.QuestionText)
	if !ok {
		question.Err = &StructureError{Index: index, Type: kind, Field: "html question text"}
		return question
	}
	question.Body = body
	question.Directives, question.Failures = cloze.ParseAll(cloze.Extract(body))
	return question
}

func htmlBody(texts []xmlFormatText) (string, bool) {
	for _, text := range texts {
		if text.Format == "html" && text.Text != nil {
			return *text.Text, true
		}
	}
	return "", false
}
