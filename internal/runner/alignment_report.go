package runner

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"demoodle/internal/cloze"
	"demoodle/internal/export"
)

// AlignmentReport is the JSON side report of a run's diagnostics.
type AlignmentReport struct {
	RunID           string            `json:"run_id"`
	StartedAt       time.Time         `json:"started_at"`
	FinishedAt      time.Time         `json:"finished_at"`
	Inputs          Inputs            `json:"inputs"`
	Policy          string            `json:"policy"`
	Summary         RunSummary        `json:"summary"`
	GrammarFailures []GrammarEntry    `json:"grammar_failures"`
	Excluded        []StructureEntry  `json:"excluded_questions"`
	Misaligned      []MisalignedEntry `json:"misaligned_rows"`
	PartOrder       []PartOrderEntry  `json:"part_order_notices"`
}

type GrammarEntry struct {
	Question  int    `json:"question"`
	Directive string `json:"directive"`
	Offset    int    `json:"offset"`
	Near      string `json:"near"`
	Message   string `json:"message"`
	Score     bool   `json:"score_out_of_range,omitempty"`
}

type StructureEntry struct {
	Question int    `json:"question"`
	Type     string `json:"type"`
	Missing  string `json:"missing"`
}

type MisalignedEntry struct {
	Line      int                `json:"line"`
	Identity  [2]string          `json:"identity"`
	Expected  int                `json:"expected"`
	Got       int                `json:"got"`
	Questions []QuestionMismatch `json:"questions"`
	// TableRow is the row index in the grading table, or -1 when dropped.
	TableRow int `json:"table_row"`
}

type QuestionMismatch struct {
	Question int `json:"question"`
	Expected int `json:"expected"`
	Got      int `json:"got"`
}

type PartOrderEntry struct {
	Line     int       `json:"line"`
	Identity [2]string `json:"identity"`
	Question int       `json:"question"`
	Tags     []int     `json:"tags"`
}

// BuildAlignmentReport collects the diagnostics of results. Question numbers
// are one-based like the column labels.
func BuildAlignmentReport(results Results) AlignmentReport {
	out := AlignmentReport{
		RunID:           results.RunID,
		StartedAt:       results.StartedAt,
		FinishedAt:      results.FinishedAt,
		Inputs:          results.Inputs,
		Policy:          results.Policy,
		Summary:         results.Summary,
		GrammarFailures: []GrammarEntry{},
		Excluded:        []StructureEntry{},
		Misaligned:      []MisalignedEntry{},
		PartOrder:       []PartOrderEntry{},
	}
	for _, question := range results.Quiz.Questions {
		if question.Err != nil {
			out.Excluded = append(out.Excluded, StructureEntry{
				Question: question.Index + 1,
				Type:     question.Err.Type,
				Missing:  question.Err.Field,
			})
		}
		for _, failure := range question.Failures {
			out.GrammarFailures = append(out.GrammarFailures, GrammarEntry{
				Question:  question.Index + 1,
				Directive: failure.Token,
				Offset:    failure.Offset,
				Near:      failure.Near,
				Message:   failure.Err.Error(),
				Score:     errors.Is(failure, cloze.ErrScoreRange),
			})
		}
	}
	for _, entry := range results.Table.Degraded {
		mismatches := make([]QuestionMismatch, 0, len(entry.Err.Questions))
		for _, mismatch := range entry.Err.Questions {
			mismatches = append(mismatches, QuestionMismatch{
				Question: mismatch.Question + 1,
				Expected: mismatch.Expected,
				Got:      mismatch.Got,
			})
		}
		out.Misaligned = append(out.Misaligned, MisalignedEntry{
			Line:      entry.Err.Line,
			Identity:  entry.Err.Identity,
			Expected:  entry.Err.Expected,
			Got:       entry.Err.Got,
			Questions: mismatches,
			TableRow:  entry.Row,
		})
	}
	for _, notice := range results.Table.Notices {
		out.PartOrder = append(out.PartOrder, PartOrderEntry{
			Line:     notice.Line,
			Identity: notice.Identity,
			Question: notice.Question + 1,
			Tags:     notice.Tags,
		})
	}
	return out
}

// WriteAlignmentReport writes the side report as indented JSON.
func WriteAlignmentReport(path string, results Results) error {
	payload := BuildAlignmentReport(results)
	err := export.AtomicWrite(path, func(w io.Writer) error {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	})
	if err != nil {
		return fmt.Errorf("write alignment report: %w", err)
	}
	return nil
}
