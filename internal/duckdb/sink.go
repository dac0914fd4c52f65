package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"demoodle/internal/grading"

	"github.com/google/uuid"
)

// DefaultSeparator is stored when Run.Separator is empty.
const DefaultSeparator = "|"

// Run describes one grading run for the runs table.
type Run struct {
	ID          string
	StartedAt   time.Time
	FinishedAt  time.Time
	QuizPath    string
	ResultsPath string
	OutputPath  string
	Policy      string
	// Separator joins the alternatives in the reference row; v_answers
	// splits on it.
	Separator       string
	Questions       int
	Slots           int
	GrammarFailures int
}

// WriteRun stores the run and every learner cell of table in one transaction.
func WriteRun(ctx context.Context, db *sql.DB, run Run, table grading.Table) error {
	if ctx == nil {
		return errors.New("duckdb: context is nil")
	}
	if db == nil {
		return errors.New("duckdb: db is nil")
	}
	if _, err := uuid.Parse(run.ID); err != nil {
		return fmt.Errorf("duckdb: run id %q: %w", run.ID, err)
	}
	if len(table.Rows) < 2 {
		return fmt.Errorf("duckdb: table has %d rows, want header and reference rows", len(table.Rows))
	}

	separator := run.Separator
	if separator == "" {
		separator = DefaultSeparator
	}

	degraded := map[int]bool{}
	for _, entry := range table.Degraded {
		if entry.Row >= 0 {
			degraded[entry.Row] = true
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("duckdb: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT INTO runs (
  run_id, started_at, finished_at, quiz_path, results_path, output_path, policy, reference_separator,
  questions, slots, graded_columns, learners, degraded, dropped, grammar_failures
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt.UTC(), run.FinishedAt.UTC(), run.QuizPath, run.ResultsPath, nullableString(run.OutputPath), run.Policy, separator,
		run.Questions, run.Slots, table.Width-2, len(table.Rows)-2, len(degraded), table.Dropped, run.GrammarFailures,
	); err != nil {
		return fmt.Errorf("duckdb: insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO grades (
  run_id, row_index, last_name, first_name, column_index, header, reference, answer, degraded
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("duckdb: prepare grades: %w", err)
	}
	defer stmt.Close()

	headers, references := table.Rows[0], table.Rows[1]
	for i := 2; i < len(table.Rows); i++ {
		row := table.Rows[i]
		for column := 2; column < len(row); column++ {
			if _, err := stmt.ExecContext(ctx,
				run.ID, i-2, row[0], row[1], column-2, headers[column], references[column], row[column], degraded[i],
			); err != nil {
				return fmt.Errorf("duckdb: insert grade row %d column %d: %w", i, column, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("duckdb: commit: %w", err)
	}
	return nil
}

// WriteFile opens the database at path, writes the run and closes it.
func WriteFile(ctx context.Context, path string, run Run, table grading.Table) error {
	db, err := Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()
	return WriteRun(ctx, db, run, table)
}

// nullableString converts an empty string into SQL NULL.
func nullableString(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
