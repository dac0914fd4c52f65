package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"demoodle/internal/answerkey"
	"demoodle/internal/duckdb"
	"demoodle/internal/export"
	"demoodle/internal/grading"
	"demoodle/internal/quiz"
	"demoodle/internal/result"
)

// Run reconciles a quiz export with a results export and assembles the
// grading table. Recoverable problems become warnings; a malformed results
// table, an unreadable quiz or a table shape defect aborts the run.
func Run(ctx context.Context, inputs Inputs, params RunParams) (Results, error) {
	if err := ctx.Err(); err != nil {
		return Results{}, err
	}
	runID, err := ensureRunID(params.Deps.RunID)
	if err != nil {
		return Results{}, err
	}
	now := params.Deps.Now
	if now == nil {
		now = time.Now
	}
	startedAt := now()
	plan := planFromConfig(params.Config)

	verbose := func(style verboseStyle, format string, args ...any) {
		logVerbose(params.Verbose, params.VerboseWriter, params.NoColor, style, format, args...)
	}
	var warnings []string
	warn := func(format string, args ...any) {
		line := fmt.Sprintf(format, args...)
		warnings = append(warnings, line)
		logWarning(params.WarningWriter, params.NoColor, line)
	}

	verbose(styleStage, "Run %s", runID)
	verbose(styleStage, "Loading quiz %s", inputs.QuizPath)
	q, err := quiz.LoadFile(inputs.QuizPath)
	if err != nil {
		return Results{}, fmt.Errorf("load quiz: %w", err)
	}
	for _, question := range q.Questions {
		if question.Err != nil {
			warn("%v; question excluded", question.Err)
		}
		for _, failure := range question.Failures {
			warn("question %d (%s): %v", question.Index+1, question.Name, failure)
		}
	}
	verbose(styleDefault, "questions=%d directives=%d grammar_failures=%d excluded=%d",
		len(q.Questions), q.DirectiveCount(), len(q.Failures()), len(q.StructureErrors()))

	key, err := answerkey.Build(q, plan.key)
	if err != nil {
		return Results{}, fmt.Errorf("build answer key: %w", err)
	}
	verbose(styleDefault, "policy=%s slots=%d columns=%d", plan.key.Policy, key.Slots(), key.Width())
	for _, ambiguous := range key.Ambiguous {
		warn("%v", ambiguous)
	}

	if err := ctx.Err(); err != nil {
		return Results{}, err
	}
	verbose(styleStage, "Reading results %s", inputs.ResultsPath)
	table, err := result.ReadFile(inputs.ResultsPath, len(q.Questions), plan.read)
	if err != nil {
		return Results{}, fmt.Errorf("read results: %w", err)
	}
	verbose(styleDefault, "rows=%d", len(table.Rows))

	aligner := &result.Aligner{
		Key:        key,
		Exploder:   result.NewExploder(plan.partTag),
		Empty:      plan.empty,
		Misaligned: plan.misaligned,
	}
	action := "kept with marked cells"
	if plan.grading.DropMisaligned {
		action = "dropped"
	}
	rows := make([]result.Aligned, 0, len(table.Rows))
	for _, row := range table.Rows {
		aligned := aligner.Align(row)
		for _, notice := range aligned.Notices {
			warn("%s", notice.String())
		}
		if aligned.Err != nil {
			warn("%v; row %s", aligned.Err, action)
		}
		rows = append(rows, aligned)
	}

	if err := ctx.Err(); err != nil {
		return Results{}, err
	}
	graded, err := grading.Assemble(key, rows, plan.grading)
	if err != nil {
		return Results{}, fmt.Errorf("assemble grading table: %w", err)
	}
	summary := summarize(q, key, graded)
	verbose(styleMetrics, "learners=%d degraded=%d dropped=%d part_order_notices=%d",
		summary.Learners, summary.Degraded, summary.Dropped, summary.PartOrderNotices)

	return Results{
		RunID:      runID,
		StartedAt:  startedAt,
		FinishedAt: now(),
		Inputs:     inputs,
		Policy:     string(plan.key.Policy),
		Quiz:       q,
		Key:        key,
		Table:      graded,
		Summary:    summary,
		Warnings:   warnings,
	}, nil
}

// RunAndWrite runs and writes every requested output. The table is written
// atomically, so a failed run leaves no partial output behind.
func RunAndWrite(ctx context.Context, inputs Inputs, outputs Outputs, params RunParams) (Results, error) {
	if strings.TrimSpace(outputs.TablePath) == "" {
		return Results{}, fmt.Errorf("output path is required")
	}
	if _, err := export.FormatFor(outputs.TablePath); err != nil {
		return Results{}, err
	}
	results, err := Run(ctx, inputs, params)
	if err != nil {
		return Results{}, err
	}

	if err := export.WriteFile(ctx, outputs.TablePath, ReportData(results)); err != nil {
		return Results{}, fmt.Errorf("write table: %w", err)
	}
	logVerbose(params.Verbose, params.VerboseWriter, params.NoColor, styleStage, "Wrote %s", outputs.TablePath)

	if outputs.AlignmentReportPath != "" {
		if err := WriteAlignmentReport(outputs.AlignmentReportPath, results); err != nil {
			return Results{}, err
		}
		logVerbose(params.Verbose, params.VerboseWriter, params.NoColor, styleStage, "Wrote %s", outputs.AlignmentReportPath)
	}
	if outputs.DuckDBPath != "" {
		run := duckdb.Run{
			ID:              results.RunID,
			StartedAt:       results.StartedAt,
			FinishedAt:      results.FinishedAt,
			QuizPath:        results.Inputs.QuizPath,
			ResultsPath:     results.Inputs.ResultsPath,
			OutputPath:      outputs.TablePath,
			Policy:          results.Policy,
			Separator:       results.Key.Separator,
			Questions:       results.Summary.Questions,
			Slots:           results.Summary.Slots,
			GrammarFailures: results.Summary.GrammarFailures,
		}
		if err := duckdb.WriteFile(ctx, outputs.DuckDBPath, run, results.Table); err != nil {
			return Results{}, err
		}
		logVerbose(params.Verbose, params.VerboseWriter, params.NoColor, styleStage, "Stored run in %s", outputs.DuckDBPath)
	}
	return results, nil
}

// quizTitle names the report after the quiz file.
func quizTitle(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
