package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"demoodle/internal/config"
	"demoodle/internal/result"
	"demoodle/internal/runner"
)

var runAndWrite = runner.RunAndWrite

// runGrade builds the handler for the grade command.
func runGrade(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		flags := bindRunFlags(fs)
		duckdbPath := fs.String("duckdb", "", "Append the run to a DuckDB database file")
		reportPath := fs.String("alignment-report", "", "Write the alignment report as JSON")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() != 3 {
			fmt.Fprintf(stderr, "expected <quiz.xml> <results.csv> <output>, got %d arguments\n", fs.NArg())
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := flags.load(fs)
		if err != nil {
			printConfigError(stderr, err)
			return ExitError
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		inputs := runner.Inputs{QuizPath: fs.Arg(0), ResultsPath: fs.Arg(1)}
		outputs := runner.Outputs{
			TablePath:           fs.Arg(2),
			DuckDBPath:          strings.TrimSpace(*duckdbPath),
			AlignmentReportPath: strings.TrimSpace(*reportPath),
		}
		results, err := runAndWrite(ctx, inputs, outputs, flags.params(cfg, stderr))
		if err != nil {
			printRunError(stderr, err)
			return ExitError
		}
		printSummary(stdout, results, outputs, flags.isNoColor())
		return ExitOK
	}
}

// printConfigError reports a config that failed to load or validate.
func printConfigError(w io.Writer, err error) {
	var validation *config.ValidationError
	if errors.As(err, &validation) {
		fmt.Fprintf(w, "Invalid config:\n%s\n", validation.Error())
		return
	}
	fmt.Fprintf(w, "Failed to load config: %v\n", err)
}

// printRunError reports a failed run, naming malformed results explicitly.
func printRunError(w io.Writer, err error) {
	var format *result.FormatError
	switch {
	case errors.As(err, &format):
		fmt.Fprintf(w, "Malformed results export: %v\nNo output was written.\n", format)
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(w, "Run cancelled.")
	default:
		fmt.Fprintf(w, "Run failed: %v\n", err)
	}
}
