package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"demoodle/internal/runner"
	"demoodle/internal/ui/live"
)

// previewInput allows tests to override the live preview's keyboard input.
var previewInput io.Reader = os.Stdin

var runLive = live.Run

// runPreview builds the handler for the preview command.
func runPreview(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		flags := bindRunFlags(fs)
		uiMode := fs.String("ui", uiAuto, "Preview mode: auto|live|plain")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() != 2 {
			fmt.Fprintf(stderr, "expected <quiz.xml> <results.csv>, got %d arguments\n", fs.NArg())
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		decision, err := resolveUIMode(*uiMode, flags.isVerbose(), stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		cfg, err := flags.load(fs)
		if err != nil {
			printConfigError(stderr, err)
			return ExitError
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		inputs := runner.Inputs{QuizPath: fs.Arg(0), ResultsPath: fs.Arg(1)}
		results, err := runner.Run(ctx, inputs, flags.params(cfg, stderr))
		if err != nil {
			printRunError(stderr, err)
			return ExitError
		}
		data := runner.ReportData(results)
		noColor := flags.isNoColor()

		if decision.useLive {
			if err := runLive(ctx, data, live.Options{NoColor: noColor}, previewInput, stdout); err != nil {
				fmt.Fprintf(stderr, "Preview failed: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		fmt.Fprintln(stdout, live.RenderPlain(data, noColor || !runner.ShouldUseStyling(stdout)))
		return ExitOK
	}
}
