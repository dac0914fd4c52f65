package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"demoodle/internal/answerkey"
	"demoodle/internal/quiz"
	"demoodle/internal/runner"
)

// runInspect builds the handler for the inspect command.
func runInspect(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		flags := bindColumnFlags(fs)
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() != 1 {
			fmt.Fprintf(stderr, "expected <quiz.xml>, got %d arguments\n", fs.NArg())
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := flags.load(fs)
		if err != nil {
			printConfigError(stderr, err)
			return ExitError
		}
		q, err := quiz.LoadFile(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load quiz: %v\n", err)
			return ExitError
		}
		key, err := answerkey.Build(q, runner.KeyOptions(cfg))
		if err != nil {
			fmt.Fprintf(stderr, "Failed to build answer key: %v\n", err)
			return ExitError
		}
		printInspection(stdout, q, key)
		return ExitOK
	}
}

// printInspection lists every question with its directives and answers.
// Graded slots are marked with '*'.
func printInspection(w io.Writer, q quiz.Quiz, key answerkey.Key) {
	for i, question := range q.Questions {
		group := key.Groups[i]
		fmt.Fprintf(w, "%d. %s [%s]\n", question.Index+1, displayName(question.Name), question.Type)
		switch {
		case question.Excluded():
			fmt.Fprintf(w, "   excluded: %v\n", question.Err)
			continue
		case group.Atomic:
			fmt.Fprintln(w, "   no directives")
			continue
		}
		for part, directive := range question.Directives {
			mark := " "
			if key.Mask[group.Start+part] {
				mark = "*"
			}
			fmt.Fprintf(w, " %s {%d:%s} -> %s\n", mark, directive.ID, directive.Kind, key.Headers[group.Start+part])
			if directive.Placeholder() {
				fmt.Fprintf(w, "     unparsed: %s\n", directive.Raw)
				continue
			}
			for _, answer := range directive.Answers {
				fmt.Fprintf(w, "     %3d%%  %s\n", answer.Score, answer.Text)
			}
		}
		for _, failure := range question.Failures {
			fmt.Fprintf(w, "   grammar failure: %v\n", failure)
		}
	}
	fmt.Fprintf(w, "\n%d questions, %d directives, %d graded columns\n", len(q.Questions), q.DirectiveCount(), key.Width())
}

func displayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "(unnamed)"
	}
	return name
}
