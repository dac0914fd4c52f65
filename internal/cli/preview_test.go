package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"demoodle/internal/report"
	"demoodle/internal/testutil"
	"demoodle/internal/ui/live"
)

// TestPreviewPlainOutput verifies non-TTY output renders the table once.
func TestPreviewPlainOutput(t *testing.T) {
	dir, quizPath, resultsPath := testutil.WriteSampleInputs(t)
	configPath := writeDefaultConfig(t, dir)

	var out, errOut bytes.Buffer
	code := Run([]string{"preview", "--config", configPath, "--no-color", quizPath, resultsPath}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut.String())
	}
	for _, want := range []string{"Question 1 Part 3", "Piperidin|Azacyclohexan", "<misaligned>", "Muster"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, out.String())
		}
	}
	if strings.Contains(out.String(), "\x1b[") {
		t.Fatalf("expected no ANSI codes")
	}
}

// TestPreviewLiveOnTerminal verifies the live UI starts when stdout is a TTY.
func TestPreviewLiveOnTerminal(t *testing.T) {
	dir, quizPath, resultsPath := testutil.WriteSampleInputs(t)
	configPath := writeDefaultConfig(t, dir)

	originalTerminal, originalLive := isTerminal, runLive
	t.Cleanup(func() { isTerminal, runLive = originalTerminal, originalLive })
	isTerminal = func(io.Writer) bool { return true }

	var got report.Data
	runLive = func(_ context.Context, data report.Data, _ live.Options, _ io.Reader, _ io.Writer) error {
		got = data
		return nil
	}

	var out, errOut bytes.Buffer
	code := Run([]string{"preview", "--config", configPath, quizPath, resultsPath}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut.String())
	}
	if len(got.Table.Learners()) != 3 {
		t.Fatalf("expected 3 learners in live preview, got %d", len(got.Table.Learners()))
	}
	if out.Len() != 0 {
		t.Fatalf("expected live preview to own stdout, got %q", out.String())
	}
}

// TestPreviewInvalidUIMode verifies an unknown --ui value is a usage error.
func TestPreviewInvalidUIMode(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"preview", "--ui", "fancy", "quiz.xml", "results.csv"}, &out, &errOut)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut.String(), "invalid ui mode") {
		t.Fatalf("expected ui mode error, got %q", errOut.String())
	}
}
