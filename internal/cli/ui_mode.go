package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Preview modes accepted by --ui.
const (
	uiAuto  = "auto"
	uiLive  = "live"
	uiPlain = "plain"
)

// uiModeDecision captures whether the preview runs interactively.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// resolveUIMode picks the interactive preview only when stdout is a TTY.
// Verbose output would tear the alternate screen, so it forces plain mode.
func resolveUIMode(mode string, verbose bool, stdout io.Writer) (uiModeDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = uiAuto
	}
	switch normalized {
	case uiAuto:
		return uiModeDecision{useLive: !verbose && isTerminal(stdout)}, nil
	case uiLive:
		if verbose {
			return uiModeDecision{warning: "Live preview is disabled with --verbose; printing the table instead."}, nil
		}
		if !isTerminal(stdout) {
			return uiModeDecision{warning: "Live preview requested but stdout is not a TTY; printing the table instead."}, nil
		}
		return uiModeDecision{useLive: true}, nil
	case uiPlain:
		return uiModeDecision{}, nil
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}
}

// defaultIsTerminal inspects a writer for TTY support.
func defaultIsTerminal(w io.Writer) bool {
	switch v := w.(type) {
	case *os.File:
		return term.IsTerminal(int(v.Fd()))
	case interface{ Fd() uintptr }:
		return term.IsTerminal(int(v.Fd()))
	}
	return false
}
