package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"demoodle/internal/testutil"
)

// TestValidateCommandSuccess verifies validate command success path.
func TestValidateCommandSuccess(t *testing.T) {
	configPath := writeDefaultConfig(t, t.TempDir())

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--config", configPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	if err.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", err.String())
	}
	if !strings.Contains(out.String(), "Config OK") {
		t.Fatalf("expected success message, got %q", out.String())
	}
}

// TestValidateCommandFailure verifies every issue is reported.
func TestValidateCommandFailure(t *testing.T) {
	configPath := testutil.WriteFile(t, t.TempDir(), "config.yml", `version: 1
columns:
  policy: random
output:
  misaligned: leer
`)

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--config", configPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	for _, want := range []string{"Validation failed", "columns.policy", "output.misaligned"} {
		if !strings.Contains(err.String(), want) {
			t.Fatalf("expected %q, got %q", want, err.String())
		}
	}
}

// TestValidateFindsConfigInParent verifies config discovery from parent dirs.
func TestValidateFindsConfigInParent(t *testing.T) {
	t.Setenv("DEMOODLE_CONFIG", "")
	dir := t.TempDir()
	writeDefaultConfig(t, dir)
	nested := filepath.Join(dir, "nested", "dir")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("create nested dir: %v", err)
	}
	t.Chdir(nested)

	var out, stderr bytes.Buffer
	code := Run([]string{"validate"}, &out, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, stderr.String())
	}
	if !strings.Contains(out.String(), "Config OK") {
		t.Fatalf("expected success message, got %q", out.String())
	}
}

// TestValidateUsesEnvironment verifies DEMOODLE_CONFIG is honored.
func TestValidateUsesEnvironment(t *testing.T) {
	configPath := writeDefaultConfig(t, t.TempDir())
	t.Setenv("DEMOODLE_CONFIG", configPath)
	t.Chdir(t.TempDir())

	var out, stderr bytes.Buffer
	if code := Run([]string{"validate"}, &out, &stderr); code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, stderr.String())
	}
	if !strings.Contains(out.String(), configPath) {
		t.Fatalf("expected resolved path in output, got %q", out.String())
	}
}
