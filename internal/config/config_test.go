package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, payload string) string {
	t.Helper()
	path := ConfigPath(dir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestParseConfigUnknownField verifies unknown fields are rejected.
func TestParseConfigUnknownField(t *testing.T) {
	data := []byte("version: 1\ncolumns:\n  policy: kind\n  mode: strict\n")
	if _, err := ParseConfig(data); err == nil {
		t.Fatalf("expected parse error for unknown field")
	}
}

// TestParseConfigRejectsMultipleDocs verifies multiple YAML docs are rejected.
func TestParseConfigRejectsMultipleDocs(t *testing.T) {
	data := []byte("version: 1\n---\nversion: 1\n")
	if _, err := ParseConfig(data); err == nil {
		t.Fatalf("expected parse error for multiple documents")
	}
}

// TestDefaultIsValid verifies the built-in defaults pass validation.
func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := Validate(&cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.Results.Skip() != 9 || cfg.Results.DelimiterRune() != ',' {
		t.Fatalf("unexpected results defaults %+v", cfg.Results)
	}
	if !slices.Equal(cfg.Columns.ScoredKinds, []string{"shortanswer"}) {
		t.Fatalf("unexpected scored kinds %v", cfg.Columns.ScoredKinds)
	}
}

// TestScaffoldMatchesDefaults verifies the scaffolded file loads to the defaults.
func TestScaffoldMatchesDefaults(t *testing.T) {
	path := ConfigPath(t.TempDir())
	if err := Scaffold(path); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load scaffold: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("scaffold differs from defaults:\n%+v\n%+v", cfg, Default())
	}
	if err := Scaffold(path); err == nil {
		t.Fatalf("expected scaffold to refuse overwriting")
	}
}

// TestLoadNormalizesAndKeepsZeroSkip verifies enum casing and explicit zero values.
func TestLoadNormalizesAndKeepsZeroSkip(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `version: 1
columns:
  policy: " Arity "
results:
  delimiter: ";"
  skip_columns: 0
  alignment: DROP
labels:
  question: Aufgabe
  part: Teil
  identity: [Nachname, Vorname]
  reference: [Musterlösung, ""]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Columns.Policy != PolicyArity || cfg.Results.Alignment != AlignmentDrop {
		t.Fatalf("expected lowercased enums, got %q %q", cfg.Columns.Policy, cfg.Results.Alignment)
	}
	if cfg.Results.Skip() != 0 || cfg.Results.DelimiterRune() != ';' {
		t.Fatalf("unexpected results %+v", cfg.Results)
	}
	if cfg.Labels.Question != "Aufgabe" || cfg.Output.EmptyAnswer != DefaultEmptyAnswer {
		t.Fatalf("unexpected labels/output %+v %+v", cfg.Labels, cfg.Output)
	}
}

// TestValidateCollectsIssues verifies every invalid field is reported at once.
func TestValidateCollectsIssues(t *testing.T) {
	cfg := Default()
	cfg.Version = 2
	cfg.Columns.Policy = "random"
	cfg.Columns.ScoredKinds = []string{"short_answer"}
	cfg.Results.Delimiter = ",,"
	skip := -1
	cfg.Results.SkipColumns = &skip
	cfg.Results.Alignment = "merge"
	cfg.Labels.Identity = []string{"Name"}

	err := Validate(&cfg)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	for _, field := range []string{"version", "columns.policy", "columns.scored_kinds[0]", "results.delimiter", "results.skip_columns", "results.alignment", "labels.identity"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("expected issue for %s, got:\n%s", field, err.Error())
		}
	}
	if len(validationErr.Issues) != 7 {
		t.Fatalf("expected 7 issues, got %d:\n%s", len(validationErr.Issues), err.Error())
	}
}

// TestValidateRejectsConflictingMarkers verifies the misaligned marker stays distinguishable.
func TestValidateRejectsConflictingMarkers(t *testing.T) {
	cfg := Default()
	cfg.Output.Misaligned = cfg.Output.EmptyAnswer
	if err := Validate(&cfg); err == nil || !strings.Contains(err.Error(), "output.misaligned") {
		t.Fatalf("expected misaligned marker error, got %v", err)
	}
}

// TestFindConfigPathSearchesUpward verifies discovery from a nested directory.
func TestFindConfigPathSearchesUpward(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "version: 1\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	got, err := FindConfigPath(nested)
	if err != nil {
		t.Fatalf("find config: %v", err)
	}
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

// TestResolveOrder verifies explicit paths win over the environment and search.
func TestResolveOrder(t *testing.T) {
	root := t.TempDir()
	found := writeConfig(t, root, "version: 1\n")
	envPath := filepath.Join(root, "env.yml")

	t.Setenv(EnvConfigPath, "")
	if got, err := Resolve("", root); err != nil || got != found {
		t.Fatalf("expected search result %q, got %q (%v)", found, got, err)
	}

	t.Setenv(EnvConfigPath, envPath)
	if got, err := Resolve("", root); err != nil || got != envPath {
		t.Fatalf("expected env path %q, got %q (%v)", envPath, got, err)
	}

	explicit := filepath.Join(root, "explicit.yml")
	if got, err := Resolve(explicit, root); err != nil || got != explicit {
		t.Fatalf("expected explicit path %q, got %q (%v)", explicit, got, err)
	}
}

// TestResolveWithoutConfigFallsBackToDefaults verifies a missing config is not an error.
func TestResolveWithoutConfigFallsBackToDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	path, err := Resolve("", t.TempDir())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if path != "" {
		t.Skipf("a config exists above the temp dir at %q", path)
	}
	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}
