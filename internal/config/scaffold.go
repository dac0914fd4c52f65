package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1

columns:
  # kind: grade directives whose kind is listed in scored_kinds.
  # arity: grade only questions with exactly one directive.
  policy: kind
  scored_kinds:
    - shortanswer

results:
  delimiter: ","
  # Metadata columns between the learner name and the first response.
  skip_columns: 9
  # Word before the part number in packed responses ("Teil 1: ...").
  part_tag: "Teil"
  # degrade: keep misaligned rows with marked cells. drop: leave them out.
  alignment: degrade

output:
  empty_answer: "leer"
  empty_reference: "<>"
  misaligned: "<misaligned>"
  reference_separator: "|"

labels:
  question: "Question"
  part: "Part"
  identity: ["Last name", "First name"]
  reference: ["Reference", "Answer key"]
`

// Scaffold writes the default config to path, creating parent directories.
func Scaffold(path string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
