package cucumber

import (
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/cucumber/godog"
)

// theOutputListsCommands asserts the output contains expected command names.
func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

// theExitCodeIs asserts the CLI exit code.
func (s *featureState) theExitCodeIs(code int) error {
	if s.exitCode != code {
		return fmt.Errorf("expected exit code %d, got %d (stderr: %s)", code, s.exitCode, s.stderr.String())
	}
	return nil
}

// theFileContainsTable compares a written CSV file cell by cell.
func (s *featureState) theFileContainsTable(name string, table *godog.Table) error {
	file, err := os.Open(s.path(name))
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if len(rows) != len(table.Rows) {
		return fmt.Errorf("expected %d rows, got %d: %q", len(table.Rows), len(rows), rows)
	}
	for i, row := range table.Rows {
		want := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			want = append(want, cell.Value)
		}
		if !slices.Equal(rows[i], want) {
			return fmt.Errorf("row %d: expected %q, got %q", i, want, rows[i])
		}
	}
	return nil
}

// theFileDoesNotExist asserts nothing was written at a path.
func (s *featureState) theFileDoesNotExist(name string) error {
	if _, err := os.Stat(s.path(name)); !os.IsNotExist(err) {
		return fmt.Errorf("expected %s to be absent, got %v", name, err)
	}
	return nil
}

func (s *featureState) stdoutContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected stdout to contain %q, got %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) stderrContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected stderr to contain %q, got %q", text, s.stderr.String())
	}
	return nil
}
