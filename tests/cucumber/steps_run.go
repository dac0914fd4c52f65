package cucumber

import (
	"fmt"
	"path/filepath"
	"strings"

	"demoodle/internal/cli"
)

// iRunCommand executes a CLI command for the scenario. The placeholders
// {quiz}, {results}, {config} and {dir} expand to the scenario's files.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(s.expand(command))
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "demoodle" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) expand(text string) string {
	return strings.NewReplacer(
		"{quiz}", s.quizPath,
		"{results}", s.resultsPath,
		"{config}", s.configPath,
		"{dir}", s.workDir,
	).Replace(text)
}

func (s *featureState) path(name string) string {
	name = s.expand(name)
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.workDir, name)
}
