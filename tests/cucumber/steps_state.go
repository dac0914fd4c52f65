// Package cucumber runs the CLI feature scenarios.
package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"demoodle/internal/config"
	"demoodle/internal/testutil"

	"github.com/cucumber/godog"
)

// featureState holds scenario state for cucumber CLI tests.
type featureState struct {
	workDir     string
	quizPath    string
	resultsPath string
	configPath  string
	previousEnv map[string]*string
	stdout      bytes.Buffer
	stderr      bytes.Buffer
	exitCode    int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^the sample quiz and results exports$`, state.theSampleExports)
	ctx.Step(`^a results export containing:$`, state.aResultsExportContaining)
	ctx.Step(`^a default configuration$`, state.aDefaultConfiguration)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the file "([^"]+)" contains the table:$`, state.theFileContainsTable)
	ctx.Step(`^the file "([^"]+)" does not exist$`, state.theFileDoesNotExist)
	ctx.Step(`^stdout contains "([^"]*)"$`, state.stdoutContains)
	ctx.Step(`^stderr contains "([^"]*)"$`, state.stderrContains)
}

// reset clears buffers and creates a fresh work directory.
func (s *featureState) reset() error {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.quizPath, s.resultsPath, s.configPath = "", "", ""
	s.previousEnv = map[string]*string{}
	dir, err := os.MkdirTemp("", "demoodle-feature-")
	if err != nil {
		return fmt.Errorf("create work dir: %w", err)
	}
	s.workDir = dir
	// Keep a developer's own config out of the scenarios.
	return s.setEnv(config.EnvConfigPath, "")
}

// cleanup restores environment and removes temporary files.
func (s *featureState) cleanup() {
	for key, value := range s.previousEnv {
		if value == nil {
			_ = os.Unsetenv(key)
			continue
		}
		_ = os.Setenv(key, *value)
	}
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
}

// setEnv records and sets an environment variable for the scenario.
func (s *featureState) setEnv(key, value string) error {
	if _, exists := s.previousEnv[key]; !exists {
		if current, ok := os.LookupEnv(key); ok {
			copy := current
			s.previousEnv[key] = &copy
		} else {
			s.previousEnv[key] = nil
		}
	}
	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("set env %s: %w", key, err)
	}
	return nil
}

func (s *featureState) writeFile(name, content string) (string, error) {
	path := filepath.Join(s.workDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

// theSampleExports writes the sample quiz and its responses.
func (s *featureState) theSampleExports() error {
	var err error
	if s.quizPath, err = s.writeFile("quiz.xml", testutil.SampleQuiz); err != nil {
		return err
	}
	s.resultsPath, err = s.writeFile("results.csv", testutil.SampleResults)
	return err
}

// aResultsExportContaining replaces the responses export.
func (s *featureState) aResultsExportContaining(doc *godog.DocString) error {
	var err error
	s.resultsPath, err = s.writeFile("results.csv", doc.Content+"\n")
	return err
}

// aDefaultConfiguration scaffolds .demoodle/config.yml in the work dir.
func (s *featureState) aDefaultConfiguration() error {
	s.configPath = config.ConfigPath(s.workDir)
	return config.Scaffold(s.configPath)
}
