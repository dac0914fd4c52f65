package runner

import (
	"io"
	"time"

	"demoodle/internal/config"
)

// Inputs names the two exports reconciled by a run.
type Inputs struct {
	QuizPath    string `json:"quiz"`
	ResultsPath string `json:"results"`
}

// Outputs names the files a run writes. Only TablePath is required.
type Outputs struct {
	TablePath           string
	DuckDBPath          string
	AlignmentReportPath string
}

// RunDependencies allows injecting the run id source and clock.
type RunDependencies struct {
	RunID func() (string, error)
	Now   func() time.Time
}

// RunParams configures a run invocation.
type RunParams struct {
	Config        config.Config
	Verbose       bool
	VerboseWriter io.Writer
	// WarningWriter receives grammar, structure and alignment warnings.
	WarningWriter io.Writer
	NoColor       bool
	Deps          RunDependencies
}
