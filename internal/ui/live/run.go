package live

import (
	"context"
	"io"

	"demoodle/internal/report"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive preview and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, data report.Data, opts Options, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(
		NewModel(data, opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}
