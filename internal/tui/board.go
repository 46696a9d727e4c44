package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shree1767/SRM-GPA-Calculator/internal/engine"
)

// RunBoard runs the interactive form until the user quits or ctx is done.
func RunBoard(ctx context.Context, form *engine.Form, out io.Writer) error {
	m := newBoardModel(form)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(out), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
