package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"quinzena/internal/cli"
	"quinzena/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	tracker, err := ctx.Tracker()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(tracker, ctx.Gate()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interface: %w", err)
	}
	return nil
}
