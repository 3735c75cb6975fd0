// Package tui implements the interactive terminal front-end for the
// lost-and-found board: one bubbletea model with a screen per view, async
// work dispatched as commands, and typed messages carrying the results back
// onto the event loop.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"trouvaille/internal/logger"
	"trouvaille/internal/service"
)

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// Run drives the board UI until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
