package client

import (
	"context"
	"fmt"

	"trouvaille/internal/config"
	"trouvaille/internal/logger"
	"trouvaille/internal/service"
	"trouvaille/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workers config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, fmt.Errorf("client app requires services and ui")
	}
	return &App{services: services, ui: ui, workers: workers, logger: logger}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	// Show the cached board while the first fetch is in flight. A cold
	// cache is the normal first-run state, not a failure.
	if err := a.services.Board.Prime(ctx); err != nil {
		a.logger.Debug().Err(err).Msg("no cached board to prime from")
	}

	a.services.Refresh.Start(ctx, a.workers.RefreshInterval)
	defer a.services.Refresh.Stop()

	return a.ui.Run(ctx)
}
