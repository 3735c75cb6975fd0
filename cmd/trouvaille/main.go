package main

import (
	"fmt"

	"trouvaille/internal/adapter"
	"trouvaille/internal/client"
	"trouvaille/internal/config"
	"trouvaille/internal/logger"
	"trouvaille/internal/service"
	"trouvaille/internal/session"
	"trouvaille/internal/store"
	"trouvaille/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("trouvaille")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	boardAdapter, err := adapter.NewHTTPBoardAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create board adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	sessionStore := session.New(cfg.Session)
	services := service.NewClientServices(boardAdapter, storages, sessionStore, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
