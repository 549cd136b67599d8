package main

import (
	"fmt"

	"github.com/koenjo741/smartcards/internal/adapter"
	"github.com/koenjo741/smartcards/internal/client"
	"github.com/koenjo741/smartcards/internal/config"
	"github.com/koenjo741/smartcards/internal/logger"
	"github.com/koenjo741/smartcards/internal/service"
	"github.com/koenjo741/smartcards/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("smartcards")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	remote, err := adapter.NewHTTPRemoteStore(cfg.Remote, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote store adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, remote, cfg, log)

	app, err := client.NewApp(services, cfg, log)
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
