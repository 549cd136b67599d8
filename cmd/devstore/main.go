package main

import (
	"fmt"

	"github.com/koenjo741/smartcards/internal/config"
	"github.com/koenjo741/smartcards/internal/devstore"
	"github.com/koenjo741/smartcards/internal/logger"
	"github.com/koenjo741/smartcards/internal/server"
	"github.com/koenjo741/smartcards/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("smartcards-devstore")
	cfg, err := config.GetDevStoreConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	handler := devstore.NewHandler(devstore.NewDocStore(utils.NewUUIDGenerator()), cfg.Server, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
