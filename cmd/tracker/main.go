package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-learn-tracker/internal/client"
	"github.com/MKhiriev/go-learn-tracker/internal/config"
	"github.com/MKhiriev/go-learn-tracker/internal/logger"
	"github.com/MKhiriev/go-learn-tracker/internal/service"
	"github.com/MKhiriev/go-learn-tracker/internal/store"
	"github.com/MKhiriev/go-learn-tracker/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// the TUI owns stdout, so diagnostics go to a file next to the binary
	log := logger.NewFileLogger("tracker")

	cfg, err := config.GetConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, cfg, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("app run error")
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
