package main

import (
	"fmt"

	"github.com/worklink-app/go-work-link/internal/adapter"
	"github.com/worklink-app/go-work-link/internal/client"
	"github.com/worklink-app/go-work-link/internal/config"
	"github.com/worklink-app/go-work-link/internal/logger"
	"github.com/worklink-app/go-work-link/internal/service"
	"github.com/worklink-app/go-work-link/internal/session"
	"github.com/worklink-app/go-work-link/internal/stream"
	"github.com/worklink-app/go-work-link/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("work-link-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	sessions, err := session.NewStore(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session store")
	}
	defer sessions.Close()

	baseURL, err := adapter.NormalizeBaseURL(cfg.Adapter.HTTPAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid server address")
	}

	transport := stream.NewSSETransport(log)
	streams := stream.NewRegistry(transport, sessions, baseURL, cfg.Stream.EventBuffer, log)

	services := service.NewClientServices(serverAdapter, sessions, streams, log)

	ui, err := tui.New(services, serverAdapter, streams, sessions, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(cfg, services, sessions, serverAdapter, streams, ui, log)
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
