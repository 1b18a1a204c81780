package main

import (
	"fmt"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/adapter"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/client"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/config"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/tui"
	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewFileLogger("defisensei-client", "defisensei-client.log")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ui := tui.New(serverAdapter, buildInfo, log)

	app, err := client.NewApp(serverAdapter, ui, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// printBuildInfo writes the linker-injected metadata, "N/A" for unset values.
func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
