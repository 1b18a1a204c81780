package main

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/bot"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/config"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/handler"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/mailer"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/market"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/predict"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/server"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/service"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/store"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/workers"
	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("defisensei-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	predictor, err := predict.Train(cfg.Predict, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error training return model")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	bot.RegisterMetrics(registry)

	services, err := service.NewServices(service.Dependencies{
		Storages:  storages,
		Mailer:    mailer.New(cfg.Mailer, log),
		Provider:  market.NewProvider(cfg.Market, log),
		Predictor: predictor,
	}, cfg, log, service.WithOTPObserver(bot.RecordOTPIssued))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	chatBot := bot.New(services, cfg.Market.Currency, log)

	handlers, err := handler.NewHandlers(
		services,
		chatBot,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
		cfg.Server,
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		workers.NewWorkers(storages, cfg.Workers, log).Run(ctx)
	}()

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	stop()
	wg.Wait()
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
