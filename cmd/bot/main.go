package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"github.com/basel-ax/icified/internal/bot"
	"github.com/basel-ax/icified/internal/config"
	"github.com/basel-ax/icified/internal/infrastructure/replicate"
	"github.com/basel-ax/icified/internal/logging"
	"github.com/basel-ax/icified/internal/service"
)

func main() {
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logging.Setup(*debug)

	// Load configuration; both API tokens are required
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Telegram")
	}
	log.Info().Str("username", api.Self.UserName).Msg("authorized on Telegram")

	// Bounded pool for the blocking inference calls
	pool, err := ants.NewPool(cfg.WorkerPoolSize)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create worker pool")
	}
	defer pool.Release()

	client := replicate.NewClient(replicate.Config{
		Token:        cfg.ReplicateAPIToken,
		Timeout:      cfg.HTTPTimeout,
		PollInterval: cfg.PollInterval,
		MaxAttempts:  cfg.MaxAttempts,
	}, cfg.Model)

	icifier := service.NewIcifyService(client, pool, cfg)
	downloader := service.NewImageDownloader(&http.Client{Timeout: cfg.HTTPTimeout})

	b := bot.New(api, icifier, downloader)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("received signal, shutting down")
		api.StopReceivingUpdates()
		cancel()
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := api.GetUpdatesChan(u)

	log.Info().Str("model", cfg.Model).Msg("starting Icified bot")
	b.Run(ctx, updates)
	log.Info().Msg("bot stopped")
}
