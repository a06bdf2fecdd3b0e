package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ChieJuwonsFx/backend-converter/internal/app"
	"github.com/ChieJuwonsFx/backend-converter/internal/config"
)

func initSentry(cfg *config.SentryConfig, version string) error {
	return sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Environment,
		Release:     version,
	})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if err := initSentry(&cfg.Sentry, "v1"); err != nil {
		log.Fatal().Err(err).Msg("sentry.Init failed")
	}

	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	a, err := app.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could not build application")
	}

	if err := a.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
