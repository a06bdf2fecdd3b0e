package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ChieJuwonsFx/backend-converter/internal/config"
	"github.com/ChieJuwonsFx/backend-converter/internal/recaptcha"
	"github.com/ChieJuwonsFx/backend-converter/internal/transport/handler"
	"github.com/ChieJuwonsFx/backend-converter/internal/transport/router"
)

type App struct {
	HttpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	verifier := recaptcha.NewClient(cfg.Recaptcha.VerifyURL, cfg.Recaptcha.Secret, cfg.Recaptcha.ScoreThreshold)

	h := handler.New(verifier, cfg)
	r := router.NewRouter(h, cfg.CORS)

	s := &http.Server{
		Handler:      r,
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &App{
		HttpServer: s,
	}, nil
}

// Run serves until the context is canceled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		log.Info().Str("addr", a.HttpServer.Addr).Msg("starting server")
		errCh <- a.HttpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return a.HttpServer.Shutdown(shutdownCtx)
	}
}
