package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	internalApp "github.com/sylvie882/garbage-collection-frontend-sub000/internal/app"
	"github.com/sylvie882/garbage-collection-frontend-sub000/internal/config"
	"github.com/sylvie882/garbage-collection-frontend-sub000/pkg/app"
	"github.com/sylvie882/garbage-collection-frontend-sub000/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	container, err := internalApp.NewContainer(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to wire application")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.DevMode {
		go func() {
			if err := container.Templates.Watch(ctx); err != nil {
				log.Warn().Err(err).Msg("template watcher stopped")
			}
		}()
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           app.NewRouter(container),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Str("api", cfg.APIBaseURL).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
