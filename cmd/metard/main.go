package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/aerowx/metar/internal/config"
	"github.com/aerowx/metar/internal/fetch"
	"github.com/aerowx/metar/internal/history"
	"github.com/aerowx/metar/internal/observability"
	"github.com/aerowx/metar/internal/poll"
	"github.com/aerowx/metar/internal/server"
	"github.com/aerowx/metar/pkg/metar"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	store := history.New(cfg.HistoryRetention, clock)
	decoder := metar.NewDecoder(
		metar.WithClock(clock),
		metar.WithLogger(logger),
	)

	poller := poll.New(poll.Options{
		Stations:  cfg.Stations,
		Primary:   fetch.NewAWCClient(cfg.AWCBaseURL, cfg.FetchTimeout),
		Fallback:  fetch.NewTGFTPClient(cfg.TGFTPBaseURL, cfg.FetchTimeout),
		Decoder:   decoder,
		Store:     store,
		Logger:    logger,
		Metrics:   metrics,
		Clock:     clock,
		Interval:  cfg.PollInterval,
		JitterMin: cfg.JitterMin,
		JitterMax: cfg.JitterMax,
	})

	srv := server.New(cfg.HTTPAddr, poller, store, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	go func() {
		if err := poller.Run(ctx); err != nil {
			logger.Error("poller error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
