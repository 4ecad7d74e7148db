package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	appmarketdata "watchdeck/internal/application/service/marketdata"
	appwatchlists "watchdeck/internal/application/service/watchlists"
	"watchdeck/internal/config"
	"watchdeck/internal/infrastructure/brokerage"
	infrahttp "watchdeck/internal/interfaces/http"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	client := brokerage.NewClient(brokerage.Config{
		BaseURL:  cfg.Brokerage.BaseURL,
		Login:    cfg.Brokerage.Login,
		Password: cfg.Brokerage.Password,
	}, &http.Client{}, logger)

	watchlistService := appwatchlists.NewService(client)
	marketdataService := appmarketdata.NewService(client)
	sessions := infrahttp.NewSessionStore(!cfg.IsDevelopment(), logger)

	handler := infrahttp.NewHandler(sessions, client, watchlistService, marketdataService, logger)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr(),
		Handler: handler,
	}

	go func() {
		logger.Infof("HTTP server listening on %s", cfg.HTTP.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("http server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown error: %v", err)
	}
	logger.Info("server stopped")
}
