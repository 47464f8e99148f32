package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"gradebook/internal/config"
	"gradebook/internal/httpapi"
	"gradebook/internal/logger"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.MustLoad()

	log := logger.SetupLogger(cfg.Env)
	slog.SetDefault(log)
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		slog.Warn("failed to load .env", "err", envErr)
	}

	slog.Info("config loaded",
		"env", cfg.Env,
		"addr", cfg.HTTPServer.Address,
		"course", cfg.Course,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	handler := httpapi.NewHandler(cfg.Course, log)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      httpapi.NewRouter(handler, cfg.HTTPServer.CORSOrigins),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		slog.Info("starting gradebook http server", "addr", cfg.HTTPServer.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("http server error", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down gradebook http server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "err", err)
	}
}
