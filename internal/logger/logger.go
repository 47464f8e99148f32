package logger

import (
	"io"
	"log/slog"
	"os"
)

const (
	EnvLocal = "local"
	EnvProd  = "production"
	EnvTest  = "test"
	EnvDev   = "development"
)

// SetupLogger writes to stderr so stdout carries only the report.
func SetupLogger(env string) *slog.Logger {
	return New(os.Stderr, env)
}

func New(w io.Writer, env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case EnvLocal:
		log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case EnvTest, EnvDev:
		log = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case EnvProd:
		log = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return log
}
