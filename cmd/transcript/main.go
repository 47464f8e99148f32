package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"gradebook/internal/config"
	"gradebook/internal/grades"
	"gradebook/internal/logger"
	"gradebook/internal/roster"
	"gradebook/internal/transcript"
)

const (
	exitOK          = 0
	exitError       = 1
	exitWeightLimit = 2
)

func main() {
	envErr := godotenv.Load()

	cfg := config.MustLoad()

	log := logger.SetupLogger(cfg.Env)
	slog.SetDefault(log)
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		slog.Warn("failed to load .env", "err", envErr)
	}

	slog.Debug("config loaded",
		"env", cfg.Env,
		"input_path", cfg.InputPath,
		"order", cfg.Order,
		"format", cfg.Format,
	)

	os.Exit(run(cfg, os.Stdout, os.Stderr))
}

// run owns the whole pipeline. When the weight gate fails the gate notice is
// the only output.
func run(cfg *config.Config, stdout, stderr io.Writer) int {
	opts, err := cfg.Options()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	format, err := cfg.OutputFormat()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	r, err := loadRoster(cfg.InputPath)
	if err != nil {
		slog.Error("failed to load assignments", "err", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	if r.Course != "" {
		opts.Course = r.Course
	}

	res, err := grades.Grade(r.Assignments)
	if err != nil {
		if errors.Is(err, grades.ErrWeightLimitExceeded) {
			fmt.Fprintln(stderr, transcript.GateFailureMessage)
			return exitWeightLimit
		}
		slog.Error("failed to grade", "err", err)
		return exitError
	}
	slog.Info("graded",
		"assignments", len(res.Rows),
		"formative_total", res.Formative,
		"summative_total", res.Summative,
		"passed", res.Passed,
	)

	if err := transcript.Write(stdout, format, res, opts); err != nil {
		slog.Error("failed to write transcript", "err", err)
		return exitError
	}
	return exitOK
}

func loadRoster(path string) (roster.Roster, error) {
	if path == "" {
		slog.Debug("no input_path configured, using sample assignments")
		return roster.Sample(), nil
	}
	return roster.Load(path)
}
