package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/preston-bernstein/nfl-events-etl/internal/config"
	"github.com/preston-bernstein/nfl-events-etl/internal/daterange"
	"github.com/preston-bernstein/nfl-events-etl/internal/logging"
	"github.com/preston-bernstein/nfl-events-etl/internal/metrics"
	"github.com/preston-bernstein/nfl-events-etl/internal/pipeline"
	"github.com/preston-bernstein/nfl-events-etl/internal/timeutil"
)

const appVersion = "dev"

const usageText = `usage: nflevents <start-date> <delta>

  start-date  first day of the window, YYYY-MM-DD (e.g. 2020-01-12)
  delta       additional days after the start date, 0-7 inclusive`

const banner = ` _   _ _____ _       _____ _____ _
| \ | |  ___| |     | ____|_   _| |
|  \| | |_  | |     |  _|   | | | |
| |\  |  _| | |___  | |___  | | | |___
|_| \_|_|   |_____| |_____| |_| |_____|`

func main() {
	if os.Getenv("SKIP_RUN") == "1" {
		return
	}
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	start, delta, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, usageText)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "invalid configuration: %v\n", err)
		return 1
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "nfl-events-etl",
		Version: appVersion,
		Output:  stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, metricsStop, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Endpoint: cfg.OtlpEndpoint,
		Insecure: cfg.OtlpInsecure,
	})
	if err != nil {
		fmt.Fprintf(stderr, "metrics setup failed: %v\n", err)
		return 1
	}
	defer flushMetrics(metricsStop, logger)

	fmt.Fprintln(stdout, banner)

	runner, err := pipeline.New(cfg, logger, recorder)
	if err != nil {
		fmt.Fprintf(stderr, "setup failed: %v\n", err)
		return 1
	}

	path, err := runner.Run(ctx, start, delta)
	if err != nil {
		logging.Error(logger, "run failed", err)
		fmt.Fprintf(stderr, "run failed: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, path)
	return 0
}

func parseArgs(args []string) (time.Time, int, error) {
	if len(args) != 2 {
		return time.Time{}, 0, errors.New("expected a start date and a delta in days")
	}

	start, err := timeutil.ParseDate(args[0])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid start date %q: want YYYY-MM-DD", args[0])
	}

	delta, err := strconv.Atoi(args[1])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid delta %q: want an integer", args[1])
	}
	if delta < 0 || delta > daterange.MaxDelta {
		return time.Time{}, 0, daterange.ErrDeltaOutOfRange
	}

	return start, delta, nil
}

func flushMetrics(stop func(context.Context) error, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := stop(ctx); err != nil {
		logging.Warn(logger, "metrics flush failed", "error", err)
	}
}
