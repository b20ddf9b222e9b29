// Package pipeline wires the fetch, merge, and write stages into one run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nfl-events-etl/internal/config"
	"github.com/preston-bernstein/nfl-events-etl/internal/daterange"
	"github.com/preston-bernstein/nfl-events-etl/internal/logging"
	"github.com/preston-bernstein/nfl-events-etl/internal/merge"
	"github.com/preston-bernstein/nfl-events-etl/internal/metrics"
	"github.com/preston-bernstein/nfl-events-etl/internal/output"
	"github.com/preston-bernstein/nfl-events-etl/internal/providers"
	"github.com/preston-bernstein/nfl-events-etl/internal/providers/chalk"
	"github.com/preston-bernstein/nfl-events-etl/internal/providers/fixture"
)

// ErrNoEvents indicates the scoreboard returned nothing for the requested
// window, which usually means a date out of season was entered by mistake.
var ErrNoEvents = errors.New("no scoreboard data returned for the requested window")

// Runner executes the fetch -> merge -> write pipeline for one invocation.
type Runner struct {
	provider providers.DataProvider
	merger   *merge.Merger
	writer   *output.Writer
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

// New builds a Runner from configuration.
func New(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Runner, error) {
	policy, err := merge.ParsePolicy(cfg.MissingRanking)
	if err != nil {
		return nil, err
	}

	provider, err := buildProvider(cfg)
	if err != nil {
		return nil, err
	}
	provider = providers.NewLoggingProvider(provider, logger, recorder, cfg.Provider)

	return newRunnerWithDeps(
		provider,
		merge.New(policy),
		output.NewWriter(cfg.OutputDir, cfg.RetentionDays),
		logger,
		recorder,
	), nil
}

func newRunnerWithDeps(provider providers.DataProvider, merger *merge.Merger, writer *output.Writer, logger *slog.Logger, recorder *metrics.Recorder) *Runner {
	return &Runner{
		provider: provider,
		merger:   merger,
		writer:   writer,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

func buildProvider(cfg config.Config) (providers.DataProvider, error) {
	switch cfg.Provider {
	case "fixture":
		return fixture.New(), nil
	case "chalk247", "":
		return chalk.NewClient(chalk.Config{
			BaseURL: cfg.APIBaseURL,
			APIKey:  cfg.APIKey,
			Sport:   cfg.Sport,
			Timeout: cfg.HTTPTimeout,
		}), nil
	}
	return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
}

// Run executes one pipeline pass and returns the written output path. The
// stages run in strict sequence and the first failure aborts the run before
// anything is written.
func (r *Runner) Run(ctx context.Context, start time.Time, delta int) (string, error) {
	rng, err := daterange.Resolve(start, delta)
	if err != nil {
		return "", err
	}

	logging.Info(r.logger, "starting run",
		logging.FieldStartDate, rng.StartDate(),
		logging.FieldEndDate, rng.EndDate())

	eventsStarted := r.now()
	evts, err := r.provider.FetchEvents(ctx, rng.StartDate(), rng.EndDate())
	r.recorder.RecordStage(metrics.StageFetchEvents, r.now().Sub(eventsStarted))
	if err != nil {
		return "", err
	}
	if len(evts) == 0 {
		return "", fmt.Errorf("%w (%s to %s)", ErrNoEvents, rng.StartDate(), rng.EndDate())
	}

	ranksStarted := r.now()
	ranks, err := r.provider.FetchRankings(ctx)
	r.recorder.RecordStage(metrics.StageFetchRankings, r.now().Sub(ranksStarted))
	if err != nil {
		return "", err
	}

	mergeStarted := r.now()
	records, err := r.merger.Apply(evts, ranks)
	r.recorder.RecordStage(metrics.StageMerge, r.now().Sub(mergeStarted))
	if err != nil {
		return "", err
	}

	writeStarted := r.now()
	path, err := r.writer.Write(records)
	r.recorder.RecordStage(metrics.StageWrite, r.now().Sub(writeStarted))
	if err != nil {
		return "", err
	}

	logging.Info(r.logger, "run complete",
		logging.FieldPath, path,
		logging.FieldCount, len(records))
	return path, nil
}
