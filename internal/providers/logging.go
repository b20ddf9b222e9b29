package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nfl-events-etl/internal/domain/events"
	"github.com/preston-bernstein/nfl-events-etl/internal/domain/rankings"
	"github.com/preston-bernstein/nfl-events-etl/internal/logging"
	"github.com/preston-bernstein/nfl-events-etl/internal/metrics"
)

// loggingProvider decorates a DataProvider with structured logs and metrics.
type loggingProvider struct {
	inner    DataProvider
	logger   *slog.Logger
	recorder *metrics.Recorder
	name     string
}

// NewLoggingProvider wraps the given provider with logging and metrics. Both
// logger and recorder may be nil.
func NewLoggingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) DataProvider {
	return &loggingProvider{
		inner:    inner,
		logger:   logger,
		recorder: recorder,
		name:     name,
	}
}

func (p *loggingProvider) FetchEvents(ctx context.Context, startDate, endDate string) ([]events.Event, error) {
	started := time.Now()
	evts, err := p.inner.FetchEvents(ctx, startDate, endDate)
	elapsed := time.Since(started)

	p.recorder.RecordProviderAttempt(p.name, elapsed, err)
	if err != nil {
		logging.Error(p.logger, "fetch events failed", err,
			logging.FieldProvider, p.name,
			logging.FieldStartDate, startDate,
			logging.FieldEndDate, endDate)
		return nil, err
	}
	logging.Info(p.logger, "fetched events",
		logging.FieldProvider, p.name,
		logging.FieldStartDate, startDate,
		logging.FieldEndDate, endDate,
		logging.FieldCount, len(evts),
		logging.FieldDurationMS, elapsed.Milliseconds())
	return evts, nil
}

func (p *loggingProvider) FetchRankings(ctx context.Context) ([]rankings.Ranking, error) {
	started := time.Now()
	ranks, err := p.inner.FetchRankings(ctx)
	elapsed := time.Since(started)

	p.recorder.RecordProviderAttempt(p.name, elapsed, err)
	if err != nil {
		logging.Error(p.logger, "fetch rankings failed", err, logging.FieldProvider, p.name)
		return nil, err
	}
	logging.Info(p.logger, "fetched rankings",
		logging.FieldProvider, p.name,
		logging.FieldCount, len(ranks),
		logging.FieldDurationMS, elapsed.Milliseconds())
	return ranks, nil
}
