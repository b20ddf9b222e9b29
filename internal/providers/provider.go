package providers

import (
	"context"

	"github.com/preston-bernstein/nfl-events-etl/internal/domain/events"
	"github.com/preston-bernstein/nfl-events-etl/internal/domain/rankings"
)

// EventProvider fetches normalized scoreboard events for an inclusive date
// window. Both dates are YYYY-MM-DD strings.
type EventProvider interface {
	FetchEvents(ctx context.Context, startDate, endDate string) ([]events.Event, error)
}

// RankingProvider fetches the current team ranking snapshot. The rankings
// endpoint is not date-scoped; it always returns the point-in-time table.
type RankingProvider interface {
	FetchRankings(ctx context.Context) ([]rankings.Ranking, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	EventProvider
	RankingProvider
}
