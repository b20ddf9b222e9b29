package testutil

import (
	"context"

	"github.com/preston-bernstein/nfl-events-etl/internal/domain/events"
	"github.com/preston-bernstein/nfl-events-etl/internal/domain/rankings"
)

// StubProvider is a canned DataProvider for pipeline and CLI tests.
type StubProvider struct {
	Events      []events.Event
	Rankings    []rankings.Ranking
	EventsErr   error
	RankingsErr error

	// Captured arguments from the last FetchEvents call.
	GotStart string
	GotEnd   string
}

func (s *StubProvider) FetchEvents(ctx context.Context, startDate, endDate string) ([]events.Event, error) {
	s.GotStart, s.GotEnd = startDate, endDate
	if s.EventsErr != nil {
		return nil, s.EventsErr
	}
	return s.Events, nil
}

func (s *StubProvider) FetchRankings(ctx context.Context) ([]rankings.Ranking, error) {
	if s.RankingsErr != nil {
		return nil, s.RankingsErr
	}
	return s.Rankings, nil
}
