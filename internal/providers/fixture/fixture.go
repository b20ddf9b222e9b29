// Package fixture provides a deterministic offline data set for local runs
// and end-to-end tests without touching the upstream API.
package fixture

import (
	"context"

	"github.com/preston-bernstein/nfl-events-etl/internal/domain/events"
	"github.com/preston-bernstein/nfl-events-etl/internal/domain/rankings"
	"github.com/preston-bernstein/nfl-events-etl/internal/timeutil"
)

// Provider returns a static 2020 wildcard-weekend slate. Event timestamps are
// re-anchored to the requested window so any start date produces output.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchEvents returns the example slate with the first two games on the
// window start date and the remaining two on the following day (when the
// window spans more than one day).
func (p *Provider) FetchEvents(ctx context.Context, startDate, endDate string) ([]events.Event, error) {
	_ = ctx

	day1 := startDate
	day2 := startDate
	start, err := timeutil.ParseDate(startDate)
	if err == nil {
		next := start.AddDate(0, 0, 1)
		if end, endErr := timeutil.ParseDate(endDate); endErr == nil && !next.After(end) {
			day2 = timeutil.FormatDate(next)
		}
	}

	return []events.Event{
		{ID: "1233827", Timestamp: day1 + " 15:05", AwayTeamID: "42", HomeTeamID: "63"},
		{ID: "1233912", Timestamp: day1 + " 18:40", AwayTeamID: "52", HomeTeamID: "39"},
		{ID: "1233913", Timestamp: day2 + " 13:05", AwayTeamID: "58", HomeTeamID: "61"},
		{ID: "1233914", Timestamp: day2 + " 16:40", AwayTeamID: "54", HomeTeamID: "47"},
	}, nil
}

// FetchRankings returns ranking snapshots covering every fixture team.
func (p *Provider) FetchRankings(ctx context.Context) ([]rankings.Ranking, error) {
	_ = ctx

	return []rankings.Ranking{
		{TeamID: "63", NickName: "Chiefs", City: "Kansas City", Rank: "5", AdjustedPoints: "18.124"},
		{TeamID: "42", NickName: "Texans", City: "Houston", Rank: "25", AdjustedPoints: "-1.215"},
		{TeamID: "39", NickName: "Packers", City: "Green Bay", Rank: "10", AdjustedPoints: "11.375"},
		{TeamID: "52", NickName: "Seahawks", City: "Seattle", Rank: "12", AdjustedPoints: "9.847"},
		{TeamID: "61", NickName: "49ers", City: "San Francisco", Rank: "2", AdjustedPoints: "22.631"},
		{TeamID: "58", NickName: "Vikings", City: "Minnesota", Rank: "14", AdjustedPoints: "8.102"},
		{TeamID: "47", NickName: "Ravens", City: "Baltimore", Rank: "1", AdjustedPoints: "26.490"},
		{TeamID: "54", NickName: "Titans", City: "Tennessee", Rank: "18", AdjustedPoints: "4.933"},
	}, nil
}
