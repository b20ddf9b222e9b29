package chalk

import (
	"fmt"

	"github.com/preston-bernstein/nfl-events-etl/internal/domain/events"
	"github.com/preston-bernstein/nfl-events-etl/internal/domain/rankings"
)

func mapEvent(id string, e eventResponse) (events.Event, error) {
	if id == "" || e.EventDate == "" || e.HomeTeamID == "" || e.AwayTeamID == "" {
		return events.Event{}, fmt.Errorf("scoreboard entry %q missing required fields", id)
	}
	return events.Event{
		ID:         id,
		Timestamp:  e.EventDate,
		AwayTeamID: e.AwayTeamID,
		HomeTeamID: e.HomeTeamID,
	}, nil
}

func mapRanking(r rankingResponse) (rankings.Ranking, error) {
	if r.TeamID == "" {
		return rankings.Ranking{}, fmt.Errorf("ranking entry missing team_id")
	}
	nick := r.NickName
	if nick == "" {
		nick = r.Team
	}
	return rankings.Ranking{
		TeamID:         r.TeamID,
		NickName:       nick,
		City:           r.City,
		Rank:           r.Rank,
		AdjustedPoints: r.AdjustedPoints,
	}, nil
}
