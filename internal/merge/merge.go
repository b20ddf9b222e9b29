// Package merge joins scoreboard events with team ranking snapshots and
// reshapes them into the flat client record.
package merge

import (
	"fmt"

	"github.com/preston-bernstein/nfl-events-etl/internal/domain/events"
	"github.com/preston-bernstein/nfl-events-etl/internal/domain/rankings"
	"github.com/preston-bernstein/nfl-events-etl/internal/domain/report"
	"github.com/preston-bernstein/nfl-events-etl/internal/timeutil"
)

// Policy selects the behavior when an event references a team id with no
// ranking snapshot in the same fetch window.
type Policy string

const (
	// PolicyFail aborts the whole merge on the first unjoinable event.
	PolicyFail Policy = "fail"
	// PolicyDrop silently omits unjoinable events from the output.
	PolicyDrop Policy = "drop"
)

// ParsePolicy validates a policy string, defaulting empty input to PolicyFail.
func ParsePolicy(value string) (Policy, error) {
	switch Policy(value) {
	case "":
		return PolicyFail, nil
	case PolicyFail, PolicyDrop:
		return Policy(value), nil
	}
	return "", fmt.Errorf("unknown missing-ranking policy %q (want %q or %q)", value, PolicyFail, PolicyDrop)
}

// MissingRankingError reports an event whose team has no ranking snapshot.
type MissingRankingError struct {
	EventID string
	TeamID  string
}

func (e *MissingRankingError) Error() string {
	return fmt.Sprintf("event %s references team %s with no ranking snapshot", e.EventID, e.TeamID)
}

// BuildRankingIndex maps team id to ranking. Duplicate team ids resolve to
// the last occurrence in the input.
func BuildRankingIndex(ranks []rankings.Ranking) map[string]rankings.Ranking {
	index := make(map[string]rankings.Ranking, len(ranks))
	for _, r := range ranks {
		index[r.TeamID] = r
	}
	return index
}

// Merger combines events with rankings under a missing-ranking policy.
type Merger struct {
	policy Policy
}

// New constructs a Merger. An empty policy defaults to PolicyFail.
func New(policy Policy) *Merger {
	if policy == "" {
		policy = PolicyFail
	}
	return &Merger{policy: policy}
}

// Apply joins each event with the ranking snapshots of both its teams and
// emits flat report records in the input event order. It is pure: identical
// inputs always produce identical output.
func (m *Merger) Apply(evts []events.Event, ranks []rankings.Ranking) ([]report.Event, error) {
	index := BuildRankingIndex(ranks)

	out := make([]report.Event, 0, len(evts))
	for _, ev := range evts {
		date, clock, err := timeutil.SplitTimestamp(ev.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("event %s: bad timestamp %q: %w", ev.ID, ev.Timestamp, err)
		}

		home, ok := index[ev.HomeTeamID]
		if !ok {
			if m.policy == PolicyDrop {
				continue
			}
			return nil, &MissingRankingError{EventID: ev.ID, TeamID: ev.HomeTeamID}
		}
		away, ok := index[ev.AwayTeamID]
		if !ok {
			if m.policy == PolicyDrop {
				continue
			}
			return nil, &MissingRankingError{EventID: ev.ID, TeamID: ev.AwayTeamID}
		}

		out = append(out, report.Event{
			EventID:        ev.ID,
			EventDate:      date,
			EventTime:      clock,
			AwayTeamID:     away.TeamID,
			AwayNickName:   away.NickName,
			AwayCity:       away.City,
			AwayRank:       away.Rank,
			AwayRankPoints: away.AdjustedPoints,
			HomeTeamID:     home.TeamID,
			HomeNickName:   home.NickName,
			HomeCity:       home.City,
			HomeRank:       home.Rank,
			HomeRankPoints: home.AdjustedPoints,
		})
	}
	return out, nil
}
