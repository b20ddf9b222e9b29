package fixture

import (
	"context"
	"testing"
)

func TestFetchEventsAnchorsToWindow(t *testing.T) {
	p := New()

	evts, err := p.FetchEvents(context.Background(), "2020-01-12", "2020-01-19")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(evts) != 4 {
		t.Fatalf("expected 4 events, got %d", len(evts))
	}
	if evts[0].ID != "1233827" || evts[0].Timestamp != "2020-01-12 15:05" {
		t.Fatalf("unexpected first event %+v", evts[0])
	}
	if evts[2].Timestamp != "2020-01-13 13:05" {
		t.Fatalf("expected later games on the next day, got %s", evts[2].Timestamp)
	}
}

func TestFetchEventsSingleDayWindow(t *testing.T) {
	p := New()

	evts, err := p.FetchEvents(context.Background(), "2020-01-12", "2020-01-12")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, e := range evts {
		if e.Timestamp[:10] != "2020-01-12" {
			t.Fatalf("expected all events on the window day, got %s", e.Timestamp)
		}
	}
}

func TestFetchRankingsCoverEveryFixtureTeam(t *testing.T) {
	p := New()

	evts, _ := p.FetchEvents(context.Background(), "2020-01-12", "2020-01-13")
	ranks, err := p.FetchRankings(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	byTeam := make(map[string]bool, len(ranks))
	for _, r := range ranks {
		byTeam[r.TeamID] = true
	}
	for _, e := range evts {
		if !byTeam[e.HomeTeamID] || !byTeam[e.AwayTeamID] {
			t.Fatalf("event %s references a team without a ranking", e.ID)
		}
	}
}
