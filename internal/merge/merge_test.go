package merge

import (
	"errors"
	"reflect"
	"testing"

	"github.com/preston-bernstein/nfl-events-etl/internal/domain/events"
	"github.com/preston-bernstein/nfl-events-etl/internal/domain/rankings"
)

func sampleEvents() []events.Event {
	return []events.Event{
		{ID: "1233827", Timestamp: "2020-01-12 15:05", AwayTeamID: "42", HomeTeamID: "63"},
		{ID: "1233912", Timestamp: "2020-01-12 18:40", AwayTeamID: "52", HomeTeamID: "39"},
		{ID: "1233913", Timestamp: "2020-01-13 13:05", AwayTeamID: "58", HomeTeamID: "61"},
		{ID: "1233914", Timestamp: "2020-01-13 16:40", AwayTeamID: "54", HomeTeamID: "47"},
	}
}

func sampleRankings() []rankings.Ranking {
	return []rankings.Ranking{
		{TeamID: "63", NickName: "Chiefs", City: "Kansas City", Rank: "5", AdjustedPoints: "18.124"},
		{TeamID: "42", NickName: "Texans", City: "Houston", Rank: "25", AdjustedPoints: "-1.215"},
		{TeamID: "39", NickName: "Packers", City: "Green Bay", Rank: "10", AdjustedPoints: "11.375"},
		{TeamID: "52", NickName: "Seahawks", City: "Seattle", Rank: "12", AdjustedPoints: "9.847"},
		{TeamID: "61", NickName: "49ers", City: "San Francisco", Rank: "2", AdjustedPoints: "22.631"},
		{TeamID: "58", NickName: "Vikings", City: "Minnesota", Rank: "14", AdjustedPoints: "8.102"},
		{TeamID: "47", NickName: "Ravens", City: "Baltimore", Rank: "1", AdjustedPoints: "26.490"},
		{TeamID: "54", NickName: "Titans", City: "Tennessee", Rank: "18", AdjustedPoints: "4.933"},
	}
}

func TestApplyJoinsAndReshapes(t *testing.T) {
	m := New(PolicyFail)

	out, err := m.Apply(sampleEvents(), sampleRankings())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("expected 4 records, got %d", len(out))
	}

	first := out[0]
	if first.EventID != "1233827" {
		t.Fatalf("expected event 1233827 first, got %s", first.EventID)
	}
	if first.EventDate != "12-01-2020" || first.EventTime != "15:05" {
		t.Fatalf("unexpected date/time split %s %s", first.EventDate, first.EventTime)
	}
	if first.HomeNickName != "Chiefs" || first.HomeRank != "5" {
		t.Fatalf("unexpected home fields %+v", first)
	}
	if first.AwayNickName != "Texans" || first.AwayRank != "25" {
		t.Fatalf("unexpected away fields %+v", first)
	}
}

func TestApplyPreservesEventOrder(t *testing.T) {
	m := New(PolicyFail)

	out, err := m.Apply(sampleEvents(), sampleRankings())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for i, ev := range sampleEvents() {
		if out[i].EventID != ev.ID {
			t.Fatalf("expected %s at index %d, got %s", ev.ID, i, out[i].EventID)
		}
	}
}

func TestApplyDoesNotCrossContaminateSides(t *testing.T) {
	m := New(PolicyFail)

	out, err := m.Apply(sampleEvents(), sampleRankings())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for i, rec := range out {
		ev := sampleEvents()[i]
		if rec.HomeTeamID != ev.HomeTeamID {
			t.Fatalf("record %s: home fields came from %s, want %s", rec.EventID, rec.HomeTeamID, ev.HomeTeamID)
		}
		if rec.AwayTeamID != ev.AwayTeamID {
			t.Fatalf("record %s: away fields came from %s, want %s", rec.EventID, rec.AwayTeamID, ev.AwayTeamID)
		}
	}
}

func TestApplyIsDeterministic(t *testing.T) {
	m := New(PolicyFail)

	first, err := m.Apply(sampleEvents(), sampleRankings())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := m.Apply(sampleEvents(), sampleRankings())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical output for identical input")
	}
}

func TestApplyFailPolicyAbortsOnMissingRanking(t *testing.T) {
	m := New(PolicyFail)

	evts := append(sampleEvents(), events.Event{
		ID: "999", Timestamp: "2020-01-13 20:00", AwayTeamID: "1", HomeTeamID: "63",
	})

	_, err := m.Apply(evts, sampleRankings())
	if err == nil {
		t.Fatal("expected merge to abort")
	}
	var missing *MissingRankingError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingRankingError, got %v", err)
	}
	if missing.EventID != "999" || missing.TeamID != "1" {
		t.Fatalf("unexpected error detail %+v", missing)
	}
}

func TestApplyDropPolicySkipsUnjoinableEvents(t *testing.T) {
	m := New(PolicyDrop)

	evts := sampleEvents()
	// Second event's home team loses its ranking entry.
	ranks := sampleRankings()[:2]
	ranks = append(ranks, sampleRankings()[3:]...)

	out, err := m.Apply(evts, ranks)
	if err != nil {
		t.Fatalf("expected no error under drop policy, got %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 records after dropping, got %d", len(out))
	}
	for _, rec := range out {
		if rec.EventID == "1233912" {
			t.Fatal("expected unjoinable event to be dropped")
		}
	}
}

func TestApplyRejectsMalformedTimestamp(t *testing.T) {
	m := New(PolicyDrop)

	evts := []events.Event{{ID: "1", Timestamp: "2020-01-12", AwayTeamID: "42", HomeTeamID: "63"}}
	if _, err := m.Apply(evts, sampleRankings()); err == nil {
		t.Fatal("expected error for timestamp without time component")
	}
}

func TestBuildRankingIndexLastWins(t *testing.T) {
	ranks := []rankings.Ranking{
		{TeamID: "63", NickName: "Chiefs", Rank: "5"},
		{TeamID: "63", NickName: "Chiefs", Rank: "6"},
	}
	index := BuildRankingIndex(ranks)
	if index["63"].Rank != "6" {
		t.Fatalf("expected later duplicate to win, got rank %s", index["63"].Rank)
	}
}

func TestParsePolicy(t *testing.T) {
	if p, err := ParsePolicy(""); err != nil || p != PolicyFail {
		t.Fatalf("expected empty to default to fail, got %v %v", p, err)
	}
	if p, err := ParsePolicy("drop"); err != nil || p != PolicyDrop {
		t.Fatalf("expected drop, got %v %v", p, err)
	}
	if _, err := ParsePolicy("ignore"); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}

func TestApplyEmptyEvents(t *testing.T) {
	m := New(PolicyFail)

	out, err := m.Apply(nil, sampleRankings())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %d records", len(out))
	}
}
