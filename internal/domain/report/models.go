// Package report defines the flat client-facing record produced by a run.
package report

// Event combines one scoreboard event with the ranking snapshots of both
// participating teams. Struct order fixes the JSON key order expected by the
// client: event fields first, then away-side fields, then home-side fields.
type Event struct {
	EventID        string `json:"event_id"`
	EventDate      string `json:"event_date"`
	EventTime      string `json:"event_time"`
	AwayTeamID     string `json:"away_team_id"`
	AwayNickName   string `json:"away_nick_name"`
	AwayCity       string `json:"away_city"`
	AwayRank       string `json:"away_rank"`
	AwayRankPoints string `json:"away_rank_points"`
	HomeTeamID     string `json:"home_team_id"`
	HomeNickName   string `json:"home_nick_name"`
	HomeCity       string `json:"home_city"`
	HomeRank       string `json:"home_rank"`
	HomeRankPoints string `json:"home_rank_points"`
}
